package location

import (
	"time"

	"github.com/google/uuid"
)

// Location is an optional attribute of a post. Its publication flag is
// admin bookkeeping and does not gate post visibility.
type Location struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}
