package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the local projection of an identity-provider account. Only the
// reference and ownership semantics matter here; credentials live with
// the provider.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
