package post

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FeedFilter is the explicit, order-independent description of one feed
// query. Callers say exactly which stages apply; no stage is implied.
type FeedFilter struct {
	// Published keeps only posts with IsPublished set.
	Published bool
	// Actual keeps only posts whose PubDate is at or before Now.
	Actual bool
	// CategoryPublished keeps only posts with an existing, published
	// category. Posts without a category are excluded by this stage.
	CategoryPublished bool

	CategoryID *uuid.UUID
	AuthorID   *uuid.UUID

	// Now is the temporal cutoff used by the Actual stage. Zero means
	// time.Now at execution.
	Now time.Time

	Limit  int
	Offset int
}

// PublishedFeed is the standard composition behind every general listing
// page: actual-date, published, category-published.
func PublishedFeed(now time.Time, limit, offset int) FeedFilter {
	return FeedFilter{
		Published:         true,
		Actual:            true,
		CategoryPublished: true,
		Now:               now,
		Limit:             limit,
		Offset:            offset,
	}
}

type Repository interface {
	Create(ctx context.Context, p *Post) (*Post, error)
	// GetByID returns one post with author, category and location
	// eager-loaded and its comment count attached. Visibility is the
	// caller's concern.
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	Update(ctx context.Context, p *Post) (*Post, error)
	// Delete removes the post; comments cascade with it.
	Delete(ctx context.Context, id uuid.UUID) error
	// List runs one feed query: filtered per f, eager-loaded,
	// comment-counted, ordered by PubDate descending, paginated. The
	// second return is the total row count before pagination.
	List(ctx context.Context, f FeedFilter) ([]Post, int64, error)
}
