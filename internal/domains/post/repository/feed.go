package repository

import (
	"time"

	"blogicum-backend/internal/domains/post"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// feedColumns is the full eager-loaded projection of one feed row: the
// post, its author, its optional category and location, and the comment
// count. The count is a correlated aggregate keyed by post id so joining
// relations never multiplies rows.
var feedColumns = []string{
	"p.id", "p.title", "p.text", "p.pub_date", "p.author_id",
	"p.category_id", "p.location_id", "p.image_url", "p.is_published", "p.created_at",
	"u.id", "u.username", "u.first_name", "u.last_name", "u.email", "u.created_at",
	"c.id", "c.title", "c.description", "c.slug", "c.is_published", "c.created_at",
	"l.id", "l.name", "l.is_published", "l.created_at",
	"(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id) AS comment_count",
}

// FeedQuery composes the filter stages of one post feed query. Stages are
// order-independent; each returns a new value, so partial compositions
// can be reused.
type FeedQuery struct {
	b sq.SelectBuilder
}

// NewFeedQuery starts a feed query with relations eager-loaded in the
// same round trip.
func NewFeedQuery() FeedQuery {
	return FeedQuery{
		b: sq.Select(feedColumns...).
			From("posts p").
			Join("users u ON u.id = p.author_id").
			LeftJoin("categories c ON c.id = p.category_id").
			LeftJoin("locations l ON l.id = p.location_id").
			PlaceholderFormat(sq.Dollar),
	}
}

// newFeedCount builds the matching total-count query; it keeps the joins
// so filter stages see the same columns, but drops the projection and
// ordering.
func newFeedCount() FeedQuery {
	return FeedQuery{
		b: sq.Select("COUNT(*)").
			From("posts p").
			LeftJoin("categories c ON c.id = p.category_id").
			PlaceholderFormat(sq.Dollar),
	}
}

// WithActualDate keeps posts whose publication timestamp has passed.
func (q FeedQuery) WithActualDate(now time.Time) FeedQuery {
	q.b = q.b.Where(sq.LtOrEq{"p.pub_date": now})
	return q
}

// Published keeps posts flagged as published.
func (q FeedQuery) Published() FeedQuery {
	q.b = q.b.Where(sq.Eq{"p.is_published": true})
	return q
}

// CategoryPublished keeps posts whose category exists and is published.
// A post without a category has c.is_published NULL here and is excluded,
// which keeps category-less posts out of the default published feed.
func (q FeedQuery) CategoryPublished() FeedQuery {
	q.b = q.b.Where(sq.Eq{"c.is_published": true})
	return q
}

// ByCategory narrows to one category.
func (q FeedQuery) ByCategory(id uuid.UUID) FeedQuery {
	q.b = q.b.Where(sq.Eq{"p.category_id": id})
	return q
}

// ByAuthor narrows to one author.
func (q FeedQuery) ByAuthor(id uuid.UUID) FeedQuery {
	q.b = q.b.Where(sq.Eq{"p.author_id": id})
	return q
}

// ByID narrows to one post.
func (q FeedQuery) ByID(id uuid.UUID) FeedQuery {
	q.b = q.b.Where(sq.Eq{"p.id": id})
	return q
}

// OrderedByPubDate sorts newest publication first, with the post id as a
// tiebreaker so LIMIT/OFFSET windows over equal timestamps stay stable.
// This is the feed ordering; comment listings order by created_at
// ascending instead.
func (q FeedQuery) OrderedByPubDate() FeedQuery {
	q.b = q.b.OrderBy("p.pub_date DESC", "p.id")
	return q
}

// Paginate slices one window out of the ordered result.
func (q FeedQuery) Paginate(limit, offset int) FeedQuery {
	q.b = q.b.Limit(uint64(limit)).Offset(uint64(offset))
	return q
}

func (q FeedQuery) ToSql() (string, []interface{}, error) {
	return q.b.ToSql()
}

// applyFilter maps a FeedFilter onto the composable stages.
func applyFilter(q FeedQuery, f post.FeedFilter) FeedQuery {
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}

	if f.Actual {
		q = q.WithActualDate(now)
	}
	if f.Published {
		q = q.Published()
	}
	if f.CategoryPublished {
		q = q.CategoryPublished()
	}
	if f.CategoryID != nil {
		q = q.ByCategory(*f.CategoryID)
	}
	if f.AuthorID != nil {
		q = q.ByAuthor(*f.AuthorID)
	}
	return q
}
