package repository

import (
	"testing"
	"time"

	"blogicum-backend/internal/domains/post"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFeedQueryComposition(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sql, args, err := NewFeedQuery().
		WithActualDate(now).
		Published().
		CategoryPublished().
		OrderedByPubDate().
		Paginate(10, 20).
		ToSql()
	require.NoError(t, err)

	require.Contains(t, sql, "FROM posts p")
	require.Contains(t, sql, "JOIN users u ON u.id = p.author_id")
	require.Contains(t, sql, "LEFT JOIN categories c ON c.id = p.category_id")
	require.Contains(t, sql, "LEFT JOIN locations l ON l.id = p.location_id")
	require.Contains(t, sql, "(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id) AS comment_count")

	require.Contains(t, sql, "p.pub_date <= $1")
	require.Contains(t, sql, "p.is_published = $2")
	require.Contains(t, sql, "c.is_published = $3")
	require.Contains(t, sql, "ORDER BY p.pub_date DESC, p.id")
	require.Contains(t, sql, "LIMIT 10")
	require.Contains(t, sql, "OFFSET 20")

	require.Equal(t, []interface{}{now, true, true}, args)
}

func TestFeedQueryStagesAreValues(t *testing.T) {
	t.Parallel()

	// A partially composed query can branch without the branches
	// contaminating each other.
	base := NewFeedQuery().Published()

	narrowSQL, _, err := base.CategoryPublished().ToSql()
	require.NoError(t, err)

	baseSQL, _, err := base.ToSql()
	require.NoError(t, err)

	require.Contains(t, narrowSQL, "c.is_published")
	require.NotContains(t, baseSQL, "c.is_published")
}

func TestFeedQueryByIDAndAuthor(t *testing.T) {
	t.Parallel()

	postID := uuid.New()
	authorID := uuid.New()

	sql, args, err := NewFeedQuery().ByID(postID).ToSql()
	require.NoError(t, err)
	require.Contains(t, sql, "p.id = $1")
	require.Equal(t, []interface{}{postID}, args)

	sql, args, err = NewFeedQuery().ByAuthor(authorID).ToSql()
	require.NoError(t, err)
	require.Contains(t, sql, "p.author_id = $1")
	require.Equal(t, []interface{}{authorID}, args)
}

func TestApplyFilterMapsAllStages(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	catID := uuid.New()
	authorID := uuid.New()

	f := post.FeedFilter{
		Published:         true,
		Actual:            true,
		CategoryPublished: true,
		CategoryID:        &catID,
		AuthorID:          &authorID,
		Now:               now,
	}

	sql, args, err := applyFilter(NewFeedQuery(), f).ToSql()
	require.NoError(t, err)

	require.Contains(t, sql, "p.pub_date <= $1")
	require.Contains(t, sql, "p.is_published = $2")
	require.Contains(t, sql, "c.is_published = $3")
	require.Contains(t, sql, "p.category_id = $4")
	require.Contains(t, sql, "p.author_id = $5")
	require.Equal(t, []interface{}{now, true, true, catID, authorID}, args)
}

func TestApplyFilterEmptyHasNoWhere(t *testing.T) {
	t.Parallel()

	sql, args, err := applyFilter(NewFeedQuery(), post.FeedFilter{}).ToSql()
	require.NoError(t, err)
	require.NotContains(t, sql, "WHERE")
	require.Empty(t, args)
}

func TestFeedCountMatchesFilter(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sql, args, err := applyFilter(newFeedCount(), post.PublishedFeed(now, 10, 0)).ToSql()
	require.NoError(t, err)

	require.Contains(t, sql, "SELECT COUNT(*) FROM posts p")
	require.Contains(t, sql, "LEFT JOIN categories c ON c.id = p.category_id")
	require.Contains(t, sql, "p.is_published = $2")
	require.Contains(t, sql, "c.is_published = $3")
	require.NotContains(t, sql, "ORDER BY")
	require.NotContains(t, sql, "LIMIT")
	require.Equal(t, []interface{}{now, true, true}, args)
}
