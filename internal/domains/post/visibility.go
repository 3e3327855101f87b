package post

import (
	"time"

	"blogicum-backend/internal/domains/category"

	"github.com/google/uuid"
)

// IsVisible reports whether a viewer may see a post. The author always
// sees their own posts, published or not, future-dated or not. Everyone
// else needs the post published, its publication date passed, and its
// category (if it has one) published too.
//
// viewerID is uuid.Nil for anonymous viewers. The post's Category must be
// loaded when CategoryID is set; detail and feed queries always eager-load
// it.
func IsVisible(p *Post, viewerID uuid.UUID, now time.Time) bool {
	if viewerID != uuid.Nil && viewerID == p.AuthorID {
		return true
	}
	return isPublic(p, now)
}

func isPublic(p *Post, now time.Time) bool {
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.CategoryID == nil {
		return true
	}
	return p.Category != nil && p.Category.IsPublished
}

// IsCategoryVisible reports whether a category may be shown at all.
func IsCategoryVisible(c *category.Category) bool {
	return c.IsPublished
}

// RestrictProfileFeed reports whether a profile listing must be narrowed
// to published, past-dated posts. Owners browsing their own profile get
// the full set.
func RestrictProfileFeed(ownerID, viewerID uuid.UUID) bool {
	return viewerID == uuid.Nil || viewerID != ownerID
}
