package inmemory

import (
	"bytes"
	"context"
	"sort"
	"time"

	"blogicum-backend/internal/domains/post"

	"github.com/google/uuid"
)

type postStore Store

func (s *postStore) Create(_ context.Context, entity *post.Post) (*post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *entity
	stored.Author, stored.Category, stored.Location = nil, nil, nil
	s.posts[stored.ID] = stored

	created := stored
	return &created, nil
}

func (s *postStore) GetByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}

	loaded := s.load(stored)
	return &loaded, nil
}

func (s *postStore) Update(_ context.Context, entity *post.Post) (*post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[entity.ID]
	if !ok {
		return nil, post.ErrPostNotFound
	}

	stored.Title = entity.Title
	stored.Text = entity.Text
	stored.PubDate = entity.PubDate
	stored.CategoryID = entity.CategoryID
	stored.LocationID = entity.LocationID
	stored.ImageURL = entity.ImageURL
	stored.IsPublished = entity.IsPublished
	s.posts[stored.ID] = stored

	updated := stored
	return &updated, nil
}

func (s *postStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(s.posts, id)

	// Cascade: comments belong to their post.
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}

	return nil
}

func (s *postStore) List(_ context.Context, f post.FeedFilter) ([]post.Post, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}

	matched := make([]post.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if f.Published && !p.IsPublished {
			continue
		}
		if f.Actual && p.PubDate.After(now) {
			continue
		}
		if f.CategoryPublished {
			if p.CategoryID == nil {
				continue
			}
			cat, ok := s.categories[*p.CategoryID]
			if !ok || !cat.IsPublished {
				continue
			}
		}
		if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
			continue
		}
		if f.AuthorID != nil && p.AuthorID != *f.AuthorID {
			continue
		}
		matched = append(matched, s.load(p))
	}

	// Same ordering as the SQL feed: pub_date descending, id as the
	// tiebreaker so pagination windows over equal timestamps stay stable.
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].PubDate.Equal(matched[j].PubDate) {
			return matched[i].PubDate.After(matched[j].PubDate)
		}
		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) < 0
	})

	total := int64(len(matched))

	if f.Limit > 0 {
		if f.Offset >= len(matched) {
			return []post.Post{}, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[f.Offset:end]
	}

	return matched, total, nil
}

// load attaches eager relations and the comment count, mirroring what the
// SQL projection does per row. Caller holds the lock.
func (s *postStore) load(p post.Post) post.Post {
	if author, ok := s.users[p.AuthorID]; ok {
		a := author
		p.Author = &a
	}
	if p.CategoryID != nil {
		if cat, ok := s.categories[*p.CategoryID]; ok {
			c := cat
			p.Category = &c
		}
	}
	if p.LocationID != nil {
		if loc, ok := s.locations[*p.LocationID]; ok {
			l := loc
			p.Location = &l
		}
	}

	p.CommentCount = 0
	for _, c := range s.comments {
		if c.PostID == p.ID {
			p.CommentCount++
		}
	}

	return p
}
