package inmemory

import (
	"context"
	"sort"

	"blogicum-backend/internal/domains/comment"

	"github.com/google/uuid"
)

type commentStore Store

func (s *commentStore) Create(_ context.Context, entity *comment.Comment) (*comment.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *entity
	stored.Author = nil
	s.comments[stored.ID] = stored

	created := stored
	return &created, nil
}

func (s *commentStore) GetForPost(_ context.Context, postID, commentID uuid.UUID) (*comment.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.comments[commentID]
	if !ok || stored.PostID != postID {
		return nil, comment.ErrCommentNotFound
	}

	loaded := s.loadAuthor(stored)
	return &loaded, nil
}

func (s *commentStore) Update(_ context.Context, entity *comment.Comment) (*comment.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.comments[entity.ID]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}

	stored.Text = entity.Text
	s.comments[stored.ID] = stored

	updated := stored
	return &updated, nil
}

func (s *commentStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return comment.ErrCommentNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *commentStore) ListByPost(_ context.Context, postID uuid.UUID) ([]comment.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]comment.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, s.loadAuthor(c))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (s *commentStore) loadAuthor(c comment.Comment) comment.Comment {
	if author, ok := s.users[c.AuthorID]; ok {
		a := author
		c.Author = &a
	}
	return c
}
