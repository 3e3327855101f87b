package inmemory

import (
	"context"

	"blogicum-backend/internal/domains/user"

	"github.com/google/uuid"
)

type userStore Store

func (s *userStore) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	found := stored
	return &found, nil
}

func (s *userStore) GetByUsername(_ context.Context, username string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (s *userStore) UpdateProfile(_ context.Context, entity *user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[entity.ID]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	for _, other := range s.users {
		if other.ID != entity.ID && other.Username == entity.Username {
			return nil, user.ErrDuplicateUsername
		}
	}

	stored.Username = entity.Username
	stored.FirstName = entity.FirstName
	stored.LastName = entity.LastName
	stored.Email = entity.Email
	s.users[stored.ID] = stored

	updated := stored
	return &updated, nil
}
