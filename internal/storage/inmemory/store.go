// Package inmemory fakes the relational entity store for tests: five
// entity maps behind one lock, with the same filtering, eager-loading,
// aggregation and cascade semantics the postgres repositories get from
// SQL.
package inmemory

import (
	"sync"

	"blogicum-backend/internal/domains/category"
	"blogicum-backend/internal/domains/comment"
	"blogicum-backend/internal/domains/location"
	"blogicum-backend/internal/domains/post"
	"blogicum-backend/internal/domains/user"

	"github.com/google/uuid"
)

type Store struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]user.User
	categories map[uuid.UUID]category.Category
	locations  map[uuid.UUID]location.Location
	posts      map[uuid.UUID]post.Post
	comments   map[uuid.UUID]comment.Comment
}

func NewStore() *Store {
	return &Store{
		users:      make(map[uuid.UUID]user.User),
		categories: make(map[uuid.UUID]category.Category),
		locations:  make(map[uuid.UUID]location.Location),
		posts:      make(map[uuid.UUID]post.Post),
		comments:   make(map[uuid.UUID]comment.Comment),
	}
}

// Seed helpers for fixtures. Users, categories and locations are
// admin-managed records the core never mutates.

func (s *Store) AddUser(u user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) AddCategory(c category.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = c
}

func (s *Store) AddLocation(l location.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[l.ID] = l
}

// Typed views implementing the domain repository interfaces.

func (s *Store) Posts() post.Repository          { return (*postStore)(s) }
func (s *Store) Comments() comment.Repository    { return (*commentStore)(s) }
func (s *Store) Categories() category.Repository { return (*categoryStore)(s) }
func (s *Store) Users() user.Repository          { return (*userStore)(s) }
