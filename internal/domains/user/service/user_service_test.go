package service

import (
	"context"
	"testing"

	"blogicum-backend/internal/domains/user"
	"blogicum-backend/internal/storage/inmemory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	store := inmemory.NewStore()
	alice := user.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	bob := user.User{ID: uuid.New(), Username: "bob", Email: "bob@example.com"}
	store.AddUser(alice)
	store.AddUser(bob)

	svc := NewUserService(store.Users())
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, alice.ID, user.UpdateProfileRequest{
		Username:  "alice2",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice2@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, alice.ID, updated.ID, "the viewer is always the edit target")
	require.Equal(t, "alice2", updated.Username)
	require.Equal(t, "alice2@example.com", updated.Email)

	// Bob is untouched.
	unchanged, err := store.Users().GetByID(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", unchanged.Username)
}

func TestUpdateProfileDuplicateUsername(t *testing.T) {
	t.Parallel()

	store := inmemory.NewStore()
	alice := user.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	store.AddUser(alice)
	store.AddUser(user.User{ID: uuid.New(), Username: "bob", Email: "bob@example.com"})

	svc := NewUserService(store.Users())

	_, err := svc.UpdateProfile(context.Background(), alice.ID, user.UpdateProfileRequest{
		Username: "bob",
		Email:    "alice@example.com",
	})
	require.ErrorIs(t, err, user.ErrDuplicateUsername)
}

func TestUpdateProfileValidation(t *testing.T) {
	t.Parallel()

	store := inmemory.NewStore()
	alice := user.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	store.AddUser(alice)

	svc := NewUserService(store.Users())
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, alice.ID, user.UpdateProfileRequest{
		Username: "alice",
		Email:    "not-an-email",
	})
	require.ErrorIs(t, err, user.ErrInvalidInput)

	_, err = svc.UpdateProfile(ctx, alice.ID, user.UpdateProfileRequest{
		Email: "alice@example.com",
	})
	require.ErrorIs(t, err, user.ErrInvalidInput)
}

func TestUpdateProfileUnknownViewer(t *testing.T) {
	t.Parallel()

	svc := NewUserService(inmemory.NewStore().Users())

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), user.UpdateProfileRequest{
		Username: "ghost",
		Email:    "ghost@example.com",
	})
	require.ErrorIs(t, err, user.ErrUserNotFound)
}
