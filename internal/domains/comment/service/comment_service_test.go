package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogicum-backend/internal/domains/comment"
	"blogicum-backend/internal/domains/post"
	"blogicum-backend/internal/domains/user"
	"blogicum-backend/internal/infrastructure/queue"
	"blogicum-backend/internal/storage/inmemory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type enqueuerRecorder struct {
	payloads []queue.CommentNotifyPayload
	err      error
}

func (r *enqueuerRecorder) EnqueueCommentNotify(_ context.Context, payload queue.CommentNotifyPayload) error {
	if r.err != nil {
		return r.err
	}
	r.payloads = append(r.payloads, payload)
	return nil
}

type commentFixture struct {
	store    *inmemory.Store
	svc      *CommentService
	enqueuer *enqueuerRecorder
	author   user.User
	reader   user.User
	parent   post.Post
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()

	store := inmemory.NewStore()
	enqueuer := &enqueuerRecorder{}

	f := &commentFixture{
		store:    store,
		enqueuer: enqueuer,
		author:   user.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"},
		reader:   user.User{ID: uuid.New(), Username: "bob", Email: "bob@example.com"},
	}
	store.AddUser(f.author)
	store.AddUser(f.reader)

	created, err := store.Posts().Create(context.Background(), &post.Post{
		ID:          uuid.New(),
		Title:       "post",
		Text:        "body",
		PubDate:     time.Now().Add(-time.Hour),
		AuthorID:    f.author.ID,
		IsPublished: true,
	})
	require.NoError(t, err)
	f.parent = *created

	f.svc = NewCommentService(store.Comments(), store.Posts(), enqueuer)
	return f
}

func (f *commentFixture) addComment(t *testing.T, authorID uuid.UUID) comment.Comment {
	t.Helper()

	created, err := f.store.Comments().Create(context.Background(), &comment.Comment{
		ID:        uuid.New(),
		Text:      "existing",
		PostID:    f.parent.ID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return *created
}

func TestCreateComment(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.reader.ID, f.parent.ID, comment.SubmitRequest{Text: "nice post"})
	require.NoError(t, err)
	require.Equal(t, f.parent.ID, created.PostID)
	require.Equal(t, f.reader.ID, created.AuthorID)

	fetched, err := f.store.Comments().GetForPost(ctx, f.parent.ID, created.ID)
	require.NoError(t, err)
	require.Equal(t, "nice post", fetched.Text)

	// The post author gets notified about the new comment.
	require.Len(t, f.enqueuer.payloads, 1)
	require.Equal(t, created.ID, f.enqueuer.payloads[0].CommentID)
	require.Equal(t, f.parent.ID, f.enqueuer.payloads[0].PostID)
	require.Equal(t, f.author.ID, f.enqueuer.payloads[0].AuthorID)
}

func TestCreateCommentUnknownPost(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)

	_, err := f.svc.Create(context.Background(), f.reader.ID, uuid.New(), comment.SubmitRequest{Text: "hello"})
	require.ErrorIs(t, err, post.ErrPostNotFound)
	require.Empty(t, f.enqueuer.payloads)
}

func TestCreateCommentRejectsEmptyText(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)

	_, err := f.svc.Create(context.Background(), f.reader.ID, f.parent.ID, comment.SubmitRequest{})
	require.ErrorIs(t, err, comment.ErrInvalidInput)
}

func TestCreateCommentSurvivesEnqueueFailure(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	f.enqueuer.err = errors.New("broker down")
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.reader.ID, f.parent.ID, comment.SubmitRequest{Text: "still here"})
	require.NoError(t, err)

	_, err = f.store.Comments().GetForPost(ctx, f.parent.ID, created.ID)
	require.NoError(t, err)
}

func TestUpdateComment(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	ctx := context.Background()

	c := f.addComment(t, f.reader.ID)

	updated, err := f.svc.Update(ctx, f.reader.ID, f.parent.ID, c.ID, comment.SubmitRequest{Text: "edited"})
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Text)
}

func TestUpdateCommentNotAuthorReadsAsAbsent(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	ctx := context.Background()

	c := f.addComment(t, f.reader.ID)

	_, err := f.svc.Update(ctx, f.author.ID, f.parent.ID, c.ID, comment.SubmitRequest{Text: "edited"})
	require.ErrorIs(t, err, comment.ErrCommentNotFound)

	unchanged, err := f.store.Comments().GetForPost(ctx, f.parent.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "existing", unchanged.Text)
}

func TestUpdateCommentWrongParent(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	c := f.addComment(t, f.reader.ID)

	// A comment addressed through the wrong post id does not resolve.
	_, err := f.svc.Update(context.Background(), f.reader.ID, uuid.New(), c.ID, comment.SubmitRequest{Text: "edited"})
	require.ErrorIs(t, err, comment.ErrCommentNotFound)
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	ctx := context.Background()

	c := f.addComment(t, f.reader.ID)

	err := f.svc.Delete(ctx, f.author.ID, f.parent.ID, c.ID)
	require.ErrorIs(t, err, comment.ErrForbidden)

	_, err = f.store.Comments().GetForPost(ctx, f.parent.ID, c.ID)
	require.NoError(t, err, "comment survives a forbidden delete")

	require.NoError(t, f.svc.Delete(ctx, f.reader.ID, f.parent.ID, c.ID))

	_, err = f.store.Comments().GetForPost(ctx, f.parent.ID, c.ID)
	require.ErrorIs(t, err, comment.ErrCommentNotFound)
}
