package service

import (
	"context"
	"testing"
	"time"

	"blogicum-backend/internal/domains/category"
	categoryservice "blogicum-backend/internal/domains/category/service"
	"blogicum-backend/internal/domains/comment"
	"blogicum-backend/internal/domains/post"
	"blogicum-backend/internal/domains/user"
	"blogicum-backend/internal/storage/inmemory"
	"blogicum-backend/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store     *inmemory.Store
	svc       *PostService
	alice     user.User
	bob       user.User
	goCat     category.Category
	hiddenCat category.Category
	now       time.Time
}

func newFixture(t *testing.T, pageSize int) *fixture {
	t.Helper()

	store := inmemory.NewStore()

	f := &fixture{
		store: store,
		alice: user.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"},
		bob:   user.User{ID: uuid.New(), Username: "bob", Email: "bob@example.com"},
		goCat: category.Category{
			ID: uuid.New(), Title: "Go", Slug: "go", IsPublished: true,
		},
		hiddenCat: category.Category{
			ID: uuid.New(), Title: "Drafts", Slug: "drafts", IsPublished: false,
		},
		now: time.Now(),
	}

	store.AddUser(f.alice)
	store.AddUser(f.bob)
	store.AddCategory(f.goCat)
	store.AddCategory(f.hiddenCat)

	f.svc = NewPostService(
		store.Posts(),
		store.Comments(),
		store.Users(),
		categoryservice.NewCategoryService(store.Categories()),
		pageSize,
	)

	return f
}

func (f *fixture) addPost(t *testing.T, authorID uuid.UUID, categoryID *uuid.UUID, published bool, pubDate time.Time) post.Post {
	t.Helper()

	created, err := f.store.Posts().Create(context.Background(), &post.Post{
		ID:          uuid.New(),
		Title:       "title",
		Text:        "text",
		PubDate:     pubDate,
		AuthorID:    authorID,
		CategoryID:  categoryID,
		IsPublished: published,
		CreatedAt:   f.now,
	})
	require.NoError(t, err)
	return *created
}

func (f *fixture) addComment(t *testing.T, postID, authorID uuid.UUID, createdAt time.Time) comment.Comment {
	t.Helper()

	created, err := f.store.Comments().Create(context.Background(), &comment.Comment{
		ID:        uuid.New(),
		Text:      "comment text",
		PostID:    postID,
		AuthorID:  authorID,
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	return *created
}

func TestIndexShowsOnlyPublicPosts(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	visible := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))
	f.addPost(t, f.alice.ID, &f.goCat.ID, false, f.now.Add(-time.Hour))       // draft
	f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(time.Hour))         // scheduled
	f.addPost(t, f.alice.ID, &f.hiddenCat.ID, true, f.now.Add(-time.Hour))    // hidden category
	f.addPost(t, f.alice.ID, nil, true, f.now.Add(-time.Hour))                // no category

	page, err := f.svc.Index(ctx, pagination.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, visible.ID, page.Items[0].ID)
	require.EqualValues(t, 1, page.TotalItems)

	// Relations come back loaded with the row.
	require.NotNil(t, page.Items[0].Author)
	require.Equal(t, "alice", page.Items[0].Author.Username)
	require.NotNil(t, page.Items[0].Category)
	require.Equal(t, "go", page.Items[0].Category.Slug)
}

func TestIndexOrdersNewestFirst(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	oldest := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-3*time.Hour))
	newest := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))
	middle := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-2*time.Hour))

	page, err := f.svc.Index(ctx, pagination.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	require.Equal(t, newest.ID, page.Items[0].ID)
	require.Equal(t, middle.ID, page.Items[1].ID)
	require.Equal(t, oldest.ID, page.Items[2].ID)
}

func TestIndexCountsComments(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	commented := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))
	silent := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-2*time.Hour))

	f.addComment(t, commented.ID, f.bob.ID, f.now)
	f.addComment(t, commented.ID, f.alice.ID, f.now)

	page, err := f.svc.Index(ctx, pagination.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	counts := map[uuid.UUID]int64{}
	for _, p := range page.Items {
		counts[p.ID] = p.CommentCount
	}
	require.EqualValues(t, 2, counts[commented.ID])
	require.EqualValues(t, 0, counts[silent.ID])
}

func TestIndexPaginatesExhaustively(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 3)
	ctx := context.Background()

	seeded := make(map[uuid.UUID]bool, 7)
	for i := 0; i < 7; i++ {
		p := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Duration(i+1)*time.Minute))
		seeded[p.ID] = true
	}

	first, err := f.svc.Index(ctx, pagination.PageRequest{Page: 1})
	require.NoError(t, err)
	require.Len(t, first.Items, 3)
	require.EqualValues(t, 7, first.TotalItems)
	require.EqualValues(t, 3, first.TotalPages)
	require.True(t, first.HasNext)
	require.False(t, first.HasPrevious)

	seen := map[uuid.UUID]bool{}
	for pageNum := 1; pageNum <= 3; pageNum++ {
		page, err := f.svc.Index(ctx, pagination.PageRequest{Page: pageNum})
		require.NoError(t, err)
		for _, p := range page.Items {
			require.False(t, seen[p.ID], "post served twice across pages")
			seen[p.ID] = true
		}
	}
	require.Equal(t, seeded, seen)

	last, err := f.svc.Index(ctx, pagination.PageRequest{Page: 3})
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	require.False(t, last.HasNext)
	require.True(t, last.HasPrevious)
}

func TestIndexPaginationStableWithTiedTimestamps(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 1)
	ctx := context.Background()

	// All posts share one publication timestamp; only the id tiebreak
	// keeps page windows from overlapping.
	pubDate := f.now.Add(-time.Hour)
	seeded := make(map[uuid.UUID]bool, 6)
	for i := 0; i < 6; i++ {
		p := f.addPost(t, f.alice.ID, &f.goCat.ID, true, pubDate)
		seeded[p.ID] = true
	}

	seen := map[uuid.UUID]bool{}
	for pageNum := 1; pageNum <= 6; pageNum++ {
		page, err := f.svc.Index(ctx, pagination.PageRequest{Page: pageNum})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.False(t, seen[page.Items[0].ID], "post served twice across pages")
		seen[page.Items[0].ID] = true
	}
	require.Equal(t, seeded, seen)
}

func TestCategoryFeed(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	inGo := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))
	f.addPost(t, f.alice.ID, nil, true, f.now.Add(-time.Hour))

	cat, page, err := f.svc.CategoryFeed(ctx, "go", pagination.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, f.goCat.ID, cat.ID)
	require.Len(t, page.Items, 1)
	require.Equal(t, inGo.ID, page.Items[0].ID)
}

func TestCategoryFeedHidesUnpublishedCategory(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	_, _, err := f.svc.CategoryFeed(ctx, "drafts", pagination.PageRequest{})
	require.ErrorIs(t, err, category.ErrCategoryNotFound)

	_, _, err = f.svc.CategoryFeed(ctx, "no-such-slug", pagination.PageRequest{})
	require.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestProfileFeedOwnerSeesEverything(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))
	f.addPost(t, f.alice.ID, &f.goCat.ID, false, f.now.Add(-time.Hour))
	f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(time.Hour))
	f.addPost(t, f.alice.ID, &f.hiddenCat.ID, true, f.now.Add(-time.Hour))
	f.addPost(t, f.bob.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))

	owner, page, err := f.svc.ProfileFeed(ctx, "alice", f.alice.ID, pagination.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, f.alice.ID, owner.ID)
	require.Len(t, page.Items, 4)
}

func TestProfileFeedRestrictsOtherViewers(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	public := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))
	f.addPost(t, f.alice.ID, &f.goCat.ID, false, f.now.Add(-time.Hour))
	f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(time.Hour))
	// Category status does not hide posts on a profile page.
	underHidden := f.addPost(t, f.alice.ID, &f.hiddenCat.ID, true, f.now.Add(-2*time.Hour))

	for _, viewerID := range []uuid.UUID{f.bob.ID, uuid.Nil} {
		_, page, err := f.svc.ProfileFeed(ctx, "alice", viewerID, pagination.PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.Equal(t, public.ID, page.Items[0].ID)
		require.Equal(t, underHidden.ID, page.Items[1].ID)
	}
}

func TestProfileFeedUnknownUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)

	_, _, err := f.svc.ProfileFeed(context.Background(), "nobody", uuid.Nil, pagination.PageRequest{})
	require.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDetailAssemblesPage(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	p := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))
	second := f.addComment(t, p.ID, f.bob.ID, f.now.Add(-time.Minute))
	first := f.addComment(t, p.ID, f.alice.ID, f.now.Add(-2*time.Minute))

	detail, err := f.svc.Detail(ctx, p.ID, uuid.Nil)
	require.NoError(t, err)
	require.Equal(t, p.ID, detail.Post.ID)
	require.Equal(t, comment.Form{}, detail.Form)

	// Comments read oldest first, each with its author attached.
	require.Len(t, detail.Comments, 2)
	require.Equal(t, first.ID, detail.Comments[0].ID)
	require.Equal(t, second.ID, detail.Comments[1].ID)
	require.NotNil(t, detail.Comments[0].Author)
	require.Equal(t, "alice", detail.Comments[0].Author.Username)
}

func TestDetailVisibility(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	draft := f.addPost(t, f.alice.ID, &f.goCat.ID, false, f.now.Add(-time.Hour))

	// Hidden posts read as absent to everyone but their author.
	_, err := f.svc.Detail(ctx, draft.ID, f.bob.ID)
	require.ErrorIs(t, err, post.ErrPostNotFound)

	_, err = f.svc.Detail(ctx, draft.ID, uuid.Nil)
	require.ErrorIs(t, err, post.ErrPostNotFound)

	detail, err := f.svc.Detail(ctx, draft.ID, f.alice.ID)
	require.NoError(t, err)
	require.Equal(t, draft.ID, detail.Post.ID)

	_, err = f.svc.Detail(ctx, uuid.New(), f.alice.ID)
	require.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestCreatePost(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.alice.ID, post.CreatePostRequest{
		Title:      "new post",
		Text:       "body",
		PubDate:    f.now.Add(-time.Hour),
		CategoryID: &f.goCat.ID,
	})
	require.NoError(t, err)
	require.Equal(t, f.alice.ID, created.AuthorID)
	require.True(t, created.IsPublished, "publication flag defaults to on")

	fetched, err := f.store.Posts().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "new post", fetched.Title)
}

func TestCreatePostExplicitDraft(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)

	draft := false
	created, err := f.svc.Create(context.Background(), f.alice.ID, post.CreatePostRequest{
		Title:       "draft",
		Text:        "body",
		PubDate:     f.now,
		IsPublished: &draft,
	})
	require.NoError(t, err)
	require.False(t, created.IsPublished)
}

func TestCreatePostRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)

	_, err := f.svc.Create(context.Background(), f.alice.ID, post.CreatePostRequest{
		Text:    "body without a title",
		PubDate: f.now,
	})
	require.ErrorIs(t, err, post.ErrInvalidInput)
}

func TestUpdatePostAuthorOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	p := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))

	req := post.UpdatePostRequest{
		Title:   "edited",
		Text:    "edited body",
		PubDate: p.PubDate,
	}

	_, err := f.svc.Update(ctx, f.bob.ID, p.ID, req)
	require.ErrorIs(t, err, post.ErrForbidden)

	unchanged, err := f.store.Posts().GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "title", unchanged.Title)

	updated, err := f.svc.Update(ctx, f.alice.ID, p.ID, req)
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Title)
	require.Nil(t, updated.CategoryID, "update rewrites every editable field")
}

func TestUpdatePostUnknownID(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)

	_, err := f.svc.Update(context.Background(), f.alice.ID, uuid.New(), post.UpdatePostRequest{
		Title: "x", Text: "y", PubDate: f.now,
	})
	require.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestDeletePost(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10)
	ctx := context.Background()

	p := f.addPost(t, f.alice.ID, &f.goCat.ID, true, f.now.Add(-time.Hour))
	c := f.addComment(t, p.ID, f.bob.ID, f.now)

	err := f.svc.Delete(ctx, f.bob.ID, p.ID)
	require.ErrorIs(t, err, post.ErrForbidden)

	_, err = f.store.Posts().GetByID(ctx, p.ID)
	require.NoError(t, err, "post survives a forbidden delete")

	require.NoError(t, f.svc.Delete(ctx, f.alice.ID, p.ID))

	_, err = f.store.Posts().GetByID(ctx, p.ID)
	require.ErrorIs(t, err, post.ErrPostNotFound)

	// Comments go with their post.
	_, err = f.store.Comments().GetForPost(ctx, p.ID, c.ID)
	require.ErrorIs(t, err, comment.ErrCommentNotFound)
}
