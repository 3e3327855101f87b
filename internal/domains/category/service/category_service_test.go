package service

import (
	"context"
	"testing"

	"blogicum-backend/internal/domains/category"
	"blogicum-backend/internal/storage/inmemory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGetPublishedBySlug(t *testing.T) {
	t.Parallel()

	store := inmemory.NewStore()
	store.AddCategory(category.Category{
		ID: uuid.New(), Title: "Go", Slug: "go", IsPublished: true,
	})
	store.AddCategory(category.Category{
		ID: uuid.New(), Title: "Drafts", Slug: "drafts", IsPublished: false,
	})

	svc := NewCategoryService(store.Categories())
	ctx := context.Background()

	tests := []struct {
		name    string
		slug    string
		wantErr error
	}{
		{name: "published category resolves", slug: "go"},
		{name: "unpublished category reads as absent", slug: "drafts", wantErr: category.ErrCategoryNotFound},
		{name: "unknown slug", slug: "missing", wantErr: category.ErrCategoryNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.GetPublishedBySlug(ctx, tt.slug)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.slug, got.Slug)
		})
	}
}
