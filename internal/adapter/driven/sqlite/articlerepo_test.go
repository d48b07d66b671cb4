package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corkboard-dev/corkboard/internal/domain/model"
	"github.com/corkboard-dev/corkboard/internal/domain/port/driven"
)

func seedArticle(t *testing.T, repo *ArticleRepo, title string, updatedAt time.Time) model.Article {
	t.Helper()

	created, err := repo.Create(context.Background(), model.Article{
		Name:         "alice",
		Title:        title,
		Contents:     "some contents",
		ArticleKey:   "key",
		RegisteredAt: updatedAt,
		UpdatedAt:    updatedAt,
	})
	require.NoError(t, err)
	return created
}

func TestArticleRepo_CreateAssignsIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := seedArticle(t, repo, "first", now)
	second := seedArticle(t, repo, "second", now)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestArticleRepo_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	created := seedArticle(t, repo, "hello", now)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, "some contents", got.Contents)
	assert.Equal(t, "key", got.ArticleKey)
	assert.True(t, got.RegisteredAt.Equal(now))
	assert.True(t, got.UpdatedAt.Equal(now))
}

func TestArticleRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, driven.ErrArticleNotFound)
}

func TestArticleRepo_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	created := seedArticle(t, repo, "exists", time.Now().UTC())

	exists, err := repo.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestArticleRepo_ListAll_Order(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := seedArticle(t, repo, "older", base)
	tiedA := seedArticle(t, repo, "tied-a", base.Add(time.Hour))
	tiedB := seedArticle(t, repo, "tied-b", base.Add(time.Hour))

	articles, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 3)

	// Most recently updated first; ties broken by id ascending.
	assert.Equal(t, tiedA.ID, articles[0].ID)
	assert.Equal(t, tiedB.ID, articles[1].ID)
	assert.Equal(t, older.ID, articles[2].ID)
}

func TestArticleRepo_ListPage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedArticle(t, repo, "article", base.Add(time.Duration(i)*time.Minute))
	}

	first, total, err := repo.ListPage(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, first, 2)
	assert.Equal(t, 5, first[0].ID)
	assert.Equal(t, 4, first[1].ID)

	last, total, err := repo.ListPage(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, last, 1)
	assert.Equal(t, 1, last[0].ID)

	empty, total, err := repo.ListPage(ctx, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, empty)
}

func TestArticleRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	registered := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	created := seedArticle(t, repo, "before", registered)

	updated := created
	updated.Name = "bob"
	updated.Title = "after"
	updated.Contents = "new contents"
	updated.UpdatedAt = registered.Add(time.Hour)

	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "bob", got.Name)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "new contents", got.Contents)
	assert.True(t, got.UpdatedAt.Equal(registered.Add(time.Hour)))

	// Key and registration time are never touched by Update.
	assert.Equal(t, "key", got.ArticleKey)
	assert.True(t, got.RegisteredAt.Equal(registered))
}

func TestArticleRepo_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	err := repo.Update(context.Background(), model.Article{ID: 999, UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, driven.ErrArticleNotFound)
}

func TestArticleRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	created := seedArticle(t, repo, "doomed", time.Now().UTC())

	require.NoError(t, repo.Delete(ctx, created.ID))

	exists, err := repo.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestArticleRepo_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, driven.ErrArticleNotFound)
}
