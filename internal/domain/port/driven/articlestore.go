// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"
	"errors"

	"github.com/corkboard-dev/corkboard/internal/domain/model"
)

// ErrArticleNotFound indicates the requested article does not exist.
var ErrArticleNotFound = errors.New("article not found")

// ArticleStore defines the driven port for article persistence.
// GetByID, Update and Delete return ErrArticleNotFound when no article has
// the given id. All listing methods order by updated_at descending with ties
// broken by id ascending.
type ArticleStore interface {
	// Create inserts a new article and returns it with the store-assigned id.
	Create(ctx context.Context, article model.Article) (model.Article, error)
	GetByID(ctx context.Context, id int) (*model.Article, error)
	Exists(ctx context.Context, id int) (bool, error)
	ListAll(ctx context.Context) ([]model.Article, error)
	// ListPage returns the zero-based page of the given size, plus the total
	// number of articles in the store.
	ListPage(ctx context.Context, page, size int) ([]model.Article, int, error)
	// Update replaces name, title, contents and updated_at for the article's id.
	Update(ctx context.Context, article model.Article) error
	Delete(ctx context.Context, id int) error
}
