package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/corkboard-dev/corkboard/internal/domain/model"
	"github.com/corkboard-dev/corkboard/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ArticleStore = (*ArticleRepo)(nil)

// ArticleRepo is the SQLite implementation of the ArticleStore port interface.
// Timestamps are stored as UTC RFC3339 text.
type ArticleRepo struct {
	db *DB
}

// NewArticleRepo creates a new ArticleRepo backed by the given DB.
func NewArticleRepo(db *DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, name, title, contents, article_key, registered_at, updated_at`

// Create inserts a new article and returns it with the assigned rowid.
func (r *ArticleRepo) Create(ctx context.Context, article model.Article) (model.Article, error) {
	const query = `INSERT INTO articles (name, title, contents, article_key, registered_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.Writer.ExecContext(ctx, query,
		article.Name,
		article.Title,
		article.Contents,
		article.ArticleKey,
		formatTime(article.RegisteredAt),
		formatTime(article.UpdatedAt),
	)
	if err != nil {
		return model.Article{}, fmt.Errorf("insert article: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Article{}, fmt.Errorf("article insert id: %w", err)
	}

	article.ID = int(id)
	return article, nil
}

// GetByID returns the article with the given id, or driven.ErrArticleNotFound.
func (r *ArticleRepo) GetByID(ctx context.Context, id int) (*model.Article, error) {
	const query = `SELECT ` + articleColumns + ` FROM articles WHERE id = ?`

	article, err := scanArticle(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, driven.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}

	return article, nil
}

// Exists reports whether an article with the given id exists.
func (r *ArticleRepo) Exists(ctx context.Context, id int) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE id = ?)`

	var exists bool
	if err := r.db.Reader.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check article %d: %w", id, err)
	}

	return exists, nil
}

// ListAll returns every article, most recently updated first, ties by id ascending.
func (r *ArticleRepo) ListAll(ctx context.Context) ([]model.Article, error) {
	const query = `SELECT ` + articleColumns + ` FROM articles ORDER BY updated_at DESC, id ASC`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

// ListPage returns the zero-based page of the given size in listing order,
// plus the total article count for pager metadata.
func (r *ArticleRepo) ListPage(ctx context.Context, page, size int) ([]model.Article, int, error) {
	const countQuery = `SELECT COUNT(*) FROM articles`

	var total int
	if err := r.db.Reader.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	const query = `SELECT ` + articleColumns + ` FROM articles
		ORDER BY updated_at DESC, id ASC LIMIT ? OFFSET ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles page %d: %w", page, err)
	}
	defer rows.Close()

	articles, err := collectArticles(rows)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// Update replaces name, title, contents and updated_at for the article's id.
// The article_key and registered_at columns are never touched.
func (r *ArticleRepo) Update(ctx context.Context, article model.Article) error {
	const query = `UPDATE articles SET name = ?, title = ?, contents = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query,
		article.Name,
		article.Title,
		article.Contents,
		formatTime(article.UpdatedAt),
		article.ID,
	)
	if err != nil {
		return fmt.Errorf("update article %d: %w", article.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return driven.ErrArticleNotFound
	}

	return nil
}

// Delete removes the article with the given id permanently.
func (r *ArticleRepo) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM articles WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete article %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return driven.ErrArticleNotFound
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanArticle.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (*model.Article, error) {
	var article model.Article
	var registeredAt, updatedAt string

	err := s.Scan(
		&article.ID,
		&article.Name,
		&article.Title,
		&article.Contents,
		&article.ArticleKey,
		&registeredAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	article.RegisteredAt, err = parseTime(registeredAt)
	if err != nil {
		return nil, fmt.Errorf("parse registered_at: %w", err)
	}

	article.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &article, nil
}

func collectArticles(rows *sql.Rows) ([]model.Article, error) {
	var articles []model.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
