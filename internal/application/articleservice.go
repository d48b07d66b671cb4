// Package application contains the article mutation service. All expected
// outcomes (validation failure, missing article, key mismatch) are values;
// a non-nil error means the store itself failed and the request should abort.
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corkboard-dev/corkboard/internal/domain/model"
	"github.com/corkboard-dev/corkboard/internal/domain/port/driven"
)

// OutcomeKind classifies the result of a service operation.
type OutcomeKind string

const (
	OutcomeCreated          OutcomeKind = "created"
	OutcomeUpdated          OutcomeKind = "updated"
	OutcomeDeleted          OutcomeKind = "deleted"
	OutcomeFound            OutcomeKind = "found"
	OutcomeValidationFailed OutcomeKind = "validation_failed"
	OutcomeNotFound         OutcomeKind = "not_found"
	OutcomeKeyMismatch      OutcomeKind = "key_mismatch"
)

// User-facing messages attached to outcomes.
const (
	MessageCreated     = "article posted successfully"
	MessageUpdated     = "article updated successfully"
	MessageDeleted     = "article deleted successfully"
	MessageNotFound    = "target article not found"
	MessageKeyMismatch = "article key does not match"
)

// Outcome describes the result of a service operation: what happened, where
// the caller should send the user next, and what to tell them.
type Outcome struct {
	Kind       OutcomeKind
	Message    string
	RedirectTo string

	// FieldErrors and Submitted are set when Kind is OutcomeValidationFailed
	// so the caller can re-render the form pre-filled.
	FieldErrors map[string]string
	Submitted   ArticleForm

	// Article is set by GetForEdit and GetForDeleteConfirm on success.
	Article *model.Article
}

// Failed reports whether the outcome is one of the error outcomes.
func (o Outcome) Failed() bool {
	switch o.Kind {
	case OutcomeValidationFailed, OutcomeNotFound, OutcomeKeyMismatch:
		return true
	}
	return false
}

// ArticlePage is one page of the listing plus pager metadata.
type ArticlePage struct {
	Articles   []model.Article
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p ArticlePage) HasPrev() bool { return p.Page > 0 }

// HasNext reports whether a further page exists.
func (p ArticlePage) HasNext() bool { return p.Page < p.TotalPages-1 }

// ArticleService decides whether submitted requests may create, update or
// delete articles, enforcing field validation and article-key matching.
// Checks run in a fixed order: validation, existence, key match, apply.
// Failure paths never write to the store.
type ArticleService struct {
	store    driven.ArticleStore
	pageSize int
	now      func() time.Time
}

// NewArticleService creates an ArticleService over the given store.
// pageSize is the fixed listing page size.
func NewArticleService(store driven.ArticleStore, pageSize int) *ArticleService {
	return &ArticleService{
		store:    store,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// Create validates the submitted form and inserts a new article. The store
// assigns the id; any submitted id is ignored. RegisteredAt and UpdatedAt are
// both set to the current time.
func (s *ArticleService) Create(ctx context.Context, form ArticleForm) (Outcome, error) {
	if errs := ValidateForm(form, false); errs != nil {
		return Outcome{
			Kind:        OutcomeValidationFailed,
			RedirectTo:  "/",
			FieldErrors: errs,
			Submitted:   form,
		}, nil
	}

	now := s.now().UTC()
	_, err := s.store.Create(ctx, model.Article{
		Name:         form.Name,
		Title:        form.Title,
		Contents:     form.Contents,
		ArticleKey:   form.ArticleKey,
		RegisteredAt: now,
		UpdatedAt:    now,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("create article: %w", err)
	}

	return Outcome{Kind: OutcomeCreated, Message: MessageCreated, RedirectTo: "/"}, nil
}

// Update replaces name, title and contents of an existing article after the
// submitted key matches the stored one. Id, article key and registered-at are
// never altered; updated-at is refreshed.
func (s *ArticleService) Update(ctx context.Context, form ArticleForm) (Outcome, error) {
	if errs := ValidateForm(form, true); errs != nil {
		return Outcome{
			Kind:        OutcomeValidationFailed,
			RedirectTo:  editPath(form.ArticleIDOrZero()),
			FieldErrors: errs,
			Submitted:   form,
		}, nil
	}

	id, _ := form.ArticleID()

	stored, err := s.store.GetByID(ctx, id)
	if errors.Is(err, driven.ErrArticleNotFound) {
		return Outcome{Kind: OutcomeNotFound, Message: MessageNotFound, RedirectTo: "/"}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("load article %d: %w", id, err)
	}

	if form.ArticleKey != stored.ArticleKey {
		return Outcome{Kind: OutcomeKeyMismatch, Message: MessageKeyMismatch, RedirectTo: editPath(id)}, nil
	}

	updated := *stored
	updated.Name = form.Name
	updated.Title = form.Title
	updated.Contents = form.Contents
	updated.UpdatedAt = s.now().UTC()

	if err := s.store.Update(ctx, updated); err != nil {
		return Outcome{}, fmt.Errorf("update article %d: %w", id, err)
	}

	return Outcome{Kind: OutcomeUpdated, Message: MessageUpdated, RedirectTo: "/"}, nil
}

// Delete removes an existing article after the submitted key matches the
// stored one. Delete validates the full field set like Update; on validation
// failure the user returns to the confirmation view for the submitted id.
func (s *ArticleService) Delete(ctx context.Context, form ArticleForm) (Outcome, error) {
	if errs := ValidateForm(form, true); errs != nil {
		return Outcome{
			Kind:        OutcomeValidationFailed,
			RedirectTo:  deleteConfirmPath(form.ArticleIDOrZero()),
			FieldErrors: errs,
			Submitted:   form,
		}, nil
	}

	id, _ := form.ArticleID()

	stored, err := s.store.GetByID(ctx, id)
	if errors.Is(err, driven.ErrArticleNotFound) {
		return Outcome{Kind: OutcomeNotFound, Message: MessageNotFound, RedirectTo: "/"}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("load article %d: %w", id, err)
	}

	if form.ArticleKey != stored.ArticleKey {
		return Outcome{Kind: OutcomeKeyMismatch, Message: MessageKeyMismatch, RedirectTo: deleteConfirmPath(id)}, nil
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return Outcome{}, fmt.Errorf("delete article %d: %w", id, err)
	}

	return Outcome{Kind: OutcomeDeleted, Message: MessageDeleted, RedirectTo: "/"}, nil
}

// GetForEdit looks up an article for the edit form. No mutation occurs.
func (s *ArticleService) GetForEdit(ctx context.Context, id int) (Outcome, error) {
	return s.lookup(ctx, id)
}

// GetForDeleteConfirm looks up an article for the delete-confirmation view.
// No mutation occurs.
func (s *ArticleService) GetForDeleteConfirm(ctx context.Context, id int) (Outcome, error) {
	return s.lookup(ctx, id)
}

func (s *ArticleService) lookup(ctx context.Context, id int) (Outcome, error) {
	article, err := s.store.GetByID(ctx, id)
	if errors.Is(err, driven.ErrArticleNotFound) {
		return Outcome{Kind: OutcomeNotFound, Message: MessageNotFound, RedirectTo: "/"}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("load article %d: %w", id, err)
	}

	return Outcome{Kind: OutcomeFound, Article: article}, nil
}

// List returns articles ordered by updated-at descending, ties by id
// ascending. A non-negative page selects one fixed-size page; a negative page
// returns the full set.
func (s *ArticleService) List(ctx context.Context, page int) (ArticlePage, error) {
	if page < 0 {
		articles, err := s.store.ListAll(ctx)
		if err != nil {
			return ArticlePage{}, fmt.Errorf("list articles: %w", err)
		}
		return ArticlePage{
			Articles:   articles,
			PageSize:   len(articles),
			TotalCount: len(articles),
			TotalPages: 1,
		}, nil
	}

	articles, total, err := s.store.ListPage(ctx, page, s.pageSize)
	if err != nil {
		return ArticlePage{}, fmt.Errorf("list articles page %d: %w", page, err)
	}

	totalPages := (total + s.pageSize - 1) / s.pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return ArticlePage{
		Articles:   articles,
		Page:       page,
		PageSize:   s.pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

func editPath(id int) string {
	return fmt.Sprintf("/edit/%d", id)
}

func deleteConfirmPath(id int) string {
	return fmt.Sprintf("/delete/confirm/%d", id)
}
