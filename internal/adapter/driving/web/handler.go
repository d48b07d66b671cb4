// Package web implements the HTML driving adapter: server-rendered pages
// backed by embedded templates, with flash messages carried across redirects.
package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corkboard-dev/corkboard/internal/application"
)

// Handler serves the bulletin-board pages and form submissions.
type Handler struct {
	articles *application.ArticleService
	pages    *pageTemplates
	logger   *slog.Logger
}

// NewHandler creates a Handler over the given article service. Templates are
// parsed eagerly so a broken template fails startup, not a request.
func NewHandler(articles *application.ArticleService, logger *slog.Logger) (*Handler, error) {
	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Handler{
		articles: articles,
		pages:    pages,
		logger:   logger,
	}, nil
}

// List renders the article listing with the post form. Any flash from a
// preceding redirect is consumed here and shown once.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			page = parsed
		}
	}

	flash := popFlash(w, r)

	listing, err := h.articles.List(r.Context(), page)
	if err != nil {
		h.serverError(w, "list articles", err)
		return
	}

	views := make([]ArticleView, 0, len(listing.Articles))
	for _, a := range listing.Articles {
		views = append(views, toArticleView(a))
	}

	data := indexPageData{
		Title:       "Articles",
		Flash:       flash,
		CSRFToken:   csrfToken(w, r),
		Articles:    views,
		Page:        listing.Page,
		DisplayPage: listing.Page + 1,
		TotalPages:  listing.TotalPages,
		PrevPage:    listing.Page - 1,
		NextPage:    listing.Page + 1,
		HasPrev:     listing.HasPrev(),
		HasNext:     listing.HasNext(),
	}
	if flash != nil {
		data.Errors = flash.Errors
		if flash.Form != nil {
			data.Form = *flash.Form
		}
	}

	h.render(w, h.pages.index, data)
}

// Create handles the post form submission.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	outcome, err := h.articles.Create(r.Context(), formFromRequest(r))
	if err != nil {
		h.serverError(w, "create article", err)
		return
	}

	h.redirect(w, r, outcome)
}

// Edit renders the edit form for an existing article. After a rejected
// update, the flash carries the submitted values back so the form re-renders
// pre-filled instead of showing the stored row.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	flash := popFlash(w, r)

	outcome, err := h.articles.GetForEdit(r.Context(), id)
	if err != nil {
		h.serverError(w, "load article for edit", err)
		return
	}
	if outcome.Kind == application.OutcomeNotFound {
		h.redirect(w, r, outcome)
		return
	}

	article := outcome.Article
	form := FormValues{
		ID:       strconv.Itoa(article.ID),
		Name:     article.Name,
		Title:    article.Title,
		Contents: article.Contents,
	}

	data := editPageData{
		Title:     "Edit Article",
		Flash:     flash,
		Form:      form,
		CSRFToken: csrfToken(w, r),
	}
	if flash != nil {
		data.Errors = flash.Errors
		if flash.Form != nil {
			data.Form = *flash.Form
		}
	}

	h.render(w, h.pages.edit, data)
}

// Update handles the edit form submission.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	outcome, err := h.articles.Update(r.Context(), formFromRequest(r))
	if err != nil {
		h.serverError(w, "update article", err)
		return
	}

	h.redirect(w, r, outcome)
}

// DeleteConfirm renders the delete-confirmation page for an existing article.
func (h *Handler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	flash := popFlash(w, r)

	outcome, err := h.articles.GetForDeleteConfirm(r.Context(), id)
	if err != nil {
		h.serverError(w, "load article for delete", err)
		return
	}
	if outcome.Kind == application.OutcomeNotFound {
		h.redirect(w, r, outcome)
		return
	}

	data := deleteConfirmPageData{
		Title:     "Delete Article",
		Flash:     flash,
		Article:   toArticleView(*outcome.Article),
		CSRFToken: csrfToken(w, r),
	}
	if flash != nil {
		data.Errors = flash.Errors
	}

	h.render(w, h.pages.deleteConfirm, data)
}

// Delete handles the delete-confirmation form submission.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	outcome, err := h.articles.Delete(r.Context(), formFromRequest(r))
	if err != nil {
		h.serverError(w, "delete article", err)
		return
	}

	h.redirect(w, r, outcome)
}

// pathID parses the {id} path segment. A non-numeric or non-positive id is
// treated the same as a missing article: back to the listing with the
// not-found message.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		setFlash(w, Flash{Message: application.MessageNotFound, AlertClass: alertError})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return 0, false
	}
	return id, true
}

// redirect translates a service outcome into a flash cookie plus a redirect.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, outcome application.Outcome) {
	switch outcome.Kind {
	case application.OutcomeValidationFailed:
		submitted := outcome.Submitted
		setFlash(w, Flash{
			Errors: outcome.FieldErrors,
			Form: &FormValues{
				ID:         submitted.ID,
				Name:       submitted.Name,
				Title:      submitted.Title,
				Contents:   submitted.Contents,
				ArticleKey: submitted.ArticleKey,
			},
		})
	case application.OutcomeNotFound, application.OutcomeKeyMismatch:
		setFlash(w, Flash{Message: outcome.Message, AlertClass: alertError})
	default:
		setFlash(w, Flash{Message: outcome.Message, AlertClass: alertSuccess})
	}

	http.Redirect(w, r, outcome.RedirectTo, http.StatusSeeOther)
}

// render executes the page into a buffer first so a template failure can
// still produce a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) serverError(w http.ResponseWriter, action string, err error) {
	h.logger.Error("request failed", "action", action, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func formFromRequest(r *http.Request) application.ArticleForm {
	return application.ArticleForm{
		ID:         r.FormValue(application.FieldID),
		Name:       r.FormValue(application.FieldName),
		Title:      r.FormValue(application.FieldTitle),
		Contents:   r.FormValue(application.FieldContents),
		ArticleKey: r.FormValue(application.FieldArticleKey),
	}
}
