// Package httpapi implements the read-only JSON API driving adapter.
package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/corkboard-dev/corkboard/internal/application"
)

// Handler serves the JSON API.
type Handler struct {
	articles *application.ArticleService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the required dependencies.
func NewHandler(articles *application.ArticleService, logger *slog.Logger) *Handler {
	return &Handler{
		articles: articles,
		logger:   logger,
	}
}

// RegisterAPIRoutes registers the JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/articles", h.ListArticles)
	mux.HandleFunc("GET /api/v1/articles/{id}", h.GetArticle)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// ListArticles returns articles ordered by last update. Without a page query
// parameter the full set is returned; with one, a single fixed-size page.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	page := -1
	if v := r.URL.Query().Get("page"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = parsed
	}

	listing, err := h.articles.List(r.Context(), page)
	if err != nil {
		h.logger.Error("failed to list articles", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toArticleListResponse(listing))
}

// GetArticle returns a single article by id.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	outcome, err := h.articles.GetForEdit(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get article", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if outcome.Kind == application.OutcomeNotFound {
		writeError(w, http.StatusNotFound, outcome.Message)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(*outcome.Article))
}

// Health reports liveness. Used by the healthcheck binary.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
