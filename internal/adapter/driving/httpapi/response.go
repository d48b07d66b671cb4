package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/corkboard-dev/corkboard/internal/application"
	"github.com/corkboard-dev/corkboard/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it with the given status code.
// If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// ArticleResponse is the JSON representation of an article.
// The article key is a credential and is never serialized.
type ArticleResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Contents     string `json:"contents"`
	RegisteredAt string `json:"registered_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ArticleListResponse is one page of articles plus pager metadata.
type ArticleListResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalCount int               `json:"total_count"`
	TotalPages int               `json:"total_pages"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func toArticleResponse(a model.Article) ArticleResponse {
	return ArticleResponse{
		ID:           a.ID,
		Name:         a.Name,
		Title:        a.Title,
		Contents:     a.Contents,
		RegisteredAt: a.RegisteredAt.UTC().Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toArticleListResponse(page application.ArticlePage) ArticleListResponse {
	articles := make([]ArticleResponse, 0, len(page.Articles))
	for _, a := range page.Articles {
		articles = append(articles, toArticleResponse(a))
	}

	return ArticleListResponse{
		Articles:   articles,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}
}
