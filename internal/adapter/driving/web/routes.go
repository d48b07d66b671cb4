package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all page routes on the provided mux.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	staticContent, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticContent)))

	mux.HandleFunc("GET /{$}", h.List)
	mux.HandleFunc("POST /{$}", h.Create)
	mux.HandleFunc("GET /edit/{id}", h.Edit)
	mux.HandleFunc("POST /update", h.Update)
	mux.HandleFunc("GET /delete/confirm/{id}", h.DeleteConfirm)
	mux.HandleFunc("POST /delete", h.Delete)
}
