package template

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the template catalog over HTTP.
type Handler struct{ registry *Registry }

func NewHandler(registry *Registry) *Handler { return &Handler{registry: registry} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/variant-templates", func(r chi.Router) {
		r.Get("/", h.listTemplates)
		r.Get("/{id}", h.getTemplate)
	})
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("category"); raw != "" {
		category := Category(raw)
		if !category.Valid() {
			http.Error(w, "unknown category: "+raw, http.StatusBadRequest)
			return
		}
		respond(w, http.StatusOK, h.registry.ByCategory(category))
		return
	}
	respond(w, http.StatusOK, h.registry.All())
}

func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, ok := h.registry.ByID(id)
	if !ok {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, t)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
