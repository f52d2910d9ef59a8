package redirect

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes QR redirect admin endpoints and the public resolver.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/qr-redirects", func(r chi.Router) {
		r.Get("/", h.listRedirects)
		r.Post("/", h.createRedirect)
		r.Get("/{id}", h.getRedirect)
		r.Put("/{id}", h.updateRedirect)
		r.Delete("/{id}", h.deleteRedirect)
	})
	// Public resolver hit by the printed codes.
	r.Get("/r/{slug}", h.resolve)
}

func (h *Handler) listRedirects(w http.ResponseWriter, r *http.Request) {
	redirects, err := h.service.ListRedirects(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if redirects == nil {
		redirects = []*Redirect{}
	}
	respond(w, http.StatusOK, redirects)
}

func (h *Handler) createRedirect(w http.ResponseWriter, r *http.Request) {
	var req CreateRedirectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rd, err := h.service.CreateRedirect(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusCreated, rd)
}

func (h *Handler) getRedirect(w http.ResponseWriter, r *http.Request) {
	rd, err := h.service.GetRedirect(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "redirect not found", http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, rd)
}

func (h *Handler) updateRedirect(w http.ResponseWriter, r *http.Request) {
	var req CreateRedirectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rd, err := h.service.UpdateRedirect(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, rd)
}

func (h *Handler) deleteRedirect(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRedirect(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	target, err := h.service.Resolve(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
