package variant

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handler exposes variant CRUD endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/products/{productID}/variants", func(r chi.Router) {
		r.Get("/", h.listVariants)
		r.Get("/grouped", h.listGrouped)
		r.Post("/", h.createVariant)
	})
	r.Route("/api/v1/variants/{id}", func(r chi.Router) {
		r.Get("/", h.getVariant)
		r.Put("/", h.updateVariant)
		r.Patch("/active", h.setActive)
		r.Delete("/", h.deleteVariant)
	})
}

// createVariantPayload keeps is_active optional: records created by hand
// through the API default to active, matching wizard-created ones.
type createVariantPayload struct {
	VariantName     string          `json:"variant_name"`
	VariantValue    string          `json:"variant_value"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	StockQuantity   int             `json:"stock_quantity"`
	IsActive        *bool           `json:"is_active"`
}

func (h *Handler) createVariant(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	var payload createVariantPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}
	v, err := h.service.CreateVariant(r.Context(), CreateVariantRequest{
		ProductID:       productID,
		VariantName:     payload.VariantName,
		VariantValue:    payload.VariantValue,
		PriceAdjustment: payload.PriceAdjustment,
		StockQuantity:   payload.StockQuantity,
		IsActive:        active,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusCreated, v)
}

func (h *Handler) listVariants(w http.ResponseWriter, r *http.Request) {
	variants, err := h.service.ListProductVariants(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if variants == nil {
		variants = []*Variant{}
	}
	respond(w, http.StatusOK, variants)
}

func (h *Handler) listGrouped(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListGrouped(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if groups == nil {
		groups = []VariantGroup{}
	}
	respond(w, http.StatusOK, groups)
}

func (h *Handler) getVariant(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.GetVariant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "variant not found", http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, v)
}

func (h *Handler) updateVariant(w http.ResponseWriter, r *http.Request) {
	var req UpdateVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	v, err := h.service.UpdateVariant(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, v)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	v, err := h.service.SetActive(r.Context(), chi.URLParam(r, "id"), payload.IsActive)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, v)
}

func (h *Handler) deleteVariant(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteVariant(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
