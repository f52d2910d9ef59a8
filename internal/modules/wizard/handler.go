package wizard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/minhtran-dev/shop-admin-backend/internal/modules/template"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/variant"
)

// Handler exposes the wizard flow over HTTP. Each route maps to one UI
// action of the multi-step dialog.
type Handler struct {
	manager  *Manager
	registry *template.Registry
	creator  VariantCreator
	log      *zap.Logger
}

func NewHandler(manager *Manager, registry *template.Registry, creator VariantCreator, log *zap.Logger) *Handler {
	return &Handler{manager: manager, registry: registry, creator: creator, log: log}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/products/{productID}/variant-wizard", h.openSession)
	r.Route("/api/v1/variant-wizard/{sessionID}", func(r chi.Router) {
		r.Get("/", h.getState)
		r.Delete("/", h.closeSession)
		r.Post("/select-template", h.selectTemplate)
		r.Post("/custom-template", h.useCustomTemplate)
		r.Put("/name", h.setName)
		r.Post("/values", h.addValue)
		r.Put("/values/{index}", h.updateValue)
		r.Delete("/values/{index}", h.removeValue)
		r.Post("/bulk-pricing", h.applyBulkPricing)
		r.Post("/next", h.next)
		r.Post("/back", h.back)
		r.Post("/submit", h.submit)
	})
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	s := h.manager.Open(productID)
	respond(w, http.StatusCreated, s.State())
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) *Session {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return nil
	}
	s, ok := h.manager.Get(id)
	if !ok {
		http.Error(w, "wizard session not found", http.StatusNotFound)
		return nil
	}
	return s
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	if s := h.session(w, r); s != nil {
		respond(w, http.StatusOK, s.State())
	}
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	h.manager.Close(s.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectTemplate(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var payload struct {
		TemplateID string `json:"template_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t, ok := h.registry.ByID(payload.TemplateID)
	if !ok {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}
	s.SelectTemplate(t)
	respond(w, http.StatusOK, s.State())
}

func (h *Handler) useCustomTemplate(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	s.UseCustomTemplate()
	respond(w, http.StatusOK, s.State())
}

func (h *Handler) setName(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var payload struct {
		VariantName string `json:"variant_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.SetVariantName(payload.VariantName)
	respond(w, http.StatusOK, s.State())
}

func (h *Handler) addValue(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	s.AddValue()
	respond(w, http.StatusOK, s.State())
}

// updateValuePayload carries the edited fields of one row. A label edit
// always regenerates the row's value code; a value edit in the same request
// is applied afterwards and therefore sticks until the next label edit.
type updateValuePayload struct {
	Label           *string `json:"label"`
	Value           *string `json:"value"`
	PriceAdjustment *string `json:"price_adjustment"`
	StockQuantity   *string `json:"stock_quantity"`
}

func (h *Handler) updateValue(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid value index", http.StatusBadRequest)
		return
	}
	var payload updateValuePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if payload.Label != nil {
		err = s.RenameValue(index, *payload.Label)
	}
	if err == nil && payload.Value != nil {
		err = s.SetValueCode(index, *payload.Value)
	}
	if err == nil && payload.PriceAdjustment != nil {
		err = s.SetValuePrice(index, *payload.PriceAdjustment)
	}
	if err == nil && payload.StockQuantity != nil {
		err = s.SetValueStock(index, *payload.StockQuantity)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, s.State())
}

func (h *Handler) removeValue(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid value index", http.StatusBadRequest)
		return
	}
	if err := s.RemoveValue(index); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, s.State())
}

func (h *Handler) applyBulkPricing(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var payload struct {
		Strategy string          `json:"strategy"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	strategy, err := variant.ParseStrategy(payload.Strategy, payload.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.ApplyBulkPricing(strategy)
	respond(w, http.StatusOK, s.State())
}

func (h *Handler) next(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	if err := s.Next(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	respond(w, http.StatusOK, s.State())
}

func (h *Handler) back(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	s.Back()
	respond(w, http.StatusOK, s.State())
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	result, err := s.Submit(r.Context(), h.creator)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if !result.Succeeded {
		h.log.Warn("wizard submission aborted",
			zap.String("session_id", s.ID.String()),
			zap.String("product_id", s.ProductID.String()),
			zap.Int("created", result.CreatedCount),
			zap.Int("failed_at", result.FailedAt),
			zap.String("error", result.Message))
		respond(w, http.StatusBadGateway, result)
		return
	}
	h.log.Info("wizard submission complete",
		zap.String("session_id", s.ID.String()),
		zap.String("product_id", s.ProductID.String()),
		zap.Int("created", result.CreatedCount))
	h.manager.Close(s.ID)
	respond(w, http.StatusOK, result)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
