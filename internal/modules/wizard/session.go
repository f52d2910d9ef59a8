package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/minhtran-dev/shop-admin-backend/internal/modules/template"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/variant"
	"github.com/minhtran-dev/shop-admin-backend/internal/slug"
)

// Wizard steps, in flow order.
const (
	StepSelectTemplate  = 1
	StepCustomizeValues = 2
	StepPricingStock    = 3
	StepConfirm         = 4
)

// Session is the in-memory state of one variant-wizard run. It is created
// fresh every time the wizard opens and discarded on close or successful
// submission; nothing here is ever persisted.
//
// A session belongs to a single admin tab. The mutex only protects against
// overlapping HTTP requests on the same session; there is no multi-writer
// flow by design.
type Session struct {
	mu sync.Mutex

	ID               uuid.UUID
	ProductID        uuid.UUID
	CurrentStep      int
	SelectedTemplate *template.VariantTemplate
	CustomMode       bool
	VariantName      string
	Values           []template.ValueDraft

	submitting bool
	closed     bool
}

// NewSession opens a fresh wizard at step 1 for the given product.
func NewSession(productID uuid.UUID) *Session {
	return &Session{
		ID:          uuid.New(),
		ProductID:   productID,
		CurrentStep: StepSelectTemplate,
	}
}

// SelectTemplate seeds the session from a catalog template: the group name
// comes from the template name and the default values are deep-copied into
// editable drafts. Any previous custom-mode state is discarded.
func (s *Session) SelectTemplate(t template.VariantTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SelectedTemplate = &t
	s.CustomMode = false
	s.VariantName = t.Name
	s.Values = make([]template.ValueDraft, len(t.DefaultValues))
	for i, v := range t.DefaultValues {
		s.Values[i] = template.ValueDraft{
			Label:           v.Label,
			Value:           v.Value,
			PriceAdjustment: v.PriceAdjustment.String(),
			StockQuantity:   strconv.Itoa(v.StockQuantity),
			Order:           v.Order,
		}
	}
}

// UseCustomTemplate switches the session to custom mode, dropping any
// selected template and seeding a single blank value row.
func (s *Session) UseCustomTemplate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SelectedTemplate = nil
	s.CustomMode = true
	s.VariantName = ""
	s.Values = []template.ValueDraft{{Order: 1}}
}

// SetVariantName sets the group name being defined this session.
func (s *Session) SetVariantName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.VariantName = name
}

// RenameValue updates a row's label and always re-derives its value code
// from the new label. A code the user typed by hand is overwritten here:
// the last writer on the label wins over the code.
func (s *Session) RenameValue(i int, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Values[i].Label = label
	s.Values[i].Value = slug.Make(label)
	return nil
}

// SetValueCode overrides a row's value code directly. The label is left
// alone; the coupling between the two fields is asymmetric on purpose.
func (s *Session) SetValueCode(i int, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Values[i].Value = code
	return nil
}

// SetValuePrice stores the raw price-adjustment input for a row.
func (s *Session) SetValuePrice(i int, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Values[i].PriceAdjustment = raw
	return nil
}

// SetValueStock stores the raw stock-quantity input for a row.
func (s *Session) SetValueStock(i int, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Values[i].StockQuantity = raw
	return nil
}

// AddValue appends a blank row and returns its index.
func (s *Session) AddValue() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 0
	for _, v := range s.Values {
		if v.Order > next {
			next = v.Order
		}
	}
	s.Values = append(s.Values, template.ValueDraft{Order: next + 1})
	return len(s.Values) - 1
}

// RemoveValue deletes the row at index i.
func (s *Session) RemoveValue(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Values = append(s.Values[:i], s.Values[i+1:]...)
	return nil
}

// ApplyBulkPricing recomputes every row's price adjustment with the given
// strategy.
func (s *Session) ApplyBulkPricing(strategy variant.PricingStrategy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Values = variant.ApplyBulkDrafts(s.Values, strategy)
}

// CanProceed reports whether the given step's gate is satisfied.
func (s *Session) CanProceed(step int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canProceed(step)
}

func (s *Session) canProceed(step int) bool {
	switch step {
	case StepSelectTemplate:
		return s.SelectedTemplate != nil || s.CustomMode
	case StepCustomizeValues:
		if strings.TrimSpace(s.VariantName) == "" || len(s.Values) == 0 {
			return false
		}
		for _, v := range s.Values {
			if strings.TrimSpace(v.Label) == "" || strings.TrimSpace(v.Value) == "" {
				return false
			}
		}
		return true
	case StepPricingStock:
		for _, v := range s.Values {
			if _, ok := template.ParseAmount(v.PriceAdjustment); !ok {
				return false
			}
			qty, ok := template.ParseQuantity(v.StockQuantity)
			if !ok || qty < 0 {
				return false
			}
		}
		return true
	case StepConfirm:
		return true
	}
	return false
}

// Next advances to the following step if the current step's gate passes.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CurrentStep >= StepConfirm {
		return fmt.Errorf("already at the final step")
	}
	if !s.canProceed(s.CurrentStep) {
		return fmt.Errorf("step %d requirements are not met", s.CurrentStep)
	}
	s.CurrentStep++
	return nil
}

// Back returns to the previous step. Always allowed; the step being left is
// not re-validated.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CurrentStep > StepSelectTemplate {
		s.CurrentStep--
	}
}

// Closed reports whether the session has finished (successful submission or
// explicit close).
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) checkIndex(i int) error {
	if i < 0 || i >= len(s.Values) {
		return fmt.Errorf("value index %d out of range", i)
	}
	return nil
}

// SessionState is the read-only snapshot returned to the admin UI.
type SessionState struct {
	ID                 uuid.UUID             `json:"id"`
	ProductID          uuid.UUID             `json:"product_id"`
	CurrentStep        int                   `json:"current_step"`
	SelectedTemplateID string                `json:"selected_template_id,omitempty"`
	CustomMode         bool                  `json:"custom_mode"`
	VariantName        string                `json:"variant_name"`
	Values             []template.ValueDraft `json:"values"`
	CanProceed         bool                  `json:"can_proceed"`
	Submitting         bool                  `json:"submitting"`
}

// State snapshots the session for rendering.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SessionState{
		ID:          s.ID,
		ProductID:   s.ProductID,
		CurrentStep: s.CurrentStep,
		CustomMode:  s.CustomMode,
		VariantName: s.VariantName,
		Values:      append([]template.ValueDraft(nil), s.Values...),
		CanProceed:  s.canProceed(s.CurrentStep),
		Submitting:  s.submitting,
	}
	if s.SelectedTemplate != nil {
		state.SelectedTemplateID = s.SelectedTemplate.ID
	}
	return state
}
