package redirect

import (
	"time"

	"github.com/google/uuid"
)

// Redirect maps a printed QR slug to its current target URL. Retargeting a
// slug keeps already printed codes working.
type Redirect struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	TargetURL string    `json:"target_url"`
	Hits      int64     `json:"hits"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRedirectRequest holds the data for creating or retargeting a QR
// redirect.
type CreateRedirectRequest struct {
	Slug      string `json:"slug"`
	TargetURL string `json:"target_url"`
	IsActive  *bool  `json:"is_active"`
}
