package shopstatus

import "time"

// Status is the single shop-status row the storefront banner reads: whether
// the shop currently takes orders, and an optional announcement.
type Status struct {
	IsOpen    bool      `json:"is_open"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStatusRequest is the payload for changing the shop status.
type UpdateStatusRequest struct {
	IsOpen  bool   `json:"is_open"`
	Message string `json:"message"`
}
