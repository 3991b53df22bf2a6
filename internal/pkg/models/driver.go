package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverPresence is the live availability and last-known position of a
// driver, independent of any particular ride. It defaults to offline and
// is only ever toggled, never deleted.
type DriverPresence struct {
	DriverID     uuid.UUID `json:"driver_id"`
	IsOnline     bool      `json:"is_online"`
	LastLocation *Location `json:"last_location,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
