package models

// CreateRideRequest is the payload for requesting a new ride.
// Distance, duration and price are supplied by the caller (quoted by the
// mapping/pricing collaborator), not derived here.
type CreateRideRequest struct {
	Origin        GeoPoint      `json:"origin"`
	Destination   GeoPoint      `json:"destination"`
	Distance      float64       `json:"distance"`
	Duration      int           `json:"duration"`
	Price         float64       `json:"price"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
}

// CancelRideRequest carries the cancellation reason
type CancelRideRequest struct {
	Reason string `json:"reason"`
}

// RateRideRequest is the payload for post-ride feedback
type RateRideRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// AvailabilityRequest toggles a driver's online flag
type AvailabilityRequest struct {
	IsOnline bool `json:"is_online"`
}

// LocationUpdateRequest reports a driver's current position
type LocationUpdateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
