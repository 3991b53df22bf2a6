package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusPending       RideStatus = "pending"
	RideStatusAccepted      RideStatus = "accepted"
	RideStatusDriverArrived RideStatus = "driver_arrived"
	RideStatusInProgress    RideStatus = "in_progress"
	RideStatusCompleted     RideStatus = "completed"
	RideStatusCancelled     RideStatus = "cancelled"
)

// nextStatus holds the single legal forward transition out of each
// non-terminal status. Cancellation is handled separately.
var nextStatus = map[RideStatus]RideStatus{
	RideStatusPending:       RideStatusAccepted,
	RideStatusAccepted:      RideStatusDriverArrived,
	RideStatusDriverArrived: RideStatusInProgress,
	RideStatusInProgress:    RideStatusCompleted,
}

// CanTransitionTo reports whether the forward transition s -> to is legal
func (s RideStatus) CanTransitionTo(to RideStatus) bool {
	return nextStatus[s] == to
}

// Cancellable reports whether a ride in this status may still be cancelled.
// A ride in progress can only be completed.
func (s RideStatus) Cancellable() bool {
	switch s {
	case RideStatusPending, RideStatusAccepted, RideStatusDriverArrived:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is possible
func (s RideStatus) Terminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// PaymentStatus tracks the payment lifecycle of a ride. It is carried on
// the ride record but never advanced by this service.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// PaymentMethod is how the passenger intends to pay
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPix        PaymentMethod = "pix"
)

// ValidPaymentMethod reports whether m is a known payment method
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodPix:
		return true
	default:
		return false
	}
}

// Rating is one leg of post-ride feedback. Each slot is written at most once.
type Rating struct {
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// Ride represents one passenger transport request from origin to destination
type Ride struct {
	ID              uuid.UUID     `json:"id"`
	PassengerID     uuid.UUID     `json:"passenger_id"`
	DriverID        *uuid.UUID    `json:"driver_id,omitempty"`
	Origin          GeoPoint      `json:"origin"`
	Destination     GeoPoint      `json:"destination"`
	Distance        float64       `json:"distance"` // in meters
	Duration        int           `json:"duration"` // in seconds
	Price           float64       `json:"price"`
	Status          RideStatus    `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	StartTime       *time.Time    `json:"start_time,omitempty"`
	EndTime         *time.Time    `json:"end_time,omitempty"`
	CancelReason    string        `json:"cancel_reason,omitempty"`
	PassengerRating *Rating       `json:"passenger_rating,omitempty"` // passenger rating the driver
	DriverRating    *Rating       `json:"driver_rating,omitempty"`    // driver rating the passenger
	CreatedAt       time.Time     `json:"created_at"`
}

// IsPassenger reports whether the actor is the ride's passenger
func (r *Ride) IsPassenger(actorID uuid.UUID) bool {
	return r.PassengerID == actorID
}

// IsBoundDriver reports whether the actor is the driver assigned to the ride
func (r *Ride) IsBoundDriver(actorID uuid.UUID) bool {
	return r.DriverID != nil && *r.DriverID == actorID
}
