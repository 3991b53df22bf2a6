package models

import (
	"fmt"

	"github.com/google/uuid"
)

// UserRole identifies which side of a ride an actor is on
type UserRole string

const (
	RolePassenger UserRole = "passenger"
	RoleDriver    UserRole = "driver"
)

// ParseRole converts a raw role claim into a known UserRole.
// Unknown values are rejected at the boundary instead of being carried through.
func ParseRole(raw string) (UserRole, error) {
	switch UserRole(raw) {
	case RolePassenger:
		return RolePassenger, nil
	case RoleDriver:
		return RoleDriver, nil
	default:
		return "", fmt.Errorf("unknown role: %q", raw)
	}
}

// Actor is the authenticated identity performing an operation
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role UserRole  `json:"role"`
}
