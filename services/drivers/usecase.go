package drivers

import (
	"context"

	"github.com/google/uuid"

	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// DriverUC defines the interface for driver registry business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/corrida-app/corrida-backend/services/drivers DriverUC
type DriverUC interface {
	// SetAvailability toggles the driver's online flag. Idempotent; going
	// offline removes the driver from future matching cycles but leaves
	// any already-assigned ride untouched.
	SetAvailability(ctx context.Context, actor models.Actor, isOnline bool) (*models.DriverPresence, error)

	// UpdateLocation overwrites the driver's last-known position
	UpdateLocation(ctx context.Context, actor models.Actor, req models.LocationUpdateRequest) (*models.DriverPresence, error)

	// GetPresence returns a driver's current presence record
	GetPresence(ctx context.Context, driverID uuid.UUID) (*models.DriverPresence, error)

	// ListOnlineDrivers snapshots the currently-online drivers with their
	// last locations; consumed by the matching engine.
	ListOnlineDrivers(ctx context.Context) ([]*models.DriverPresence, error)
}
