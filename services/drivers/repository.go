package drivers

import (
	"context"

	"github.com/google/uuid"

	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// PresenceRepo defines the interface for driver presence storage.
// Presence is ephemeral per-driver state: an online flag and a
// last-known position, never ride history.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/corrida-app/corrida-backend/services/drivers PresenceRepo
type PresenceRepo interface {
	SetAvailability(ctx context.Context, driverID uuid.UUID, isOnline bool) error
	UpdateLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error
	GetPresence(ctx context.Context, driverID uuid.UUID) (*models.DriverPresence, error)
	ListOnlineDrivers(ctx context.Context) ([]*models.DriverPresence, error)
}
