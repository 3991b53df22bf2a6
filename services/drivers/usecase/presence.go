package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/corrida-app/corrida-backend/internal/pkg/apperrors"
	"github.com/corrida-app/corrida-backend/internal/pkg/logger"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
	"github.com/corrida-app/corrida-backend/services/drivers"
)

// driverUC implements the drivers.DriverUC interface
type driverUC struct {
	cfg  *models.Config
	repo drivers.PresenceRepo
}

// NewDriverUC creates a new driver registry use case
func NewDriverUC(cfg *models.Config, repo drivers.PresenceRepo) drivers.DriverUC {
	return &driverUC{
		cfg:  cfg,
		repo: repo,
	}
}

// SetAvailability toggles the calling driver's online flag
func (uc *driverUC) SetAvailability(ctx context.Context, actor models.Actor, isOnline bool) (*models.DriverPresence, error) {
	if actor.Role != models.RoleDriver {
		return nil, apperrors.Authorization("only drivers can set availability")
	}

	if err := uc.repo.SetAvailability(ctx, actor.ID, isOnline); err != nil {
		return nil, err
	}

	logger.Info("Driver availability updated",
		logger.String("driver_id", actor.ID.String()),
		logger.Bool("is_online", isOnline))

	return uc.repo.GetPresence(ctx, actor.ID)
}

// UpdateLocation overwrites the calling driver's last-known position.
// Only the driver's own client reports positions; there is no
// cross-driver write path.
func (uc *driverUC) UpdateLocation(ctx context.Context, actor models.Actor, req models.LocationUpdateRequest) (*models.DriverPresence, error) {
	if actor.Role != models.RoleDriver {
		return nil, apperrors.Authorization("only drivers can report locations")
	}

	location := models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: time.Now().UTC(),
	}
	if err := location.Validate(); err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid location: %v", err))
	}

	if err := uc.repo.UpdateLocation(ctx, actor.ID, location); err != nil {
		return nil, err
	}

	return uc.repo.GetPresence(ctx, actor.ID)
}

// GetPresence returns a driver's current presence record
func (uc *driverUC) GetPresence(ctx context.Context, driverID uuid.UUID) (*models.DriverPresence, error) {
	return uc.repo.GetPresence(ctx, driverID)
}

// ListOnlineDrivers snapshots the currently-online drivers
func (uc *driverUC) ListOnlineDrivers(ctx context.Context) ([]*models.DriverPresence, error) {
	return uc.repo.ListOnlineDrivers(ctx)
}
