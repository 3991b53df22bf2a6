package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// RideUC defines the interface for ride business logic: the state
// machine, matching/dispatch and rating operations.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/corrida-app/corrida-backend/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, actor models.Actor, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error)
	ListMyRides(ctx context.Context, actor models.Actor) ([]*models.Ride, error)

	ListAvailableRides(ctx context.Context, actor models.Actor) ([]*models.Ride, error)
	AcceptRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error)

	MarkArrived(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error)
	StartRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, reason string) (*models.Ride, error)

	RateRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, req models.RateRideRequest) (*models.Ride, error)
}

// PresenceReader is the slice of the driver registry the matching engine
// needs: whether the querying driver is currently online.
//
//go:generate mockgen -destination=mocks/mock_presence.go -package=mocks github.com/corrida-app/corrida-backend/services/rides PresenceReader
type PresenceReader interface {
	GetPresence(ctx context.Context, driverID uuid.UUID) (*models.DriverPresence, error)
}
