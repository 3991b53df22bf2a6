package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations.
// Conditional methods (AcceptRide, TransitionRide, CancelRide, SetRating)
// apply their write only if the record still matches the expected prior
// state; a lost race surfaces as a kind-tagged application error.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/corrida-app/corrida-backend/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ListRidesByStatus(ctx context.Context, status models.RideStatus) ([]*models.Ride, error)
	ListRidesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Ride, error)
	GetActiveRideByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error)

	// AcceptRide binds the driver and moves pending -> accepted in a single
	// conditional update. First committer wins; losers get a conflict error.
	AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)

	// TransitionRide moves from -> to in a single conditional update,
	// stamping start_time or end_time where the target status requires it.
	TransitionRide(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) (*models.Ride, error)

	// CancelRide moves any of {pending, accepted, driver_arrived} to
	// cancelled, recording the reason.
	CancelRide(ctx context.Context, rideID uuid.UUID, reason string) (*models.Ride, error)

	// SetRating fills the rater's feedback slot if it is still empty
	SetRating(ctx context.Context, rideID uuid.UUID, rater models.UserRole, rating models.Rating) error
}
