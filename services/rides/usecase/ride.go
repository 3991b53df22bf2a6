package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/corrida-app/corrida-backend/internal/pkg/apperrors"
	"github.com/corrida-app/corrida-backend/internal/pkg/logger"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
	"github.com/corrida-app/corrida-backend/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg      *models.Config
	repo     rides.RideRepo
	presence rides.PresenceReader
	gw       rides.RideGW
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	repo rides.RideRepo,
	presence rides.PresenceReader,
	gw rides.RideGW,
) rides.RideUC {
	return &rideUC{
		cfg:      cfg,
		repo:     repo,
		presence: presence,
		gw:       gw,
	}
}

// CreateRide creates a new pending ride for the requesting passenger
func (uc *rideUC) CreateRide(ctx context.Context, actor models.Actor, req models.CreateRideRequest) (*models.Ride, error) {
	if actor.Role != models.RolePassenger {
		return nil, apperrors.Authorization("only passengers can request rides")
	}

	if err := req.Origin.Validate(); err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid origin: %v", err))
	}
	if err := req.Destination.Validate(); err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid destination: %v", err))
	}
	if req.Distance <= 0 {
		return nil, apperrors.Validation("distance must be positive")
	}
	if req.Duration <= 0 {
		return nil, apperrors.Validation("duration must be positive")
	}
	if req.Price <= 0 {
		return nil, apperrors.Validation("price must be positive")
	}

	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCash
	}
	if !models.ValidPaymentMethod(method) {
		return nil, apperrors.Validation(fmt.Sprintf("unknown payment method: %s", method))
	}

	ride := &models.Ride{
		ID:            uuid.New(),
		PassengerID:   actor.ID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		Distance:      req.Distance,
		Duration:      req.Duration,
		Price:         req.Price,
		Status:        models.RideStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: method,
		CreatedAt:     time.Now().UTC(),
	}

	if err := uc.repo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	uc.publish(ctx, ride, uc.gw.PublishRideCreated)

	logger.Info("Ride created",
		logger.String("ride_id", ride.ID.String()),
		logger.String("passenger_id", actor.ID.String()))

	return ride, nil
}

// GetRide returns a ride to its passenger or bound driver
func (uc *rideUC) GetRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.IsPassenger(actor.ID) && !ride.IsBoundDriver(actor.ID) {
		return nil, apperrors.Authorization("not a participant of this ride")
	}

	return ride, nil
}

// ListMyRides returns the actor's ride history, newest first
func (uc *rideUC) ListMyRides(ctx context.Context, actor models.Actor) ([]*models.Ride, error) {
	return uc.repo.ListRidesByUser(ctx, actor.ID)
}

// AcceptRide resolves the dispatch race: the first driver to commit the
// conditional update wins the ride, every later caller gets a conflict.
func (uc *rideUC) AcceptRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error) {
	if actor.Role != models.RoleDriver {
		return nil, apperrors.Authorization("only drivers can accept rides")
	}

	ride, err := uc.repo.AcceptRide(ctx, rideID, actor.ID)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, ride, uc.gw.PublishRideAccepted)

	logger.Info("Ride accepted",
		logger.String("ride_id", ride.ID.String()),
		logger.String("driver_id", actor.ID.String()))

	return ride, nil
}

// MarkArrived moves accepted -> driver_arrived for the bound driver
func (uc *rideUC) MarkArrived(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error) {
	return uc.driverTransition(ctx, actor, rideID,
		models.RideStatusAccepted, models.RideStatusDriverArrived, uc.gw.PublishRideArrived)
}

// StartRide moves driver_arrived -> in_progress, stamping the start time
func (uc *rideUC) StartRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error) {
	return uc.driverTransition(ctx, actor, rideID,
		models.RideStatusDriverArrived, models.RideStatusInProgress, uc.gw.PublishRideStarted)
}

// CompleteRide moves in_progress -> completed, stamping the end time
func (uc *rideUC) CompleteRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error) {
	return uc.driverTransition(ctx, actor, rideID,
		models.RideStatusInProgress, models.RideStatusCompleted, uc.gw.PublishRideCompleted)
}

// driverTransition applies a forward transition that only the ride's
// bound driver may perform. The fetched status is checked first so a
// wrong-order call gets an invalid-transition error; the conditional
// update in the repository closes the remaining race window.
func (uc *rideUC) driverTransition(
	ctx context.Context,
	actor models.Actor,
	rideID uuid.UUID,
	from, to models.RideStatus,
	publish func(context.Context, *models.Ride) error,
) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.IsBoundDriver(actor.ID) {
		return nil, apperrors.Authorization("only the assigned driver can update this ride")
	}
	if !ride.Status.CanTransitionTo(to) || ride.Status != from {
		return nil, apperrors.InvalidTransition(
			fmt.Sprintf("cannot move ride from %s to %s", ride.Status, to))
	}

	updated, err := uc.repo.TransitionRide(ctx, rideID, from, to)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, updated, publish)

	logger.Info("Ride transitioned",
		logger.String("ride_id", rideID.String()),
		logger.String("from", string(from)),
		logger.String("to", string(to)))

	return updated, nil
}

// CancelRide cancels a ride that has not yet started. The passenger and
// the bound driver (once one exists) are the only authorized actors; a
// cancelled ride stays cancelled, it is never released for re-matching.
func (uc *rideUC) CancelRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, reason string) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.IsPassenger(actor.ID) && !ride.IsBoundDriver(actor.ID) {
		return nil, apperrors.Authorization("not a participant of this ride")
	}
	if !ride.Status.Cancellable() {
		return nil, apperrors.InvalidTransition(
			fmt.Sprintf("cannot cancel ride with status %s", ride.Status))
	}

	updated, err := uc.repo.CancelRide(ctx, rideID, reason)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, updated, uc.gw.PublishRideCancelled)

	logger.Info("Ride cancelled",
		logger.String("ride_id", rideID.String()),
		logger.String("by", actor.ID.String()),
		logger.String("reason", reason))

	return updated, nil
}

// publish signals an event without letting a broker failure fail the operation
func (uc *rideUC) publish(ctx context.Context, ride *models.Ride, fn func(context.Context, *models.Ride) error) {
	if err := fn(ctx, ride); err != nil {
		logger.Warn("Failed to publish ride event",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
}
