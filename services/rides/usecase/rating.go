package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/corrida-app/corrida-backend/internal/pkg/apperrors"
	"github.com/corrida-app/corrida-backend/internal/pkg/logger"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// RateRide writes the actor's feedback into the slot for their
// counterpart: passengers rate the driver, drivers rate the passenger.
// Each slot is writable exactly once; the conditional update in the
// repository rejects the second write even under concurrent calls.
func (uc *rideUC) RateRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, req models.RateRideRequest) (*models.Ride, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, apperrors.Validation("score must be between 1 and 5")
	}

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.IsPassenger(actor.ID) && !ride.IsBoundDriver(actor.ID) {
		return nil, apperrors.Authorization("not a participant of this ride")
	}
	if !ride.Status.Terminal() {
		return nil, apperrors.InvalidTransition(
			fmt.Sprintf("cannot rate ride with status %s", ride.Status))
	}
	if ride.IsPassenger(actor.ID) && ride.DriverID == nil {
		return nil, apperrors.Validation("ride has no driver to rate")
	}

	rater := models.RoleDriver
	if ride.IsPassenger(actor.ID) {
		rater = models.RolePassenger
	}

	rating := models.Rating{Score: req.Score, Comment: req.Comment}
	if err := uc.repo.SetRating(ctx, rideID, rater, rating); err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, updated, uc.gw.PublishRideRated)

	logger.Info("Ride rated",
		logger.String("ride_id", rideID.String()),
		logger.String("rater", string(rater)),
		logger.Int("score", req.Score))

	return updated, nil
}
