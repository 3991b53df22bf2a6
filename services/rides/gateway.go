package rides

import (
	"context"

	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// RideGW publishes ride lifecycle events for external consumers
// (notification fan-out, payment read models). Publishing is
// signal-only: a failed publish never fails the operation.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/corrida-app/corrida-backend/services/rides RideGW
type RideGW interface {
	PublishRideCreated(ctx context.Context, ride *models.Ride) error
	PublishRideAccepted(ctx context.Context, ride *models.Ride) error
	PublishRideArrived(ctx context.Context, ride *models.Ride) error
	PublishRideStarted(ctx context.Context, ride *models.Ride) error
	PublishRideCompleted(ctx context.Context, ride *models.Ride) error
	PublishRideCancelled(ctx context.Context, ride *models.Ride) error
	PublishRideRated(ctx context.Context, ride *models.Ride) error
}
