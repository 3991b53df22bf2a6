package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/corrida-app/corrida-backend/internal/pkg/constants"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// Publisher is the slice of the NATS client the gateway needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// RideGateway publishes ride lifecycle events over NATS
type RideGateway struct {
	nc Publisher
}

// NewRideGateway creates a new ride event gateway
func NewRideGateway(nc Publisher) *RideGateway {
	return &RideGateway{nc: nc}
}

func (g *RideGateway) publish(subject string, ride *models.Ride) error {
	data, err := json.Marshal(ride)
	if err != nil {
		return fmt.Errorf("failed to marshal ride event: %w", err)
	}
	if err := g.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}

// PublishRideCreated signals that a passenger requested a ride
func (g *RideGateway) PublishRideCreated(_ context.Context, ride *models.Ride) error {
	return g.publish(constants.SubjectRideCreated, ride)
}

// PublishRideAccepted signals that a driver won the ride
func (g *RideGateway) PublishRideAccepted(_ context.Context, ride *models.Ride) error {
	return g.publish(constants.SubjectRideAccepted, ride)
}

// PublishRideArrived signals that the driver reached the pickup point
func (g *RideGateway) PublishRideArrived(_ context.Context, ride *models.Ride) error {
	return g.publish(constants.SubjectRideArrived, ride)
}

// PublishRideStarted signals that the trip began
func (g *RideGateway) PublishRideStarted(_ context.Context, ride *models.Ride) error {
	return g.publish(constants.SubjectRideStarted, ride)
}

// PublishRideCompleted signals that the trip finished
func (g *RideGateway) PublishRideCompleted(_ context.Context, ride *models.Ride) error {
	return g.publish(constants.SubjectRideCompleted, ride)
}

// PublishRideCancelled signals that the ride was cancelled
func (g *RideGateway) PublishRideCancelled(_ context.Context, ride *models.Ride) error {
	return g.publish(constants.SubjectRideCancelled, ride)
}

// PublishRideRated signals that a feedback slot was filled
func (g *RideGateway) PublishRideRated(_ context.Context, ride *models.Ride) error {
	return g.publish(constants.SubjectRideRated, ride)
}
