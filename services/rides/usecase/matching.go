package usecase

import (
	"context"

	"github.com/corrida-app/corrida-backend/internal/pkg/apperrors"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// ListAvailableRides surfaces every pending ride to an eligible online
// driver. There is no geofencing: any online driver sees every pending
// ride, and clients poll at their own cadence. Offline drivers and
// drivers already bound to an active ride see an empty list; acceptance
// races are resolved by AcceptRide's conditional update, so results here
// only promise "pending at read time".
func (uc *rideUC) ListAvailableRides(ctx context.Context, actor models.Actor) ([]*models.Ride, error) {
	if actor.Role != models.RoleDriver {
		return nil, apperrors.Authorization("only drivers can list available rides")
	}

	presence, err := uc.presence.GetPresence(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if presence == nil || !presence.IsOnline {
		return []*models.Ride{}, nil
	}

	active, err := uc.repo.GetActiveRideByDriver(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return []*models.Ride{}, nil
	}

	return uc.repo.ListRidesByStatus(ctx, models.RideStatusPending)
}
