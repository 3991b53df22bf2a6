package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/corrida-app/corrida-backend/internal/pkg/apperrors"
	"github.com/corrida-app/corrida-backend/internal/pkg/constants"
	"github.com/corrida-app/corrida-backend/internal/pkg/database"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// PresenceRepo is the Redis-backed driver registry. Each driver has a
// presence hash; online drivers are additionally tracked in a set and a
// geo set so positions can be queried without scanning every hash.
type PresenceRepo struct {
	redisClient *database.RedisClient
}

// NewPresenceRepository creates a new presence repository
func NewPresenceRepository(redisClient *database.RedisClient) *PresenceRepo {
	return &PresenceRepo{redisClient: redisClient}
}

func presenceKey(driverID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyDriverPresence, driverID)
}

// SetAvailability toggles the driver's online flag
func (r *PresenceRepo) SetAvailability(ctx context.Context, driverID uuid.UUID, isOnline bool) error {
	now := time.Now().UTC()
	err := r.redisClient.HSet(ctx, presenceKey(driverID), map[string]interface{}{
		constants.FieldOnline:    strconv.FormatBool(isOnline),
		constants.FieldUpdatedAt: strconv.FormatInt(now.Unix(), 10),
	})
	if err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to set availability: %w", err))
	}

	if isOnline {
		if err := r.redisClient.SAdd(ctx, constants.KeyOnlineDrivers, driverID.String()); err != nil {
			return apperrors.StoreUnavailable(fmt.Errorf("failed to add online driver: %w", err))
		}
		return nil
	}

	if err := r.redisClient.SRem(ctx, constants.KeyOnlineDrivers, driverID.String()); err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to remove online driver: %w", err))
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, driverID.String()); err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to remove driver position: %w", err))
	}
	return nil
}

// UpdateLocation overwrites the driver's last-known position. The geo
// set only tracks online drivers, so the position is mirrored there
// only while the driver is online.
func (r *PresenceRepo) UpdateLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error {
	ts := location.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	err := r.redisClient.HSet(ctx, presenceKey(driverID), map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldUpdatedAt: strconv.FormatInt(ts.Unix(), 10),
	})
	if err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to store location: %w", err))
	}

	online, err := r.redisClient.SIsMember(ctx, constants.KeyOnlineDrivers, driverID.String())
	if err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to check online set: %w", err))
	}
	if online {
		if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID.String()); err != nil {
			return apperrors.StoreUnavailable(fmt.Errorf("failed to update driver position: %w", err))
		}
	}

	return nil
}

// GetPresence returns a driver's presence record. A driver with no
// stored state yet is reported as offline, matching the provisioning
// default.
func (r *PresenceRepo) GetPresence(ctx context.Context, driverID uuid.UUID) (*models.DriverPresence, error) {
	fields, err := r.redisClient.HGetAll(ctx, presenceKey(driverID))
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to get presence: %w", err))
	}

	return presenceFromHash(driverID, fields), nil
}

// ListOnlineDrivers snapshots every online driver with their last location
func (r *PresenceRepo) ListOnlineDrivers(ctx context.Context) ([]*models.DriverPresence, error) {
	ids, err := r.redisClient.SMembers(ctx, constants.KeyOnlineDrivers)
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to list online drivers: %w", err))
	}

	presences := make([]*models.DriverPresence, 0, len(ids))
	for _, id := range ids {
		driverID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		fields, err := r.redisClient.HGetAll(ctx, presenceKey(driverID))
		if err != nil {
			return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to get presence: %w", err))
		}
		presences = append(presences, presenceFromHash(driverID, fields))
	}

	return presences, nil
}

func presenceFromHash(driverID uuid.UUID, fields map[string]string) *models.DriverPresence {
	presence := &models.DriverPresence{DriverID: driverID}
	if len(fields) == 0 {
		return presence
	}

	presence.IsOnline, _ = strconv.ParseBool(fields[constants.FieldOnline])
	if ts, err := strconv.ParseInt(fields[constants.FieldUpdatedAt], 10, 64); err == nil {
		presence.UpdatedAt = time.Unix(ts, 0).UTC()
	}

	latStr, latOK := fields[constants.FieldLatitude]
	lngStr, lngOK := fields[constants.FieldLongitude]
	if latOK && lngOK {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			presence.LastLocation = &models.Location{
				Latitude:  lat,
				Longitude: lng,
				Timestamp: presence.UpdatedAt,
			}
		}
	}

	return presence
}
