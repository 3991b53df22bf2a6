package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrida-app/corrida-backend/internal/pkg/constants"
	"github.com/corrida-app/corrida-backend/internal/pkg/database"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
	"github.com/corrida-app/corrida-backend/services/drivers/repository"
)

func setupPresenceRepo(t *testing.T) (*repository.PresenceRepo, *redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := repository.NewPresenceRepository(database.NewRedisClientFromExisting(client))
	return repo, client, mr
}

func geoMembers(t *testing.T, client *redis.Client) []string {
	members, err := client.ZRange(context.Background(), constants.KeyDriverGeo, 0, -1).Result()
	require.NoError(t, err)
	return members
}

func TestSetAvailability_Online(t *testing.T) {
	repo, client, _ := setupPresenceRepo(t)
	driverID := uuid.New()
	ctx := context.Background()

	err := repo.SetAvailability(ctx, driverID, true)
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	online, err := client.HGet(ctx, key, constants.FieldOnline).Result()
	require.NoError(t, err)
	assert.Equal(t, "true", online)

	isMember, err := client.SIsMember(ctx, constants.KeyOnlineDrivers, driverID.String()).Result()
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestSetAvailability_OfflineClearsGeo(t *testing.T) {
	repo, client, _ := setupPresenceRepo(t)
	driverID := uuid.New()
	ctx := context.Background()

	require.NoError(t, repo.SetAvailability(ctx, driverID, true))
	require.NoError(t, repo.UpdateLocation(ctx, driverID, models.Location{Latitude: -23.55, Longitude: -46.63}))
	assert.Contains(t, geoMembers(t, client), driverID.String())

	require.NoError(t, repo.SetAvailability(ctx, driverID, false))

	isMember, err := client.SIsMember(ctx, constants.KeyOnlineDrivers, driverID.String()).Result()
	require.NoError(t, err)
	assert.False(t, isMember)
	assert.NotContains(t, geoMembers(t, client), driverID.String())

	// The presence hash survives so the last location is still readable.
	presence, err := repo.GetPresence(ctx, driverID)
	require.NoError(t, err)
	assert.False(t, presence.IsOnline)
	require.NotNil(t, presence.LastLocation)
	assert.Equal(t, -23.55, presence.LastLocation.Latitude)
}

func TestUpdateLocation_OfflineDriverSkipsGeo(t *testing.T) {
	repo, client, _ := setupPresenceRepo(t)
	driverID := uuid.New()
	ctx := context.Background()

	err := repo.UpdateLocation(ctx, driverID, models.Location{Latitude: -23.56, Longitude: -46.65})
	require.NoError(t, err)

	assert.NotContains(t, geoMembers(t, client), driverID.String())

	presence, err := repo.GetPresence(ctx, driverID)
	require.NoError(t, err)
	require.NotNil(t, presence.LastLocation)
	assert.Equal(t, -46.65, presence.LastLocation.Longitude)
}

func TestGetPresence_UnknownDriverIsOffline(t *testing.T) {
	repo, _, _ := setupPresenceRepo(t)
	driverID := uuid.New()

	presence, err := repo.GetPresence(context.Background(), driverID)
	require.NoError(t, err)
	assert.Equal(t, driverID, presence.DriverID)
	assert.False(t, presence.IsOnline)
	assert.Nil(t, presence.LastLocation)
}

func TestListOnlineDrivers_Snapshot(t *testing.T) {
	repo, _, _ := setupPresenceRepo(t)
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()
	offline := uuid.New()

	require.NoError(t, repo.SetAvailability(ctx, first, true))
	require.NoError(t, repo.SetAvailability(ctx, second, true))
	require.NoError(t, repo.SetAvailability(ctx, offline, false))
	require.NoError(t, repo.UpdateLocation(ctx, first, models.Location{Latitude: -23.55, Longitude: -46.63}))

	online, err := repo.ListOnlineDrivers(ctx)
	require.NoError(t, err)
	require.Len(t, online, 2)

	byID := make(map[uuid.UUID]*models.DriverPresence, len(online))
	for _, p := range online {
		byID[p.DriverID] = p
	}
	require.Contains(t, byID, first)
	require.Contains(t, byID, second)
	assert.NotNil(t, byID[first].LastLocation)
	assert.Nil(t, byID[second].LastLocation)
}

func TestGetPresence_StoreDown(t *testing.T) {
	repo, _, mr := setupPresenceRepo(t)
	mr.Close()

	_, err := repo.GetPresence(context.Background(), uuid.New())
	assert.Error(t, err)
}
