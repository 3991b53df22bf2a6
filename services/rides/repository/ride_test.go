package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrida-app/corrida-backend/internal/pkg/apperrors"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
	"github.com/corrida-app/corrida-backend/services/rides/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var rideCols = []string{
	"id", "passenger_id", "driver_id",
	"origin_longitude", "origin_latitude", "origin_address",
	"destination_longitude", "destination_latitude", "destination_address",
	"distance", "duration", "price",
	"status", "payment_status", "payment_method",
	"start_time", "end_time", "cancel_reason",
	"passenger_rating_score", "passenger_rating_comment",
	"driver_rating_score", "driver_rating_comment",
	"created_at",
}

func pendingRideRow(rideID, passengerID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows(rideCols).AddRow(
		rideID.String(), passengerID.String(), nil,
		-46.63, -23.55, "Av. Paulista, 1000",
		-46.65, -23.56, "R. Augusta, 500",
		3200.0, 720, 18.5,
		"pending", "pending", "cash",
		nil, nil, nil,
		nil, nil,
		nil, nil,
		time.Now().UTC(),
	)
}

func TestCreateRide_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	ride := &models.Ride{
		ID:            uuid.New(),
		PassengerID:   uuid.New(),
		Origin:        models.NewGeoPoint(-46.63, -23.55, "Av. Paulista, 1000"),
		Destination:   models.NewGeoPoint(-46.65, -23.56, "R. Augusta, 500"),
		Distance:      3200,
		Duration:      720,
		Price:         18.5,
		Status:        models.RideStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: models.PaymentMethodCash,
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WithArgs(
			ride.ID, ride.PassengerID,
			-46.63, -23.55, "Av. Paulista, 1000",
			-46.65, -23.56, "R. Augusta, 500",
			3200.0, 720, 18.5,
			ride.Status, ride.PaymentStatus, ride.PaymentMethod, ride.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRide(context.Background(), ride)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRide_StoreUnavailable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WillReturnError(assert.AnError)

	err := repo.CreateRide(context.Background(), &models.Ride{
		ID:          uuid.New(),
		Origin:      models.NewGeoPoint(0, 0, ""),
		Destination: models.NewGeoPoint(0, 0, ""),
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindStoreUnavailable))
}

func TestGetRide_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideCols))

	_, err := repo.GetRide(context.Background(), rideID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestGetRide_ScansOptionalFields(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()
	driverID := uuid.New()
	start := time.Now().UTC().Add(-20 * time.Minute)
	end := time.Now().UTC()

	rows := sqlmock.NewRows(rideCols).AddRow(
		rideID.String(), passengerID.String(), driverID.String(),
		-46.63, -23.55, "Av. Paulista, 1000",
		-46.65, -23.56, "R. Augusta, 500",
		3200.0, 720, 18.5,
		"completed", "pending", "pix",
		start, end, nil,
		5, "great driver",
		nil, nil,
		time.Now().UTC(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(rows)

	ride, err := repo.GetRide(context.Background(), rideID)
	require.NoError(t, err)
	require.NotNil(t, ride.DriverID)
	assert.Equal(t, driverID, *ride.DriverID)
	assert.Equal(t, models.RideStatusCompleted, ride.Status)
	assert.Equal(t, models.PaymentMethodPix, ride.PaymentMethod)
	require.NotNil(t, ride.StartTime)
	require.NotNil(t, ride.EndTime)
	require.NotNil(t, ride.PassengerRating)
	assert.Equal(t, 5, ride.PassengerRating.Score)
	assert.Equal(t, "great driver", ride.PassengerRating.Comment)
	assert.Nil(t, ride.DriverRating)
}

func TestAcceptRide_Wins(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()
	driverID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(rideID, driverID, models.RideStatusAccepted, models.RideStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	accepted := sqlmock.NewRows(rideCols).AddRow(
		rideID.String(), passengerID.String(), driverID.String(),
		-46.63, -23.55, "Av. Paulista, 1000",
		-46.65, -23.56, "R. Augusta, 500",
		3200.0, 720, 18.5,
		"accepted", "pending", "cash",
		nil, nil, nil,
		nil, nil,
		nil, nil,
		time.Now().UTC(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(accepted)

	ride, err := repo.AcceptRide(context.Background(), rideID, driverID)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	require.NotNil(t, ride.DriverID)
	assert.Equal(t, driverID, *ride.DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRide_LostRace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()
	winner := uuid.New()
	loser := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(rideID, loser, models.RideStatusAccepted, models.RideStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	taken := sqlmock.NewRows(rideCols).AddRow(
		rideID.String(), passengerID.String(), winner.String(),
		-46.63, -23.55, "",
		-46.65, -23.56, "",
		3200.0, 720, 18.5,
		"accepted", "pending", "cash",
		nil, nil, nil,
		nil, nil,
		nil, nil,
		time.Now().UTC(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(taken)

	_, err := repo.AcceptRide(context.Background(), rideID, loser)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestAcceptRide_RideMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideCols))

	_, err := repo.AcceptRide(context.Background(), rideID, uuid.New())
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestTransitionRide_StampsStartTime(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()
	driverID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(rideID, models.RideStatusInProgress, models.RideStatusDriverArrived, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	started := sqlmock.NewRows(rideCols).AddRow(
		rideID.String(), passengerID.String(), driverID.String(),
		-46.63, -23.55, "",
		-46.65, -23.56, "",
		3200.0, 720, 18.5,
		"in_progress", "pending", "cash",
		time.Now().UTC(), nil, nil,
		nil, nil,
		nil, nil,
		time.Now().UTC(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(started)

	ride, err := repo.TransitionRide(context.Background(), rideID, models.RideStatusDriverArrived, models.RideStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusInProgress, ride.Status)
	assert.NotNil(t, ride.StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionRide_StatusMoved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()
	driverID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	cancelled := sqlmock.NewRows(rideCols).AddRow(
		rideID.String(), passengerID.String(), driverID.String(),
		-46.63, -23.55, "",
		-46.65, -23.56, "",
		3200.0, 720, 18.5,
		"cancelled", "pending", "cash",
		nil, nil, "passenger gave up",
		nil, nil,
		nil, nil,
		time.Now().UTC(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(cancelled)

	_, err := repo.TransitionRide(context.Background(), rideID, models.RideStatusAccepted, models.RideStatusDriverArrived)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
	assert.Contains(t, err.Error(), "cancelled")
}

func TestCancelRide_InProgressRejected(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()
	driverID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(rideID, models.RideStatusCancelled, "too late").
		WillReturnResult(sqlmock.NewResult(0, 0))

	inProgress := sqlmock.NewRows(rideCols).AddRow(
		rideID.String(), passengerID.String(), driverID.String(),
		-46.63, -23.55, "",
		-46.65, -23.56, "",
		3200.0, 720, 18.5,
		"in_progress", "pending", "cash",
		time.Now().UTC(), nil, nil,
		nil, nil,
		nil, nil,
		time.Now().UTC(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(inProgress)

	_, err := repo.CancelRide(context.Background(), rideID, "too late")
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
}

func TestCancelRide_Pending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(rideID, models.RideStatusCancelled, "no drivers nearby").
		WillReturnResult(sqlmock.NewResult(0, 1))

	cancelled := sqlmock.NewRows(rideCols).AddRow(
		rideID.String(), passengerID.String(), nil,
		-46.63, -23.55, "",
		-46.65, -23.56, "",
		3200.0, 720, 18.5,
		"cancelled", "pending", "cash",
		nil, nil, "no drivers nearby",
		nil, nil,
		nil, nil,
		time.Now().UTC(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(cancelled)

	ride, err := repo.CancelRide(context.Background(), rideID, "no drivers nearby")
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCancelled, ride.Status)
	assert.Equal(t, "no drivers nearby", ride.CancelReason)
}

func TestSetRating_PassengerSlot(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(rideID, 5, "great driver").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetRating(context.Background(), rideID, models.RolePassenger, models.Rating{Score: 5, Comment: "great driver"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetRating_SlotAlreadyFilled(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()
	driverID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(rideID, 2, "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	existing := sqlmock.NewRows(rideCols).AddRow(
		rideID.String(), passengerID.String(), driverID.String(),
		-46.63, -23.55, "",
		-46.65, -23.56, "",
		3200.0, 720, 18.5,
		"completed", "pending", "cash",
		nil, nil, nil,
		nil, nil,
		4, "polite",
		time.Now().UTC(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(existing)

	err := repo.SetRating(context.Background(), rideID, models.RoleDriver, models.Rating{Score: 2})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestListRidesByStatus_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(models.RideStatusPending).
		WillReturnRows(sqlmock.NewRows(rideCols))

	rides, err := repo.ListRidesByStatus(context.Background(), models.RideStatusPending)
	require.NoError(t, err)
	assert.Empty(t, rides)
}

func TestListRidesByUser_BothLegs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	userID := uuid.New()
	rows := pendingRideRow(uuid.New(), userID)
	mock.ExpectQuery(regexp.QuoteMeta("passenger_id = $1 OR driver_id = $1")).
		WithArgs(userID).
		WillReturnRows(rows)

	rides, err := repo.ListRidesByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, rides, 1)
	assert.Equal(t, userID, rides[0].PassengerID)
}

func TestGetActiveRideByDriver_NoneIsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	driverID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(rideCols))

	ride, err := repo.GetActiveRideByDriver(context.Background(), driverID)
	require.NoError(t, err)
	assert.Nil(t, ride)
}
