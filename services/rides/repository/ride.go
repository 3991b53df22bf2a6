package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/corrida-app/corrida-backend/internal/pkg/apperrors"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

// rideColumns is the column list shared by every ride SELECT
const rideColumns = `
	id, passenger_id, driver_id,
	origin_longitude, origin_latitude, origin_address,
	destination_longitude, destination_latitude, destination_address,
	distance, duration, price,
	status, payment_status, payment_method,
	start_time, end_time, cancel_reason,
	passenger_rating_score, passenger_rating_comment,
	driver_rating_score, driver_rating_comment,
	created_at`

// activeStatuses are the non-terminal statuses that bind a driver
const activeStatuses = `'accepted', 'driver_arrived', 'in_progress'`

// RideRepo is the PostgreSQL-backed ride store
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRide inserts a new pending ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			id, passenger_id,
			origin_longitude, origin_latitude, origin_address,
			destination_longitude, destination_latitude, destination_address,
			distance, duration, price,
			status, payment_status, payment_method, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		ride.ID,
		ride.PassengerID,
		ride.Origin.Longitude(),
		ride.Origin.Latitude(),
		ride.Origin.Address,
		ride.Destination.Longitude(),
		ride.Destination.Latitude(),
		ride.Destination.Address,
		ride.Distance,
		ride.Duration,
		ride.Price,
		ride.Status,
		ride.PaymentStatus,
		ride.PaymentMethod,
		ride.CreatedAt,
	)
	if err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to insert ride: %w", err))
	}

	return nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, rideID)
	ride, err := scanRide(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ride not found")
		}
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to get ride: %w", err))
	}

	return ride, nil
}

// ListRidesByStatus retrieves all rides with the given status, newest first
func (r *RideRepo) ListRidesByStatus(ctx context.Context, status models.RideStatus) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to list rides by status: %w", err))
	}
	defer rows.Close()

	return collectRides(rows)
}

// ListRidesByUser retrieves the rides a user took part in on either leg,
// newest first.
func (r *RideRepo) ListRidesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE passenger_id = $1 OR driver_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to list rides by user: %w", err))
	}
	defer rows.Close()

	return collectRides(rows)
}

// GetActiveRideByDriver returns the driver's current non-terminal ride,
// or nil if the driver is free.
func (r *RideRepo) GetActiveRideByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE driver_id = $1 AND status IN (` + activeStatuses + `)
		ORDER BY created_at DESC
		LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, driverID)
	ride, err := scanRide(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to get active ride: %w", err))
	}

	return ride, nil
}

// AcceptRide binds the driver and moves pending -> accepted as one
// conditional update. Whoever commits first wins; everyone else observes
// the post-state and gets a conflict.
func (r *RideRepo) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	query := `
		UPDATE rides
		SET driver_id = $2, status = $3
		WHERE id = $1 AND status = $4 AND driver_id IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, rideID, driverID, models.RideStatusAccepted, models.RideStatusPending)
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to accept ride: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to read accept result: %w", err))
	}
	if affected == 0 {
		// Either the ride never existed or another driver won the race.
		if _, getErr := r.GetRide(ctx, rideID); getErr != nil {
			return nil, getErr
		}
		return nil, apperrors.Conflict("ride no longer available")
	}

	return r.GetRide(ctx, rideID)
}

// TransitionRide moves from -> to as one conditional update, stamping
// start_time or end_time where the target status requires it.
func (r *RideRepo) TransitionRide(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) (*models.Ride, error) {
	set := `status = $2`
	args := []interface{}{rideID, to, from}
	switch to {
	case models.RideStatusInProgress:
		set += `, start_time = $4`
		args = append(args, time.Now().UTC())
	case models.RideStatusCompleted:
		set += `, end_time = $4`
		args = append(args, time.Now().UTC())
	}

	query := `UPDATE rides SET ` + set + ` WHERE id = $1 AND status = $3`

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to transition ride: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to read transition result: %w", err))
	}
	if affected == 0 {
		current, getErr := r.GetRide(ctx, rideID)
		if getErr != nil {
			return nil, getErr
		}
		return nil, apperrors.InvalidTransition(
			fmt.Sprintf("cannot move ride from %s to %s: ride is %s", from, to, current.Status))
	}

	return r.GetRide(ctx, rideID)
}

// CancelRide moves any still-cancellable status to cancelled, recording
// the reason. Rides in progress or already terminal are rejected.
func (r *RideRepo) CancelRide(ctx context.Context, rideID uuid.UUID, reason string) (*models.Ride, error) {
	query := `
		UPDATE rides
		SET status = $2, cancel_reason = $3
		WHERE id = $1 AND status IN ('pending', 'accepted', 'driver_arrived')
	`

	result, err := r.db.ExecContext(ctx, query, rideID, models.RideStatusCancelled, reason)
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to cancel ride: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to read cancel result: %w", err))
	}
	if affected == 0 {
		current, getErr := r.GetRide(ctx, rideID)
		if getErr != nil {
			return nil, getErr
		}
		return nil, apperrors.InvalidTransition(
			fmt.Sprintf("cannot cancel ride with status %s", current.Status))
	}

	return r.GetRide(ctx, rideID)
}

// SetRating fills the rater's feedback slot if it is still empty
func (r *RideRepo) SetRating(ctx context.Context, rideID uuid.UUID, rater models.UserRole, rating models.Rating) error {
	var query string
	switch rater {
	case models.RolePassenger:
		query = `
			UPDATE rides
			SET passenger_rating_score = $2, passenger_rating_comment = $3
			WHERE id = $1 AND passenger_rating_score IS NULL
		`
	case models.RoleDriver:
		query = `
			UPDATE rides
			SET driver_rating_score = $2, driver_rating_comment = $3
			WHERE id = $1 AND driver_rating_score IS NULL
		`
	default:
		return apperrors.Validation(fmt.Sprintf("invalid rater role: %s", rater))
	}

	result, err := r.db.ExecContext(ctx, query, rideID, rating.Score, rating.Comment)
	if err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to set rating: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to read rating result: %w", err))
	}
	if affected == 0 {
		if _, getErr := r.GetRide(ctx, rideID); getErr != nil {
			return getErr
		}
		return apperrors.Conflict("rating already submitted")
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRide(row rowScanner) (*models.Ride, error) {
	ride := &models.Ride{}
	var driverID sql.NullString
	var originLng, originLat, destLng, destLat float64
	var originAddr, destAddr string
	var startTime, endTime sql.NullTime
	var cancelReason sql.NullString
	var passengerScore, driverScore sql.NullInt64
	var passengerComment, driverComment sql.NullString

	err := row.Scan(
		&ride.ID,
		&ride.PassengerID,
		&driverID,
		&originLng,
		&originLat,
		&originAddr,
		&destLng,
		&destLat,
		&destAddr,
		&ride.Distance,
		&ride.Duration,
		&ride.Price,
		&ride.Status,
		&ride.PaymentStatus,
		&ride.PaymentMethod,
		&startTime,
		&endTime,
		&cancelReason,
		&passengerScore,
		&passengerComment,
		&driverScore,
		&driverComment,
		&ride.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if driverID.Valid {
		id, err := uuid.Parse(driverID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid driver id in store: %w", err)
		}
		ride.DriverID = &id
	}

	ride.Origin = models.NewGeoPoint(originLng, originLat, originAddr)
	ride.Destination = models.NewGeoPoint(destLng, destLat, destAddr)

	if startTime.Valid {
		ride.StartTime = &startTime.Time
	}
	if endTime.Valid {
		ride.EndTime = &endTime.Time
	}
	if cancelReason.Valid {
		ride.CancelReason = cancelReason.String
	}
	if passengerScore.Valid {
		ride.PassengerRating = &models.Rating{
			Score:   int(passengerScore.Int64),
			Comment: passengerComment.String,
		}
	}
	if driverScore.Valid {
		ride.DriverRating = &models.Rating{
			Score:   int(driverScore.Int64),
			Comment: driverComment.String,
		}
	}

	return ride, nil
}

func collectRides(rows *sql.Rows) ([]*models.Ride, error) {
	rides := make([]*models.Ride, 0)
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to scan ride: %w", err))
		}
		rides = append(rides, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to iterate rides: %w", err))
	}
	return rides, nil
}
