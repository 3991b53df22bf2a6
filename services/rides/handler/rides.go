package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/corrida-app/corrida-backend/internal/pkg/middleware"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
	"github.com/corrida-app/corrida-backend/internal/utils"
	"github.com/corrida-app/corrida-backend/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{rideUC: rideUC}
}

func actor(c echo.Context) (models.Actor, error) {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return models.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return a, nil
}

func rideIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("rideID"))
}

// CreateRide handles a passenger's ride request
func (h *RidesHandler) CreateRide(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), a, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested successfully", ride)
}

// GetRide returns a single ride to one of its participants
func (h *RidesHandler) GetRide(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), a, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", ride)
}

// ListMyRides returns the caller's ride history
func (h *RidesHandler) ListMyRides(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	list, err := h.rideUC.ListMyRides(c.Request().Context(), a)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListAvailableRides returns every pending ride to an eligible driver
func (h *RidesHandler) ListAvailableRides(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	list, err := h.rideUC.ListAvailableRides(c.Request().Context(), a)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// AcceptRide lets a driver claim a pending ride
func (h *RidesHandler) AcceptRide(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.AcceptRide(c.Request().Context(), a, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted successfully", ride)
}

// MarkArrived records the driver's arrival at the pickup point
func (h *RidesHandler) MarkArrived(c echo.Context) error {
	return h.transition(c, h.rideUC.MarkArrived, "Arrival recorded")
}

// StartRide starts the trip
func (h *RidesHandler) StartRide(c echo.Context) error {
	return h.transition(c, h.rideUC.StartRide, "Trip started successfully")
}

// CompleteRide completes the trip
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	return h.transition(c, h.rideUC.CompleteRide, "Trip completed successfully")
}

func (h *RidesHandler) transition(
	c echo.Context,
	fn func(ctx context.Context, a models.Actor, id uuid.UUID) (*models.Ride, error),
	message string,
) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := fn(c.Request().Context(), a, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, ride)
}

// CancelRide cancels a ride that has not yet started
func (h *RidesHandler) CancelRide(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.CancelRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.CancelRide(c.Request().Context(), a, rideID, req.Reason)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// RateRide records post-ride feedback from either participant
func (h *RidesHandler) RateRide(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.RateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.RateRide(c.Request().Context(), a, rideID, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rating recorded", ride)
}
