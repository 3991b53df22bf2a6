package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corrida-app/corrida-backend/internal/pkg/middleware"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
	"github.com/corrida-app/corrida-backend/internal/utils"
	"github.com/corrida-app/corrida-backend/services/drivers"
)

// DriversHandler handles HTTP requests for the driver registry
type DriversHandler struct {
	driverUC drivers.DriverUC
}

// NewDriversHandler creates a new driver HTTP handler
func NewDriversHandler(driverUC drivers.DriverUC) *DriversHandler {
	return &DriversHandler{driverUC: driverUC}
}

// SetAvailability toggles the calling driver's online flag
func (h *DriversHandler) SetAvailability(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	presence, err := h.driverUC.SetAvailability(c.Request().Context(), a, req.IsOnline)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", presence)
}

// UpdateLocation reports the calling driver's current position
func (h *DriversHandler) UpdateLocation(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	presence, err := h.driverUC.UpdateLocation(c.Request().Context(), a, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", presence)
}

// GetMyPresence returns the calling driver's own presence record
func (h *DriversHandler) GetMyPresence(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	presence, err := h.driverUC.GetPresence(c.Request().Context(), a.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", presence)
}

// ListOnlineDrivers snapshots every currently-online driver
func (h *DriversHandler) ListOnlineDrivers(c echo.Context) error {
	if _, ok := middleware.ActorFromContext(c); !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	online, err := h.driverUC.ListOnlineDrivers(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", online)
}
