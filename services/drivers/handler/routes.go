package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/corrida-app/corrida-backend/internal/pkg/middleware"
	"github.com/corrida-app/corrida-backend/services/drivers"
)

// Handler combines all handlers for the drivers service
type Handler struct {
	driversHTTP *DriversHandler
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC) *Handler {
	return &Handler{
		driversHTTP: NewDriversHandler(driverUC),
	}
}

// RegisterRoutes registers all driver HTTP routes behind JWT auth
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/drivers", mw.JWTAuthHandler())

	group.PUT("/availability", h.driversHTTP.SetAvailability)
	group.PUT("/location", h.driversHTTP.UpdateLocation)
	group.GET("/me", h.driversHTTP.GetMyPresence)
	group.GET("/online", h.driversHTTP.ListOnlineDrivers)
}
