package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/corrida-app/corrida-backend/internal/pkg/middleware"
	"github.com/corrida-app/corrida-backend/services/rides"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *RidesHandler
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC) *Handler {
	return &Handler{
		ridesHTTP: NewRidesHandler(rideUC),
	}
}

// RegisterRoutes registers all ride HTTP routes behind JWT auth
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/rides", mw.JWTAuthHandler())

	group.POST("", h.ridesHTTP.CreateRide)
	group.GET("", h.ridesHTTP.ListMyRides)
	group.GET("/available", h.ridesHTTP.ListAvailableRides)
	group.GET("/:rideID", h.ridesHTTP.GetRide)
	group.POST("/:rideID/accept", h.ridesHTTP.AcceptRide)
	group.POST("/:rideID/arrived", h.ridesHTTP.MarkArrived)
	group.POST("/:rideID/start", h.ridesHTTP.StartRide)
	group.POST("/:rideID/complete", h.ridesHTTP.CompleteRide)
	group.POST("/:rideID/cancel", h.ridesHTTP.CancelRide)
	group.POST("/:rideID/rate", h.ridesHTTP.RateRide)
}
