package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/corrida-app/corrida-backend/internal/pkg/jwt"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
	"github.com/corrida-app/corrida-backend/internal/utils"
)

// Middleware bundles the service's HTTP middleware with its configuration
type Middleware struct {
	cfg *models.Config
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(cfg *models.Config) *Middleware {
	return &Middleware{cfg: cfg}
}

// JWTAuthHandler authenticates requests with a Bearer token and places
// the actor's id and role into the echo context.
func (m *Middleware) JWTAuthHandler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.JWT.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDClaim, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}
			roleClaim, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDClaim))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			role, err := models.ParseRole(fmt.Sprintf("%v", roleClaim))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: unknown role")
			}

			c.Set("user_id", userID)
			c.Set("user_role", role)

			return next(c)
		}
	}
}

// ActorFromContext rebuilds the authenticated actor placed by JWTAuthHandler
func ActorFromContext(c echo.Context) (models.Actor, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return models.Actor{}, false
	}
	role, ok := c.Get("user_role").(models.UserRole)
	if !ok {
		return models.Actor{}, false
	}
	return models.Actor{ID: userID, Role: role}, true
}
