package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every HTTP request with latency and status
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				Int("status", c.Response().Status),
				String("client_ip", c.RealIP()),
				String("user_id", userID),
				Duration("latency", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, Err(err))
				logger.Warn("http request failed", fields...)
				return err
			}

			logger.Info("http request", fields...)
			return nil
		}
	}
}
