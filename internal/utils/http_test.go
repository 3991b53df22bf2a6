package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrida-app/corrida-backend/internal/pkg/apperrors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	err := SuccessResponse(c, http.StatusCreated, "Ride requested successfully", map[string]string{"id": "abc"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Ride requested successfully", body.Message)
}

func TestAppErrorResponse_KindMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", apperrors.Validation("bad input"), http.StatusBadRequest},
		{"authorization", apperrors.Authorization("not yours"), http.StatusForbidden},
		{"not found", apperrors.NotFound("ride not found"), http.StatusNotFound},
		{"conflict", apperrors.Conflict("already taken"), http.StatusConflict},
		{"invalid transition", apperrors.InvalidTransition("wrong order"), http.StatusUnprocessableEntity},
		{"store unavailable", apperrors.StoreUnavailable(errors.New("down")), http.StatusServiceUnavailable},
		{"untagged", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, AppErrorResponse(c, tt.err))
			assert.Equal(t, tt.code, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestUnauthorizedResponse_DefaultMessage(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, UnauthorizedResponse(c, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}
