package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrida-app/corrida-backend/internal/pkg/apperrors"
	"github.com/corrida-app/corrida-backend/internal/pkg/models"
	"github.com/corrida-app/corrida-backend/services/drivers/mocks"
)

func newTestHandler(t *testing.T) (*DriversHandler, *mocks.MockDriverUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockDriverUC(ctrl)
	return NewDriversHandler(uc), uc
}

func newContext(method, path, body string, a models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", a.ID)
	c.Set("user_role", a.Role)
	return c, rec
}

func TestSetAvailabilityHandler_Online(t *testing.T) {
	h, uc := newTestHandler(t)

	a := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	uc.EXPECT().SetAvailability(gomock.Any(), a, true).
		Return(&models.DriverPresence{DriverID: a.ID, IsOnline: true}, nil)

	c, rec := newContext(http.MethodPut, "/drivers/availability", `{"is_online": true}`, a)

	require.NoError(t, h.SetAvailability(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_online":true`)
}

func TestSetAvailabilityHandler_PassengerMapsTo403(t *testing.T) {
	h, uc := newTestHandler(t)

	a := models.Actor{ID: uuid.New(), Role: models.RolePassenger}
	uc.EXPECT().SetAvailability(gomock.Any(), a, true).
		Return(nil, apperrors.Authorization("only drivers can set availability"))

	c, rec := newContext(http.MethodPut, "/drivers/availability", `{"is_online": true}`, a)

	require.NoError(t, h.SetAvailability(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateLocationHandler_Success(t *testing.T) {
	h, uc := newTestHandler(t)

	a := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	uc.EXPECT().
		UpdateLocation(gomock.Any(), a, models.LocationUpdateRequest{Latitude: -23.55, Longitude: -46.63}).
		Return(&models.DriverPresence{
			DriverID: a.ID,
			IsOnline: true,
			LastLocation: &models.Location{
				Latitude:  -23.55,
				Longitude: -46.63,
			},
		}, nil)

	c, rec := newContext(http.MethodPut, "/drivers/location", `{"latitude": -23.55, "longitude": -46.63}`, a)

	require.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateLocationHandler_ValidationMapsTo400(t *testing.T) {
	h, uc := newTestHandler(t)

	a := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	uc.EXPECT().UpdateLocation(gomock.Any(), a, gomock.Any()).
		Return(nil, apperrors.Validation("invalid location"))

	c, rec := newContext(http.MethodPut, "/drivers/location", `{"latitude": 120, "longitude": -46.63}`, a)

	require.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMyPresenceHandler_Success(t *testing.T) {
	h, uc := newTestHandler(t)

	a := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	uc.EXPECT().GetPresence(gomock.Any(), a.ID).
		Return(&models.DriverPresence{DriverID: a.ID, IsOnline: true}, nil)

	c, rec := newContext(http.MethodGet, "/drivers/me", "", a)

	require.NoError(t, h.GetMyPresence(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), a.ID.String())
}

func TestListOnlineDriversHandler_Success(t *testing.T) {
	h, uc := newTestHandler(t)

	a := models.Actor{ID: uuid.New(), Role: models.RolePassenger}
	uc.EXPECT().ListOnlineDrivers(gomock.Any()).
		Return([]*models.DriverPresence{
			{DriverID: uuid.New(), IsOnline: true},
		}, nil)

	c, rec := newContext(http.MethodGet, "/drivers/online", "", a)

	require.NoError(t, h.ListOnlineDrivers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetAvailabilityHandler_MissingAuthContext(t *testing.T) {
	h, _ := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/drivers/availability", strings.NewReader(`{"is_online": true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SetAvailability(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
