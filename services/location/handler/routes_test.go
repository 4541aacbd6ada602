package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/cabdispatch/internal/pkg/jwt"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT:       models.JWTConfig{Secret: "routes-secret", Expiration: 5, Issuer: "cabdispatch"},
		Location:  models.LocationConfig{DefaultSearchRadiusKm: 5},
		RateLimit: models.RateLimitConfig{Limit: 1, Period: time.Minute},
	}
}

func TestRegisterRoutes_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	e := echo.New()
	NewHTTPHandler(mocks.NewMockLocationUC(ctrl), mocks.NewMockGeofenceUC(ctrl), cfg).RegisterRoutes(e, nil)

	for _, path := range []string{"/api/v1/geofences", "/api/v1/drivers/nearby?lat=1&lng=1", "/api/v1/heatmap"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRegisterRoutes_Authenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	geofenceUC := mocks.NewMockGeofenceUC(ctrl)
	geofenceUC.EXPECT().ListActive(gomock.Any()).Return([]models.Geofence{})

	e := echo.New()
	NewHTTPHandler(mocks.NewMockLocationUC(ctrl), geofenceUC, cfg).RegisterRoutes(e, nil)

	token, _, err := jwtpkg.GenerateToken("cust-1", "customer", cfg.JWT)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geofences", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRoutes_LocationUpdateRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer redisClient.Close()

	cfg := testConfig()
	locationUC := mocks.NewMockLocationUC(ctrl)
	locationUC.EXPECT().
		UpdateDriverLocation(gomock.Any(), gomock.Any()).
		Return(&models.DriverPresence{DriverID: "driver-1"}, nil).
		Times(1)

	e := echo.New()
	NewHTTPHandler(locationUC, mocks.NewMockGeofenceUC(ctrl), cfg).RegisterRoutes(e, redisClient)

	token, _, err := jwtpkg.GenerateToken("driver-1", "driver", cfg.JWT)
	require.NoError(t, err)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/location/update", strings.NewReader(`{"lat":13,"lng":80.2}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}
