package utils

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabdispatch/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusUnauthorized, orDefault(errorMessage, "Unauthorized"))
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusForbidden, orDefault(errorMessage, "Forbidden"))
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusNotFound, orDefault(errorMessage, "Resource not found"))
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, orDefault(errorMessage, "Internal server error"))
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, orDefault(errorMessage, "Service unavailable"))
}

// DomainErrorResponse maps a domain error to its HTTP status
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidCoordinates),
		errors.Is(err, models.ErrInvalidBounds),
		errors.Is(err, models.ErrInvalidRadius),
		errors.Is(err, models.ErrInvalidGeofence),
		errors.Is(err, models.ErrMissingField):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrForbiddenRole):
		return ForbiddenResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, "")
	}
}

// QueryFloat parses a required float query parameter
func QueryFloat(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", models.ErrMissingField, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not a number", models.ErrInvalidCoordinates, name)
	}
	return v, nil
}

// QueryFloatDefault parses an optional float query parameter
func QueryFloatDefault(c echo.Context, name string, def float64) (float64, error) {
	if c.QueryParam(name) == "" {
		return def, nil
	}
	return QueryFloat(c, name)
}

// QueryIntDefault parses an optional integer query parameter
func QueryIntDefault(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", models.ErrMissingField, name)
	}
	return v, nil
}

// QueryCoordinates parses and validates the lat/lng query parameters
func QueryCoordinates(c echo.Context) (models.Coordinates, error) {
	lat, err := QueryFloat(c, "lat")
	if err != nil {
		return models.Coordinates{}, err
	}
	lng, err := QueryFloat(c, "lng")
	if err != nil {
		return models.Coordinates{}, err
	}
	point := models.Coordinates{Latitude: lat, Longitude: lng}
	return point, point.Validate()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
