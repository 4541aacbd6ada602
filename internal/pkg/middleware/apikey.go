package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabdispatch/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// APIKeyAuth validates the API key for service-to-service calls against the configured
// service keys. When allowedServices is empty any configured service is accepted.
func APIKeyAuth(keys map[string]string, allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			service, ok := matchAPIKey(keys, apiKey, allowedServices)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			c.Set("api_service", service)
			return next(c)
		}
	}
}

func matchAPIKey(keys map[string]string, apiKey string, allowed []string) (string, bool) {
	candidates := allowed
	if len(candidates) == 0 {
		for service := range keys {
			candidates = append(candidates, service)
		}
	}
	for _, service := range candidates {
		expected := keys[service]
		if expected != "" && subtle.ConstantTimeCompare([]byte(expected), []byte(apiKey)) == 1 {
			return service, true
		}
	}
	return "", false
}
