package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/cabdispatch/internal/pkg/jwt"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/piresc/cabdispatch/internal/utils"
)

// JWTAuth protects user-facing routes. On success "user_id" and "role" are set on the context.
func JWTAuth(cfg models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.Secret),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwtpkg.Claims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*jwtpkg.Claims)
			if !ok {
				return
			}
			if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
				return
			}
			identity, err := claims.Identity()
			if err != nil {
				return
			}
			c.Set("user_id", identity.UserID)
			c.Set("role", identity.Role)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or missing token")
		},
	})
}

// RequireIdentity rejects requests whose token verified but carried no usable identity
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				return utils.UnauthorizedResponse(c, "Invalid token claims")
			}
			return next(c)
		}
	}
}

// IdentityFrom reads the identity set by JWTAuth
func IdentityFrom(c echo.Context) (models.Identity, bool) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return models.Identity{}, false
	}
	return models.Identity{UserID: userID, Role: role}, true
}
