package api

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"mokkilicores-api/internal/service"
)

// RequireToken validates the bearer token and stores the parsed claims in the
// request context. Missing or invalid tokens yield 401.
func RequireToken(tokens *service.TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokens.Parse(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		},
	})
}

// RequireRoles rejects callers whose role claim is not in the allowed set.
// Must run after RequireToken.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized)
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden)
		}
	}
}

// ClaimsFrom returns the parsed claims for the current request, or nil on routes
// that carry no token middleware.
func ClaimsFrom(c echo.Context) *service.AuthClaims {
	claims, _ := c.Get("user").(*service.AuthClaims)
	return claims
}
