package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/vetclinic-api/internal/api/metrics"
	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

// ClaimsKey is the echo context key under which Auth stores the verified
// *domain.Claims for downstream handlers.
const ClaimsKey = "auth_claims"

// Auth extracts the bearer token, verifies it, and rejects revoked
// tokens, then injects the claims into the request context. Expired,
// invalid, and revoked tokens all map to 401 with distinct messages.
func Auth(tokens ports.TokenService, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthRejectionsTotal.WithLabelValues("token_expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					return err
				}
				if revoked {
					metrics.AuthRejectionsTotal.WithLabelValues("token_revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
