package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/vetclinic-api/internal/api/middleware"
	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

// ctxClaims extracts the verified claims the Auth middleware attached.
// Their presence proves the middleware ran; a route wired without it is
// a misconfiguration surfaced as 401, never a nil dereference.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// isSelf reports whether the authenticated principal is the user the
// route targets. Self-access routes (own profile, own password) accept
// either a staff role or the subject itself.
func isSelf(claims *domain.Claims, userID string) bool {
	return claims != nil && claims.UserID == userID
}
