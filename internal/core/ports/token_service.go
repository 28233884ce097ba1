package ports

import "github.com/vetclinic/vetclinic-api/internal/core/domain"

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService interface {
	// Issue signs a token carrying the user's id, email and roles plus a
	// unique token id, valid for the service's configured TTL.
	Issue(user *domain.User) (string, error)
	// Verify checks signature and expiry and returns the embedded claims.
	// It fails with domain.ErrTokenExpired past the validity window and
	// domain.ErrTokenInvalid on any signature or encoding problem.
	Verify(token string) (*domain.Claims, error)
}
