package ports

import (
	"context"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

// LoginResult is the successful outcome of the login use case: the
// principal projection (hash excluded via its json tag) and a fresh token.
type LoginResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	// Login verifies credentials and mints a token. Unknown email and
	// wrong password both fail with domain.ErrNotAuthorized.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Logout revokes the given token for the rest of its lifetime.
	Logout(ctx context.Context, token string) error
}
