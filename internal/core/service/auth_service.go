package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

// AuthService implements the login and logout use cases.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	denylist ports.TokenDenylist
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, denylist ports.TokenDenylist, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, denylist: denylist, logger: logger}
}

// Login looks up the credential record by email and verifies the
// password. Both failure halves collapse to ErrNotAuthorized so the
// response carries no signal about which one was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrNotAuthorized
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrNotAuthorized
		}
		return nil, err
	}

	if !domain.CheckPassword(password, user.PasswordHash) {
		s.logger.Info().Str("user_id", user.ID).Msg("login rejected")
		return nil, domain.ErrNotAuthorized
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return &ports.LoginResult{User: user, Token: token}, nil
}

// Logout revokes the token's jti for its remaining lifetime. An already
// expired or garbled token has nothing to revoke and fails verification
// the same way the auth middleware would.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return domain.ErrTokenExpired
	}

	if err := s.denylist.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", claims.UserID).Str("token_id", claims.TokenID).Msg("token revoked")
	return nil
}
