package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService signs and verifies HS256 access tokens. The secret is
// injected once at construction and read-only afterwards, so concurrent
// use needs no synchronization.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for the user. Each token carries a unique jti so a
// logout can revoke it individually.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"roles": user.Roles,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, distinguishing expiry from every
// other failure so the transport layer can report them separately.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	raw := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return claimsFromMap(raw)
}

// claimsFromMap converts raw JWT claims into the typed domain form. A
// structurally valid signature over a malformed claim set is still an
// invalid token.
func claimsFromMap(raw jwt.MapClaims) (*domain.Claims, error) {
	sub, _ := raw["sub"].(string)
	email, _ := raw["email"].(string)
	jti, _ := raw["jti"].(string)
	if sub == "" || jti == "" {
		return nil, domain.ErrTokenInvalid
	}

	rawRoles, _ := raw["roles"].([]interface{})
	roles := make([]string, 0, len(rawRoles))
	for _, r := range rawRoles {
		role, ok := r.(string)
		if !ok {
			return nil, domain.ErrTokenInvalid
		}
		roles = append(roles, role)
	}

	iat, err := raw.GetIssuedAt()
	if err != nil || iat == nil {
		return nil, domain.ErrTokenInvalid
	}
	exp, err := raw.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Claims{
		UserID:    sub,
		Email:     email,
		Roles:     roles,
		TokenID:   jti,
		IssuedAt:  iat.Time,
		ExpiresAt: exp.Time,
	}, nil
}
