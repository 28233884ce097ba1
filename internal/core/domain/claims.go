package domain

import "time"

// Claims is the verified payload carried inside an access token. It is
// the request-scoped identity downstream handlers rely on; it is derived
// from a User at issuance and never mutated afterwards.
type Claims struct {
	UserID    string
	Email     string
	Roles     []string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasAnyRole reports whether the claims carry at least one of the given
// roles. Authorization is an OR over the required set, not an AND.
func (c *Claims) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range c.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
