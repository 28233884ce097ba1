package ports

import (
	"context"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

// UserRepository persists clinic accounts. Absence is reported as
// domain.ErrUserNotFound, never as a nil-without-error.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
