package ports

import (
	"context"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

type CreateUserInput struct {
	Name     string
	Lastname string
	Email    string
	Address  string
	Phone    string
	Roles    []string
	Password string
}

// UpdateUserInput deliberately has no password field: password changes go
// through ChangePassword so the stored hash is never clobbered by a
// profile update.
type UpdateUserInput struct {
	Name     string
	Lastname string
	Email    string
	Address  string
	Phone    string
	Roles    []string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	Delete(ctx context.Context, id string) (*domain.User, error)
}
