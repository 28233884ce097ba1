package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

// UserService implements account CRUD plus the explicit password-change
// flow. Profile updates never touch the stored hash.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || len(input.Roles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, role := range input.Roles {
		if !domain.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := domain.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Lastname:     input.Lastname,
		Email:        input.Email,
		Address:      input.Address,
		Phone:        input.Phone,
		Roles:        input.Roles,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user created")
	return created, nil
}

// Update replaces the profile fields. The password hash is carried over
// from the stored record untouched; changing it requires ChangePassword.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	for _, role := range input.Roles {
		if !domain.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           existing.ID,
		Name:         input.Name,
		Lastname:     input.Lastname,
		Email:        input.Email,
		Address:      input.Address,
		Phone:        input.Phone,
		Roles:        input.Roles,
		PasswordHash: existing.PasswordHash,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}

	return s.repo.Update(ctx, id, user)
}

// ChangePassword verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CheckPassword(currentPassword, user.PasswordHash) {
		return domain.ErrNotAuthorized
	}

	hash, err := domain.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()

	if _, err := s.repo.Update(ctx, id, user); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("password changed")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return deleted, nil
}
