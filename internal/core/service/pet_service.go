package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

// PetService implements pet CRUD. Principals holding only the owner role
// are confined to their own pets; the route-level role gate has already
// run, so staff roles pass through unscoped.
type PetService struct {
	repo   ports.PetRepository
	logger zerolog.Logger
}

func NewPetService(repo ports.PetRepository, logger zerolog.Logger) *PetService {
	return &PetService{repo: repo, logger: logger}
}

// ownerOnly reports whether the actor has no staff role.
func ownerOnly(actor *domain.Claims) bool {
	return actor != nil && !actor.HasAnyRole(domain.RoleAdmin, domain.RoleVet)
}

func (s *PetService) List(ctx context.Context, actor *domain.Claims) ([]domain.Pet, error) {
	if ownerOnly(actor) {
		return s.repo.FindByOwner(ctx, actor.UserID)
	}
	return s.repo.FindAll(ctx)
}

func (s *PetService) Get(ctx context.Context, actor *domain.Claims, id string) (*domain.Pet, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerOnly(actor) && pet.OwnerID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return pet, nil
}

func (s *PetService) Create(ctx context.Context, input ports.PetInput) (*domain.Pet, error) {
	if input.Name == "" || input.Species == "" || input.OwnerID == "" || input.Age < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	pet := &domain.Pet{
		Name:      input.Name,
		Species:   input.Species,
		Breed:     input.Breed,
		Size:      input.Size,
		Age:       input.Age,
		OwnerID:   input.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, pet)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("pet_id", created.ID).Str("owner_id", created.OwnerID).Msg("pet registered")
	return created, nil
}

func (s *PetService) Update(ctx context.Context, id string, input ports.PetInput) (*domain.Pet, error) {
	if input.Age < 0 {
		return nil, domain.ErrInvalidInput
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pet := &domain.Pet{
		ID:        existing.ID,
		Name:      input.Name,
		Species:   input.Species,
		Breed:     input.Breed,
		Size:      input.Size,
		Age:       input.Age,
		OwnerID:   input.OwnerID,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	return s.repo.Update(ctx, id, pet)
}

func (s *PetService) Delete(ctx context.Context, id string) (*domain.Pet, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("pet_id", id).Msg("pet removed")
	return deleted, nil
}
