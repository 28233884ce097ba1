package ports

import (
	"context"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

// PetRepository persists pets. Absence is domain.ErrPetNotFound.
type PetRepository interface {
	FindAll(ctx context.Context) ([]domain.Pet, error)
	FindByID(ctx context.Context, id string) (*domain.Pet, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error)
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	Update(ctx context.Context, id string, pet *domain.Pet) (*domain.Pet, error)
	Delete(ctx context.Context, id string) (*domain.Pet, error)
}
