package ports

import (
	"context"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

type PetInput struct {
	Name    string
	Species string
	Breed   string
	Size    string
	Age     int
	OwnerID string
}

// PetService scopes reads for owner-only principals to their own pets;
// staff roles see everything. The actor comes from the verified claims
// attached by the auth middleware.
type PetService interface {
	List(ctx context.Context, actor *domain.Claims) ([]domain.Pet, error)
	Get(ctx context.Context, actor *domain.Claims, id string) (*domain.Pet, error)
	Create(ctx context.Context, input PetInput) (*domain.Pet, error)
	Update(ctx context.Context, id string, input PetInput) (*domain.Pet, error)
	Delete(ctx context.Context, id string) (*domain.Pet, error)
}
