package ports

import (
	"context"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

type AppointmentInput struct {
	Date     string
	Time     string
	DoctorID string
	PetID    string
	OwnerID  string
}

// AppointmentService scopes owner-only principals to their own bookings,
// mirroring PetService.
type AppointmentService interface {
	List(ctx context.Context, actor *domain.Claims) ([]domain.Appointment, error)
	Get(ctx context.Context, actor *domain.Claims, id string) (*domain.Appointment, error)
	ListByPet(ctx context.Context, actor *domain.Claims, petID string) ([]domain.Appointment, error)
	Create(ctx context.Context, actor *domain.Claims, input AppointmentInput) (*domain.Appointment, error)
	Update(ctx context.Context, actor *domain.Claims, id string, input AppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, actor *domain.Claims, id string) (*domain.Appointment, error)
}
