package ports

import (
	"context"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
)

// AppointmentRepository persists bookings. Absence is
// domain.ErrAppointmentNotFound.
type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// FindBySlot returns the appointment occupying the exact date+time
	// slot, or ErrAppointmentNotFound when the slot is free.
	FindBySlot(ctx context.Context, date, timeSlot string) (*domain.Appointment, error)
	FindByPet(ctx context.Context, petID string) ([]domain.Appointment, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, id string, appt *domain.Appointment) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) (*domain.Appointment, error)
}
