package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

// AppointmentService implements booking CRUD. A date+time slot can hold
// at most one appointment across the clinic. Owner-only principals are
// confined to bookings they own and to booking for themselves.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	queue  ports.NotificationQueue
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, queue ports.NotificationQueue, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, queue: queue, logger: logger}
}

func (s *AppointmentService) List(ctx context.Context, actor *domain.Claims) ([]domain.Appointment, error) {
	if ownerOnly(actor) {
		return s.repo.FindByOwner(ctx, actor.UserID)
	}
	return s.repo.FindAll(ctx)
}

func (s *AppointmentService) Get(ctx context.Context, actor *domain.Claims, id string) (*domain.Appointment, error) {
	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerOnly(actor) && appt.OwnerID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return appt, nil
}

func (s *AppointmentService) ListByPet(ctx context.Context, actor *domain.Claims, petID string) ([]domain.Appointment, error) {
	appts, err := s.repo.FindByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	if !ownerOnly(actor) {
		return appts, nil
	}
	scoped := make([]domain.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.OwnerID == actor.UserID {
			scoped = append(scoped, a)
		}
	}
	return scoped, nil
}

func (s *AppointmentService) Create(ctx context.Context, actor *domain.Claims, input ports.AppointmentInput) (*domain.Appointment, error) {
	if input.Date == "" || input.Time == "" || input.DoctorID == "" || input.PetID == "" || input.OwnerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if ownerOnly(actor) && input.OwnerID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	if _, err := s.repo.FindBySlot(ctx, input.Date, input.Time); err == nil {
		return nil, domain.ErrAppointmentConflict
	} else if err != domain.ErrAppointmentNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	appt := &domain.Appointment{
		Date:      input.Date,
		Time:      input.Time,
		DoctorID:  input.DoctorID,
		PetID:     input.PetID,
		OwnerID:   input.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}

	s.notify(created, ports.NotifyBooked)
	s.logger.Info().Str("appointment_id", created.ID).Str("date", created.Date).Str("time", created.Time).Msg("appointment booked")
	return created, nil
}

func (s *AppointmentService) Update(ctx context.Context, actor *domain.Claims, id string, input ports.AppointmentInput) (*domain.Appointment, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerOnly(actor) && existing.OwnerID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	// Moving to a new slot must not land on an occupied one.
	if input.Date != existing.Date || input.Time != existing.Time {
		if taken, err := s.repo.FindBySlot(ctx, input.Date, input.Time); err == nil && taken.ID != id {
			return nil, domain.ErrAppointmentConflict
		} else if err != nil && err != domain.ErrAppointmentNotFound {
			return nil, err
		}
	}

	appt := &domain.Appointment{
		ID:        existing.ID,
		Date:      input.Date,
		Time:      input.Time,
		DoctorID:  input.DoctorID,
		PetID:     input.PetID,
		OwnerID:   input.OwnerID,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, id, appt)
	if err != nil {
		return nil, err
	}

	s.notify(updated, ports.NotifyRescheduled)
	return updated, nil
}

func (s *AppointmentService) Delete(ctx context.Context, actor *domain.Claims, id string) (*domain.Appointment, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerOnly(actor) && existing.OwnerID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notify(deleted, ports.NotifyCancelled)
	s.logger.Info().Str("appointment_id", id).Msg("appointment cancelled")
	return deleted, nil
}

func (s *AppointmentService) notify(appt *domain.Appointment, kind string) {
	if s.queue == nil {
		return
	}
	s.queue.Enqueue(ports.Notification{
		AppointmentID: appt.ID,
		Kind:          kind,
		Date:          appt.Date,
		Time:          appt.Time,
		PetID:         appt.PetID,
		OwnerID:       appt.OwnerID,
	})
}
