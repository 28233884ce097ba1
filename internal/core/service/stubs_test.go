package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

// In-memory stub ports shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[id]; !ok {
		return nil, domain.ErrUserNotFound
	}
	updated := cloneUser(user)
	updated.ID = id
	r.users[id] = cloneUser(updated)
	return updated, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

type stubDenylist struct {
	revoked map[string]time.Duration
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Duration)}
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	d.revoked[tokenID] = ttl
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := d.revoked[tokenID]
	return ok, nil
}

type stubPetRepo struct {
	pets   map[string]*domain.Pet
	nextID int
}

func newStubPetRepo() *stubPetRepo {
	return &stubPetRepo{pets: make(map[string]*domain.Pet)}
}

func clonePet(p *domain.Pet) *domain.Pet {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPetRepo) FindAll(_ context.Context) ([]domain.Pet, error) {
	out := make([]domain.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPetRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Pet, error) {
	out := make([]domain.Pet, 0)
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPetRepo) FindByID(_ context.Context, id string) (*domain.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, domain.ErrPetNotFound
	}
	return clonePet(p), nil
}

func (r *stubPetRepo) Create(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	r.nextID++
	created := clonePet(pet)
	created.ID = fmt.Sprintf("pet_%d", r.nextID)
	r.pets[created.ID] = clonePet(created)
	return created, nil
}

func (r *stubPetRepo) Update(_ context.Context, id string, pet *domain.Pet) (*domain.Pet, error) {
	if _, ok := r.pets[id]; !ok {
		return nil, domain.ErrPetNotFound
	}
	updated := clonePet(pet)
	updated.ID = id
	r.pets[id] = clonePet(updated)
	return updated, nil
}

func (r *stubPetRepo) Delete(_ context.Context, id string) (*domain.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, domain.ErrPetNotFound
	}
	delete(r.pets, id)
	return p, nil
}

type stubApptRepo struct {
	appts  map[string]*domain.Appointment
	nextID int
}

func newStubApptRepo() *stubApptRepo {
	return &stubApptRepo{appts: make(map[string]*domain.Appointment)}
}

func cloneAppt(a *domain.Appointment) *domain.Appointment {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubApptRepo) FindAll(_ context.Context) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, 0, len(r.appts))
	for _, a := range r.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubApptRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return cloneAppt(a), nil
}

func (r *stubApptRepo) FindBySlot(_ context.Context, date, timeSlot string) (*domain.Appointment, error) {
	for _, a := range r.appts {
		if a.Date == date && a.Time == timeSlot {
			return cloneAppt(a), nil
		}
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubApptRepo) FindByPet(_ context.Context, petID string) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, 0)
	for _, a := range r.appts {
		if a.PetID == petID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubApptRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, 0)
	for _, a := range r.appts {
		if a.OwnerID == ownerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.nextID++
	created := cloneAppt(appt)
	created.ID = fmt.Sprintf("appt_%d", r.nextID)
	r.appts[created.ID] = cloneAppt(created)
	return created, nil
}

func (r *stubApptRepo) Update(_ context.Context, id string, appt *domain.Appointment) (*domain.Appointment, error) {
	if _, ok := r.appts[id]; !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	updated := cloneAppt(appt)
	updated.ID = id
	r.appts[id] = cloneAppt(updated)
	return updated, nil
}

func (r *stubApptRepo) Delete(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	delete(r.appts, id)
	return a, nil
}

type stubQueue struct {
	enqueued []ports.Notification
}

func (q *stubQueue) Enqueue(n ports.Notification) {
	q.enqueued = append(q.enqueued, n)
}
