package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

func apptInput(owner, date, timeSlot string) ports.AppointmentInput {
	return ports.AppointmentInput{
		Date:     date,
		Time:     timeSlot,
		DoctorID: "doctor_1",
		PetID:    "pet_1",
		OwnerID:  owner,
	}
}

func newApptFixture() (*AppointmentService, *stubApptRepo, *stubQueue) {
	repo := newStubApptRepo()
	q := &stubQueue{}
	return NewAppointmentService(repo, q, zerolog.Nop()), repo, q
}

func TestAppointmentService_Create(t *testing.T) {
	svc, _, q := newApptFixture()

	appt, err := svc.Create(context.Background(), staffClaims(), apptInput("owner_1", "2026-09-01", "10:00:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if appt.ID == "" {
		t.Fatalf("missing id")
	}

	if len(q.enqueued) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(q.enqueued))
	}
	if q.enqueued[0].Kind != ports.NotifyBooked || q.enqueued[0].AppointmentID != appt.ID {
		t.Fatalf("unexpected notification: %+v", q.enqueued[0])
	}
}

func TestAppointmentService_Create_SlotConflict(t *testing.T) {
	svc, _, _ := newApptFixture()

	if _, err := svc.Create(context.Background(), staffClaims(), apptInput("owner_1", "2026-09-01", "10:00:00")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	conflicting := apptInput("owner_2", "2026-09-01", "10:00:00")
	conflicting.PetID = "pet_2"
	if _, err := svc.Create(context.Background(), staffClaims(), conflicting); err != domain.ErrAppointmentConflict {
		t.Fatalf("expected ErrAppointmentConflict, got %v", err)
	}

	// Same time on a different day is fine.
	free := apptInput("owner_2", "2026-09-02", "10:00:00")
	if _, err := svc.Create(context.Background(), staffClaims(), free); err != nil {
		t.Fatalf("different day should be free: %v", err)
	}
}

func TestAppointmentService_Create_OwnerForOthersForbidden(t *testing.T) {
	svc, _, _ := newApptFixture()

	_, err := svc.Create(context.Background(), ownerClaims("owner_1"), apptInput("owner_2", "2026-09-01", "10:00:00"))
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if _, err := svc.Create(context.Background(), ownerClaims("owner_1"), apptInput("owner_1", "2026-09-01", "10:00:00")); err != nil {
		t.Fatalf("owner booking own appointment: %v", err)
	}
}

func TestAppointmentService_Update_SlotConflict(t *testing.T) {
	svc, _, q := newApptFixture()

	a, err := svc.Create(context.Background(), staffClaims(), apptInput("owner_1", "2026-09-01", "10:00:00"))
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	if _, err := svc.Create(context.Background(), staffClaims(), apptInput("owner_1", "2026-09-01", "11:00:00")); err != nil {
		t.Fatalf("create b: %v", err)
	}

	// Moving a onto b's slot must fail.
	if _, err := svc.Update(context.Background(), staffClaims(), a.ID, apptInput("owner_1", "2026-09-01", "11:00:00")); err != domain.ErrAppointmentConflict {
		t.Fatalf("expected ErrAppointmentConflict, got %v", err)
	}

	// Rescheduling to a free slot works and notifies.
	updated, err := svc.Update(context.Background(), staffClaims(), a.ID, apptInput("owner_1", "2026-09-01", "12:00:00"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Time != "12:00:00" {
		t.Fatalf("slot not updated: %+v", updated)
	}
	last := q.enqueued[len(q.enqueued)-1]
	if last.Kind != ports.NotifyRescheduled {
		t.Fatalf("expected rescheduled notification, got %s", last.Kind)
	}
}

func TestAppointmentService_Update_KeepingSlotIsNotAConflict(t *testing.T) {
	svc, _, _ := newApptFixture()

	a, err := svc.Create(context.Background(), staffClaims(), apptInput("owner_1", "2026-09-01", "10:00:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := apptInput("owner_1", "2026-09-01", "10:00:00")
	in.DoctorID = "doctor_2"
	updated, err := svc.Update(context.Background(), staffClaims(), a.ID, in)
	if err != nil {
		t.Fatalf("update keeping slot: %v", err)
	}
	if updated.DoctorID != "doctor_2" {
		t.Fatalf("doctor not updated: %+v", updated)
	}
}

func TestAppointmentService_OwnerScoping(t *testing.T) {
	svc, _, _ := newApptFixture()

	mine, err := svc.Create(context.Background(), staffClaims(), apptInput("owner_1", "2026-09-01", "10:00:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), staffClaims(), apptInput("owner_2", "2026-09-01", "11:00:00")); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.List(context.Background(), ownerClaims("owner_1"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].OwnerID != "owner_1" {
		t.Fatalf("owner list not scoped: %+v", list)
	}

	if _, err := svc.Get(context.Background(), ownerClaims("owner_2"), mine.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Delete(context.Background(), ownerClaims("owner_2"), mine.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}
}

func TestAppointmentService_Delete_Notifies(t *testing.T) {
	svc, _, q := newApptFixture()

	a, err := svc.Create(context.Background(), staffClaims(), apptInput("owner_1", "2026-09-01", "10:00:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Delete(context.Background(), ownerClaims("owner_1"), a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	last := q.enqueued[len(q.enqueued)-1]
	if last.Kind != ports.NotifyCancelled {
		t.Fatalf("expected cancelled notification, got %s", last.Kind)
	}
	if _, err := svc.Get(context.Background(), staffClaims(), a.ID); err != domain.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestAppointmentService_ListByPet_OwnerScoped(t *testing.T) {
	svc, _, _ := newApptFixture()

	first := apptInput("owner_1", "2026-09-01", "10:00:00")
	if _, err := svc.Create(context.Background(), staffClaims(), first); err != nil {
		t.Fatalf("create: %v", err)
	}
	second := apptInput("owner_2", "2026-09-01", "11:00:00")
	if _, err := svc.Create(context.Background(), staffClaims(), second); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := svc.ListByPet(context.Background(), staffClaims(), "pet_1")
	if err != nil {
		t.Fatalf("staff list by pet: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("staff should see both bookings, got %d", len(all))
	}

	mine, err := svc.ListByPet(context.Background(), ownerClaims("owner_1"), "pet_1")
	if err != nil {
		t.Fatalf("owner list by pet: %v", err)
	}
	if len(mine) != 1 || mine[0].OwnerID != "owner_1" {
		t.Fatalf("owner list not scoped: %+v", mine)
	}
}
