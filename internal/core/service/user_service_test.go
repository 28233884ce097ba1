package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

func validCreateInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:     "Alice",
		Lastname: "Smith",
		Email:    "alice@example.com",
		Address:  "123 Main St",
		Phone:    "1234567890",
		Roles:    []string{domain.RoleOwner},
		Password: "s3cret-pass",
	}
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	user, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Fatalf("password stored in plaintext")
	}
	if !domain.CheckPassword("s3cret-pass", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), validCreateInput()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), validCreateInput()); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	noRoles := validCreateInput()
	noRoles.Roles = nil
	if _, err := svc.Create(context.Background(), noRoles); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty roles, got %v", err)
	}

	badRole := validCreateInput()
	badRole.Roles = []string{"superuser"}
	if _, err := svc.Create(context.Background(), badRole); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestUserService_Update_PreservesPasswordHash(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name:     "Alicia",
		Lastname: "Smith",
		Email:    "alicia@example.com",
		Address:  "456 Oak Ave",
		Phone:    "0987654321",
		Roles:    []string{domain.RoleOwner, domain.RoleVet},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Alicia" || updated.Email != "alicia@example.com" {
		t.Fatalf("profile fields not updated: %+v", updated)
	}
	if updated.PasswordHash != created.PasswordHash {
		t.Fatalf("update changed the password hash")
	}
	if !domain.CheckPassword("s3cret-pass", updated.PasswordHash) {
		t.Fatalf("original password no longer verifies after update")
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "ghost", ports.UpdateUserInput{Roles: []string{domain.RoleOwner}})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), created.ID, "s3cret-pass", "brand-new-pass"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !domain.CheckPassword("brand-new-pass", stored.PasswordHash) {
		t.Fatalf("new password does not verify")
	}
	if domain.CheckPassword("s3cret-pass", stored.PasswordHash) {
		t.Fatalf("old password still verifies")
	}
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.ChangePassword(context.Background(), created.ID, "wrong-current", "brand-new-pass")
	if err != domain.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("unexpected deleted record: %+v", deleted)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
