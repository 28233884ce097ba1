package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
)

type stubAuthService struct {
	result      *ports.LoginResult
	loginErr    error
	logoutErr   error
	gotEmail    string
	gotPassword string
	gotToken    string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.LoginResult, error) {
	s.gotEmail = email
	s.gotPassword = password
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.result, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.gotToken = token
	return s.logoutErr
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	svc := &stubAuthService{result: &ports.LoginResult{
		User: &domain.User{
			ID:    "user_1",
			Email: "alice@example.com",
			Name:  "Alice",
			Roles: []string{domain.RoleOwner},
		},
		Token: "signed-token",
	}}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, `{"email":"alice@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotEmail != "alice@example.com" || svc.gotPassword != "secret1" {
		t.Fatalf("credentials not forwarded: %s / %s", svc.gotEmail, svc.gotPassword)
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID           string `json:"id"`
			Email        string `json:"email"`
			PasswordHash string `json:"password_hash"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token: %s", resp.Token)
	}
	if resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	// The password hash never crosses the wire.
	if resp.User.PasswordHash != "" || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaked password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrNotAuthorized}
	h := NewAuthHandler(svc)

	c, _ := newAuthContext(t, `{"email":"alice@example.com","password":"wrong1"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, `{}`)
	err := h.Login(c)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Violations) != 2 {
		t.Fatalf("expected violations for email and password, got %v", ve.Violations)
	}
	if ve.Violations[0].Field != "email" || ve.Violations[1].Field != "password" {
		t.Fatalf("unexpected violation order: %v", ve.Violations)
	}
}

func TestAuthHandler_LoginRejectsUnknownField(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, `{"email":"a@b.com","password":"secret1","admin":true}`)
	err := h.Login(c)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Violations[0].Field != "admin" {
		t.Fatalf("violation should name the unknown field, got %v", ve.Violations)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer signed-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.gotToken != "signed-token" {
		t.Fatalf("token not forwarded: %s", svc.gotToken)
	}
}

func TestAuthHandler_LogoutMissingHeader(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
