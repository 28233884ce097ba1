package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string           `json:"error"`
	Fields []FieldViolation `json:"fields,omitempty"`
}

// --- Request types ---
// Constraints mirror the registration rules the clinic always enforced:
// a 10-digit phone, at least one role from the closed set, a password of
// six characters or more. All payloads are strict: undeclared keys fail
// validation.

type createUserRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Lastname string   `json:"lastname" validate:"required"`
	Email    string   `json:"email"    validate:"required,email"`
	Address  string   `json:"address"  validate:"required"`
	Phone    string   `json:"phone"    validate:"required,numeric,len=10"`
	Roles    []string `json:"roles"    validate:"required,min=1,dive,oneof=admin vet owner"`
	Password string   `json:"password" validate:"required,min=6"`
}

// updateUserRequest has no password field: a password change is its own
// flow with its own hashing step.
type updateUserRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Lastname string   `json:"lastname" validate:"required"`
	Email    string   `json:"email"    validate:"required,email"`
	Address  string   `json:"address"  validate:"required"`
	Phone    string   `json:"phone"    validate:"required,numeric,len=10"`
	Roles    []string `json:"roles"    validate:"required,min=1,dive,oneof=admin vet owner"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
