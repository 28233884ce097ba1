package domain

import "testing"

func TestClaims_HasAnyRole_OrSemantics(t *testing.T) {
	claims := &Claims{Roles: []string{RoleVet}}

	if !claims.HasAnyRole(RoleAdmin, RoleVet) {
		t.Fatalf("vet should pass a gate requiring admin or vet")
	}
	if claims.HasAnyRole(RoleAdmin, RoleOwner) {
		t.Fatalf("vet should not pass a gate requiring admin or owner")
	}
	if claims.HasAnyRole() {
		t.Fatalf("empty required set should never pass")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleVet, RoleOwner} {
		if !ValidRole(role) {
			t.Fatalf("%s should be valid", role)
		}
	}
	if ValidRole("superuser") {
		t.Fatalf("unknown role accepted")
	}
}
