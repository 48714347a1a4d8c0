package auth

import "testing"

func TestLoginFabricatesUser(t *testing.T) {
	s := NewSession()

	if s.IsAuthenticated() {
		t.Error("fresh session should not be authenticated")
	}

	user, err := s.Login("jane@example.com", "whatever")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Errorf("Email = %q", user.Email)
	}
	if !s.IsAuthenticated() {
		t.Error("session should be authenticated after login")
	}
}

func TestLoginRequiresEmail(t *testing.T) {
	s := NewSession()
	if _, err := s.Login("  ", "pw"); err == nil {
		t.Error("blank email should fail")
	}
}

func TestSignupKeepsName(t *testing.T) {
	s := NewSession()
	user, err := s.Signup("Jane", "jane@example.com", "pw")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Name != "Jane" {
		t.Errorf("Name = %q", user.Name)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	s := NewSession()
	s.Login("jane@example.com", "pw")
	s.Logout()

	if s.IsAuthenticated() {
		t.Error("session should be cleared after logout")
	}
	if _, ok := s.User(); ok {
		t.Error("User() should report no user after logout")
	}
}
