package booking

import "testing"

func TestAdminSessionLifecycle(t *testing.T) {
	s := NewAdminSession("0921")
	if s.Authenticated() {
		t.Fatal("session must start unauthenticated")
	}
	if s.Login("0000") {
		t.Fatal("wrong credential must be refused")
	}
	if s.Authenticated() {
		t.Fatal("failed login must leave the session unauthenticated")
	}
	if !s.Login("0921") {
		t.Fatal("exact credential must be accepted")
	}
	if !s.Authenticated() {
		t.Fatal("session must be authenticated after login")
	}
	s.Logout()
	if s.Authenticated() {
		t.Fatal("logout must clear the session")
	}
	// Logout on a logged-out session is a no-op, not an error.
	s.Logout()
}

func TestAdminLoginIsCaseSensitive(t *testing.T) {
	s := NewAdminSession("Pass")
	if s.Login("pass") || s.Login("PASS") || s.Login("Pass ") {
		t.Fatal("credential comparison must be exact")
	}
	if !s.Login("Pass") {
		t.Fatal("exact credential refused")
	}
}
