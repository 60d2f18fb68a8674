package app

import (
	"errors"
	"testing"
)

func TestSessionLogin(t *testing.T) {
	s := NewSession()
	if s.View() != ViewLogin {
		t.Fatalf("expected login view, got %q", s.View())
	}

	if err := s.Login("", "secret"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	flash, ok := s.Flash()
	if !ok || flash.Kind != FlashDanger || flash.Message != FlashLoginMissing {
		t.Fatalf("unexpected flash %#v", flash)
	}
	if s.View() != ViewLogin {
		t.Fatalf("failed login must stay on login, got %q", s.View())
	}

	if err := s.Login(" ana ", "x"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if s.View() != ViewDashboard || s.Username() != "ana" {
		t.Fatalf("unexpected session state view=%q user=%q", s.View(), s.Username())
	}
	flash, ok = s.Flash()
	if !ok || flash.Kind != FlashSuccess {
		t.Fatalf("expected success flash, got %#v", flash)
	}
	s.DismissFlash()
	if _, ok := s.Flash(); ok {
		t.Fatal("expected flash dismissed")
	}

	s.Logout()
	if s.View() != ViewLogin || s.Username() != "" {
		t.Fatalf("unexpected state after logout view=%q user=%q", s.View(), s.Username())
	}
}

func TestSessionLoginWhitespaceUsername(t *testing.T) {
	s := NewSession()
	if err := s.Login("   ", "pw"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if s.View() != ViewDashboard || s.Username() != "   " {
		t.Fatalf("unexpected session state view=%q user=%q", s.View(), s.Username())
	}

	s = NewSession()
	if err := s.Login("ana", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestSessionSignup(t *testing.T) {
	cases := []struct {
		name     string
		in       SignupInput
		wantErr  error
		wantView View
	}{
		{
			name:     "mismatch wins over missing fields",
			in:       SignupInput{Password: "a", ConfirmPassword: "b"},
			wantErr:  ErrPasswordMismatch,
			wantView: ViewSignup,
		},
		{
			name:     "missing username is a no-op",
			in:       SignupInput{Password: "a", ConfirmPassword: "a"},
			wantErr:  ErrMissingCredentials,
			wantView: ViewSignup,
		},
		{
			name:     "empty passwords are a no-op",
			in:       SignupInput{Username: "ana"},
			wantErr:  ErrMissingCredentials,
			wantView: ViewSignup,
		},
		{
			name:     "whitespace username counts as present",
			in:       SignupInput{Username: "  ", Password: "x", ConfirmPassword: "x"},
			wantView: ViewLogin,
		},
		{
			name:     "success returns to login",
			in:       SignupInput{Username: "ana", Email: "a@b.c", Password: "a", ConfirmPassword: "a"},
			wantView: ViewLogin,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession()
			s.ShowSignup()
			err := s.Signup(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Signup() error = %v, want %v", err, tc.wantErr)
			}
			if s.View() != tc.wantView {
				t.Fatalf("Signup() view = %q, want %q", s.View(), tc.wantView)
			}
			if _, ok := s.Flash(); ok {
				t.Fatal("signup never raises a flash")
			}
		})
	}
}

func TestSessionShowLoginShowSignup(t *testing.T) {
	s := NewSession()
	_ = s.Login("", "")
	s.ShowSignup()
	if s.View() != ViewSignup {
		t.Fatalf("expected signup view, got %q", s.View())
	}
	if _, ok := s.Flash(); ok {
		t.Fatal("expected flash cleared when switching to signup")
	}
	s.ShowLogin()
	if s.View() != ViewLogin {
		t.Fatalf("expected login view, got %q", s.View())
	}
}
