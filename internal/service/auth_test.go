package service

import (
	"context"
	"testing"
	"time"

	"github.com/parkwell/parkwell-go/internal/mailer"
	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		mailer.NewLogMailer(),
		"test-secret",
		time.Hour,
		time.Hour,
		"http://localhost:3000",
	)
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:     "not-an-email",
		Password:  "Valid@123",
		FirstName: "Jane",
		LastName:  "Doe",
	})

	if err != ErrInvalidEmail {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newTestAuthService()

	weak := []string{"short", "alllowercase1!", "NoDigits!", "NoSpecial1", "Ab1!"}
	for _, password := range weak {
		_, err := svc.Register(context.Background(), model.RegisterRequest{
			Email:     "jane@example.com",
			Password:  password,
			FirstName: "Jane",
			LastName:  "Doe",
		})
		if err != ErrWeakPassword {
			t.Errorf("password %q: expected ErrWeakPassword, got %v", password, err)
		}
	}
}

func TestRegister_NameTooShort(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "Valid@123",
		FirstName: "J",
		LastName:  "Doe",
	})

	if err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "Valid@123",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      "superuser",
	})

	if err != model.ErrInvalidRole {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestResetPassword_WeakPassword(t *testing.T) {
	svc := newTestAuthService()

	if err := svc.ResetPassword(context.Background(), "some-token", "weak"); err != ErrWeakPassword {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestValidPassword(t *testing.T) {
	// Lowercase letters are not required by the policy.
	valid := []string{"Valid@123", "Admin@123", "P4ss w0rD!", "UPPER1!"}
	for _, p := range valid {
		if !validPassword(p) {
			t.Errorf("validPassword(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "nouppercase1!", "NoDigit!!", "NoSpecial11"}
	for _, p := range invalid {
		if validPassword(p) {
			t.Errorf("validPassword(%q) = true, want false", p)
		}
	}
}
