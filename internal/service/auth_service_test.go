package service

import (
	"errors"
	"testing"

	"github.com/VertingsXin/ai-mock-interview/internal/dto"
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"github.com/VertingsXin/ai-mock-interview/internal/repository"
)

func TestRegisterThenLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig())

	registered, err := svc.Register(dto.RegisterRequest{
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if registered.Token == "" {
		t.Fatalf("expected a token on registration")
	}

	logged, err := svc.Login(dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login after register failed: %v", err)
	}

	userID, err := svc.ValidateToken(logged.Token)
	if err != nil {
		t.Fatalf("token validation failed: %v", err)
	}
	if userID != registered.User.ID {
		t.Fatalf("token user id = %d, want %d", userID, registered.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig())

	req := dto.RegisterRequest{Email: "dup@x.com", Password: "secret1", ConfirmPassword: "secret1"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one user, got %d", count)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig())

	if _, err := svc.Register(dto.RegisterRequest{Email: "b@x.com", Password: "secret1", ConfirmPassword: "secret1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login(dto.LoginRequest{Email: "b@x.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig())

	if _, err := svc.Login(dto.LoginRequest{Email: "nobody@x.com", Password: "secret1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig())

	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Fatalf("expected garbage token to be rejected")
	}
}
