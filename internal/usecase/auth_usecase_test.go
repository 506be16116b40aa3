package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthLoginWithPlainPassword(t *testing.T) {
	uc, err := NewAuthUsecase("", "hunter2", &mockTokenService{token: "tok"}, nil)
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}

	res, err := uc.Login(context.Background(), "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccessToken != "tok" {
		t.Fatalf("token mismatch: %q", res.AccessToken)
	}
}

func TestAuthLoginWithPrecomputedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	uc, err := NewAuthUsecase(string(hash), "ignored-plain", &mockTokenService{token: "tok"}, nil)
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}

	if _, err := uc.Login(context.Background(), "hunter2"); err != nil {
		t.Fatalf("expected hash to win over plain password: %v", err)
	}
	if _, err := uc.Login(context.Background(), "ignored-plain"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("plain password must not authenticate when a hash is set, got %v", err)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	uc, err := NewAuthUsecase("", "hunter2", &mockTokenService{token: "tok"}, nil)
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}

	if _, err := uc.Login(context.Background(), "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthLoginNoPasswordConfigured(t *testing.T) {
	uc, err := NewAuthUsecase("", "", &mockTokenService{token: "tok"}, nil)
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}

	if _, err := uc.Login(context.Background(), "anything"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthLoginTokenFailure(t *testing.T) {
	uc, err := NewAuthUsecase("", "hunter2", &mockTokenService{err: errors.New("sign failed")}, nil)
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}

	if _, err := uc.Login(context.Background(), "hunter2"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
