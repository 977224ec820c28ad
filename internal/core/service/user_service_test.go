package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/questlog/questlog/internal/core/domain"
	"github.com/questlog/questlog/internal/core/ports"
)

func seededUserService(t *testing.T) (*UserService, *stubUserRepo, int) {
	t.Helper()
	repo := newStubUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewUserService(repo, zerolog.Nop()), repo, created.UserID
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc, _, _ := seededUserService(t)

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	svc, repo, id := seededUserService(t)

	err := svc.UpdateProfile(context.Background(), id, ports.UpdateProfileInput{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	user, _ := repo.FindByID(context.Background(), id)
	if user.Email != "new@example.com" {
		t.Fatalf("email not updated: %q", user.Email)
	}
	if user.Username != "alice" {
		t.Fatalf("username should be unchanged, got %q", user.Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("original")); err != nil {
		t.Fatalf("password should be unchanged: %v", err)
	}
}

func TestUserService_UpdateProfile_RehashesPassword(t *testing.T) {
	svc, repo, id := seededUserService(t)

	err := svc.UpdateProfile(context.Background(), id, ports.UpdateProfileInput{Password: "brand-new"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	user, _ := repo.FindByID(context.Background(), id)
	if user.PasswordHash == "brand-new" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("brand-new")); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestUserService_UpdateProfile_UsernameConflict(t *testing.T) {
	svc, repo, id := seededUserService(t)
	if _, err := repo.Create(context.Background(), &domain.User{Username: "bob"}); err != nil {
		t.Fatalf("seed bob: %v", err)
	}

	err := svc.UpdateProfile(context.Background(), id, ports.UpdateProfileInput{Username: "BOB"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	svc, _, _ := seededUserService(t)

	err := svc.UpdateProfile(context.Background(), 99, ports.UpdateProfileInput{Email: "x@x.com"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
