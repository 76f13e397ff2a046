package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"talent-map/internal/domain/user"
	"talent-map/internal/repository"
)

func TestAuth_Register_ShortPassword(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{}, mockJWT{})
	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "a@example.com",
		Username: "alice",
		Password: "short",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Register_Conflict(t *testing.T) {
	repo := &mockUserRepo{
		ExistsFn: func(context.Context, string, string) (bool, error) { return true, nil },
	}
	uc := NewAuthUsecase(repo, mockJWT{})
	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "a@example.com",
		Username: "alice",
		Password: "password123",
	})
	if !errors.Is(err, ErrEmailOrUsernameTaken) {
		t.Fatalf("expected ErrEmailOrUsernameTaken, got %v", err)
	}
}

func TestAuth_Register_ConcurrentConflict(t *testing.T) {
	// The pre-check passes, the insert hits the unique constraint, and the
	// re-check classifies the failure as a conflict.
	calls := 0
	repo := &mockUserRepo{
		ExistsFn: func(context.Context, string, string) (bool, error) {
			calls++
			return calls > 1, nil
		},
		CreateFn: func(context.Context, user.User) (user.User, error) {
			return user.User{}, errors.New("duplicate key value violates unique constraint")
		},
	}
	uc := NewAuthUsecase(repo, mockJWT{})
	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "a@example.com",
		Username: "alice",
		Password: "password123",
	})
	if !errors.Is(err, ErrEmailOrUsernameTaken) {
		t.Fatalf("expected ErrEmailOrUsernameTaken, got %v", err)
	}
}

func TestAuth_Register_Success(t *testing.T) {
	var stored user.User
	repo := &mockUserRepo{
		CreateFn: func(_ context.Context, u user.User) (user.User, error) {
			stored = u
			return u, nil
		},
	}
	uc := NewAuthUsecase(repo, mockJWT{})

	created, err := uc.Register(context.Background(), RegisterInput{
		Email:    "Alice@Example.COM",
		Username: "alice",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stored.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", stored.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if created.PasswordHash != "" {
		t.Fatalf("expected password hash to be stripped from the result")
	}
}

func TestAuth_Login_UnknownUserAndWrongPasswordFailIdentically(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	known := userFixture("alice")
	known.PasswordHash = string(hash)

	repo := &mockUserRepo{
		GetByUsernameFn: func(_ context.Context, username string) (user.User, error) {
			if username == "alice" {
				return known, nil
			}
			return user.User{}, repository.ErrUserNotFound
		},
	}
	uc := NewAuthUsecase(repo, mockJWT{token: "tok"})

	_, errUnknown := uc.Login(context.Background(), "bob", "whatever")
	_, errWrongPw := uc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
}

func TestAuth_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	known := userFixture("alice")
	known.PasswordHash = string(hash)

	repo := &mockUserRepo{
		GetByUsernameFn: func(context.Context, string) (user.User, error) { return known, nil },
	}
	uc := NewAuthUsecase(repo, mockJWT{token: "signed-token"})

	token, err := uc.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if token != "signed-token" {
		t.Fatalf("unexpected token %q", token)
	}
}
