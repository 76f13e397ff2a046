package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"talent-map/internal/domain/user"
	"talent-map/internal/pkg/jwt"
	"talent-map/internal/repository"
)

type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FullName  *string
	Bio       *string
	AvatarURL *string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)
	if email == "" || username == "" || len(in.Password) < 8 {
		return user.User{}, ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailOrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	created, err := u.users.Create(ctx, user.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Bio:          in.Bio,
		AvatarURL:    in.AvatarURL,
	})
	if err != nil {
		// A concurrent registration can slip past the pre-check and hit
		// the unique constraint instead.
		exists, exErr := u.users.ExistsByEmailOrUsername(ctx, email, username)
		if exErr == nil && exists {
			return user.User{}, ErrEmailOrUsernameTaken
		}
		return user.User{}, ErrInternal
	}

	return sanitize(created), nil
}

// Login yields a bearer token whose subject is the username. Unknown
// username and wrong password fail identically.
func (u *Auth) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(usr.Username)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
