package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-map/internal/domain/user"
	"talent-map/internal/repository"
)

// resolveCaller turns a pre-validated token subject into the acting user.
// A subject that no longer resolves to a user is treated as an invalid
// credential, not a missing entity.
func resolveCaller(ctx context.Context, users repository.UserRepository, username string) (user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return user.User{}, ErrUnauthorized
	}
	usr, err := users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}
