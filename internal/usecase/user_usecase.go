package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"talent-map/internal/domain/project"
	"talent-map/internal/domain/user"
	"talent-map/internal/repository"
)

// UserWithProjects is a user together with the projects they own and the
// ones they collaborate on.
type UserWithProjects struct {
	user.User
	Projects       []project.Project
	Collaborations []project.Project
}

type ProfileUpdateInput struct {
	FullName    *string
	Bio         *string
	AvatarURL   *string
	SkillIDs    []uuid.UUID
	LanguageIDs []uuid.UUID
}

type UserUsecase interface {
	CurrentUser(ctx context.Context, username string) (UserWithProjects, error)
	GetByID(ctx context.Context, id uuid.UUID) (UserWithProjects, error)
	List(ctx context.Context, limit, offset int) ([]user.User, error)
	// UpdateSelf only ever targets the token's subject, so impersonation is
	// impossible by construction.
	UpdateSelf(ctx context.Context, username string, in ProfileUpdateInput) (user.User, error)
	Verify(ctx context.Context, callerUsername string, targetID uuid.UUID) (user.User, error)
}

type User struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
}

func NewUserUsecase(users repository.UserRepository, projects repository.ProjectRepository) *User {
	return &User{users: users, projects: projects}
}

func (u *User) CurrentUser(ctx context.Context, username string) (UserWithProjects, error) {
	usr, err := u.caller(ctx, username)
	if err != nil {
		return UserWithProjects{}, err
	}
	return u.withProjects(ctx, usr)
}

func (u *User) GetByID(ctx context.Context, id uuid.UUID) (UserWithProjects, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserWithProjects{}, ErrUserNotFound
		}
		return UserWithProjects{}, ErrInternal
	}
	return u.withProjects(ctx, usr)
}

func (u *User) List(ctx context.Context, limit, offset int) ([]user.User, error) {
	users, err := u.users.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range users {
		users[i] = sanitize(users[i])
	}
	return users, nil
}

func (u *User) UpdateSelf(ctx context.Context, username string, in ProfileUpdateInput) (user.User, error) {
	usr, err := u.caller(ctx, username)
	if err != nil {
		return user.User{}, err
	}

	updated, err := u.users.UpdateProfile(ctx, usr.ID, user.ProfileUpdate{
		FullName:    in.FullName,
		Bio:         in.Bio,
		AvatarURL:   in.AvatarURL,
		SkillIDs:    in.SkillIDs,
		LanguageIDs: in.LanguageIDs,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, ErrInternal
	}
	return sanitize(updated), nil
}

// Verify is admin-only. Re-verifying an already verified user just rewrites
// the same flags.
func (u *User) Verify(ctx context.Context, callerUsername string, targetID uuid.UUID) (user.User, error) {
	caller, err := u.caller(ctx, callerUsername)
	if err != nil {
		return user.User{}, err
	}
	if !caller.IsAdmin {
		return user.User{}, ErrForbidden
	}

	verified, err := u.users.Verify(ctx, targetID, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitize(verified), nil
}

func (u *User) caller(ctx context.Context, username string) (user.User, error) {
	return resolveCaller(ctx, u.users, username)
}

func (u *User) withProjects(ctx context.Context, usr user.User) (UserWithProjects, error) {
	owned, err := u.projects.ListByOwner(ctx, usr.ID)
	if err != nil {
		return UserWithProjects{}, ErrInternal
	}
	collabs, err := u.projects.ListByCollaborator(ctx, usr.ID)
	if err != nil {
		return UserWithProjects{}, ErrInternal
	}
	return UserWithProjects{User: sanitize(usr), Projects: owned, Collaborations: collabs}, nil
}
