package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"talent-map/internal/domain/project"
	"talent-map/internal/repository"
)

type CreateProjectInput struct {
	Title       string
	Description *string
	Status      string
}

type UpdateProjectInput struct {
	Title       *string
	Description *string
	Status      *string
}

type ProjectUsecase interface {
	List(ctx context.Context, status string, limit, offset int) ([]project.Project, error)
	Get(ctx context.Context, id uuid.UUID) (project.Project, error)
	// Create always makes the caller the owner.
	Create(ctx context.Context, callerUsername string, in CreateProjectInput) (project.Project, error)
	Update(ctx context.Context, callerUsername string, id uuid.UUID, in UpdateProjectInput) (project.Project, error)
	Delete(ctx context.Context, callerUsername string, id uuid.UUID) error
}

type Project struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
}

func NewProjectUsecase(users repository.UserRepository, projects repository.ProjectRepository) *Project {
	return &Project{users: users, projects: projects}
}

func (u *Project) List(ctx context.Context, status string, limit, offset int) ([]project.Project, error) {
	items, err := u.projects.List(ctx, repository.ProjectFilter{Status: status, Limit: limit, Offset: offset})
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Project) Get(ctx context.Context, id uuid.UUID) (project.Project, error) {
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	return p, nil
}

func (u *Project) Create(ctx context.Context, callerUsername string, in CreateProjectInput) (project.Project, error) {
	caller, err := resolveCaller(ctx, u.users, callerUsername)
	if err != nil {
		return project.Project{}, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return project.Project{}, ErrInvalidInput
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = project.StatusInProgress
	}
	if !project.ValidStatus(status) {
		return project.Project{}, ErrInvalidInput
	}

	created, err := u.projects.Create(ctx, project.Project{
		Title:       title,
		Description: in.Description,
		Status:      status,
		OwnerID:     caller.ID,
	})
	if err != nil {
		return project.Project{}, ErrInternal
	}
	return created, nil
}

func (u *Project) Update(ctx context.Context, callerUsername string, id uuid.UUID, in UpdateProjectInput) (project.Project, error) {
	caller, err := resolveCaller(ctx, u.users, callerUsername)
	if err != nil {
		return project.Project{}, err
	}

	existing, err := u.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	if existing.OwnerID != caller.ID {
		return project.Project{}, ErrForbidden
	}

	if in.Status != nil && !project.ValidStatus(*in.Status) {
		return project.Project{}, ErrInvalidInput
	}

	updated, err := u.projects.Update(ctx, id, project.Update{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	return updated, nil
}

func (u *Project) Delete(ctx context.Context, callerUsername string, id uuid.UUID) error {
	caller, err := resolveCaller(ctx, u.users, callerUsername)
	if err != nil {
		return err
	}

	existing, err := u.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return ErrInternal
	}
	if existing.OwnerID != caller.ID {
		return ErrForbidden
	}

	if err := u.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return ErrInternal
	}
	return nil
}
