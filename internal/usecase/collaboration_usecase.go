package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"talent-map/internal/domain/project"
	"talent-map/internal/repository"
)

type CollaborationUsecase interface {
	// Request is permissive: requesting collaboration on one's own project
	// and duplicate pending requests are both allowed.
	Request(ctx context.Context, callerUsername string, projectID uuid.UUID, message *string) (project.CollaborationRequest, error)
	ListForProject(ctx context.Context, callerUsername string, projectID uuid.UUID) ([]project.CollaborationRequest, error)
	Accept(ctx context.Context, callerUsername string, requestID uuid.UUID) (project.CollaborationRequest, error)
	Reject(ctx context.Context, callerUsername string, requestID uuid.UUID) (project.CollaborationRequest, error)
}

type Collaboration struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
	requests repository.CollaborationRepository
}

func NewCollaborationUsecase(
	users repository.UserRepository,
	projects repository.ProjectRepository,
	requests repository.CollaborationRepository,
) *Collaboration {
	return &Collaboration{users: users, projects: projects, requests: requests}
}

func (u *Collaboration) Request(ctx context.Context, callerUsername string, projectID uuid.UUID, message *string) (project.CollaborationRequest, error) {
	caller, err := resolveCaller(ctx, u.users, callerUsername)
	if err != nil {
		return project.CollaborationRequest{}, err
	}

	if _, err := u.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.CollaborationRequest{}, ErrProjectNotFound
		}
		return project.CollaborationRequest{}, ErrInternal
	}

	created, err := u.requests.Create(ctx, project.CollaborationRequest{
		ProjectID:   projectID,
		RequesterID: caller.ID,
		Message:     message,
	})
	if err != nil {
		return project.CollaborationRequest{}, ErrInternal
	}
	return created, nil
}

func (u *Collaboration) ListForProject(ctx context.Context, callerUsername string, projectID uuid.UUID) ([]project.CollaborationRequest, error) {
	caller, err := resolveCaller(ctx, u.users, callerUsername)
	if err != nil {
		return nil, err
	}

	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, ErrInternal
	}
	if p.OwnerID != caller.ID {
		return nil, ErrForbidden
	}

	items, err := u.requests.ListByProject(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Collaboration) Accept(ctx context.Context, callerUsername string, requestID uuid.UUID) (project.CollaborationRequest, error) {
	return u.resolve(ctx, callerUsername, requestID, project.RequestStatusAccepted)
}

func (u *Collaboration) Reject(ctx context.Context, callerUsername string, requestID uuid.UUID) (project.CollaborationRequest, error) {
	return u.resolve(ctx, callerUsername, requestID, project.RequestStatusRejected)
}

// resolve enforces owner-only access, then hands the terminal transition to
// the repository. Accepting adds the requester to the collaborator set;
// membership is idempotent.
func (u *Collaboration) resolve(ctx context.Context, callerUsername string, requestID uuid.UUID, status string) (project.CollaborationRequest, error) {
	caller, err := resolveCaller(ctx, u.users, callerUsername)
	if err != nil {
		return project.CollaborationRequest{}, err
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return project.CollaborationRequest{}, ErrRequestNotFound
		}
		return project.CollaborationRequest{}, ErrInternal
	}

	p, err := u.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.CollaborationRequest{}, ErrProjectNotFound
		}
		return project.CollaborationRequest{}, ErrInternal
	}
	if p.OwnerID != caller.ID {
		return project.CollaborationRequest{}, ErrForbidden
	}

	resolved, err := u.requests.Resolve(ctx, requestID, status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return project.CollaborationRequest{}, ErrRequestNotFound
		case errors.Is(err, repository.ErrRequestResolved):
			return project.CollaborationRequest{}, ErrRequestResolved
		}
		return project.CollaborationRequest{}, ErrInternal
	}
	return resolved, nil
}
