package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"talent-map/internal/domain/project"
	"talent-map/internal/domain/user"
	"talent-map/internal/repository"
)

func callerRepo(u user.User) *mockUserRepo {
	return &mockUserRepo{
		GetByUsernameFn: func(context.Context, string) (user.User, error) { return u, nil },
	}
}

func TestProject_Create_DefaultsStatus(t *testing.T) {
	me := userFixture("alice")
	var created project.Project
	projects := &mockProjectRepo{
		CreateFn: func(_ context.Context, p project.Project) (project.Project, error) {
			created = p
			return p, nil
		},
	}

	out, err := NewProjectUsecase(callerRepo(me), projects).Create(context.Background(), "alice", CreateProjectInput{
		Title: "Side project",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != project.StatusInProgress {
		t.Fatalf("expected default status %q, got %q", project.StatusInProgress, created.Status)
	}
	if out.OwnerID != me.ID {
		t.Fatalf("owner is %s, want caller %s", out.OwnerID, me.ID)
	}
}

func TestProject_Create_RejectsUnknownStatus(t *testing.T) {
	me := userFixture("alice")
	_, err := NewProjectUsecase(callerRepo(me), &mockProjectRepo{}).Create(context.Background(), "alice", CreateProjectInput{
		Title:  "Side project",
		Status: "archived",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProject_Create_RequiresTitle(t *testing.T) {
	me := userFixture("alice")
	_, err := NewProjectUsecase(callerRepo(me), &mockProjectRepo{}).Create(context.Background(), "alice", CreateProjectInput{
		Title: "   ",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProject_Update_OwnerOnly(t *testing.T) {
	me := userFixture("alice")
	other := project.Project{ID: uuid.New(), Title: "Not mine", OwnerID: uuid.New()}
	projects := &mockProjectRepo{
		GetByIDFn: func(context.Context, uuid.UUID) (project.Project, error) { return other, nil },
	}

	title := "renamed"
	_, err := NewProjectUsecase(callerRepo(me), projects).Update(context.Background(), "alice", other.ID, UpdateProjectInput{
		Title: &title,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProject_Update_NotFoundBeforeOwnership(t *testing.T) {
	me := userFixture("alice")
	_, err := NewProjectUsecase(callerRepo(me), &mockProjectRepo{}).Update(context.Background(), "alice", uuid.New(), UpdateProjectInput{})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProject_Update_PartialChange(t *testing.T) {
	me := userFixture("alice")
	mine := project.Project{ID: uuid.New(), Title: "Mine", OwnerID: me.ID, Status: project.StatusInProgress}

	var gotUpd project.Update
	projects := &mockProjectRepo{
		GetByIDFn: func(context.Context, uuid.UUID) (project.Project, error) { return mine, nil },
		UpdateFn: func(_ context.Context, _ uuid.UUID, upd project.Update) (project.Project, error) {
			gotUpd = upd
			mine.Status = *upd.Status
			return mine, nil
		},
	}

	status := project.StatusCompleted
	out, err := NewProjectUsecase(callerRepo(me), projects).Update(context.Background(), "alice", mine.ID, UpdateProjectInput{
		Status: &status,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotUpd.Title != nil || gotUpd.Description != nil {
		t.Fatalf("untouched fields should stay nil: %+v", gotUpd)
	}
	if out.Status != project.StatusCompleted {
		t.Fatalf("status not applied: %q", out.Status)
	}
}

func TestProject_Delete_OwnerOnly(t *testing.T) {
	me := userFixture("alice")
	other := project.Project{ID: uuid.New(), OwnerID: uuid.New()}
	projects := &mockProjectRepo{
		GetByIDFn: func(context.Context, uuid.UUID) (project.Project, error) { return other, nil },
	}
	err := NewProjectUsecase(callerRepo(me), projects).Delete(context.Background(), "alice", other.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProject_Delete_Success(t *testing.T) {
	me := userFixture("alice")
	mine := project.Project{ID: uuid.New(), OwnerID: me.ID}

	deleted := false
	projects := &mockProjectRepo{
		GetByIDFn: func(context.Context, uuid.UUID) (project.Project, error) { return mine, nil },
		DeleteFn: func(_ context.Context, id uuid.UUID) error {
			if id != mine.ID {
				t.Fatalf("deleted wrong project")
			}
			deleted = true
			return nil
		},
	}
	if err := NewProjectUsecase(callerRepo(me), projects).Delete(context.Background(), "alice", mine.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !deleted {
		t.Fatalf("delete never reached the repository")
	}
}

func TestProject_List_ForwardsFilter(t *testing.T) {
	var gotFilter repository.ProjectFilter
	projects := &mockProjectRepo{
		ListFn: func(_ context.Context, f repository.ProjectFilter) ([]project.Project, error) {
			gotFilter = f
			return nil, nil
		},
	}
	_, err := NewProjectUsecase(&mockUserRepo{}, projects).List(context.Background(), project.StatusSeekingCollaborators, 25, 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotFilter.Status != project.StatusSeekingCollaborators || gotFilter.Limit != 25 || gotFilter.Offset != 50 {
		t.Fatalf("unexpected filter: %+v", gotFilter)
	}
}
