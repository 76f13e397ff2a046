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

func TestUser_CurrentUser_UnknownSubject(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{}, &mockProjectRepo{})
	_, err := uc.CurrentUser(context.Background(), "ghost")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUser_CurrentUser_IncludesProjects(t *testing.T) {
	me := userFixture("alice")
	owned := project.Project{ID: uuid.New(), Title: "Owned", OwnerID: me.ID}
	joined := project.Project{ID: uuid.New(), Title: "Joined"}

	users := &mockUserRepo{
		GetByUsernameFn: func(context.Context, string) (user.User, error) { return me, nil },
	}
	projects := &mockProjectRepo{
		ListByOwnerFn: func(_ context.Context, ownerID uuid.UUID) ([]project.Project, error) {
			if ownerID != me.ID {
				t.Fatalf("listed projects for wrong owner")
			}
			return []project.Project{owned}, nil
		},
		ListByCollaboratorFn: func(context.Context, uuid.UUID) ([]project.Project, error) {
			return []project.Project{joined}, nil
		},
	}

	out, err := NewUserUsecase(users, projects).CurrentUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.PasswordHash != "" {
		t.Fatalf("expected password hash to be stripped")
	}
	if len(out.Projects) != 1 || out.Projects[0].ID != owned.ID {
		t.Fatalf("unexpected owned projects: %+v", out.Projects)
	}
	if len(out.Collaborations) != 1 || out.Collaborations[0].ID != joined.ID {
		t.Fatalf("unexpected collaborations: %+v", out.Collaborations)
	}
}

func TestUser_GetByID_NotFound(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{}, &mockProjectRepo{})
	_, err := uc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUser_UpdateSelf_TargetsCaller(t *testing.T) {
	me := userFixture("alice")
	skillIDs := []uuid.UUID{uuid.New(), uuid.New()}

	var gotID uuid.UUID
	var gotUpd user.ProfileUpdate
	users := &mockUserRepo{
		GetByUsernameFn: func(context.Context, string) (user.User, error) { return me, nil },
		UpdateProfileFn: func(_ context.Context, id uuid.UUID, upd user.ProfileUpdate) (user.User, error) {
			gotID = id
			gotUpd = upd
			return me, nil
		},
	}

	bio := "updated bio"
	_, err := NewUserUsecase(users, &mockProjectRepo{}).UpdateSelf(context.Background(), "alice", ProfileUpdateInput{
		Bio:      &bio,
		SkillIDs: skillIDs,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotID != me.ID {
		t.Fatalf("update targeted %s, want caller %s", gotID, me.ID)
	}
	if gotUpd.FullName != nil {
		t.Fatalf("expected untouched full name to stay nil")
	}
	if gotUpd.Bio == nil || *gotUpd.Bio != bio {
		t.Fatalf("bio not forwarded: %+v", gotUpd.Bio)
	}
	if len(gotUpd.SkillIDs) != 2 {
		t.Fatalf("expected skill set replacement of 2 ids, got %d", len(gotUpd.SkillIDs))
	}
	if gotUpd.LanguageIDs != nil {
		t.Fatalf("expected absent language set to stay nil")
	}
}

func TestUser_Verify_RequiresAdmin(t *testing.T) {
	me := userFixture("alice")
	users := &mockUserRepo{
		GetByUsernameFn: func(context.Context, string) (user.User, error) { return me, nil },
	}
	_, err := NewUserUsecase(users, &mockProjectRepo{}).Verify(context.Background(), "alice", uuid.New())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUser_Verify_AdminStampsVerifier(t *testing.T) {
	admin := userFixture("admin")
	admin.IsAdmin = true
	target := userFixture("bob")

	users := &mockUserRepo{
		GetByUsernameFn: func(context.Context, string) (user.User, error) { return admin, nil },
		VerifyFn: func(_ context.Context, targetID, adminID uuid.UUID) (user.User, error) {
			if targetID != target.ID {
				t.Fatalf("verified wrong target")
			}
			if adminID != admin.ID {
				t.Fatalf("verifier id is %s, want admin %s", adminID, admin.ID)
			}
			target.IsVerified = true
			target.VerifiedByID = &adminID
			return target, nil
		},
	}

	out, err := NewUserUsecase(users, &mockProjectRepo{}).Verify(context.Background(), "admin", target.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !out.IsVerified {
		t.Fatalf("expected verified user")
	}
}

func TestUser_Verify_TargetNotFound(t *testing.T) {
	admin := userFixture("admin")
	admin.IsAdmin = true
	users := &mockUserRepo{
		GetByUsernameFn: func(context.Context, string) (user.User, error) { return admin, nil },
		VerifyFn: func(context.Context, uuid.UUID, uuid.UUID) (user.User, error) {
			return user.User{}, repository.ErrUserNotFound
		},
	}
	_, err := NewUserUsecase(users, &mockProjectRepo{}).Verify(context.Background(), "admin", uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUser_List_SanitizesResults(t *testing.T) {
	users := &mockUserRepo{
		ListFn: func(context.Context, int, int) ([]user.User, error) {
			return []user.User{userFixture("alice"), userFixture("bob")}, nil
		},
	}
	out, err := NewUserUsecase(users, &mockProjectRepo{}).List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, u := range out {
		if u.PasswordHash != "" {
			t.Fatalf("password hash leaked for %s", u.Username)
		}
	}
}
