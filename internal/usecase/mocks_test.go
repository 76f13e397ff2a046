package usecase

import (
	"context"

	"github.com/google/uuid"

	"talent-map/internal/domain/language"
	"talent-map/internal/domain/project"
	"talent-map/internal/domain/skill"
	"talent-map/internal/domain/user"
	"talent-map/internal/repository"
)

// Mocks dispatch to optional func fields; a nil field falls back to the
// not-found sentinel or a zero value.

type mockUserRepo struct {
	CreateFn        func(ctx context.Context, u user.User) (user.User, error)
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (user.User, error)
	ExistsFn        func(ctx context.Context, email, username string) (bool, error)
	ListFn          func(ctx context.Context, limit, offset int) ([]user.User, error)
	UpdateProfileFn func(ctx context.Context, id uuid.UUID, upd user.ProfileUpdate) (user.User, error)
	VerifyFn        func(ctx context.Context, targetID, adminID uuid.UUID) (user.User, error)
	SearchFn        func(ctx context.Context, f repository.SearchFilter) ([]user.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	if m.CreateFn == nil {
		return u, nil
	}
	return m.CreateFn(ctx, u)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	if m.GetByIDFn == nil {
		return user.User{}, repository.ErrUserNotFound
	}
	return m.GetByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	if m.GetByUsernameFn == nil {
		return user.User{}, repository.ErrUserNotFound
	}
	return m.GetByUsernameFn(ctx, username)
}

func (m *mockUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	if m.ExistsFn == nil {
		return false, nil
	}
	return m.ExistsFn(ctx, email, username)
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset int) ([]user.User, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx, limit, offset)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, upd user.ProfileUpdate) (user.User, error) {
	if m.UpdateProfileFn == nil {
		return user.User{}, repository.ErrUserNotFound
	}
	return m.UpdateProfileFn(ctx, id, upd)
}

func (m *mockUserRepo) Verify(ctx context.Context, targetID, adminID uuid.UUID) (user.User, error) {
	if m.VerifyFn == nil {
		return user.User{}, repository.ErrUserNotFound
	}
	return m.VerifyFn(ctx, targetID, adminID)
}

func (m *mockUserRepo) Search(ctx context.Context, f repository.SearchFilter) ([]user.User, error) {
	if m.SearchFn == nil {
		return nil, nil
	}
	return m.SearchFn(ctx, f)
}

type mockProjectRepo struct {
	CreateFn             func(ctx context.Context, p project.Project) (project.Project, error)
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (project.Project, error)
	ListFn               func(ctx context.Context, f repository.ProjectFilter) ([]project.Project, error)
	ListByOwnerFn        func(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error)
	ListByCollaboratorFn func(ctx context.Context, userID uuid.UUID) ([]project.Project, error)
	UpdateFn             func(ctx context.Context, id uuid.UUID, upd project.Update) (project.Project, error)
	DeleteFn             func(ctx context.Context, id uuid.UUID) error
}

func (m *mockProjectRepo) Create(ctx context.Context, p project.Project) (project.Project, error) {
	if m.CreateFn == nil {
		return p, nil
	}
	return m.CreateFn(ctx, p)
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	if m.GetByIDFn == nil {
		return project.Project{}, repository.ErrProjectNotFound
	}
	return m.GetByIDFn(ctx, id)
}

func (m *mockProjectRepo) List(ctx context.Context, f repository.ProjectFilter) ([]project.Project, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx, f)
}

func (m *mockProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	if m.ListByOwnerFn == nil {
		return nil, nil
	}
	return m.ListByOwnerFn(ctx, ownerID)
}

func (m *mockProjectRepo) ListByCollaborator(ctx context.Context, userID uuid.UUID) ([]project.Project, error) {
	if m.ListByCollaboratorFn == nil {
		return nil, nil
	}
	return m.ListByCollaboratorFn(ctx, userID)
}

func (m *mockProjectRepo) Update(ctx context.Context, id uuid.UUID, upd project.Update) (project.Project, error) {
	if m.UpdateFn == nil {
		return project.Project{}, repository.ErrProjectNotFound
	}
	return m.UpdateFn(ctx, id, upd)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn == nil {
		return repository.ErrProjectNotFound
	}
	return m.DeleteFn(ctx, id)
}

type mockCollaborationRepo struct {
	CreateFn        func(ctx context.Context, req project.CollaborationRequest) (project.CollaborationRequest, error)
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (project.CollaborationRequest, error)
	ListByProjectFn func(ctx context.Context, projectID uuid.UUID) ([]project.CollaborationRequest, error)
	ResolveFn       func(ctx context.Context, id uuid.UUID, status string) (project.CollaborationRequest, error)
}

func (m *mockCollaborationRepo) Create(ctx context.Context, req project.CollaborationRequest) (project.CollaborationRequest, error) {
	if m.CreateFn == nil {
		req.ID = uuid.New()
		req.Status = project.RequestStatusPending
		return req, nil
	}
	return m.CreateFn(ctx, req)
}

func (m *mockCollaborationRepo) GetByID(ctx context.Context, id uuid.UUID) (project.CollaborationRequest, error) {
	if m.GetByIDFn == nil {
		return project.CollaborationRequest{}, repository.ErrRequestNotFound
	}
	return m.GetByIDFn(ctx, id)
}

func (m *mockCollaborationRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.CollaborationRequest, error) {
	if m.ListByProjectFn == nil {
		return nil, nil
	}
	return m.ListByProjectFn(ctx, projectID)
}

func (m *mockCollaborationRepo) Resolve(ctx context.Context, id uuid.UUID, status string) (project.CollaborationRequest, error) {
	if m.ResolveFn == nil {
		return project.CollaborationRequest{}, repository.ErrRequestNotFound
	}
	return m.ResolveFn(ctx, id, status)
}

type mockSkillRepo struct {
	items     []skill.Skill
	exists    bool
	existsErr error
	createErr error
}

func (m *mockSkillRepo) GetAll(context.Context) ([]skill.Skill, error) { return m.items, nil }
func (m *mockSkillRepo) ExistsByName(context.Context, string) (bool, error) {
	return m.exists, m.existsErr
}
func (m *mockSkillRepo) Create(_ context.Context, s skill.Skill) (skill.Skill, error) {
	if m.createErr != nil {
		return skill.Skill{}, m.createErr
	}
	s.ID = uuid.New()
	return s, nil
}

type mockLanguageRepo struct {
	items     []language.Language
	exists    bool
	existsErr error
	createErr error
}

func (m *mockLanguageRepo) GetAll(context.Context) ([]language.Language, error) {
	return m.items, nil
}
func (m *mockLanguageRepo) ExistsByName(context.Context, string) (bool, error) {
	return m.exists, m.existsErr
}
func (m *mockLanguageRepo) Create(_ context.Context, l language.Language) (language.Language, error) {
	if m.createErr != nil {
		return language.Language{}, m.createErr
	}
	l.ID = uuid.New()
	return l, nil
}

type mockStatsRepo struct {
	stats repository.TalentMapStats
	err   error
}

func (m *mockStatsRepo) TalentMap(context.Context) (repository.TalentMapStats, error) {
	return m.stats, m.err
}

type mockJWT struct {
	token string
	err   error
}

func (m mockJWT) GenerateToken(string) (string, error) { return m.token, m.err }
func (m mockJWT) ValidateToken(string) (string, error) { return "", nil }

func userFixture(username string) user.User {
	return user.User{
		ID:           uuid.New(),
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "$2a$10$fixture",
	}
}
