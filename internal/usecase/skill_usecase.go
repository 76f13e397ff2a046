package usecase

import (
	"context"
	"strings"

	"talent-map/internal/domain/skill"
	"talent-map/internal/repository"
)

type CreateSkillInput struct {
	Name        string
	Category    string
	Description *string
}

type SkillUsecase interface {
	List(ctx context.Context) ([]skill.Skill, error)
	Create(ctx context.Context, in CreateSkillInput) (skill.Skill, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) List(ctx context.Context) ([]skill.Skill, error) {
	items, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// Create enforces case-sensitive name uniqueness; the unique constraint
// backs the pre-check up.
func (u *Skill) Create(ctx context.Context, in CreateSkillInput) (skill.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}

	exists, err := u.repo.ExistsByName(ctx, name)
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	if exists {
		return skill.Skill{}, ErrSkillExists
	}

	created, err := u.repo.Create(ctx, skill.Skill{
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
	})
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	return created, nil
}
