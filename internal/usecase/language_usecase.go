package usecase

import (
	"context"
	"strings"

	"talent-map/internal/domain/language"
	"talent-map/internal/repository"
)

type CreateLanguageInput struct {
	Name string
	Code string
}

type LanguageUsecase interface {
	List(ctx context.Context) ([]language.Language, error)
	Create(ctx context.Context, in CreateLanguageInput) (language.Language, error)
}

type Language struct {
	repo repository.LanguageRepository
}

func NewLanguageUsecase(repo repository.LanguageRepository) *Language {
	return &Language{repo: repo}
}

func (u *Language) List(ctx context.Context) ([]language.Language, error) {
	items, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Language) Create(ctx context.Context, in CreateLanguageInput) (language.Language, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return language.Language{}, ErrInvalidInput
	}

	exists, err := u.repo.ExistsByName(ctx, name)
	if err != nil {
		return language.Language{}, ErrInternal
	}
	if exists {
		return language.Language{}, ErrLanguageExists
	}

	created, err := u.repo.Create(ctx, language.Language{
		Name: name,
		Code: strings.TrimSpace(in.Code),
	})
	if err != nil {
		return language.Language{}, ErrInternal
	}
	return created, nil
}
