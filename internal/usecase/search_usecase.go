package usecase

import (
	"context"
	"strings"

	"talent-map/internal/domain/user"
	"talent-map/internal/repository"
)

// SearchFilters combine conjunctively; an absent filter imposes no
// constraint.
type SearchFilters struct {
	Skills     []string
	Languages  []string
	IsVerified *bool
	SearchTerm string
}

type SearchUsecase interface {
	Search(ctx context.Context, f SearchFilters) ([]user.User, error)
}

type Search struct {
	users repository.UserRepository
}

func NewSearchUsecase(users repository.UserRepository) *Search {
	return &Search{users: users}
}

func (u *Search) Search(ctx context.Context, f SearchFilters) ([]user.User, error) {
	users, err := u.users.Search(ctx, repository.SearchFilter{
		SkillNames:    trimNames(f.Skills),
		LanguageNames: trimNames(f.Languages),
		IsVerified:    f.IsVerified,
		Term:          strings.TrimSpace(f.SearchTerm),
	})
	if err != nil {
		return nil, ErrInternal
	}
	for i := range users {
		users[i] = sanitize(users[i])
	}
	return users, nil
}

func trimNames(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
