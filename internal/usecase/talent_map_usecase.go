package usecase

import (
	"context"

	"talent-map/internal/repository"
)

type TalentMapUsecase interface {
	Stats(ctx context.Context) (repository.TalentMapStats, error)
}

type TalentMap struct {
	stats repository.StatsRepository
}

func NewTalentMapUsecase(stats repository.StatsRepository) *TalentMap {
	return &TalentMap{stats: stats}
}

func (u *TalentMap) Stats(ctx context.Context) (repository.TalentMapStats, error) {
	s, err := u.stats.TalentMap(ctx)
	if err != nil {
		return repository.TalentMapStats{}, ErrInternal
	}
	return s, nil
}
