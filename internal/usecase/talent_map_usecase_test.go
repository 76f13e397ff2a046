package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-map/internal/repository"
)

func TestTalentMap_Stats(t *testing.T) {
	stats := repository.TalentMapStats{
		TotalUsers:         12,
		TotalSkills:        5,
		TotalLanguages:     3,
		TotalProjects:      7,
		VerifiedUsersCount: 4,
		SkillsDistribution: []repository.DistributionEntry{
			{Name: "Go", Category: "Technical", Count: 6},
		},
	}
	out, err := NewTalentMapUsecase(&mockStatsRepo{stats: stats}).Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.TotalUsers != 12 || out.VerifiedUsersCount != 4 {
		t.Fatalf("unexpected totals: %+v", out)
	}
	if len(out.SkillsDistribution) != 1 || out.SkillsDistribution[0].Count != 6 {
		t.Fatalf("unexpected distribution: %+v", out.SkillsDistribution)
	}
}

func TestTalentMap_Stats_Failure(t *testing.T) {
	uc := NewTalentMapUsecase(&mockStatsRepo{err: errors.New("boom")})
	if _, err := uc.Stats(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
