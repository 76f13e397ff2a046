package repository

import (
	"context"

	"talent-map/internal/database"
)

type DistributionEntry struct {
	Name     string
	Category string
	Count    int64
}

type TalentMapStats struct {
	TotalUsers            int64
	TotalSkills           int64
	TotalLanguages        int64
	TotalProjects         int64
	VerifiedUsersCount    int64
	SkillsDistribution    []DistributionEntry
	LanguagesDistribution []DistributionEntry
}

type StatsRepository interface {
	TalentMap(ctx context.Context) (TalentMapStats, error)
}

type PostgresStatsRepository struct {
	db database.DB
}

func NewPostgresStatsRepository(db database.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) TalentMap(ctx context.Context) (TalentMapStats, error) {
	var out TalentMapStats

	row := r.db.QueryRow(ctx, `
SELECT
	(SELECT COUNT(*) FROM users),
	(SELECT COUNT(*) FROM skills),
	(SELECT COUNT(*) FROM languages),
	(SELECT COUNT(*) FROM projects),
	(SELECT COUNT(*) FROM users WHERE is_verified)`)
	if err := row.Scan(&out.TotalUsers, &out.TotalSkills, &out.TotalLanguages, &out.TotalProjects, &out.VerifiedUsersCount); err != nil {
		return TalentMapStats{}, err
	}

	// Inner joins keep only skills/languages with at least one holder.
	rows, err := r.db.Query(ctx,
		`SELECT s.name, s.category, COUNT(us.user_id)
		 FROM skills s
		 JOIN user_skills us ON us.skill_id = s.id
		 GROUP BY s.id, s.name, s.category
		 ORDER BY s.name ASC`)
	if err != nil {
		return TalentMapStats{}, err
	}
	out.SkillsDistribution, err = collectDistribution(rows, true)
	if err != nil {
		return TalentMapStats{}, err
	}

	rows, err = r.db.Query(ctx,
		`SELECT l.name, COUNT(ul.user_id)
		 FROM languages l
		 JOIN user_languages ul ON ul.language_id = l.id
		 GROUP BY l.id, l.name
		 ORDER BY l.name ASC`)
	if err != nil {
		return TalentMapStats{}, err
	}
	out.LanguagesDistribution, err = collectDistribution(rows, false)
	if err != nil {
		return TalentMapStats{}, err
	}

	return out, nil
}

func collectDistribution(rows database.Rows, withCategory bool) ([]DistributionEntry, error) {
	defer rows.Close()

	out := make([]DistributionEntry, 0)
	for rows.Next() {
		var e DistributionEntry
		var err error
		if withCategory {
			err = rows.Scan(&e.Name, &e.Category, &e.Count)
		} else {
			err = rows.Scan(&e.Name, &e.Count)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
