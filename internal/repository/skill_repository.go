package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"talent-map/internal/database"
	"talent-map/internal/domain/skill"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	GetAll(ctx context.Context) ([]skill.Skill, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAll(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, description, created_at FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE name = $1)`, name)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	s.ID = uuid.New()
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name, category, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		s.ID, s.Name, s.Category, s.Description,
	)
	if err := row.Scan(&s.CreatedAt); err != nil {
		return skill.Skill{}, err
	}
	return s, nil
}
