package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"talent-map/internal/database"
	"talent-map/internal/domain/language"
)

var ErrLanguageNotFound = errors.New("language not found")

type LanguageRepository interface {
	GetAll(ctx context.Context) ([]language.Language, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, l language.Language) (language.Language, error)
}

type PostgresLanguageRepository struct {
	db database.DB
}

func NewPostgresLanguageRepository(db database.DB) *PostgresLanguageRepository {
	return &PostgresLanguageRepository{db: db}
}

func (r *PostgresLanguageRepository) GetAll(ctx context.Context) ([]language.Language, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, code, created_at FROM languages ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]language.Language, 0)
	for rows.Next() {
		var l language.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.Code, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresLanguageRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM languages WHERE name = $1)`, name)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresLanguageRepository) Create(ctx context.Context, l language.Language) (language.Language, error) {
	l.ID = uuid.New()
	row := r.db.QueryRow(ctx,
		`INSERT INTO languages (id, name, code)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		l.ID, l.Name, l.Code,
	)
	if err := row.Scan(&l.CreatedAt); err != nil {
		return language.Language{}, err
	}
	return l, nil
}
