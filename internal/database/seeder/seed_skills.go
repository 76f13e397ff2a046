package seeder

import (
	"context"
	"fmt"

	"talent-map/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name     string
		Category string
	}{
		{Name: "Python", Category: "Technical"},
		{Name: "JavaScript", Category: "Technical"},
		{Name: "Go", Category: "Technical"},
		{Name: "Machine Learning", Category: "Technical"},
		{Name: "UX Design", Category: "Creative"},
		{Name: "Graphic Design", Category: "Creative"},
		{Name: "Project Management", Category: "Organizational"},
		{Name: "Agile Coaching", Category: "Organizational"},
		{Name: "Public Speaking", Category: "Communication"},
		{Name: "Technical Writing", Category: "Communication"},
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Category,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
