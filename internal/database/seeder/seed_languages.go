package seeder

import (
	"context"
	"fmt"

	"talent-map/internal/database"
)

type LanguagesSeeder struct{}

func (LanguagesSeeder) Name() string { return "languages" }

func (LanguagesSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name string
		Code string
	}{
		{Name: "French", Code: "fr"},
		{Name: "English", Code: "en"},
		{Name: "Spanish", Code: "es"},
		{Name: "German", Code: "de"},
		{Name: "Italian", Code: "it"},
		{Name: "Arabic", Code: "ar"},
		{Name: "Mandarin", Code: "zh"},
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO languages (id, name, code) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Code,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
