package seeder

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"talent-map/internal/database"
	"talent-map/internal/domain/user"
	"talent-map/internal/repository"
)

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

// Run creates a bootstrap admin and a handful of demo users through the
// regular user repository. It is a no-op when any user already exists.
func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	var hasUsers bool
	row := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users)`)
	if err := row.Scan(&hasUsers); err != nil {
		return err
	}
	if hasUsers {
		log.Printf("seed users: users already present, skipping")
		return nil
	}

	users := repository.NewPostgresUserRepository(db)

	items := []struct {
		Email    string
		Username string
		FullName string
		Bio      string
		Password string
		Admin    bool
	}{
		{Email: "admin@talent-map.local", Username: "admin", FullName: "Platform Administrator", Bio: "Talent map platform operator", Password: "admin123", Admin: true},
		{Email: "marie.dupont@talent-map.local", Username: "marie_dupont", FullName: "Marie Dupont", Bio: "Full-stack developer with a soft spot for AI", Password: "password123"},
		{Email: "jean.martin@talent-map.local", Username: "jean_martin", FullName: "Jean Martin", Bio: "UX/UI designer and accessibility expert", Password: "password123"},
		{Email: "sophie.bernard@talent-map.local", Username: "sophie_bernard", FullName: "Sophie Bernard", Bio: "Agile project lead and Scrum coach", Password: "password123"},
		{Email: "lucas.petit@talent-map.local", Username: "lucas_petit", FullName: "Lucas Petit", Bio: "Data scientist focused on machine learning", Password: "password123"},
	}

	for _, it := range items {
		hash, err := bcrypt.GenerateFromPassword([]byte(it.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fullName := it.FullName
		bio := it.Bio
		created, err := users.Create(ctx, user.User{
			Email:        it.Email,
			Username:     it.Username,
			PasswordHash: string(hash),
			FullName:     &fullName,
			Bio:          &bio,
		})
		if err != nil {
			return err
		}

		// The admin flag has no API-level writer; it is granted at
		// bootstrap only.
		if it.Admin {
			if _, err := db.Exec(ctx,
				`UPDATE users SET is_admin = TRUE, is_verified = TRUE WHERE id = $1`,
				created.ID,
			); err != nil {
				return err
			}
		}
	}

	return nil
}
