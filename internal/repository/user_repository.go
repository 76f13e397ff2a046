package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-map/internal/database"
	"talent-map/internal/domain/language"
	"talent-map/internal/domain/skill"
	"talent-map/internal/domain/user"
)

var ErrUserNotFound = errors.New("user not found")

// SearchFilter combines conjunctively; zero-valued fields impose no
// constraint. Skill/language membership matches users holding any of the
// named entries.
type SearchFilter struct {
	SkillNames    []string
	LanguageNames []string
	IsVerified    *bool
	Term          string
}

type UserRepository interface {
	Create(ctx context.Context, u user.User) (user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByUsername(ctx context.Context, username string) (user.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd user.ProfileUpdate) (user.User, error)
	Verify(ctx context.Context, targetID, adminID uuid.UUID) (user.User, error)
	Search(ctx context.Context, f SearchFilter) ([]user.User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, email, username, password_hash, full_name, bio, avatar_url,
	is_verified, is_admin, verified_by, created_at, updated_at`

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.FullName, &u.Bio, &u.AvatarURL,
		&u.IsVerified, &u.IsAdmin, &u.VerifiedByID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = uuid.New()
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, email, username, password_hash, full_name, bio, avatar_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		u.ID, u.Email, u.Username, u.PasswordHash, u.FullName, u.Bio, u.AvatarURL,
	)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, err
	}
	u.Skills = []skill.Skill{}
	u.Languages = []language.Language{}
	return u, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return user.User{}, err
	}
	return r.reloadAssociations(ctx, u)
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	u, err := scanUser(row)
	if err != nil {
		return user.User{}, err
	}
	return r.reloadAssociations(ctx, u)
}

func (r *PostgresUserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR username = $2)`,
		email, username,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) List(ctx context.Context, limit, offset int) ([]user.User, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	users, err := collectUsers(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachAssociations(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd user.ProfileUpdate) (user.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return user.User{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := tx.Exec(ctx,
		`UPDATE users
		 SET full_name = COALESCE($2, full_name),
		     bio = COALESCE($3, bio),
		     avatar_url = COALESCE($4, avatar_url),
		     updated_at = now()
		 WHERE id = $1`,
		id, upd.FullName, upd.Bio, upd.AvatarURL,
	)
	if err != nil {
		return user.User{}, err
	}
	if affected == 0 {
		return user.User{}, ErrUserNotFound
	}

	// Supplied sets are full replacements; nil means leave untouched.
	if upd.SkillIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, id); err != nil {
			return user.User{}, err
		}
		// Unknown ids are silently skipped rather than rejected.
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_skills (user_id, skill_id)
			 SELECT $1, id FROM skills WHERE id = ANY($2)
			 ON CONFLICT DO NOTHING`,
			id, upd.SkillIDs,
		); err != nil {
			return user.User{}, err
		}
	}

	if upd.LanguageIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM user_languages WHERE user_id = $1`, id); err != nil {
			return user.User{}, err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_languages (user_id, language_id)
			 SELECT $1, id FROM languages WHERE id = ANY($2)
			 ON CONFLICT DO NOTHING`,
			id, upd.LanguageIDs,
		); err != nil {
			return user.User{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return user.User{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresUserRepository) Verify(ctx context.Context, targetID, adminID uuid.UUID) (user.User, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET is_verified = TRUE, verified_by = $2, updated_at = now() WHERE id = $1`,
		targetID, adminID,
	)
	if err != nil {
		return user.User{}, err
	}
	if affected == 0 {
		return user.User{}, ErrUserNotFound
	}
	return r.GetByID(ctx, targetID)
}

func (r *PostgresUserRepository) Search(ctx context.Context, f SearchFilter) ([]user.User, error) {
	var (
		joins []string
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.SkillNames) > 0 {
		joins = append(joins,
			`JOIN user_skills fus ON fus.user_id = u.id
			 JOIN skills fs ON fs.id = fus.skill_id AND fs.name = ANY(`+arg(f.SkillNames)+`)`)
	}
	if len(f.LanguageNames) > 0 {
		joins = append(joins,
			`JOIN user_languages ful ON ful.user_id = u.id
			 JOIN languages fl ON fl.id = ful.language_id AND fl.name = ANY(`+arg(f.LanguageNames)+`)`)
	}
	if f.IsVerified != nil {
		conds = append(conds, `u.is_verified = `+arg(*f.IsVerified))
	}
	if strings.TrimSpace(f.Term) != "" {
		p := arg("%" + strings.TrimSpace(f.Term) + "%")
		conds = append(conds, `(u.username ILIKE `+p+` OR u.full_name ILIKE `+p+` OR u.bio ILIKE `+p+`)`)
	}

	query := `SELECT DISTINCT u.id, u.email, u.username, u.password_hash, u.full_name, u.bio, u.avatar_url,
		u.is_verified, u.is_admin, u.verified_by, u.created_at, u.updated_at
		FROM users u `
	query += strings.Join(joins, " ")
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY u.created_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	users, err := collectUsers(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachAssociations(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

func collectUsers(rows database.Rows) ([]user.User, error) {
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.FullName, &u.Bio, &u.AvatarURL,
			&u.IsVerified, &u.IsAdmin, &u.VerifiedByID, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		u.Skills = []skill.Skill{}
		u.Languages = []language.Language{}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) reloadAssociations(ctx context.Context, u user.User) (user.User, error) {
	users := []user.User{u}
	if err := r.attachAssociations(ctx, users); err != nil {
		return user.User{}, err
	}
	return users[0], nil
}

func (r *PostgresUserRepository) attachAssociations(ctx context.Context, users []user.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(users))
	idx := make(map[uuid.UUID]int, len(users))
	for i := range users {
		users[i].Skills = []skill.Skill{}
		users[i].Languages = []language.Language{}
		ids = append(ids, users[i].ID)
		idx[users[i].ID] = i
	}

	rows, err := r.db.Query(ctx,
		`SELECT us.user_id, s.id, s.name, s.category, s.description, s.created_at
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = ANY($1)
		 ORDER BY s.name ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	for rows.Next() {
		var uid uuid.UUID
		var s skill.Skill
		if err := rows.Scan(&uid, &s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt); err != nil {
			rows.Close()
			return err
		}
		if i, ok := idx[uid]; ok {
			users[i].Skills = append(users[i].Skills, s)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	rows, err = r.db.Query(ctx,
		`SELECT ul.user_id, l.id, l.name, l.code, l.created_at
		 FROM user_languages ul
		 JOIN languages l ON l.id = ul.language_id
		 WHERE ul.user_id = ANY($1)
		 ORDER BY l.name ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var uid uuid.UUID
		var l language.Language
		if err := rows.Scan(&uid, &l.ID, &l.Name, &l.Code, &l.CreatedAt); err != nil {
			return err
		}
		if i, ok := idx[uid]; ok {
			users[i].Languages = append(users[i].Languages, l)
		}
	}
	return rows.Err()
}
