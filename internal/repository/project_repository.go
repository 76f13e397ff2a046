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
	"talent-map/internal/domain/project"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectFilter struct {
	Status string
	Limit  int
	Offset int
}

type ProjectRepository interface {
	Create(ctx context.Context, p project.Project) (project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]project.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error)
	ListByCollaborator(ctx context.Context, userID uuid.UUID) ([]project.Project, error)
	Update(ctx context.Context, id uuid.UUID, upd project.Update) (project.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, title, description, status, owner_id, created_at, updated_at`

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	p.ID = uuid.New()
	if p.Status == "" {
		p.Status = project.StatusInProgress
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO projects (id, title, description, status, owner_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		p.ID, p.Title, p.Description, p.Status, p.OwnerID,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return project.Project{}, err
	}
	p.Collaborators = []uuid.UUID{}
	return p, nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)

	var p project.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}

	projects := []project.Project{p}
	if err := r.attachCollaborators(ctx, projects); err != nil {
		return project.Project{}, err
	}
	return projects[0], nil
}

func (r *PostgresProjectRepository) List(ctx context.Context, f ProjectFilter) ([]project.Project, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if strings.TrimSpace(f.Status) != "" {
		conds = append(conds, `status = `+arg(strings.TrimSpace(f.Status)))
	}

	query := `SELECT ` + projectColumns + ` FROM projects`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at ASC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	projects, err := collectProjects(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachCollaborators(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *PostgresProjectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE owner_id = $1 ORDER BY created_at ASC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	projects, err := collectProjects(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachCollaborators(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *PostgresProjectRepository) ListByCollaborator(ctx context.Context, userID uuid.UUID) ([]project.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.title, p.description, p.status, p.owner_id, p.created_at, p.updated_at
		 FROM projects p
		 JOIN project_collaborators pc ON pc.project_id = p.id
		 WHERE pc.user_id = $1
		 ORDER BY p.created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	projects, err := collectProjects(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachCollaborators(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *PostgresProjectRepository) Update(ctx context.Context, id uuid.UUID, upd project.Update) (project.Project, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE projects
		 SET title = COALESCE($2, title),
		     description = COALESCE($3, description),
		     status = COALESCE($4, status),
		     updated_at = now()
		 WHERE id = $1`,
		id, upd.Title, upd.Description, upd.Status,
	)
	if err != nil {
		return project.Project{}, err
	}
	if affected == 0 {
		return project.Project{}, ErrProjectNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the project; join rows and requests go with it via
// ON DELETE CASCADE.
func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func collectProjects(rows database.Rows) ([]project.Project, error) {
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Collaborators = []uuid.UUID{}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) attachCollaborators(ctx context.Context, projects []project.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(projects))
	idx := make(map[uuid.UUID]int, len(projects))
	for i := range projects {
		projects[i].Collaborators = []uuid.UUID{}
		ids = append(ids, projects[i].ID)
		idx[projects[i].ID] = i
	}

	rows, err := r.db.Query(ctx,
		`SELECT project_id, user_id FROM project_collaborators WHERE project_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var pid, uid uuid.UUID
		if err := rows.Scan(&pid, &uid); err != nil {
			return err
		}
		if i, ok := idx[pid]; ok {
			projects[i].Collaborators = append(projects[i].Collaborators, uid)
		}
	}
	return rows.Err()
}
