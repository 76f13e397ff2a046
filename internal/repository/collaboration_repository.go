package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-map/internal/database"
	"talent-map/internal/domain/project"
)

var (
	ErrRequestNotFound = errors.New("collaboration request not found")
	// ErrRequestResolved means the request already left the pending state.
	ErrRequestResolved = errors.New("collaboration request already resolved")
)

type CollaborationRepository interface {
	Create(ctx context.Context, req project.CollaborationRequest) (project.CollaborationRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.CollaborationRequest, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.CollaborationRequest, error)
	// Resolve moves a pending request to a terminal status. When the new
	// status is accepted it also adds the requester to the project's
	// collaborator set, all in one transaction. Resolving a non-pending
	// request fails with ErrRequestResolved.
	Resolve(ctx context.Context, id uuid.UUID, status string) (project.CollaborationRequest, error)
}

type PostgresCollaborationRepository struct {
	db database.DB
}

func NewPostgresCollaborationRepository(db database.DB) *PostgresCollaborationRepository {
	return &PostgresCollaborationRepository{db: db}
}

const requestColumns = `id, project_id, requester_id, message, status, created_at, updated_at`

func (r *PostgresCollaborationRepository) Create(ctx context.Context, req project.CollaborationRequest) (project.CollaborationRequest, error) {
	req.ID = uuid.New()
	req.Status = project.RequestStatusPending
	row := r.db.QueryRow(ctx,
		`INSERT INTO collaboration_requests (id, project_id, requester_id, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		req.ID, req.ProjectID, req.RequesterID, req.Message,
	)
	if err := row.Scan(&req.CreatedAt, &req.UpdatedAt); err != nil {
		return project.CollaborationRequest{}, err
	}
	return req, nil
}

func (r *PostgresCollaborationRepository) GetByID(ctx context.Context, id uuid.UUID) (project.CollaborationRequest, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM collaboration_requests WHERE id = $1`, id)
	return scanRequest(row)
}

func (r *PostgresCollaborationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.CollaborationRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+requestColumns+`
		 FROM collaboration_requests
		 WHERE project_id = $1
		 ORDER BY created_at ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.CollaborationRequest, 0)
	for rows.Next() {
		var req project.CollaborationRequest
		if err := rows.Scan(&req.ID, &req.ProjectID, &req.RequesterID, &req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCollaborationRepository) Resolve(ctx context.Context, id uuid.UUID, status string) (project.CollaborationRequest, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return project.CollaborationRequest{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	// The pending guard doubles as the concurrency barrier: a second
	// concurrent resolve sees zero affected rows.
	affected, err := tx.Exec(ctx,
		`UPDATE collaboration_requests
		 SET status = $2, updated_at = now()
		 WHERE id = $1 AND status = $3`,
		id, status, project.RequestStatusPending,
	)
	if err != nil {
		return project.CollaborationRequest{}, err
	}
	if affected == 0 {
		row := tx.QueryRow(ctx,
			`SELECT `+requestColumns+` FROM collaboration_requests WHERE id = $1`, id)
		if _, err := scanRequest(row); err != nil {
			return project.CollaborationRequest{}, err
		}
		return project.CollaborationRequest{}, ErrRequestResolved
	}

	row := tx.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM collaboration_requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if err != nil {
		return project.CollaborationRequest{}, err
	}

	if status == project.RequestStatusAccepted {
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_collaborators (project_id, user_id)
			 VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			req.ProjectID, req.RequesterID,
		); err != nil {
			return project.CollaborationRequest{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return project.CollaborationRequest{}, err
	}
	return req, nil
}

func scanRequest(row database.Row) (project.CollaborationRequest, error) {
	var req project.CollaborationRequest
	err := row.Scan(&req.ID, &req.ProjectID, &req.RequesterID, &req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return project.CollaborationRequest{}, ErrRequestNotFound
		}
		return project.CollaborationRequest{}, err
	}
	return req, nil
}
