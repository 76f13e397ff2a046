package dto

import (
	"time"

	"github.com/google/uuid"

	"talent-map/internal/domain/project"
)

type ProjectResponse struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   *string     `json:"description,omitempty"`
	Status        string      `json:"status"`
	OwnerID       uuid.UUID   `json:"owner_id"`
	Collaborators []uuid.UUID `json:"collaborators"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type CollaborationRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	RequesterID uuid.UUID `json:"requester_id"`
	Message     *string   `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProject(p project.Project) ProjectResponse {
	collabs := p.Collaborators
	if collabs == nil {
		collabs = []uuid.UUID{}
	}
	return ProjectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Status:        p.Status,
		OwnerID:       p.OwnerID,
		Collaborators: collabs,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromProjects(in []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromProject(p))
	}
	return out
}

func FromRequest(r project.CollaborationRequest) CollaborationRequestResponse {
	return CollaborationRequestResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		RequesterID: r.RequesterID,
		Message:     r.Message,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromRequests(in []project.CollaborationRequest) []CollaborationRequestResponse {
	out := make([]CollaborationRequestResponse, 0, len(in))
	for _, r := range in {
		out = append(out, FromRequest(r))
	}
	return out
}
