package project

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusInProgress           = "in_progress"
	StatusCompleted            = "completed"
	StatusSeekingCollaborators = "seeking_collaborators"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusSeekingCollaborators:
		return true
	}
	return false
}

type Project struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Status      string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Collaborators holds the ids of users added through accepted
	// collaboration requests. The owner is never a member.
	Collaborators []uuid.UUID
}

// Update carries a partial project change; nil fields keep the stored value.
type Update struct {
	Title       *string
	Description *string
	Status      *string
}

type CollaborationRequest struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	RequesterID uuid.UUID
	Message     *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
