package skill

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description *string
	CreatedAt   time.Time
}
