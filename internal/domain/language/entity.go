package language

import (
	"time"

	"github.com/google/uuid"
)

// Language is a spoken or written language, not a programming language.
type Language struct {
	ID        uuid.UUID
	Name      string
	Code      string
	CreatedAt time.Time
}
