package user

import (
	"time"

	"github.com/google/uuid"

	"talent-map/internal/domain/language"
	"talent-map/internal/domain/skill"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	FullName     *string
	Bio          *string
	AvatarURL    *string
	IsVerified   bool
	IsAdmin      bool
	VerifiedByID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Skills    []skill.Skill
	Languages []language.Language
}

// ProfileUpdate carries a partial profile change: nil fields are left
// untouched, non-nil fields replace the stored value. Skill and language
// sets are full replacements when supplied.
type ProfileUpdate struct {
	FullName    *string
	Bio         *string
	AvatarURL   *string
	SkillIDs    []uuid.UUID
	LanguageIDs []uuid.UUID
}
