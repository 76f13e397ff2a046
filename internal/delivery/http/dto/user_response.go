package dto

import (
	"time"

	"github.com/google/uuid"

	"talent-map/internal/domain/language"
	"talent-map/internal/domain/skill"
	"talent-map/internal/domain/user"
	"talent-map/internal/usecase"
)

type SkillResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type LanguageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

type UserResponse struct {
	ID         uuid.UUID          `json:"id"`
	Email      string             `json:"email"`
	Username   string             `json:"username"`
	FullName   *string            `json:"full_name,omitempty"`
	Bio        *string            `json:"bio,omitempty"`
	AvatarURL  *string            `json:"avatar_url,omitempty"`
	IsVerified bool               `json:"is_verified"`
	IsAdmin    bool               `json:"is_admin"`
	VerifiedBy *uuid.UUID         `json:"verified_by,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	Skills     []SkillResponse    `json:"skills"`
	Languages  []LanguageResponse `json:"languages"`
}

type UserWithProjectsResponse struct {
	UserResponse
	Projects       []ProjectResponse `json:"projects"`
	Collaborations []ProjectResponse `json:"collaborations"`
}

func FromSkill(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

func FromSkills(in []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromSkill(s))
	}
	return out
}

func FromLanguage(l language.Language) LanguageResponse {
	return LanguageResponse{
		ID:        l.ID,
		Name:      l.Name,
		Code:      l.Code,
		CreatedAt: l.CreatedAt,
	}
}

func FromLanguages(in []language.Language) []LanguageResponse {
	out := make([]LanguageResponse, 0, len(in))
	for _, l := range in {
		out = append(out, FromLanguage(l))
	}
	return out
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		FullName:   u.FullName,
		Bio:        u.Bio,
		AvatarURL:  u.AvatarURL,
		IsVerified: u.IsVerified,
		IsAdmin:    u.IsAdmin,
		VerifiedBy: u.VerifiedByID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		Skills:     FromSkills(u.Skills),
		Languages:  FromLanguages(u.Languages),
	}
}

func FromUsers(in []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(in))
	for _, u := range in {
		out = append(out, FromUser(u))
	}
	return out
}

func FromUserWithProjects(u usecase.UserWithProjects) UserWithProjectsResponse {
	return UserWithProjectsResponse{
		UserResponse:   FromUser(u.User),
		Projects:       FromProjects(u.Projects),
		Collaborations: FromProjects(u.Collaborations),
	}
}
