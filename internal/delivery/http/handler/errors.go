package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"talent-map/internal/delivery/http/middleware"
	"talent-map/internal/pkg/response"
	"talent-map/internal/usecase"
)

// mapUsecaseError translates the classified domain errors into transport
// errors. Uniqueness violations on register/skills/languages surface as 400
// to keep the external contract stable.
func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrEmailOrUsernameTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email or username already registered", nil, err)
	case errors.Is(err, usecase.ErrSkillExists):
		return middleware.NewAppError(fiber.StatusBadRequest, "Skill already exists", nil, err)
	case errors.Is(err, usecase.ErrLanguageExists):
		return middleware.NewAppError(fiber.StatusBadRequest, "Language already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Incorrect username or password", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Not allowed", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Collaboration request not found", nil, err)
	case errors.Is(err, usecase.ErrRequestResolved):
		return middleware.NewAppError(fiber.StatusConflict, "Collaboration request already resolved", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
