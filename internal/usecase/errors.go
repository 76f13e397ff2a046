package usecase

import "errors"

// Business-rule failures surface as one of these classified errors; the
// handlers translate them to status codes. Storage errors never leak past
// this package except as ErrInternal.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrEmailOrUsernameTaken = errors.New("email or username already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")

	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrRequestNotFound = errors.New("collaboration request not found")
	ErrRequestResolved = errors.New("collaboration request already resolved")

	ErrSkillExists    = errors.New("skill already exists")
	ErrLanguageExists = errors.New("language already exists")
)
