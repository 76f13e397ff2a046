package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-map/internal/delivery/http/dto"
	"talent-map/internal/delivery/http/middleware"
	"talent-map/internal/pkg/response"
	"talent-map/internal/usecase"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateProfileRequest struct {
	FullName  *string      `json:"full_name"`
	Bio       *string      `json:"bio"`
	AvatarURL *string      `json:"avatar_url"`
	Skills    *[]uuid.UUID `json:"skills"`
	Languages *[]uuid.UUID `json:"languages"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	grp := r.Group("/users")
	grp.Get("/me", h.Me, auth)
	grp.Put("/me", h.UpdateMe, auth)
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Post("/:id/verify", h.Verify, auth)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	usr, err := h.uc.CurrentUser(c.Context(), middleware.Subject(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUserWithProjects(usr))
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.ProfileUpdateInput{
		FullName:  req.FullName,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	}
	// A supplied list replaces the whole set; absent means untouched.
	if req.Skills != nil {
		in.SkillIDs = *req.Skills
		if in.SkillIDs == nil {
			in.SkillIDs = []uuid.UUID{}
		}
	}
	if req.Languages != nil {
		in.LanguageIDs = *req.Languages
		if in.LanguageIDs == nil {
			in.LanguageIDs = []uuid.UUID{}
		}
	}

	usr, err := h.uc.UpdateSelf(c.Context(), middleware.Subject(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(usr))
}

func (h *UserHandler) List(c fiber.Ctx) error {
	skip := parseQueryInt(c, "skip", 0)
	limit := parseQueryInt(c, "limit", 100)

	users, err := h.uc.List(c.Context(), limit, skip)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(users))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	usr, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUserWithProjects(usr))
}

func (h *UserHandler) Verify(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	usr, err := h.uc.Verify(c.Context(), middleware.Subject(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "User verified", dto.FromUser(usr))
}
