package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-map/internal/delivery/http/dto"
	"talent-map/internal/delivery/http/middleware"
	"talent-map/internal/pkg/response"
	"talent-map/internal/usecase"
)

type LanguageHandler struct {
	uc usecase.LanguageUsecase
}

type createLanguageRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func NewLanguageHandler(uc usecase.LanguageUsecase) *LanguageHandler {
	return &LanguageHandler{uc: uc}
}

func (h *LanguageHandler) RegisterRoutes(r fiber.Router) {
	grp := r.Group("/languages")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *LanguageHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromLanguages(items))
}

func (h *LanguageHandler) Create(c fiber.Ctx) error {
	var req createLanguageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), usecase.CreateLanguageInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Language created", dto.FromLanguage(created))
}
