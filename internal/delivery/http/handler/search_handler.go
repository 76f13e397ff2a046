package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-map/internal/delivery/http/dto"
	"talent-map/internal/delivery/http/middleware"
	"talent-map/internal/pkg/response"
	"talent-map/internal/usecase"
)

type SearchHandler struct {
	uc usecase.SearchUsecase
}

type searchRequest struct {
	Skills     []string `json:"skills"`
	Languages  []string `json:"languages"`
	IsVerified *bool    `json:"is_verified"`
	SearchTerm string   `json:"search_term"`
}

func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/search", h.Search)
}

func (h *SearchHandler) Search(c fiber.Ctx) error {
	var req searchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	users, err := h.uc.Search(c.Context(), usecase.SearchFilters{
		Skills:     req.Skills,
		Languages:  req.Languages,
		IsVerified: req.IsVerified,
		SearchTerm: req.SearchTerm,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(users))
}
