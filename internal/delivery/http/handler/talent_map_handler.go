package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-map/internal/delivery/http/dto"
	"talent-map/internal/pkg/response"
	"talent-map/internal/usecase"
)

type TalentMapHandler struct {
	uc usecase.TalentMapUsecase
}

func NewTalentMapHandler(uc usecase.TalentMapUsecase) *TalentMapHandler {
	return &TalentMapHandler{uc: uc}
}

func (h *TalentMapHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/talent-map", h.Stats)
}

func (h *TalentMapHandler) Stats(c fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTalentMapStats(stats))
}
