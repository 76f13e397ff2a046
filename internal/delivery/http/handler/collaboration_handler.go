package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-map/internal/delivery/http/dto"
	"talent-map/internal/delivery/http/middleware"
	"talent-map/internal/pkg/response"
	"talent-map/internal/usecase"
)

type CollaborationHandler struct {
	uc usecase.CollaborationUsecase
}

type createRequestBody struct {
	ProjectID uuid.UUID `json:"project_id"`
	Message   *string   `json:"message"`
}

func NewCollaborationHandler(uc usecase.CollaborationUsecase) *CollaborationHandler {
	return &CollaborationHandler{uc: uc}
}

func (h *CollaborationHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	grp := r.Group("/collaboration-requests")
	grp.Post("/", h.Create, auth)
	grp.Put("/:id/accept", h.Accept, auth)
	grp.Put("/:id/reject", h.Reject, auth)

	r.Get("/projects/:id/collaboration-requests", h.ListForProject, auth)
}

func (h *CollaborationHandler) Create(c fiber.Ctx) error {
	var req createRequestBody
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.ProjectID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing project id", nil, nil)
	}

	created, err := h.uc.Request(c.Context(), middleware.Subject(c), req.ProjectID, req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Collaboration requested", dto.FromRequest(created))
}

func (h *CollaborationHandler) ListForProject(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	items, err := h.uc.ListForProject(c.Context(), middleware.Subject(c), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRequests(items))
}

func (h *CollaborationHandler) Accept(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request id", nil, err)
	}

	req, err := h.uc.Accept(c.Context(), middleware.Subject(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Request accepted", dto.FromRequest(req))
}

func (h *CollaborationHandler) Reject(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request id", nil, err)
	}

	req, err := h.uc.Reject(c.Context(), middleware.Subject(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Request rejected", dto.FromRequest(req))
}
