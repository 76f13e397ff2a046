package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-map/internal/delivery/http/dto"
	"talent-map/internal/delivery/http/middleware"
	"talent-map/internal/pkg/response"
	"talent-map/internal/usecase"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type createProjectRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

type updateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Post("/", h.Create, auth)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update, auth)
	grp.Delete("/:id", h.Delete, auth)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	skip := parseQueryInt(c, "skip", 0)
	limit := parseQueryInt(c, "limit", 100)
	status := c.Query("status")

	items, err := h.uc.List(c.Context(), status, limit, skip)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProjects(items))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProject(p))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req createProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), middleware.Subject(c), usecase.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Project created", dto.FromProject(created))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	var req updateProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), middleware.Subject(c), id, usecase.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProject(updated))
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), middleware.Subject(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
