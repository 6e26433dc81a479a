package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-screen/internal/delivery/http/middleware"
	"talent-screen/internal/pkg/response"
	"talent-screen/internal/usecase"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	RequiredSkills []string           `json:"required_skills"`
	Keywords       []string           `json:"keywords"`
	SkillWeights   map[string]float64 `json:"skill_weights"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return err
	}

	jobs, err := h.uc.ListJobs(c.Context(), userID)
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"jobs": jobs})
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.CreateJob(c.Context(), userID, usecase.CreateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Keywords:       req.Keywords,
		SkillWeights:   req.SkillWeights,
	})
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, j)
}

func userIDFromLocals(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
