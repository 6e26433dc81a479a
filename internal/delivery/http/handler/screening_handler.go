package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-screen/internal/delivery/http/middleware"
	"talent-screen/internal/pkg/response"
	"talent-screen/internal/usecase"
)

type ScreeningHandler struct {
	uc usecase.ScreeningUsecase
}

type reviewRequest struct {
	Status          *string `json:"status"`
	RecruiterRating *int    `json:"recruiter_rating"`
	RecruiterNotes  *string `json:"recruiter_notes"`
}

func NewScreeningHandler(uc usecase.ScreeningUsecase) *ScreeningHandler {
	return &ScreeningHandler{uc: uc}
}

func (h *ScreeningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Patch("/:id", h.Review)
}

func (h *ScreeningHandler) List(c fiber.Ctx) error {
	results, err := h.uc.ListResults(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"results": results})
}

func (h *ScreeningHandler) Review(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	var req reviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err = h.uc.Review(c.Context(), id, usecase.ReviewInput{
		Status: req.Status,
		Rating: req.RecruiterRating,
		Notes:  req.RecruiterNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		case errors.Is(err, usecase.ErrScreeningNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Screening result not found", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
