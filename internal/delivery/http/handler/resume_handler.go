package handler

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-screen/internal/delivery/http/middleware"
	"talent-screen/internal/pkg/response"
	"talent-screen/internal/usecase"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/upload", h.Upload)
	r.Get("/:id/file", h.Download)
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	resumes, err := h.uc.ListResumes(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"resumes": resumes})
}

// Upload accepts a multipart form: file, candidateName, candidateEmail,
// jobId. The screening result is produced in the same request.
func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file", nil, err)
	}

	jobID, err := uuid.Parse(c.FormValue("jobId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid jobId", nil, err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}

	out, err := h.uc.Upload(c.Context(), userID, usecase.UploadInput{
		FileName:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		Data:           data,
		CandidateName:  c.FormValue("candidateName"),
		CandidateEmail: c.FormValue("candidateEmail"),
		JobID:          jobID,
	})
	if err != nil {
		return mapUploadError(err)
	}

	data2 := map[string]any{
		"resume":    out.Resume,
		"screening": out.Screening,
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, data2)
}

// Download streams the original uploaded file back from object storage.
func (h *ResumeHandler) Download(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	res, data, err := h.uc.DownloadFile(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResumeNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
		case errors.Is(err, usecase.ErrStorageUnavailable):
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "File storage unavailable", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.FileName))
	if ext := strings.TrimPrefix(path.Ext(res.FileName), "."); ext != "" {
		c.Type(ext)
	}
	return c.Send(data)
}

func mapUploadError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required fields", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "File storage unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
