package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"talent-screen/internal/domain/screening"
	"talent-screen/internal/repository"
)

type ReviewInput struct {
	Status *string
	Rating *int
	Notes  *string
}

type ScreeningUsecase interface {
	ListResults(ctx context.Context) ([]repository.DetailedResult, error)
	Review(ctx context.Context, id uuid.UUID, in ReviewInput) error
}

type Screening struct {
	screenings repository.ScreeningRepository
	cache      CacheInvalidator
}

func NewScreeningUsecase(screenings repository.ScreeningRepository, cache CacheInvalidator) *Screening {
	return &Screening{screenings: screenings, cache: cache}
}

// ListResults returns every screening row with candidate and job context,
// best score first.
func (u *Screening) ListResults(ctx context.Context) ([]repository.DetailedResult, error) {
	return u.screenings.ListDetailed(ctx)
}

// Review applies a recruiter's status/rating/notes update. Only provided
// fields change; scores are never touched after creation.
func (u *Screening) Review(ctx context.Context, id uuid.UUID, in ReviewInput) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if in.Status == nil && in.Rating == nil && in.Notes == nil {
		return ErrInvalidInput
	}

	if in.Status != nil {
		st := strings.TrimSpace(strings.ToLower(*in.Status))
		if !screening.ValidStatus(st) {
			return ErrInvalidInput
		}
		in.Status = &st
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return ErrInvalidInput
	}

	err := u.screenings.UpdateReview(ctx, id, repository.ReviewUpdate{
		Status: in.Status,
		Rating: in.Rating,
		Notes:  in.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrScreeningNotFound) {
			return ErrScreeningNotFound
		}
		return err
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, CacheKeyDashboardStats)
	}
	return nil
}
