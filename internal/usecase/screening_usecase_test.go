package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"talent-screen/internal/domain/job"
	"talent-screen/internal/domain/screening"
)

func TestReview_StatusValidated(t *testing.T) {
	repo := &mockScreeningRepo{created: []screening.Result{{ID: uuid.New()}}}
	uc := NewScreeningUsecase(repo, nil)
	id := repo.created[0].ID

	bad := "archived"
	if err := uc.Review(context.Background(), id, ReviewInput{Status: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}

	good := "Shortlisted"
	if err := uc.Review(context.Background(), id, ReviewInput{Status: &good}); err != nil {
		t.Fatalf("expected case-normalized status accepted, got %v", err)
	}
	if got := *repo.updates[id].Status; got != screening.StatusShortlisted {
		t.Fatalf("expected normalized %q, got %q", screening.StatusShortlisted, got)
	}
}

func TestReview_RatingBounds(t *testing.T) {
	repo := &mockScreeningRepo{created: []screening.Result{{ID: uuid.New()}}}
	uc := NewScreeningUsecase(repo, nil)
	id := repo.created[0].ID

	for _, r := range []int{0, 6, -1} {
		r := r
		if err := uc.Review(context.Background(), id, ReviewInput{Rating: &r}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("rating %d: expected ErrInvalidInput, got %v", r, err)
		}
	}

	five := 5
	if err := uc.Review(context.Background(), id, ReviewInput{Rating: &five}); err != nil {
		t.Fatalf("rating 5 must be accepted: %v", err)
	}
}

func TestReview_EmptyUpdateRejected(t *testing.T) {
	uc := NewScreeningUsecase(&mockScreeningRepo{}, nil)

	if err := uc.Review(context.Background(), uuid.New(), ReviewInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReview_UnknownResult(t *testing.T) {
	uc := NewScreeningUsecase(&mockScreeningRepo{}, nil)

	notes := "solid take-home"
	err := uc.Review(context.Background(), uuid.New(), ReviewInput{Notes: &notes})
	if !errors.Is(err, ErrScreeningNotFound) {
		t.Fatalf("expected ErrScreeningNotFound, got %v", err)
	}
}

func TestReview_InvalidatesDashboardCache(t *testing.T) {
	repo := &mockScreeningRepo{created: []screening.Result{{ID: uuid.New()}}}
	cache := &mockCache{}
	uc := NewScreeningUsecase(repo, cache)

	notes := "call back"
	if err := uc.Review(context.Background(), repo.created[0].ID, ReviewInput{Notes: &notes}); err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != CacheKeyDashboardStats {
		t.Fatalf("expected dashboard stats invalidation, got %v", cache.deleted)
	}
}

func TestDashboardStats_Aggregates(t *testing.T) {
	jobRepo := &mockJobRepo{}
	_ = jobRepo.Create(context.Background(), job.JobDescription{ID: uuid.New(), Title: "a"})
	_ = jobRepo.Create(context.Background(), job.JobDescription{ID: uuid.New(), Title: "b"})

	resumeRepo := &mockResumeRepo{}
	screeningRepo := &mockScreeningRepo{
		created: []screening.Result{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}},
		avg:     65.4567,
	}

	uc := NewDashboardUsecase(jobRepo, resumeRepo, screeningRepo, nil)
	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalJobs != 2 || stats.TotalResumes != 0 || stats.TotalScreenings != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.AvgScore != 65.46 {
		t.Fatalf("expected avg rounded to 65.46, got %v", stats.AvgScore)
	}
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	uc := NewDashboardUsecase(&mockJobRepo{}, &mockResumeRepo{}, &mockScreeningRepo{avg: 99}, nil)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.AvgScore != 0 {
		t.Fatalf("no screenings must mean avg 0, got %v", stats.AvgScore)
	}
}
