package usecase

import (
	"context"
	"math"
	"time"

	"talent-screen/internal/repository"
)

const CacheKeyDashboardStats = "dashboard:stats"

type DashboardStats struct {
	TotalJobs       int64   `json:"totalJobs"`
	TotalResumes    int64   `json:"totalResumes"`
	TotalScreenings int64   `json:"totalScreenings"`
	AvgScore        float64 `json:"avgScore"`
}

// StatsCache is the read side of the dashboard cache; misses and cache
// failures both fall through to the store.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type DashboardUsecase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type Dashboard struct {
	jobs       repository.JobRepository
	resumes    repository.ResumeRepository
	screenings repository.ScreeningRepository
	cache      StatsCache
	ttl        time.Duration
}

func NewDashboardUsecase(
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	screenings repository.ScreeningRepository,
	cache StatsCache,
) *Dashboard {
	return &Dashboard{jobs: jobs, resumes: resumes, screenings: screenings, cache: cache, ttl: 60 * time.Second}
}

func (u *Dashboard) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	if u.cache != nil {
		if hit, err := u.cache.GetJSON(ctx, CacheKeyDashboardStats, &stats); err == nil && hit {
			return stats, nil
		}
	}

	totalJobs, err := u.jobs.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	totalResumes, err := u.resumes.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	totalScreenings, err := u.screenings.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	var avg float64
	if totalScreenings > 0 {
		avg, err = u.screenings.AverageScore(ctx)
		if err != nil {
			return DashboardStats{}, err
		}
	}

	stats = DashboardStats{
		TotalJobs:       totalJobs,
		TotalResumes:    totalResumes,
		TotalScreenings: totalScreenings,
		AvgScore:        math.Round(avg*100) / 100,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, CacheKeyDashboardStats, stats, u.ttl)
	}
	return stats, nil
}
