package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"talent-screen/internal/domain/job"
	"talent-screen/internal/repository"
)

type CreateJobInput struct {
	Title          string
	Description    string
	RequiredSkills []string
	Keywords       []string
	SkillWeights   map[string]float64
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID uuid.UUID, in CreateJobInput) (job.JobDescription, error)
	ListJobs(ctx context.Context, userID uuid.UUID) ([]job.JobDescription, error)
}

type Job struct {
	jobs repository.JobRepository
}

func NewJobUsecase(jobs repository.JobRepository) *Job {
	return &Job{jobs: jobs}
}

func (u *Job) CreateJob(ctx context.Context, userID uuid.UUID, in CreateJobInput) (job.JobDescription, error) {
	if userID == uuid.Nil {
		return job.JobDescription{}, ErrInvalidInput
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.JobDescription{}, ErrInvalidInput
	}

	j := job.JobDescription{
		ID:             uuid.New(),
		Title:          title,
		Description:    in.Description,
		RequiredSkills: dedupeNonEmpty(in.RequiredSkills),
		Keywords:       dedupeNonEmpty(in.Keywords),
		SkillWeights:   in.SkillWeights,
		CreatedBy:      userID,
	}
	if j.SkillWeights == nil {
		j.SkillWeights = map[string]float64{}
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.JobDescription{}, err
	}
	return j, nil
}

func (u *Job) ListJobs(ctx context.Context, userID uuid.UUID) ([]job.JobDescription, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	return u.jobs.ListByCreator(ctx, userID)
}

func dedupeNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
