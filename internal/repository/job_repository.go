package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-screen/internal/database"
	"talent-screen/internal/domain/job"
)

var ErrJobNotFound = errors.New("job description not found")

type JobRepository interface {
	Create(ctx context.Context, j job.JobDescription) error
	GetByID(ctx context.Context, id uuid.UUID) (job.JobDescription, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]job.JobDescription, error)
	Count(ctx context.Context) (int64, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.JobDescription) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_descriptions (id, title, description, required_skills, keywords, skill_weights, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		j.ID, j.Title, j.Description, j.RequiredSkills, j.Keywords, j.SkillWeights, j.CreatedBy,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.JobDescription, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, required_skills, keywords, skill_weights, created_by, created_at
		 FROM job_descriptions WHERE id = $1`,
		id,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) ListByCreator(ctx context.Context, userID uuid.UUID) ([]job.JobDescription, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, required_skills, keywords, skill_weights, created_by, created_at
		 FROM job_descriptions
		 WHERE created_by = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.JobDescription, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_descriptions`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanJob(row database.Row) (job.JobDescription, error) {
	var j job.JobDescription
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.RequiredSkills, &j.Keywords, &j.SkillWeights, &j.CreatedBy, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.JobDescription{}, ErrJobNotFound
		}
		return job.JobDescription{}, err
	}
	return j, nil
}
