package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-screen/internal/database"
	"talent-screen/internal/domain/resume"
	"talent-screen/internal/domain/screening"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	CreateWithScreening(ctx context.Context, r resume.Resume, sr screening.Result) error
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	List(ctx context.Context) ([]resume.Resume, error)
	Count(ctx context.Context) (int64, error)
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

// CreateWithScreening inserts the resume and its screening result in one
// transaction. A resume row never exists without its screening row.
func (r *PostgresResumeRepository) CreateWithScreening(ctx context.Context, res resume.Resume, sr screening.Result) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO resumes (id, candidate_name, candidate_email, file_name, file_url, extracted_text, extracted_skills, uploaded_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		res.ID, res.CandidateName, res.CandidateEmail, res.FileName, res.FileURL,
		res.ExtractedText, res.ExtractedSkills, res.UploadedBy,
	)
	if err != nil {
		return err
	}

	if err := insertScreening(ctx, tx, sr); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, candidate_name, candidate_email, file_name, file_url, extracted_text, extracted_skills, uploaded_by, created_at
		 FROM resumes WHERE id = $1`,
		id,
	)
	return scanResume(row)
}

func (r *PostgresResumeRepository) List(ctx context.Context) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, candidate_name, candidate_email, file_name, file_url, extracted_text, extracted_skills, uploaded_by, created_at
		 FROM resumes
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResumeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanResume(row database.Row) (resume.Resume, error) {
	var res resume.Resume
	err := row.Scan(&res.ID, &res.CandidateName, &res.CandidateEmail, &res.FileName, &res.FileURL,
		&res.ExtractedText, &res.ExtractedSkills, &res.UploadedBy, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, err
	}
	return res, nil
}
