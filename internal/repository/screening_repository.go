package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"talent-screen/internal/database"
	"talent-screen/internal/domain/screening"
)

var ErrScreeningNotFound = errors.New("screening result not found")

// DetailedResult is a screening row joined with the candidate and job columns
// the review list renders.
type DetailedResult struct {
	screening.Result

	CandidateName   string   `json:"candidate_name"`
	CandidateEmail  string   `json:"candidate_email"`
	FileName        string   `json:"file_name"`
	ExtractedSkills []string `json:"extracted_skills"`
	JobTitle        string   `json:"job_title"`
	RequiredSkills  []string `json:"required_skills"`
}

type ReviewUpdate struct {
	Status *string
	Rating *int
	Notes  *string
}

type ScreeningRepository interface {
	ListDetailed(ctx context.Context) ([]DetailedResult, error)
	UpdateReview(ctx context.Context, id uuid.UUID, upd ReviewUpdate) error
	Count(ctx context.Context) (int64, error)
	AverageScore(ctx context.Context) (float64, error)
}

type PostgresScreeningRepository struct {
	db database.DB
}

func NewPostgresScreeningRepository(db database.DB) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{db: db}
}

// insertScreening runs inside the resume intake transaction; screening rows
// are only ever created together with their resume.
func insertScreening(ctx context.Context, tx database.Tx, res screening.Result) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO screening_results
		 (id, resume_id, job_description_id, overall_score, skill_matches, keyword_matches, match_details, status, screened_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		res.ID, res.ResumeID, res.JobID, res.OverallScore,
		res.SkillMatches, res.KeywordMatches, res.MatchDetails, res.Status, res.ScreenedBy,
	)
	return err
}

func (r *PostgresScreeningRepository) ListDetailed(ctx context.Context) ([]DetailedResult, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sr.id, sr.resume_id, sr.job_description_id, sr.overall_score,
		        sr.skill_matches, sr.keyword_matches, sr.match_details,
		        sr.status, sr.recruiter_rating, sr.recruiter_notes, sr.screened_by, sr.created_at,
		        res.candidate_name, res.candidate_email, res.file_name, res.extracted_skills,
		        jd.title, jd.required_skills
		 FROM screening_results sr
		 JOIN resumes res ON res.id = sr.resume_id
		 JOIN job_descriptions jd ON jd.id = sr.job_description_id
		 ORDER BY sr.overall_score DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DetailedResult, 0)
	for rows.Next() {
		var d DetailedResult
		err := rows.Scan(
			&d.ID, &d.ResumeID, &d.JobID, &d.OverallScore,
			&d.SkillMatches, &d.KeywordMatches, &d.MatchDetails,
			&d.Status, &d.RecruiterRating, &d.RecruiterNotes, &d.ScreenedBy, &d.CreatedAt,
			&d.CandidateName, &d.CandidateEmail, &d.FileName, &d.ExtractedSkills,
			&d.JobTitle, &d.RequiredSkills,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresScreeningRepository) UpdateReview(ctx context.Context, id uuid.UUID, upd ReviewUpdate) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE screening_results
		 SET status = COALESCE($2, status),
		     recruiter_rating = COALESCE($3, recruiter_rating),
		     recruiter_notes = COALESCE($4, recruiter_notes)
		 WHERE id = $1`,
		id, upd.Status, upd.Rating, upd.Notes,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrScreeningNotFound
	}
	return nil
}

func (r *PostgresScreeningRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM screening_results`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresScreeningRepository) AverageScore(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(AVG(overall_score), 0) FROM screening_results`).Scan(&avg)
	if err != nil {
		return 0, err
	}
	return avg, nil
}
