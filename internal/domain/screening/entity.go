package screening

import (
	"time"

	"github.com/google/uuid"

	"talent-screen/internal/domain/scoring"
)

const (
	StatusPending     = "pending"
	StatusShortlisted = "shortlisted"
	StatusInterviewed = "interviewed"
	StatusRejected    = "rejected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusInterviewed, StatusRejected:
		return true
	}
	return false
}

// Result is a snapshot of a scoring run: the match maps carry exactly the
// job's required skills and keywords as they were at scoring time. Later
// edits to the job do not rewrite old results.
type Result struct {
	ID              uuid.UUID            `json:"id"`
	ResumeID        uuid.UUID            `json:"resume_id"`
	JobID           uuid.UUID            `json:"job_description_id"`
	OverallScore    float64              `json:"overall_score"`
	SkillMatches    map[string]int       `json:"skill_matches"`
	KeywordMatches  map[string]int       `json:"keyword_matches"`
	MatchDetails    scoring.MatchDetails `json:"match_details"`
	Status          string               `json:"status"`
	RecruiterRating *int                 `json:"recruiter_rating,omitempty"`
	RecruiterNotes  *string              `json:"recruiter_notes,omitempty"`
	ScreenedBy      uuid.UUID            `json:"screened_by"`
	CreatedAt       time.Time            `json:"created_at"`
}
