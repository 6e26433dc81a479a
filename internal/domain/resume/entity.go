package resume

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID              uuid.UUID `json:"id"`
	CandidateName   string    `json:"candidate_name"`
	CandidateEmail  string    `json:"candidate_email"`
	FileName        string    `json:"file_name"`
	FileURL         string    `json:"file_url"`
	ExtractedText   string    `json:"extracted_text"`
	ExtractedSkills []string  `json:"extracted_skills"`
	UploadedBy      uuid.UUID `json:"uploaded_by"`
	CreatedAt       time.Time `json:"created_at"`
}
