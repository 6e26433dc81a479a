package job

import (
	"time"

	"github.com/google/uuid"
)

type JobDescription struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	RequiredSkills []string           `json:"required_skills"`
	Keywords       []string           `json:"keywords"`
	SkillWeights   map[string]float64 `json:"skill_weights"`
	CreatedBy      uuid.UUID          `json:"created_by"`
	CreatedAt      time.Time          `json:"created_at"`
}
