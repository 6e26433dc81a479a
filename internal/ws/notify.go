package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ScreeningCompletedEvent struct {
	Type         string  `json:"type"`
	ResumeID     string  `json:"resume_id"`
	JobID        string  `json:"job_description_id"`
	OverallScore float64 `json:"overall_score"`
	Timestamp    string  `json:"timestamp"`
}

// Notifier publishes screening events to a hub. A Notifier with a nil hub is
// valid and silently drops events.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ScreeningCompleted(resumeID, jobID uuid.UUID, overallScore float64) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ScreeningCompletedEvent{
		Type:         "screening_completed",
		ResumeID:     resumeID.String(),
		JobID:        jobID.String(),
		OverallScore: overallScore,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
