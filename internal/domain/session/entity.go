package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login record. A session is valid until ExpiresAt;
// there is no sliding renewal, validation never extends the window.
type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
