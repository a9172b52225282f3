package session

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Session is a server-side login session. The browser only holds a signed
// token; the row is the source of truth, including the per-session visit
// counter shown on the home page.
type Session struct {
	ID         string
	UserID     string
	TokenHash  string
	UserAgent  string
	IPAddress  string
	NumVisits  int
	ExpiresAt  time.Time
	CreatedAt  time.Time
	LastUsedAt time.Time
}
