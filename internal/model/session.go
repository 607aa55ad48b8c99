package model

import "time"

// Role identifies which user population a session belongs to.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// MaxSessionIntents bounds the per-session intent history used for
// follow-up resolution. Oldest entries are evicted first.
const MaxSessionIntents = 3

// Session is the durable per-conversation record. Created on first sight of
// a session identifier, mutated once per turn, never explicitly deleted.
type Session struct {
	ID              string
	UserID          string
	Role            Role
	PreviousIntents []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AppendIntent appends a resolved intent label and trims the history to
// MaxSessionIntents, evicting the oldest label first.
func (s *Session) AppendIntent(intent string) {
	s.PreviousIntents = append(s.PreviousIntents, intent)
	if n := len(s.PreviousIntents); n > MaxSessionIntents {
		s.PreviousIntents = s.PreviousIntents[n-MaxSessionIntents:]
	}
}

// Sender marks who produced a transcript entry.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one append-only transcript entry.
type ChatMessage struct {
	ID         string
	SessionID  string
	Message    string
	Sender     Sender
	Intent     string
	Confidence float64
	Timestamp  time.Time
}
