package domain

import (
	"strings"
	"time"
)

// TicketRecord is the read-only view of a portal ticket consumed by the
// recommendation engine. The portal owns and mutates tickets; this service
// only reads bounded recent windows of them.
type TicketRecord struct {
	ID              string
	WorkspaceID     string
	CustomID        string
	Title           string
	Status          string
	Assignee        *UserRecord
	CreatedAt       time.Time
	ResolvedAt      *time.Time
	FirstResponseAt *time.Time
}

// IsTerminal reports whether the ticket reached a final state. The portal
// stores status as a free-form string; comparison is case-insensitive.
func (t TicketRecord) IsTerminal() bool {
	switch strings.ToLower(t.Status) {
	case "done", "closed":
		return true
	}
	return false
}

// ResolutionTime returns the created-to-resolved duration when both
// timestamps are present.
func (t TicketRecord) ResolutionTime() (time.Duration, bool) {
	if t.ResolvedAt == nil {
		return 0, false
	}
	return t.ResolvedAt.Sub(t.CreatedAt), true
}
