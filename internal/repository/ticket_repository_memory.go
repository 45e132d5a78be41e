package repository

import (
	"context"
	"sort"

	"github.com/spec-kit/ticket-insights/internal/domain"
)

// MemoryTicketReader is an in-memory TicketReader used by tests and local
// experiments. It applies the same ordering and filter semantics as the
// pgx-backed reader.
type MemoryTicketReader struct {
	Tickets []domain.TicketRecord
	Err     error
	Calls   int
}

// NewMemoryTicketReader seeds a reader with a fixed ticket set.
func NewMemoryTicketReader(tickets []domain.TicketRecord) *MemoryTicketReader {
	return &MemoryTicketReader{Tickets: tickets}
}

// ListRecent filters and orders the seeded tickets.
func (m *MemoryTicketReader) ListRecent(_ context.Context, workspaceID string, filter RecentTicketFilter) ([]domain.TicketRecord, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}

	matched := make([]domain.TicketRecord, 0, len(m.Tickets))
	for _, ticket := range m.Tickets {
		if ticket.WorkspaceID != workspaceID {
			continue
		}
		if filter.CreatedAfter != nil && ticket.CreatedAt.Before(*filter.CreatedAfter) {
			continue
		}
		if filter.AssigneeID != nil {
			if ticket.Assignee == nil || ticket.Assignee.ID != *filter.AssigneeID {
				continue
			}
		}
		matched = append(matched, ticket)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
