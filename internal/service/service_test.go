package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-insights/internal/domain"
	"github.com/spec-kit/ticket-insights/internal/events"
	"github.com/spec-kit/ticket-insights/internal/repository"
)

// Wednesday, inside business hours.
var testClock = time.Date(2025, time.June, 4, 11, 0, 0, 0, time.UTC)

func newTestService(repo repository.TicketReader, clock time.Time) *RecommendationService {
	return NewRecommendationService(RecommendationDependencies{
		TicketRepo: repo,
		Dispatcher: events.NewInMemoryDispatcher(),
		Logger:     zap.NewNop(),
		Clock:      func() time.Time { return clock },
	})
}

type ticketOption func(*domain.TicketRecord)

func withAssignee(user domain.UserRecord) ticketOption {
	return func(t *domain.TicketRecord) {
		t.Assignee = &user
	}
}

func withStatus(status string) ticketOption {
	return func(t *domain.TicketRecord) {
		t.Status = status
	}
}

func resolvedAfter(d time.Duration) ticketOption {
	return func(t *domain.TicketRecord) {
		resolved := t.CreatedAt.Add(d)
		t.ResolvedAt = &resolved
		t.Status = "done"
	}
}

func respondedAfter(d time.Duration) ticketOption {
	return func(t *domain.TicketRecord) {
		responded := t.CreatedAt.Add(d)
		t.FirstResponseAt = &responded
	}
}

func makeTicket(id, title string, createdAt time.Time, opts ...ticketOption) domain.TicketRecord {
	ticket := domain.TicketRecord{
		ID:          id,
		WorkspaceID: "ws-1",
		CustomID:    "TCK-" + id,
		Title:       title,
		Status:      "new",
		CreatedAt:   createdAt,
	}
	for _, opt := range opts {
		opt(&ticket)
	}
	return ticket
}
