package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/ticket-insights/internal/domain"
	"github.com/spec-kit/ticket-insights/internal/repository"
)

var (
	alice = domain.UserRecord{ID: "u-alice", FirstName: "Alice", LastName: "Ivanova", Email: "alice@example.com"}
	bob   = domain.UserRecord{ID: "u-bob", FirstName: "Bob", LastName: "Petrov", Email: "bob@example.com"}
)

func TestRecommendAssigneesEmptyWorkspace(t *testing.T) {
	svc := newTestService(repository.NewMemoryTicketReader(nil), testClock)

	got, err := svc.RecommendAssignees(context.Background(), "ws-1", "Любая задача", "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(got))
	}
}

func TestRecommendAssigneesUnassignedOnly(t *testing.T) {
	repo := repository.NewMemoryTicketReader([]domain.TicketRecord{
		makeTicket("1", "Проблема с сервером", testClock.Add(-time.Hour)),
		makeTicket("2", "Ошибка входа", testClock.Add(-2*time.Hour)),
	})
	svc := newTestService(repo, testClock)

	got, err := svc.RecommendAssignees(context.Background(), "ws-1", "Проблема с сервером", "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("tickets without assignees must not produce candidates, got %d", len(got))
	}
}

func TestRecommendAssigneesFastResolver(t *testing.T) {
	repo := repository.NewMemoryTicketReader([]domain.TicketRecord{
		makeTicket("1", "Проблема с авторизацией", testClock.Add(-3*time.Hour),
			withAssignee(alice), resolvedAfter(time.Hour)),
		makeTicket("2", "Ошибка входа в систему", testClock.Add(-5*time.Hour),
			withAssignee(alice), resolvedAfter(time.Hour)),
	})
	svc := newTestService(repo, testClock)

	got, err := svc.RecommendAssignees(context.Background(), "ws-1", "Проблема с авторизацией", "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}

	rec := got[0]
	if rec.UserID != alice.ID {
		t.Fatalf("expected %s, got %s", alice.ID, rec.UserID)
	}
	if rec.Score < 0 || rec.Score > 100 {
		t.Fatalf("score %d outside [0,100]", rec.Score)
	}
	if len(rec.Reasons) == 0 {
		t.Fatal("reasons must be non-empty")
	}
	if !containsReason(rec.Reasons, "low workload") && !containsReason(rec.Reasons, "fast resolution time") {
		t.Fatalf("expected a workload or speed reason, got %v", rec.Reasons)
	}
}

func TestRecommendAssigneesOrderingAndLimit(t *testing.T) {
	// Alice resolves quickly with no open backlog; Bob carries many active
	// tickets and should score strictly lower.
	tickets := []domain.TicketRecord{
		makeTicket("1", "Сбой оплаты", testClock.Add(-time.Hour),
			withAssignee(alice), resolvedAfter(time.Hour)),
	}
	for i := 0; i < 12; i++ {
		tickets = append(tickets, makeTicket(
			charID("b", i), "Задача в работе", testClock.Add(-time.Duration(i+2)*time.Hour),
			withAssignee(bob), withStatus("in-progress")))
	}
	repo := repository.NewMemoryTicketReader(tickets)
	svc := newTestService(repo, testClock)

	got, err := svc.RecommendAssignees(context.Background(), "ws-1", "Новый сбой оплаты", "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Fatalf("scores not sorted non-increasing: %d before %d", got[i-1].Score, got[i].Score)
		}
	}
	if got[0].UserID != alice.ID {
		t.Fatalf("expected fast resolver first, got %s", got[0].UserID)
	}

	limited, err := svc.RecommendAssignees(context.Background(), "ws-1", "Новый сбой оплаты", "", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit not honored: got %d", len(limited))
	}
}

func TestRecommendAssigneesNoTimestampsNoSpeedBonus(t *testing.T) {
	// Completed tickets without resolution timestamps still count toward
	// workload and experience, but never trigger the speed reason.
	repo := repository.NewMemoryTicketReader([]domain.TicketRecord{
		makeTicket("1", "Закрытая задача", testClock.Add(-time.Hour),
			withAssignee(alice), withStatus("closed")),
		makeTicket("2", "Еще одна закрытая", testClock.Add(-2*time.Hour),
			withAssignee(alice), withStatus("done")),
	})
	svc := newTestService(repo, testClock)

	got, err := svc.RecommendAssignees(context.Background(), "ws-1", "Планирование спринта", "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}
	if containsReason(got[0].Reasons, "fast resolution time") {
		t.Fatalf("speed reason must not fire without resolution timestamps: %v", got[0].Reasons)
	}
	// base 50 + workload 20 + experience 4
	if got[0].Score != 74 {
		t.Fatalf("expected score 74, got %d", got[0].Score)
	}
}

func TestRecommendAssigneesReadFailurePropagates(t *testing.T) {
	repo := repository.NewMemoryTicketReader(nil)
	repo.Err = errors.New("connection refused")
	svc := newTestService(repo, testClock)

	if _, err := svc.RecommendAssignees(context.Background(), "ws-1", "Сбой", "", 5); err == nil {
		t.Fatal("expected error from failing read")
	}
}

func containsReason(reasons []string, want string) bool {
	for _, reason := range reasons {
		if reason == want {
			return true
		}
	}
	return false
}

func charID(prefix string, i int) string {
	return prefix + "-" + string(rune('a'+i))
}
