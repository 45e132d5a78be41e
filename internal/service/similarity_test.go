package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/ticket-insights/internal/domain"
	"github.com/spec-kit/ticket-insights/internal/repository"
)

func TestFindSimilarExcludesTicket(t *testing.T) {
	repo := repository.NewMemoryTicketReader([]domain.TicketRecord{
		makeTicket("1", "Проблема с сервером", testClock.Add(-time.Hour)),
		makeTicket("2", "Проблема с сервером повторно", testClock.Add(-2*time.Hour)),
	})
	svc := newTestService(repo, testClock)

	excludeID := "1"
	got, err := svc.FindSimilar(context.Background(), "ws-1", "Проблема с сервером", "", &excludeID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	for _, match := range got {
		if match.TicketID == excludeID {
			t.Fatalf("excluded ticket %s returned", excludeID)
		}
	}
	if got[0].TicketID != "2" {
		t.Fatalf("expected ticket 2, got %s", got[0].TicketID)
	}
	if len(got[0].MatchedTerms) == 0 {
		t.Fatal("matched terms must be non-empty by construction")
	}
}

func TestFindSimilarStopWordQueryShortCircuits(t *testing.T) {
	repo := repository.NewMemoryTicketReader([]domain.TicketRecord{
		makeTicket("1", "Проблема с сервером", testClock.Add(-time.Hour)),
	})
	svc := newTestService(repo, testClock)

	got, err := svc.FindSimilar(context.Background(), "ws-1", "как это было", "", nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result for stop-word query, got %d", len(got))
	}
	if repo.Calls != 0 {
		t.Fatalf("no-signal query must not read history, got %d calls", repo.Calls)
	}
}

func TestFindSimilarScoringAndOrdering(t *testing.T) {
	repo := repository.NewMemoryTicketReader([]domain.TicketRecord{
		makeTicket("exact", "Ошибка оплаты картой", testClock.Add(-time.Hour)),
		makeTicket("partial", "Ошибка оплаты через терминал", testClock.Add(-2*time.Hour)),
		makeTicket("unrelated", "Вопрос по отпуску", testClock.Add(-3*time.Hour)),
	})
	svc := newTestService(repo, testClock)

	got, err := svc.FindSimilar(context.Background(), "ws-1", "Ошибка оплаты картой", "", nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].TicketID != "exact" {
		t.Fatalf("expected exact title first, got %s", got[0].TicketID)
	}
	if got[0].Similarity != 1.0 {
		t.Fatalf("identical keyword sets must score 1.0, got %v", got[0].Similarity)
	}
	for i, match := range got {
		if match.Similarity < 0 || match.Similarity > 1 {
			t.Fatalf("similarity %v outside [0,1]", match.Similarity)
		}
		if i > 0 && got[i-1].Similarity < match.Similarity {
			t.Fatalf("matches not sorted non-increasing")
		}
	}
	// {ошибка, оплаты} over {ошибка, оплаты, картой, терминал} = 0.5
	if got[1].Similarity != 0.5 {
		t.Fatalf("expected partial similarity 0.5, got %v", got[1].Similarity)
	}
}

func TestFindSimilarThresholdAndLimit(t *testing.T) {
	tickets := []domain.TicketRecord{
		// one shared token against a long candidate title: below 0.10
		makeTicket("weak", "Оплаты картой терминал чеки возвраты баланс комиссия лимиты переводы кэшбэк", testClock.Add(-time.Hour)),
	}
	for i := 0; i < 7; i++ {
		tickets = append(tickets, makeTicket(
			charID("s", i), "Ошибка оплаты", testClock.Add(-time.Duration(i+2)*time.Hour)))
	}
	svc := newTestService(repository.NewMemoryTicketReader(tickets), testClock)

	got, err := svc.FindSimilar(context.Background(), "ws-1", "Ошибка оплаты", "", nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("limit of 5 not honored, got %d", len(got))
	}
	for _, match := range got {
		if match.TicketID == "weak" {
			t.Fatalf("below-threshold candidate returned: %v", match)
		}
		if match.Similarity < 0.10 {
			t.Fatalf("similarity %v below threshold", match.Similarity)
		}
	}
}
