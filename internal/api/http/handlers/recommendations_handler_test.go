package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-insights/internal/api/http"
	"github.com/spec-kit/ticket-insights/internal/api/http/handlers"
	"github.com/spec-kit/ticket-insights/internal/auth"
	"github.com/spec-kit/ticket-insights/internal/domain"
	"github.com/spec-kit/ticket-insights/internal/events"
	"github.com/spec-kit/ticket-insights/internal/observability"
	"github.com/spec-kit/ticket-insights/internal/persistence"
	"github.com/spec-kit/ticket-insights/internal/repository"
	"github.com/spec-kit/ticket-insights/internal/service"
)

func newTestApp(t *testing.T, tickets []domain.TicketRecord) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	svc := service.NewRecommendationService(service.RecommendationDependencies{
		TicketRepo: repository.NewMemoryTicketReader(tickets),
		Dispatcher: events.NewInMemoryDispatcher(),
		Logger:     logger,
	})

	tokens := auth.NewTokenManager("test-secret")

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Recommendations: handlers.NewRecommendationsHandler(svc),
		AuthMiddleware:  auth.NewMiddleware(tokens),
	})
	return app, tokens
}

func bearerToken(t *testing.T, tokens *auth.TokenManager) string {
	t.Helper()
	token, err := tokens.IssueForTests("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func TestRecommendationsRequireAuth(t *testing.T) {
	app, _ := newTestApp(t, nil)

	req := httptest.NewRequest("GET", "/workspaces/ws-1/recommendations/priority?title=test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRecommendationsRequireTitle(t *testing.T) {
	app, tokens := newTestApp(t, nil)

	req := httptest.NewRequest("GET", "/workspaces/ws-1/recommendations/assignees", nil)
	req.Header.Set("Authorization", bearerToken(t, tokens))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %q", body.Error.Code)
	}
}

func TestRecommendPriorityEndpoint(t *testing.T) {
	app, tokens := newTestApp(t, nil)

	query := url.Values{"title": {"СРОЧНО! Не работает продакшн!"}}
	req := httptest.NewRequest("GET", "/workspaces/ws-1/recommendations/priority?"+query.Encode(), nil)
	req.Header.Set("Authorization", bearerToken(t, tokens))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			SuggestedPriority string   `json:"suggestedPriority"`
			Confidence        float64  `json:"confidence"`
			Reasons           []string `json:"reasons"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.SuggestedPriority != "critical" && body.Data.SuggestedPriority != "high" {
		t.Fatalf("expected critical or high, got %q", body.Data.SuggestedPriority)
	}
	if body.Data.Confidence <= 0.5 {
		t.Fatalf("expected confidence above 0.5, got %v", body.Data.Confidence)
	}
	if len(body.Data.Reasons) == 0 {
		t.Fatal("reasons must be non-empty")
	}
}

func TestFindSimilarEndpoint(t *testing.T) {
	now := time.Now()
	app, tokens := newTestApp(t, []domain.TicketRecord{
		{
			ID: "1", WorkspaceID: "ws-1", CustomID: "TCK-1",
			Title: "Проблема с сервером", Status: "new", CreatedAt: now.Add(-time.Hour),
		},
		{
			ID: "2", WorkspaceID: "ws-1", CustomID: "TCK-2",
			Title: "Проблема с сервером повторно", Status: "new", CreatedAt: now.Add(-2 * time.Hour),
		},
	})

	query := url.Values{
		"title":      {"Проблема с сервером"},
		"exclude_id": {"1"},
	}
	req := httptest.NewRequest("GET", "/workspaces/ws-1/recommendations/similar?"+query.Encode(), nil)
	req.Header.Set("Authorization", bearerToken(t, tokens))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Data []struct {
			TicketID     string   `json:"ticketId"`
			Similarity   float64  `json:"similarity"`
			MatchedTerms []string `json:"matchedTerms"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("expected 1 match, got %d", len(body.Data))
	}
	if body.Data[0].TicketID == "1" {
		t.Fatal("excluded ticket returned")
	}
	if len(body.Data[0].MatchedTerms) == 0 {
		t.Fatal("matched terms must be non-empty")
	}
}
