package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-insights/internal/events"
	"github.com/spec-kit/ticket-insights/internal/repository"
)

// Historical window caps per operation, matching the portal's read contract.
const (
	assigneeWindow   = 500
	priorityWindow   = 100
	responseWindow   = 100
	similarityWindow = 200

	defaultResultLimit = 5
)

// RecommendationService derives assignee, priority, response-time and
// similarity recommendations from a workspace's recent ticket history. Every
// operation is stateless and read-only: statistics are recomputed from a
// bounded window at call time, with no cross-call cache.
type RecommendationService struct {
	tickets    repository.TicketReader
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// RecommendationDependencies bundles collaborators for the service.
type RecommendationDependencies struct {
	TicketRepo repository.TicketReader
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      func() time.Time
}

// NewRecommendationService constructs the service.
func NewRecommendationService(deps RecommendationDependencies) *RecommendationService {
	svc := &RecommendationService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        deps.Clock,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

func (s *RecommendationService) publishEvent(ctx context.Context, eventType events.EventType, workspaceID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		WorkspaceID: workspaceID,
		Timestamp:   s.now(),
		Payload:     payload,
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func round2(val float64) float64 {
	return math.Round(val*100) / 100
}

func clampScore(score float64) int {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
