package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-insights/internal/events"
	"github.com/spec-kit/ticket-insights/internal/observability"
)

var recommendationEvents = []events.EventType{
	events.EventAssigneesRecommended,
	events.EventPriorityRecommended,
	events.EventResponseTimeEstimated,
	events.EventSimilarTicketsFound,
}

// StartAnalyticsWorker subscribes to recommendation-served events and feeds
// the in-memory operation counters.
func StartAnalyticsWorker(dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	for _, eventType := range recommendationEvents {
		dispatcher.Subscribe(eventType, func(_ context.Context, event events.Event) error {
			metrics.RecordRecommendation(string(event.Type))
			logger.Debug("recommendation served",
				zap.String("event_type", string(event.Type)),
				zap.String("workspace_id", event.WorkspaceID),
			)
			return nil
		})
	}
}
