package events

import (
	"time"

	"github.com/spec-kit/ticket-insights/internal/domain"
)

// EventType enumerates recommendation-served event identifiers.
type EventType string

const (
	EventAssigneesRecommended  EventType = "assignees_recommended"
	EventPriorityRecommended   EventType = "priority_recommended"
	EventResponseTimeEstimated EventType = "response_time_estimated"
	EventSimilarTicketsFound   EventType = "similar_tickets_found"
)

// Event is emitted after a recommendation operation completes. Publication
// is fire-and-forget: it never alters the response and nothing downstream
// writes back into the ticket history.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	WorkspaceID string      `json:"workspace_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// AssigneesRecommendedPayload payload.
type AssigneesRecommendedPayload struct {
	Candidates int `json:"candidates"`
	TopScore   int `json:"top_score,omitempty"`
}

// PriorityRecommendedPayload payload.
type PriorityRecommendedPayload struct {
	Priority   domain.PriorityLevel `json:"priority"`
	Confidence float64              `json:"confidence"`
}

// ResponseTimeEstimatedPayload payload.
type ResponseTimeEstimatedPayload struct {
	EstimatedMinutes int                   `json:"estimated_minutes"`
	Confidence       domain.ConfidenceTier `json:"confidence"`
	Samples          int                   `json:"samples"`
}

// SimilarTicketsFoundPayload payload.
type SimilarTicketsFoundPayload struct {
	Matches int `json:"matches"`
}
