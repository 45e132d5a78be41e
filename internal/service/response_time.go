package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/spec-kit/ticket-insights/internal/domain"
	"github.com/spec-kit/ticket-insights/internal/events"
	"github.com/spec-kit/ticket-insights/internal/repository"
	apperrors "github.com/spec-kit/ticket-insights/pkg/util"
)

const (
	historyDays       = 30
	outlierMinutes    = 10080 // one week
	defaultEstimate   = 60
	weekendMultiplier = 1.5
	offHoursMult      = 1.3
	businessDayStart  = 9
	businessDayEnd    = 18
)

// EstimateResponseTime predicts first-response latency in minutes from the
// last 30 days of workspace history, optionally narrowed to one assignee.
// The median is the base estimate: it stays robust when the sample contains
// a few extreme latencies that would drag the mean. Weekend and off-hours
// multipliers key off the current time at estimation, not the ticket's own
// creation context, and compound when both apply.
func (s *RecommendationService) EstimateResponseTime(ctx context.Context, workspaceID, title string, assigneeID *string) (domain.ResponseTimeEstimate, error) {
	since := s.now().AddDate(0, 0, -historyDays)
	filter := repository.RecentTicketFilter{
		Limit:        responseWindow,
		CreatedAfter: &since,
		AssigneeID:   assigneeID,
	}
	tickets, err := s.tickets.ListRecent(ctx, workspaceID, filter)
	if err != nil {
		return domain.ResponseTimeEstimate{}, apperrors.NewDependencyUnavailable("ticket history read failed", err)
	}

	var samples []float64
	for _, ticket := range tickets {
		if ticket.FirstResponseAt == nil {
			continue
		}
		minutes := ticket.FirstResponseAt.Sub(ticket.CreatedAt).Minutes()
		if minutes <= 0 || minutes >= outlierMinutes {
			continue
		}
		samples = append(samples, minutes)
	}

	if len(samples) == 0 {
		estimate := domain.ResponseTimeEstimate{
			EstimatedMinutes: defaultEstimate,
			ConfidenceLevel:  domain.ConfidenceLow,
			BasedOnSamples:   0,
			Factors:          []string{"no historical data, default estimate used"},
		}
		s.publishEstimate(ctx, workspaceID, estimate)
		return estimate, nil
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	mean, stddev := meanStddev(samples)

	estimate := median
	var factors []string

	now := s.now()
	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		estimate *= weekendMultiplier
		factors = append(factors, "weekend (+50% to time)")
	}
	if hour := now.Hour(); hour < businessDayStart || hour >= businessDayEnd {
		estimate *= offHoursMult
		factors = append(factors, "outside business hours (+30% to time)")
	}

	confidence := domain.ConfidenceLow
	switch {
	case len(samples) >= 20 && mean > 0 && stddev/mean < 0.5:
		confidence = domain.ConfidenceHigh
		factors = append(factors, "stable historical data")
	case len(samples) >= 10:
		confidence = domain.ConfidenceMedium
	default:
		factors = append(factors, "limited historical data")
	}

	if assigneeID != nil {
		factors = append(factors, "assignee-specific data used")
	}
	if len(factors) == 0 {
		factors = []string{"based on historical data"}
	}

	minutes := int(math.Round(estimate))
	if minutes < 1 {
		minutes = 1
	}

	result := domain.ResponseTimeEstimate{
		EstimatedMinutes: minutes,
		ConfidenceLevel:  confidence,
		BasedOnSamples:   len(samples),
		Factors:          factors,
	}
	s.publishEstimate(ctx, workspaceID, result)
	return result, nil
}

func (s *RecommendationService) publishEstimate(ctx context.Context, workspaceID string, estimate domain.ResponseTimeEstimate) {
	s.publishEvent(ctx, events.EventResponseTimeEstimated, workspaceID, events.ResponseTimeEstimatedPayload{
		EstimatedMinutes: estimate.EstimatedMinutes,
		Confidence:       estimate.ConfidenceLevel,
		Samples:          estimate.BasedOnSamples,
	})
}

// meanStddev returns the arithmetic mean and population standard deviation.
func meanStddev(samples []float64) (float64, float64) {
	sum := 0.0
	for _, val := range samples {
		sum += val
	}
	mean := sum / float64(len(samples))

	variance := 0.0
	for _, val := range samples {
		diff := val - mean
		variance += diff * diff
	}
	variance /= float64(len(samples))
	return mean, math.Sqrt(variance)
}
