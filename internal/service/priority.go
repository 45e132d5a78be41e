package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/ticket-insights/internal/domain"
	"github.com/spec-kit/ticket-insights/internal/events"
	"github.com/spec-kit/ticket-insights/internal/keywords"
	"github.com/spec-kit/ticket-insights/internal/repository"
	apperrors "github.com/spec-kit/ticket-insights/pkg/util"
)

// Keyword tiers are fixed ordered lists, not sets: the first substring match
// per tier wins and names the reason, so list order is part of the contract.
var (
	criticalKeywords = []string{
		"срочно", "критич", "не работает", "упал", "авария", "потеря данных",
		"critical", "urgent", "production down", "outage", "data loss", "security",
	}
	highKeywords = []string{
		"ошибка", "сломал", "не могу войти", "блокир",
		"error", "broken", "failed", "crash", "bug",
	}
	mediumKeywords = []string{
		"проблема", "медленно", "вопрос", "не отобража",
		"problem", "slow", "issue", "question",
	}
)

const (
	criticalTierScore = 40
	highTierScore     = 25
	mediumTierScore   = 10

	historySignalScore   = 15
	historyMinMatches    = 3
	historyMinOverlap    = 2
	fastResolutionWithin = 4 * time.Hour
)

// RecommendPriority classifies a new ticket's likely priority from lexical
// signal plus the resolution speed of historically similar tickets. The
// classification is deterministic: same text and history, same result.
func (s *RecommendationService) RecommendPriority(ctx context.Context, workspaceID, title, description string) (domain.PriorityRecommendation, error) {
	text := strings.ToLower(title + " " + description)

	score := 0
	var reasons []string

	if kw, ok := firstMatch(text, criticalKeywords); ok {
		score += criticalTierScore
		reasons = append(reasons, fmt.Sprintf("critical keyword detected: %q", kw))
	}
	if kw, ok := firstMatch(text, highKeywords); ok {
		score += highTierScore
		reasons = append(reasons, fmt.Sprintf("high-priority keyword detected: %q", kw))
	}
	if kw, ok := firstMatch(text, mediumKeywords); ok {
		score += mediumTierScore
		reasons = append(reasons, fmt.Sprintf("medium-priority keyword detected: %q", kw))
	}

	tickets, err := s.tickets.ListRecent(ctx, workspaceID, repository.RecentTicketFilter{Limit: priorityWindow})
	if err != nil {
		return domain.PriorityRecommendation{}, apperrors.NewDependencyUnavailable("ticket history read failed", err)
	}

	inputKeywords := keywords.Extract(title + " " + description)
	matched, fast := 0, 0
	for _, ticket := range tickets {
		overlap := keywords.Overlap(inputKeywords, keywords.ToSet(keywords.Extract(ticket.Title)))
		if overlap < historyMinOverlap {
			continue
		}
		matched++
		if resolution, ok := ticket.ResolutionTime(); ok && resolution < fastResolutionWithin {
			fast++
		}
	}
	if matched > historyMinMatches && float64(fast)/float64(matched) > 0.5 {
		score += historySignalScore
		reasons = append(reasons, "similar tickets resolved quickly")
	}

	var (
		level      domain.PriorityLevel
		confidence float64
	)
	switch {
	case score >= 50:
		level = domain.PriorityCritical
		confidence = minFloat(0.9, 0.6+float64(score)/200)
	case score >= 30:
		level = domain.PriorityHigh
		confidence = minFloat(0.85, 0.5+float64(score)/150)
	case score >= 10:
		level = domain.PriorityMedium
		confidence = minFloat(0.7, 0.4+float64(score)/100)
	default:
		level = domain.PriorityLow
		confidence = 0.5
		reasons = append(reasons, "standard ticket")
	}

	if len(reasons) == 0 {
		reasons = []string{"automatic assessment"}
	}

	recommendation := domain.PriorityRecommendation{
		SuggestedPriority: level,
		Confidence:        round2(confidence),
		Reasons:           reasons,
	}

	s.publishEvent(ctx, events.EventPriorityRecommended, workspaceID, events.PriorityRecommendedPayload{
		Priority:   recommendation.SuggestedPriority,
		Confidence: recommendation.Confidence,
	})

	return recommendation, nil
}

// firstMatch scans the tier list in order and returns the first keyword
// contained in the text, so at most one hit counts per tier.
func firstMatch(text string, tier []string) (string, bool) {
	for _, kw := range tier {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
