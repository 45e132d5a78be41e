package service

import (
	"context"
	"sort"

	"github.com/spec-kit/ticket-insights/internal/domain"
	"github.com/spec-kit/ticket-insights/internal/events"
	"github.com/spec-kit/ticket-insights/internal/keywords"
	"github.com/spec-kit/ticket-insights/internal/repository"
	apperrors "github.com/spec-kit/ticket-insights/pkg/util"
)

// assigneeStats accumulates per-user history over the ticket window.
type assigneeStats struct {
	user              domain.UserRecord
	total             int
	active            int
	completed         int
	avgResolutionMs   float64
	resolutionSamples int
	titleKeywords     map[string]int
}

// RecommendAssignees ranks candidate assignees for a new ticket from the 500
// most recent tickets in the workspace. Scores start at 50 and accumulate
// workload, experience, resolution-speed and keyword-match bonuses, clamped
// to [0,100]. Ties keep the order in which users first appeared in the
// window. A workspace with no assigned tickets yields an empty list.
func (s *RecommendationService) RecommendAssignees(ctx context.Context, workspaceID, title, description string, limit int) ([]domain.AssigneeRecommendation, error) {
	if limit <= 0 {
		limit = defaultResultLimit
	}

	tickets, err := s.tickets.ListRecent(ctx, workspaceID, repository.RecentTicketFilter{Limit: assigneeWindow})
	if err != nil {
		return nil, apperrors.NewDependencyUnavailable("ticket history read failed", err)
	}

	order, stats := accumulateAssigneeStats(tickets)
	inputKeywords := keywords.Extract(title + " " + description)

	recommendations := make([]domain.AssigneeRecommendation, 0, len(order))
	for _, userID := range order {
		st := stats[userID]
		score := 50.0
		var reasons []string

		workloadBonus := 20 - float64(st.active)*2
		if workloadBonus < 0 {
			workloadBonus = 0
		}
		score += workloadBonus
		if st.active < 3 {
			reasons = append(reasons, "low workload")
		}

		experienceBonus := float64(st.completed) * 2
		if experienceBonus > 20 {
			experienceBonus = 20
		}
		score += experienceBonus
		if st.completed >= 10 {
			reasons = append(reasons, "extensive resolution experience")
		}

		if st.resolutionSamples > 0 {
			avgHours := st.avgResolutionMs / (1000 * 60 * 60)
			if avgHours < 4 {
				score += 15
				reasons = append(reasons, "fast resolution time")
			} else if avgHours < 24 {
				score += 10
			}
		}

		if len(inputKeywords) > 0 {
			matches := 0
			for _, token := range inputKeywords {
				if st.titleKeywords[token] > 0 {
					matches++
				}
			}
			if matches > 0 {
				score += float64(matches) / float64(len(inputKeywords)) * 20
			}
			if matches >= 2 {
				reasons = append(reasons, "keyword match")
			}
		}

		if len(reasons) == 0 {
			reasons = []string{"available for assignment"}
		}

		recommendations = append(recommendations, domain.AssigneeRecommendation{
			UserID:  userID,
			User:    st.user,
			Score:   clampScore(score),
			Reasons: reasons,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	payload := events.AssigneesRecommendedPayload{Candidates: len(recommendations)}
	if len(recommendations) > 0 {
		payload.TopScore = recommendations[0].Score
	}
	s.publishEvent(ctx, events.EventAssigneesRecommended, workspaceID, payload)

	return recommendations, nil
}

func accumulateAssigneeStats(tickets []domain.TicketRecord) ([]string, map[string]*assigneeStats) {
	var order []string
	stats := make(map[string]*assigneeStats)

	for _, ticket := range tickets {
		if ticket.Assignee == nil {
			continue
		}
		st, ok := stats[ticket.Assignee.ID]
		if !ok {
			st = &assigneeStats{
				user:          *ticket.Assignee,
				titleKeywords: make(map[string]int),
			}
			stats[ticket.Assignee.ID] = st
			order = append(order, ticket.Assignee.ID)
		}

		st.total++
		if ticket.IsTerminal() {
			st.completed++
		} else {
			st.active++
		}

		if resolution, ok := ticket.ResolutionTime(); ok {
			st.resolutionSamples++
			n := float64(st.resolutionSamples)
			// incremental mean keeps accumulation order stable
			st.avgResolutionMs = (st.avgResolutionMs*(n-1) + float64(resolution.Milliseconds())) / n
		}

		for _, token := range keywords.Extract(ticket.Title) {
			st.titleKeywords[token]++
		}
	}
	return order, stats
}
