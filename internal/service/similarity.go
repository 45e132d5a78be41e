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

const similarityThreshold = 0.10

// FindSimilar returns near-duplicate tickets ranked by Jaccard similarity
// between title keyword sets. An input that tokenizes to nothing carries no
// signal and short-circuits to an empty result without touching history.
func (s *RecommendationService) FindSimilar(ctx context.Context, workspaceID, title, description string, excludeID *string, limit int) ([]domain.SimilarTicketMatch, error) {
	if limit <= 0 {
		limit = defaultResultLimit
	}

	inputKeywords := keywords.Extract(title + " " + description)
	if len(inputKeywords) == 0 {
		return []domain.SimilarTicketMatch{}, nil
	}
	inputSet := keywords.ToSet(inputKeywords)

	tickets, err := s.tickets.ListRecent(ctx, workspaceID, repository.RecentTicketFilter{Limit: similarityWindow})
	if err != nil {
		return nil, apperrors.NewDependencyUnavailable("ticket history read failed", err)
	}

	matches := make([]domain.SimilarTicketMatch, 0, len(tickets))
	for _, ticket := range tickets {
		if excludeID != nil && ticket.ID == *excludeID {
			continue
		}

		candidate := keywords.Extract(ticket.Title)
		candidateSet := keywords.ToSet(candidate)

		var matchedTerms []string
		for _, token := range inputKeywords {
			if candidateSet[token] {
				matchedTerms = append(matchedTerms, token)
			}
		}
		if len(matchedTerms) == 0 {
			continue
		}

		unionSize := len(inputSet)
		for _, token := range candidate {
			if !inputSet[token] {
				unionSize++
			}
		}

		similarity := float64(len(matchedTerms)) / float64(unionSize)
		if similarity < similarityThreshold {
			continue
		}

		matches = append(matches, domain.SimilarTicketMatch{
			TicketID:     ticket.ID,
			CustomID:     ticket.CustomID,
			Title:        ticket.Title,
			Status:       ticket.Status,
			Similarity:   round2(similarity),
			MatchedTerms: matchedTerms,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	s.publishEvent(ctx, events.EventSimilarTicketsFound, workspaceID, events.SimilarTicketsFoundPayload{
		Matches: len(matches),
	})

	return matches, nil
}
