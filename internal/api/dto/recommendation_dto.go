package dto

import "github.com/spec-kit/ticket-insights/internal/domain"

// UserSummaryResponse is the denormalized user carried in assignee results.
type UserSummaryResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// AssigneeRecommendationResponse is one ranked candidate.
type AssigneeRecommendationResponse struct {
	UserID  string              `json:"userId"`
	User    UserSummaryResponse `json:"user"`
	Score   int                 `json:"score"`
	Reasons []string            `json:"reasons"`
}

// PriorityRecommendationResponse carries the classifier output.
type PriorityRecommendationResponse struct {
	SuggestedPriority domain.PriorityLevel `json:"suggestedPriority"`
	Confidence        float64              `json:"confidence"`
	Reasons           []string             `json:"reasons"`
}

// ResponseTimeEstimateResponse carries the estimator output.
type ResponseTimeEstimateResponse struct {
	EstimatedMinutes int                   `json:"estimatedMinutes"`
	ConfidenceLevel  domain.ConfidenceTier `json:"confidenceLevel"`
	BasedOnSamples   int                   `json:"basedOnSamples"`
	Factors          []string              `json:"factors"`
}

// SimilarTicketMatchResponse is one lexical near-duplicate.
type SimilarTicketMatchResponse struct {
	TicketID     string   `json:"ticketId"`
	CustomID     string   `json:"customId"`
	Title        string   `json:"title"`
	Status       string   `json:"status"`
	Similarity   float64  `json:"similarity"`
	MatchedTerms []string `json:"matchedTerms"`
}

// FromAssigneeRecommendation maps a domain result.
func FromAssigneeRecommendation(rec domain.AssigneeRecommendation) AssigneeRecommendationResponse {
	return AssigneeRecommendationResponse{
		UserID: rec.UserID,
		User: UserSummaryResponse{
			ID:        rec.User.ID,
			FirstName: rec.User.FirstName,
			LastName:  rec.User.LastName,
			Email:     rec.User.Email,
		},
		Score:   rec.Score,
		Reasons: rec.Reasons,
	}
}

// FromPriorityRecommendation maps a domain result.
func FromPriorityRecommendation(rec domain.PriorityRecommendation) PriorityRecommendationResponse {
	return PriorityRecommendationResponse{
		SuggestedPriority: rec.SuggestedPriority,
		Confidence:        rec.Confidence,
		Reasons:           rec.Reasons,
	}
}

// FromResponseTimeEstimate maps a domain result.
func FromResponseTimeEstimate(est domain.ResponseTimeEstimate) ResponseTimeEstimateResponse {
	return ResponseTimeEstimateResponse{
		EstimatedMinutes: est.EstimatedMinutes,
		ConfidenceLevel:  est.ConfidenceLevel,
		BasedOnSamples:   est.BasedOnSamples,
		Factors:          est.Factors,
	}
}

// FromSimilarTicketMatch maps a domain result.
func FromSimilarTicketMatch(match domain.SimilarTicketMatch) SimilarTicketMatchResponse {
	return SimilarTicketMatchResponse{
		TicketID:     match.TicketID,
		CustomID:     match.CustomID,
		Title:        match.Title,
		Status:       match.Status,
		Similarity:   match.Similarity,
		MatchedTerms: match.MatchedTerms,
	}
}
