package domain

// PriorityLevel enumerates the four ordered priority labels the classifier
// can suggest.
type PriorityLevel string

const (
	PriorityLow      PriorityLevel = "low"
	PriorityMedium   PriorityLevel = "medium"
	PriorityHigh     PriorityLevel = "high"
	PriorityCritical PriorityLevel = "critical"
)

// ConfidenceTier is a coarse qualitative bucket summarizing statistical
// reliability of an estimate.
type ConfidenceTier string

const (
	ConfidenceLow    ConfidenceTier = "low"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceHigh   ConfidenceTier = "high"
)

// AssigneeRecommendation is one ranked candidate assignee.
type AssigneeRecommendation struct {
	UserID  string
	User    UserRecord
	Score   int
	Reasons []string
}

// PriorityRecommendation is the classifier output: a label, a confidence in
// [0,1] rounded to two decimals, and the reasons that produced it.
type PriorityRecommendation struct {
	SuggestedPriority PriorityLevel
	Confidence        float64
	Reasons           []string
}

// ResponseTimeEstimate is the estimator output.
type ResponseTimeEstimate struct {
	EstimatedMinutes int
	ConfidenceLevel  ConfidenceTier
	BasedOnSamples   int
	Factors          []string
}

// SimilarTicketMatch is one lexical near-duplicate of the input ticket.
// MatchedTerms is non-empty by construction: candidates without keyword
// overlap are filtered out before scoring.
type SimilarTicketMatch struct {
	TicketID     string
	CustomID     string
	Title        string
	Status       string
	Similarity   float64
	MatchedTerms []string
}
