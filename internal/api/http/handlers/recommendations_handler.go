package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-insights/internal/api/dto"
	"github.com/spec-kit/ticket-insights/internal/service"
	apperrors "github.com/spec-kit/ticket-insights/pkg/util"
)

// RecommendationsHandler exposes the four engine query operations.
type RecommendationsHandler struct {
	service *service.RecommendationService
}

// NewRecommendationsHandler constructs handler.
func NewRecommendationsHandler(svc *service.RecommendationService) *RecommendationsHandler {
	return &RecommendationsHandler{service: svc}
}

// RecommendAssignees GET /workspaces/:workspace_id/recommendations/assignees.
func (h *RecommendationsHandler) RecommendAssignees(c *fiber.Ctx) error {
	workspaceID := c.Params("workspace_id")
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	limit := parseLimit(c.Query("limit"))

	recommendations, err := h.service.RecommendAssignees(c.UserContext(), workspaceID, title, c.Query("description"), limit)
	if err != nil {
		return err
	}

	items := make([]dto.AssigneeRecommendationResponse, 0, len(recommendations))
	for _, rec := range recommendations {
		items = append(items, dto.FromAssigneeRecommendation(rec))
	}
	return c.JSON(fiber.Map{"data": items})
}

// RecommendPriority GET /workspaces/:workspace_id/recommendations/priority.
func (h *RecommendationsHandler) RecommendPriority(c *fiber.Ctx) error {
	workspaceID := c.Params("workspace_id")
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	recommendation, err := h.service.RecommendPriority(c.UserContext(), workspaceID, title, c.Query("description"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPriorityRecommendation(recommendation)})
}

// EstimateResponseTime GET /workspaces/:workspace_id/recommendations/response-time.
func (h *RecommendationsHandler) EstimateResponseTime(c *fiber.Ctx) error {
	workspaceID := c.Params("workspace_id")

	var assigneeID *string
	if val := strings.TrimSpace(c.Query("assignee_id")); val != "" {
		assigneeID = &val
	}

	estimate, err := h.service.EstimateResponseTime(c.UserContext(), workspaceID, c.Query("title"), assigneeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromResponseTimeEstimate(estimate)})
}

// FindSimilar GET /workspaces/:workspace_id/recommendations/similar.
func (h *RecommendationsHandler) FindSimilar(c *fiber.Ctx) error {
	workspaceID := c.Params("workspace_id")
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	limit := parseLimit(c.Query("limit"))

	var excludeID *string
	if val := strings.TrimSpace(c.Query("exclude_id")); val != "" {
		excludeID = &val
	}

	matches, err := h.service.FindSimilar(c.UserContext(), workspaceID, title, c.Query("description"), excludeID, limit)
	if err != nil {
		return err
	}

	items := make([]dto.SimilarTicketMatchResponse, 0, len(matches))
	for _, match := range matches {
		items = append(items, dto.FromSimilarTicketMatch(match))
	}
	return c.JSON(fiber.Map{"data": items})
}

// parseLimit treats limit as a hard upper bound, defaulting to 5. There is
// no pagination cursor; callers needing more results raise the limit.
func parseLimit(val string) int {
	if val == "" {
		return 0
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return 0
	}
	return parsed
}
