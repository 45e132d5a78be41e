package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-insights/internal/domain"
)

// RecentTicketFilter narrows the historical window read for a workspace.
// Results are always ordered most-recently-created first.
type RecentTicketFilter struct {
	Limit        int
	CreatedAfter *time.Time
	AssigneeID   *string
}

// TicketReader is the single external read contract this service consumes
// from the portal's persistence layer.
type TicketReader interface {
	ListRecent(ctx context.Context, workspaceID string, filter RecentTicketFilter) ([]domain.TicketRecord, error)
}

type ticketReader struct {
	pool *pgxpool.Pool
}

// NewTicketReader builds a pgx-backed reader over the portal's tables.
func NewTicketReader(pool *pgxpool.Pool) TicketReader {
	return &ticketReader{pool: pool}
}

func (r *ticketReader) ListRecent(ctx context.Context, workspaceID string, filter RecentTicketFilter) ([]domain.TicketRecord, error) {
	base := `SELECT t.id, t.workspace_id, t.custom_id, t.title, t.status,
                    t.created_at, t.resolved_at, t.first_response_at,
                    u.id, u.first_name, u.last_name, u.email
             FROM tickets t
             LEFT JOIN users u ON u.id = t.assignee_id`
	clauses := []string{"t.workspace_id=$1"}
	args := []any{workspaceID}

	if filter.CreatedAfter != nil {
		args = append(args, *filter.CreatedAfter)
		clauses = append(clauses, fmt.Sprintf("t.created_at >= $%d", len(args)))
	}
	if filter.AssigneeID != nil {
		args = append(args, *filter.AssigneeID)
		clauses = append(clauses, fmt.Sprintf("t.assignee_id = $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY t.created_at DESC LIMIT %d",
		base, strings.Join(clauses, " AND "), limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTicketRecords(rows)
}

func scanTicketRecords(rows pgx.Rows) ([]domain.TicketRecord, error) {
	var result []domain.TicketRecord
	for rows.Next() {
		var (
			ticket    domain.TicketRecord
			userID    *string
			firstName *string
			lastName  *string
			email     *string
		)
		if err := rows.Scan(
			&ticket.ID,
			&ticket.WorkspaceID,
			&ticket.CustomID,
			&ticket.Title,
			&ticket.Status,
			&ticket.CreatedAt,
			&ticket.ResolvedAt,
			&ticket.FirstResponseAt,
			&userID,
			&firstName,
			&lastName,
			&email,
		); err != nil {
			return nil, err
		}
		if userID != nil {
			ticket.Assignee = &domain.UserRecord{
				ID:        *userID,
				FirstName: deref(firstName),
				LastName:  deref(lastName),
				Email:     deref(email),
			}
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func deref(val *string) string {
	if val == nil {
		return ""
	}
	return *val
}
