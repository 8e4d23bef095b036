package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

type pollResultRepository struct {
	db *sql.DB
}

func NewPollResultRepository(db *sql.DB) ports.PollResultRepository {
	return &pollResultRepository{
		db: db,
	}
}

// SummarizeResponses snapshots the per-option counts of a poll, zero-count
// options included.
func (r *pollResultRepository) SummarizeResponses(ctx context.Context, pollID uuid.UUID) error {
	query := `
		INSERT INTO poll_results (poll_id, option_id, response_count, last_updated_at)
		SELECT o.poll_id, o.id, COUNT(r.id), NOW()
		FROM poll_options o
		LEFT JOIN responses r ON r.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.poll_id, o.id
		ON CONFLICT (poll_id, option_id) DO UPDATE
		SET response_count = EXCLUDED.response_count,
		    last_updated_at = NOW();
	`

	_, err := r.db.ExecContext(ctx, query, pollID)
	if err != nil {
		return fmt.Errorf("failed to summarize responses for poll %s: %w", pollID, err)
	}

	return nil
}
