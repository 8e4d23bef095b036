package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

type responseRepository struct {
	db *sql.DB
}

func NewResponseRepository(db *sql.DB) ports.ResponseRepository {
	return &responseRepository{
		db: db,
	}
}

// Save inserts the response in a single statement. The uniqueness slot is
// derived from the stored allow_multiple flag, so the unique constraints
// enforce both voting rules even under concurrent submissions. The share lock
// on the poll row keeps the flag stable until the insert commits.
func (r *responseRepository) Save(ctx context.Context, response *domain.Response) error {
	query := `
		INSERT INTO responses (id, poll_id, option_id, user_id, slot, created_at)
		SELECT $1::uuid, p.id, $3::uuid, $4::uuid, CASE WHEN p.allow_multiple THEN $3::uuid ELSE p.id END, $5::timestamptz
		FROM polls p
		WHERE p.id = $2
		FOR SHARE
	`
	res, err := r.db.ExecContext(ctx, query, response.ID, response.PollID, response.OptionID, response.UserID, response.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err, "responses_poll_user_option_key"):
			return domain.ErrOptionAlreadySelected
		case isUniqueViolation(err, ""):
			return domain.ErrAlreadyVoted
		case isForeignKeyViolation(err, "responses_option_fkey"):
			return domain.ErrInvalidOption
		}
		return fmt.Errorf("failed to save response: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}
	if n == 0 {
		return domain.ErrPollNotFound
	}
	return nil
}

func (r *responseRepository) HasResponded(ctx context.Context, pollID, userID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM responses WHERE poll_id = $1 AND user_id = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, pollID, userID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing response: %w", err)
	}
	return true, nil
}

func (r *responseRepository) HasSelected(ctx context.Context, pollID, userID, optionID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM responses WHERE poll_id = $1 AND user_id = $2 AND option_id = $3 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, pollID, userID, optionID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing response: %w", err)
	}
	return true, nil
}

func (r *responseRepository) OptionIDsByUser(ctx context.Context, pollID, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT option_id FROM responses WHERE poll_id = $1 AND user_id = $2 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, pollID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user responses: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responses: %w", err)
	}
	return ids, nil
}

func (r *responseRepository) CountByOption(ctx context.Context, pollID uuid.UUID) (map[uuid.UUID]int64, error) {
	query := `
		SELECT option_id, COUNT(*)
		FROM responses
		WHERE poll_id = $1
		GROUP BY option_id
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count responses: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)
	for rows.Next() {
		var (
			optionID uuid.UUID
			count    int64
		)
		if err := rows.Scan(&optionID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[optionID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counts: %w", err)
	}
	return counts, nil
}

func (r *responseRepository) CountByPoll(ctx context.Context, pollID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses WHERE poll_id = $1`, pollID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}

func (r *responseRepository) ListDetailed(ctx context.Context, pollID uuid.UUID) ([]domain.ResponseDetail, error) {
	query := `
		SELECT r.id, r.user_id, COALESCE(u.name, ''), r.option_id, o.text, r.created_at
		FROM responses r
		JOIN poll_options o ON o.id = r.option_id
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.poll_id = $1
		ORDER BY r.created_at DESC, r.id
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	responses := []domain.ResponseDetail{}
	for rows.Next() {
		var d domain.ResponseDetail
		if err := rows.Scan(&d.ID, &d.UserID, &d.UserName, &d.OptionID, &d.OptionText, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responses: %w", err)
	}
	return responses, nil
}
