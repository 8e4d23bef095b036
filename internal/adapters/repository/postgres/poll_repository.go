package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

const pollColumns = `p.id, p.title, p.question, p.description, p.category, p.creator_id, p.batch_id,
		p.is_active, p.allow_multiple, p.expires_at, p.created_at, p.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO polls (id, title, question, description, category, creator_id, batch_id,
			is_active, allow_multiple, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = tx.ExecContext(ctx, queryPoll,
		poll.ID, poll.Title, poll.Question, poll.Description, poll.Category, poll.CreatorID, poll.BatchID,
		poll.IsActive, poll.AllowMultiple, poll.ExpiresAt, poll.CreatedAt, poll.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err, "polls_batch_id_fkey") {
			return domain.ErrUnknownBatch
		}
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	if err := insertOptions(ctx, tx, poll.Options); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	queryPoll := `SELECT ` + pollColumns + ` FROM polls p WHERE p.id = $1`

	var poll domain.Poll
	err := scanPoll(r.db.QueryRowContext(ctx, queryPoll, id), &poll)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	options, err := r.fetchOptions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Options = options

	return &poll, nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	query := `SELECT ` + pollColumns + ` FROM polls p ORDER BY p.created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all polls: %w", err)
	}
	defer rows.Close()

	var polls []*domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := scanPoll(rows, &poll); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, &poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

func (r *pollRepository) List(ctx context.Context, filter ports.PollFilter) ([]*domain.PollSummary, int, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("p.category = $%d", len(args)))
	}
	if filter.BatchID != nil {
		args = append(args, *filter.BatchID)
		conds = append(conds, fmt.Sprintf("p.batch_id = $%d", len(args)))
	}
	if filter.BatchScoped {
		if filter.ViewerBatchID != nil {
			args = append(args, *filter.ViewerBatchID)
			conds = append(conds, fmt.Sprintf("(p.batch_id IS NULL OR p.batch_id = $%d)", len(args)))
		} else {
			conds = append(conds, "p.batch_id IS NULL")
		}
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM polls p `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count polls: %w", err)
	}

	orderBy := "p.created_at DESC, p.id"
	if filter.Popular {
		orderBy = `(SELECT COALESCE(SUM(pr.response_count), 0) FROM poll_results pr WHERE pr.poll_id = p.id) DESC,
			p.created_at DESC, p.id`
	}

	query := fmt.Sprintf(`
		SELECT %s,
			COALESCE(u.name, ''),
			(SELECT COUNT(*) FROM responses r WHERE r.poll_id = p.id)
		FROM polls p
		LEFT JOIN users u ON u.id = p.creator_id
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, pollColumns, where, orderBy, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	var summaries []*domain.PollSummary
	for rows.Next() {
		var s domain.PollSummary
		if err := scanPoll(rows, &s.Poll, &s.CreatorName, &s.ResponseCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan poll: %w", err)
		}
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating polls: %w", err)
	}

	polls := make([]*domain.Poll, len(summaries))
	for i, s := range summaries {
		polls[i] = &s.Poll
	}
	if err := r.attachOptions(ctx, polls); err != nil {
		return nil, 0, err
	}

	return summaries, total, nil
}

// Update writes the poll fields and applies the option diff atomically.
// The poll row is locked first; responses insert under a share lock on the
// same row, so no vote can land between the response check and the flag change.
func (r *pollRepository) Update(ctx context.Context, poll *domain.Poll, diff domain.OptionDiff) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var allowMultiple bool
	err = tx.QueryRowContext(ctx, `SELECT allow_multiple FROM polls WHERE id = $1 FOR UPDATE`, poll.ID).Scan(&allowMultiple)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPollNotFound
		}
		return fmt.Errorf("failed to lock poll: %w", err)
	}

	if allowMultiple != poll.AllowMultiple {
		var hasResponses bool
		err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM responses WHERE poll_id = $1)`, poll.ID).Scan(&hasResponses)
		if err != nil {
			return fmt.Errorf("failed to check responses: %w", err)
		}
		if hasResponses {
			return domain.ErrPollHasResponses
		}
	}

	queryPoll := `
		UPDATE polls
		SET title = $2, question = $3, description = $4, category = $5, batch_id = $6,
			allow_multiple = $7, expires_at = $8, updated_at = $9
		WHERE id = $1
	`
	res, err := tx.ExecContext(ctx, queryPoll,
		poll.ID, poll.Title, poll.Question, poll.Description, poll.Category, poll.BatchID,
		poll.AllowMultiple, poll.ExpiresAt, poll.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err, "polls_batch_id_fkey") {
			return domain.ErrUnknownBatch
		}
		return fmt.Errorf("failed to update poll: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrPollNotFound
	}

	if len(diff.Removed) > 0 {
		// Responses pointing at removed options cascade away with them.
		_, err = tx.ExecContext(ctx,
			`DELETE FROM poll_options WHERE poll_id = $1 AND id = ANY($2::uuid[])`,
			poll.ID, pq.Array(uuidStrings(diff.Removed)),
		)
		if err != nil {
			return fmt.Errorf("failed to delete options: %w", err)
		}
	}

	if len(diff.Kept) > 0 {
		stmt, err := tx.PrepareContext(ctx, `UPDATE poll_options SET text = $3, position = $4 WHERE poll_id = $1 AND id = $2`)
		if err != nil {
			return fmt.Errorf("failed to prepare option update: %w", err)
		}
		defer stmt.Close()

		for _, opt := range diff.Kept {
			if _, err := stmt.ExecContext(ctx, poll.ID, opt.ID, opt.Text, opt.Position); err != nil {
				return fmt.Errorf("failed to update option: %w", err)
			}
		}
	}

	if err := insertOptions(ctx, tx, diff.Added); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	if n == 0 {
		return domain.ErrPollNotFound
	}
	return nil
}

func (r *pollRepository) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE polls
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING is_active
	`
	var active bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrPollNotFound
		}
		return false, fmt.Errorf("failed to toggle poll: %w", err)
	}
	return active, nil
}

func (r *pollRepository) BatchExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM batches WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check batch: %w", err)
	}
	return exists, nil
}

func (r *pollRepository) fetchOptions(ctx context.Context, pollID uuid.UUID) ([]domain.PollOption, error) {
	queryOptions := `
		SELECT id, poll_id, text, position, created_at
		FROM poll_options
		WHERE poll_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	var options []domain.PollOption
	for rows.Next() {
		var opt domain.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Position, &opt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}

// attachOptions loads the options of several polls in one query.
func (r *pollRepository) attachOptions(ctx context.Context, polls []*domain.Poll) error {
	if len(polls) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Poll, len(polls))
	ids := make([]uuid.UUID, 0, len(polls))
	for _, p := range polls {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query := `
		SELECT id, poll_id, text, position, created_at
		FROM poll_options
		WHERE poll_id = ANY($1::uuid[])
		ORDER BY poll_id, position
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(uuidStrings(ids)))
	if err != nil {
		return fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var opt domain.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Position, &opt.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan option: %w", err)
		}
		if p, ok := byID[opt.PollID]; ok {
			p.Options = append(p.Options, opt)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating options: %w", err)
	}
	return nil
}

func insertOptions(ctx context.Context, tx *sql.Tx, options []domain.PollOption) error {
	if len(options) == 0 {
		return nil
	}

	queryOption := `
		INSERT INTO poll_options (id, poll_id, text, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	stmt, err := tx.PrepareContext(ctx, queryOption)
	if err != nil {
		return fmt.Errorf("failed to prepare option statement: %w", err)
	}
	defer stmt.Close()

	for _, opt := range options {
		_, err = stmt.ExecContext(ctx, opt.ID, opt.PollID, opt.Text, opt.Position, opt.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}
	return nil
}

func scanPoll(row rowScanner, poll *domain.Poll, extra ...any) error {
	dest := []any{
		&poll.ID, &poll.Title, &poll.Question, &poll.Description, &poll.Category, &poll.CreatorID, &poll.BatchID,
		&poll.IsActive, &poll.AllowMultiple, &poll.ExpiresAt, &poll.CreatedAt, &poll.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
