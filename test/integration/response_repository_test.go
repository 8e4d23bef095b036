package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/vncsmyrnk/academic-polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
)

// Save is called directly so the unique violations surface without the
// service pre-checks in front of them.
func TestResponseRepository_SaveDuplicates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, nil)
	defer app.Teardown(t)

	ctx := context.Background()
	responses := repo.NewResponseRepository(app.DB)

	_, professor := app.createUserAndToken(t, domain.RoleProfessor)
	studentID, _ := app.createUserAndToken(t, domain.RoleStudent)

	save := func(poll domain.Poll, option domain.PollOption) error {
		return responses.Save(ctx, &domain.Response{
			ID:        uuid.New(),
			PollID:    poll.ID,
			OptionID:  option.ID,
			UserID:    studentID,
			CreatedAt: time.Now(),
		})
	}

	t.Run("single choice", func(t *testing.T) {
		poll := app.createPoll(t, professor, pollPayload("A", "B"))

		require.NoError(t, save(poll, poll.Options[0]))
		assert.ErrorIs(t, save(poll, poll.Options[1]), domain.ErrAlreadyVoted)
	})

	t.Run("multiple choice", func(t *testing.T) {
		poll := multiChoicePoll(t, app, professor)

		require.NoError(t, save(poll, poll.Options[0]))
		require.NoError(t, save(poll, poll.Options[1]))
		assert.ErrorIs(t, save(poll, poll.Options[0]), domain.ErrOptionAlreadySelected)
	})

	t.Run("option of another poll", func(t *testing.T) {
		poll := app.createPoll(t, professor, pollPayload("A", "B"))
		foreign := app.createPoll(t, professor, pollPayload("C", "D"))

		assert.ErrorIs(t, save(poll, foreign.Options[0]), domain.ErrInvalidOption)
	})
}
