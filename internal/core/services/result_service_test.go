package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports/mocks"
)

func TestResultService_Details(t *testing.T) {
	creator := actorWith(domain.RoleProfessor)
	poll := fakePoll(creator.UserID, "A", "B", "C")
	a, b := poll.Options[0], poll.Options[1]
	counts := map[uuid.UUID]int64{a.ID: 3, b.ID: 1}

	t.Run("student sees aggregates only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		polls := mocks.NewMockPollRepository(ctrl)
		responses := mocks.NewMockResponseRepository(ctrl)
		svc := NewResultService(polls, responses)
		student := actorWith(domain.RoleStudent)

		polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)
		responses.EXPECT().CountByOption(gomock.Any(), poll.ID).Return(counts, nil)
		responses.EXPECT().OptionIDsByUser(gomock.Any(), poll.ID, student.UserID).Return([]uuid.UUID{a.ID}, nil)

		details, err := svc.Details(context.Background(), student, poll.ID.String())
		require.NoError(t, err)

		assert.Equal(t, int64(4), details.TotalResponses)
		require.Len(t, details.Results, 3)
		assert.Equal(t, 75, details.Results[0].Percentage)
		assert.Equal(t, 25, details.Results[1].Percentage)
		assert.Equal(t, 0, details.Results[2].Percentage)
		assert.False(t, details.CanSeeDetailedResults)
		assert.Nil(t, details.Responses)
		assert.True(t, details.HasVoted)
		assert.Equal(t, []uuid.UUID{a.ID}, details.MyOptionIDs)
		assert.False(t, details.CanEdit)
		assert.False(t, details.IsExpired)
	})

	t.Run("creator sees responses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		polls := mocks.NewMockPollRepository(ctrl)
		responses := mocks.NewMockResponseRepository(ctrl)
		svc := NewResultService(polls, responses)

		expired := *poll
		past := time.Now().Add(-time.Hour)
		expired.ExpiresAt = &past

		detail := []domain.ResponseDetail{{ID: uuid.New(), OptionID: a.ID, OptionText: "A"}}
		polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(&expired, nil)
		responses.EXPECT().CountByOption(gomock.Any(), poll.ID).Return(counts, nil)
		responses.EXPECT().OptionIDsByUser(gomock.Any(), poll.ID, creator.UserID).Return(nil, nil)
		responses.EXPECT().ListDetailed(gomock.Any(), poll.ID).Return(detail, nil)

		details, err := svc.Details(context.Background(), creator, poll.ID.String())
		require.NoError(t, err)

		assert.True(t, details.CanSeeDetailedResults)
		assert.Equal(t, detail, details.Responses)
		assert.False(t, details.HasVoted)
		assert.Equal(t, []uuid.UUID{}, details.MyOptionIDs)
		assert.True(t, details.CanEdit)
		assert.True(t, details.IsExpired)
	})

	t.Run("student outside the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		polls := mocks.NewMockPollRepository(ctrl)
		svc := NewResultService(polls, mocks.NewMockResponseRepository(ctrl))

		scoped := *poll
		batch := uuid.New()
		scoped.BatchID = &batch
		polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(&scoped, nil)

		_, err := svc.Details(context.Background(), actorWith(domain.RoleStudent), poll.ID.String())
		assert.ErrorIs(t, err, domain.ErrNotInBatch)
	})

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewResultService(mocks.NewMockPollRepository(ctrl), mocks.NewMockResponseRepository(ctrl))

		_, err := svc.Details(context.Background(), creator, "123")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
