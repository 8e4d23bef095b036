package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports/mocks"
)

type pollServiceDeps struct {
	polls     *mocks.MockPollRepository
	responses *mocks.MockResponseRepository
	audit     *mocks.MockAuditRepository
}

func newTestPollService(t *testing.T) (ports.PollService, pollServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := pollServiceDeps{
		polls:     mocks.NewMockPollRepository(ctrl),
		responses: mocks.NewMockResponseRepository(ctrl),
		audit:     mocks.NewMockAuditRepository(ctrl),
	}
	return NewPollService(deps.polls, deps.responses, deps.audit, discardLogger()), deps
}

func validCreateInput() ports.CreatePollInput {
	return ports.CreatePollInput{
		Title:    "  Lunch  ",
		Question: "Where do we eat?",
		Options:  []string{" Pizza ", "Sushi", "Tacos"},
	}
}

func TestPollService_Create_Success(t *testing.T) {
	svc, deps := newTestPollService(t)
	actor := actorWith(domain.RoleProfessor)

	deps.polls.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Poll) error {
		assert.Equal(t, "Lunch", p.Title)
		assert.Equal(t, actor.UserID, p.CreatorID)
		assert.True(t, p.IsActive)
		require.Len(t, p.Options, 3)
		for i, opt := range p.Options {
			assert.Equal(t, i, opt.Position)
			assert.Equal(t, p.ID, opt.PollID)
		}
		assert.Equal(t, "Pizza", p.Options[0].Text)
		return nil
	})
	deps.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.AuditEntry) error {
		assert.Equal(t, domain.AuditPollCreated, e.Action)
		assert.Equal(t, actor.UserID, e.ActorID)
		return nil
	})

	poll, err := svc.Create(context.Background(), actor, validCreateInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, poll.ID)
}

func TestPollService_Create_AuditFailureIsIgnored(t *testing.T) {
	svc, deps := newTestPollService(t)

	deps.polls.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

	_, err := svc.Create(context.Background(), actorWith(domain.RoleAdmin), validCreateInput())
	require.NoError(t, err)
}

func TestPollService_Create_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		actor  domain.Actor
		mutate func(*ports.CreatePollInput)
		kind   error
		field  string
	}{
		{name: "unauthenticated", actor: domain.Actor{}, kind: domain.ErrUnauthenticated},
		{name: "student", actor: actorWith(domain.RoleStudent), kind: domain.ErrForbidden},
		{
			name:   "blank title",
			actor:  actorWith(domain.RoleProfessor),
			mutate: func(in *ports.CreatePollInput) { in.Title = "   " },
			kind:   domain.ErrValidation,
			field:  "title",
		},
		{
			name:   "one option",
			actor:  actorWith(domain.RoleProfessor),
			mutate: func(in *ports.CreatePollInput) { in.Options = []string{"Only"} },
			kind:   domain.ErrValidation,
			field:  "options",
		},
		{
			name:   "blank option",
			actor:  actorWith(domain.RoleProfessor),
			mutate: func(in *ports.CreatePollInput) { in.Options = []string{"A", " "} },
			kind:   domain.ErrValidation,
			field:  "options[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestPollService(t)
			input := validCreateInput()
			if tt.mutate != nil {
				tt.mutate(&input)
			}

			_, err := svc.Create(context.Background(), tt.actor, input)
			require.ErrorIs(t, err, tt.kind)

			if tt.field != "" {
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Contains(t, verr.Fields, tt.field)
			}
		})
	}
}

func TestPollService_Create_UnknownBatch(t *testing.T) {
	svc, deps := newTestPollService(t)
	batchID := uuid.New()
	input := validCreateInput()
	input.BatchID = &batchID

	deps.polls.EXPECT().BatchExists(gomock.Any(), batchID).Return(false, nil)

	_, err := svc.Create(context.Background(), actorWith(domain.RoleProfessor), input)
	assert.ErrorIs(t, err, domain.ErrUnknownBatch)
}

func TestPollService_GetPoll(t *testing.T) {
	batch := uuid.New()
	poll := fakePoll(uuid.New(), "A", "B")
	poll.BatchID = &batch

	t.Run("member of the batch", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		deps.polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)

		student := actorWith(domain.RoleStudent)
		student.BatchID = &batch

		got, err := svc.GetPoll(context.Background(), student, poll.ID.String())
		require.NoError(t, err)
		assert.Equal(t, poll.ID, got.ID)
	})

	t.Run("outside the batch", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		deps.polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)

		_, err := svc.GetPoll(context.Background(), actorWith(domain.RoleStudent), poll.ID.String())
		assert.ErrorIs(t, err, domain.ErrNotInBatch)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestPollService_ListPolls(t *testing.T) {
	professor := actorWith(domain.RoleProfessor)

	t.Run("defaults", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		deps.polls.EXPECT().List(gomock.Any(), ports.PollFilter{Limit: 10, Offset: 0}).Return(nil, 0, nil)

		list, err := svc.ListPolls(context.Background(), professor, ports.ListPollsInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, list.Page)
		assert.Equal(t, 10, list.Limit)
		assert.NotNil(t, list.Polls)
	})

	t.Run("limit capped and popular", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		deps.polls.EXPECT().List(gomock.Any(), ports.PollFilter{Category: "exams", Popular: true, Limit: 100, Offset: 200}).
			Return([]*domain.PollSummary{{}}, 250, nil)

		list, err := svc.ListPolls(context.Background(), professor, ports.ListPollsInput{Category: "exams", Page: 3, Limit: 500, Sort: "popular"})
		require.NoError(t, err)
		assert.Equal(t, 100, list.Limit)
		assert.Equal(t, 250, list.Total)
		assert.Len(t, list.Polls, 1)
	})

	t.Run("students see their batch only", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		batch := uuid.New()
		student := actorWith(domain.RoleStudent)
		student.BatchID = &batch

		deps.polls.EXPECT().List(gomock.Any(), ports.PollFilter{BatchScoped: true, ViewerBatchID: &batch, Limit: 10}).Return(nil, 0, nil)

		_, err := svc.ListPolls(context.Background(), student, ports.ListPollsInput{})
		require.NoError(t, err)
	})

	t.Run("students without batch see open polls", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		deps.polls.EXPECT().List(gomock.Any(), ports.PollFilter{BatchScoped: true, Limit: 10}).Return(nil, 0, nil)

		_, err := svc.ListPolls(context.Background(), actorWith(domain.RoleStudent), ports.ListPollsInput{})
		require.NoError(t, err)
	})

	t.Run("page out of range", func(t *testing.T) {
		svc, _ := newTestPollService(t)
		_, err := svc.ListPolls(context.Background(), professor, ports.ListPollsInput{Page: 92233720368547758, Limit: 100})

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "page")
	})

	t.Run("last page in range", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		deps.polls.EXPECT().List(gomock.Any(), ports.PollFilter{Limit: 100, Offset: maxListOffset}).Return(nil, 0, nil)

		_, err := svc.ListPolls(context.Background(), professor, ports.ListPollsInput{Page: maxListOffset/100 + 1, Limit: 100})
		require.NoError(t, err)
	})

	t.Run("unknown sort", func(t *testing.T) {
		svc, _ := newTestPollService(t)
		_, err := svc.ListPolls(context.Background(), professor, ports.ListPollsInput{Sort: "oldest"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _ := newTestPollService(t)
		_, err := svc.ListPolls(context.Background(), domain.Actor{}, ports.ListPollsInput{})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func updateInputFor(poll *domain.Poll) ports.UpdatePollInput {
	input := ports.UpdatePollInput{
		Title:         poll.Title,
		Question:      poll.Question,
		AllowMultiple: poll.AllowMultiple,
	}
	for _, opt := range poll.Options {
		id := opt.ID
		input.Options = append(input.Options, domain.OptionDraft{ID: &id, Text: opt.Text})
	}
	return input
}

func TestPollService_Update(t *testing.T) {
	creator := actorWith(domain.RoleProfessor)

	t.Run("not owner", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		poll := fakePoll(creator.UserID, "A", "B")
		deps.polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)

		_, err := svc.Update(context.Background(), actorWith(domain.RoleProfessor), poll.ID.String(), updateInputFor(poll))
		assert.ErrorIs(t, err, domain.ErrNotPollOwner)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := newTestPollService(t)
		_, err := svc.Update(context.Background(), creator, "nope", ports.UpdatePollInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidPollID)
	})

	t.Run("allowMultiple change with responses", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		poll := fakePoll(creator.UserID, "A", "B")
		deps.polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)
		deps.responses.EXPECT().CountByPoll(gomock.Any(), poll.ID).Return(int64(4), nil)

		input := updateInputFor(poll)
		input.AllowMultiple = true

		_, err := svc.Update(context.Background(), creator, poll.ID.String(), input)
		assert.ErrorIs(t, err, domain.ErrPollHasResponses)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("diff applied by admin", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		poll := fakePoll(creator.UserID, "A", "B", "C")
		a, b, c := poll.Options[0], poll.Options[1], poll.Options[2]
		deps.polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)

		input := updateInputFor(poll)
		input.Options = []domain.OptionDraft{
			{ID: &b.ID, Text: " Bee "},
			{Text: "D"},
			{ID: &a.ID, Text: "A"},
		}

		deps.polls.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Poll, diff domain.OptionDiff) error {
			assert.Equal(t, []uuid.UUID{c.ID}, diff.Removed)
			assert.Len(t, diff.Added, 1)
			assert.Len(t, diff.Kept, 2)
			return nil
		})
		deps.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := svc.Update(context.Background(), actorWith(domain.RoleAdmin), poll.ID.String(), input)
		require.NoError(t, err)
		require.Len(t, updated.Options, 3)
		assert.Equal(t, b.ID, updated.Options[0].ID)
		assert.Equal(t, "Bee", updated.Options[0].Text)
		assert.Equal(t, "D", updated.Options[1].Text)
		assert.Equal(t, a.ID, updated.Options[2].ID)
	})

	t.Run("blank option text", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		poll := fakePoll(creator.UserID, "A", "B")
		deps.polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)

		input := updateInputFor(poll)
		input.Options[1].Text = ""

		_, err := svc.Update(context.Background(), creator, poll.ID.String(), input)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "options[1].text")
	})
}

func TestPollService_ToggleStatus(t *testing.T) {
	svc, deps := newTestPollService(t)
	creator := actorWith(domain.RoleProfessor)
	poll := fakePoll(creator.UserID, "A", "B")

	deps.polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)
	deps.polls.EXPECT().ToggleActive(gomock.Any(), poll.ID).Return(false, nil)
	deps.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	toggled, err := svc.ToggleStatus(context.Background(), creator, poll.ID.String())
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
}

func TestPollService_Delete(t *testing.T) {
	creator := actorWith(domain.RoleProfessor)

	t.Run("student forbidden", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		poll := fakePoll(creator.UserID, "A", "B")
		deps.polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)

		err := svc.Delete(context.Background(), actorWith(domain.RoleStudent), poll.ID.String())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing poll", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		id := uuid.New()
		deps.polls.EXPECT().GetByID(gomock.Any(), id).Return(nil, domain.ErrPollNotFound)

		err := svc.Delete(context.Background(), creator, id.String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("creator", func(t *testing.T) {
		svc, deps := newTestPollService(t)
		poll := fakePoll(creator.UserID, "A", "B")
		deps.polls.EXPECT().GetByID(gomock.Any(), poll.ID).Return(poll, nil)
		deps.polls.EXPECT().Delete(gomock.Any(), poll.ID).Return(nil)
		deps.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), creator, poll.ID.String()))
	})
}
