package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports/mocks"
)

func TestUserService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(users, mocks.NewMockAuditRepository(ctrl), discardLogger())

	id := uuid.New()
	users.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_SetRole(t *testing.T) {
	admin := actorWith(domain.RoleAdmin)
	target := &domain.User{ID: uuid.New(), Role: domain.RoleStudent}

	t.Run("requires admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewUserService(mocks.NewMockUserRepository(ctrl), mocks.NewMockAuditRepository(ctrl), discardLogger())

		_, err := svc.SetRole(context.Background(), actorWith(domain.RoleProfessor), target.ID.String(), "admin")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewUserService(mocks.NewMockUserRepository(ctrl), mocks.NewMockAuditRepository(ctrl), discardLogger())

		_, err := svc.SetRole(context.Background(), admin, target.ID.String(), "dean")
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("promotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		audit := mocks.NewMockAuditRepository(ctrl)
		svc := NewUserService(users, audit, discardLogger())

		stored := *target
		users.EXPECT().GetByID(gomock.Any(), target.ID).Return(&stored, nil)
		users.EXPECT().UpdateRole(gomock.Any(), target.ID, domain.RoleProfessor).Return(nil)
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.AuditEntry) error {
			assert.Equal(t, domain.AuditRoleChanged, e.Action)
			assert.Nil(t, e.PollID)
			assert.Equal(t, "professor", e.Details["to"])
			return nil
		})

		user, err := svc.SetRole(context.Background(), admin, target.ID.String(), "professor")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleProfessor, user.Role)
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewUserService(users, mocks.NewMockAuditRepository(ctrl), discardLogger())

		stored := *target
		users.EXPECT().GetByID(gomock.Any(), target.ID).Return(&stored, nil)

		user, err := svc.SetRole(context.Background(), admin, target.ID.String(), "student")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStudent, user.Role)
	})
}

func TestUserService_SetBatch(t *testing.T) {
	admin := actorWith(domain.RoleAdmin)
	batch := uuid.New()

	t.Run("requires admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewUserService(mocks.NewMockUserRepository(ctrl), mocks.NewMockAuditRepository(ctrl), discardLogger())

		_, err := svc.SetBatch(context.Background(), actorWith(domain.RoleProfessor), uuid.NewString(), &batch)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("assigns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		audit := mocks.NewMockAuditRepository(ctrl)
		svc := NewUserService(users, audit, discardLogger())

		target := &domain.User{ID: uuid.New(), Role: domain.RoleStudent}
		users.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)
		users.EXPECT().UpdateBatch(gomock.Any(), target.ID, &batch).Return(nil)
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.AuditEntry) error {
			assert.Equal(t, domain.AuditBatchChanged, e.Action)
			assert.Equal(t, batch.String(), e.Details["batchId"])
			return nil
		})

		user, err := svc.SetBatch(context.Background(), admin, target.ID.String(), &batch)
		require.NoError(t, err)
		assert.Equal(t, &batch, user.BatchID)
		assert.Equal(t, &batch, user.Actor().BatchID)
	})

	t.Run("unknown batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewUserService(users, mocks.NewMockAuditRepository(ctrl), discardLogger())

		target := &domain.User{ID: uuid.New(), Role: domain.RoleStudent}
		users.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)
		users.EXPECT().UpdateBatch(gomock.Any(), target.ID, &batch).Return(domain.ErrUnknownBatch)

		_, err := svc.SetBatch(context.Background(), admin, target.ID.String(), &batch)
		assert.ErrorIs(t, err, domain.ErrUnknownBatch)
	})
}
