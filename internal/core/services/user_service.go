package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

type UserService struct {
	repo  ports.UserRepository
	audit auditor
}

func NewUserService(repo ports.UserRepository, auditRepo ports.AuditRepository, log *slog.Logger) ports.UserService {
	return &UserService{
		repo:  repo,
		audit: auditor{repo: auditRepo, log: loggerOrDefault(log)},
	}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) SetRole(ctx context.Context, actor domain.Actor, id string, role string) (*domain.User, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if !actor.Can(domain.CapManageUsers) {
		return nil, domain.ErrRoleNotAllowed
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidUserID
	}

	newRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == newRole {
		return user, nil
	}

	if err := s.repo.UpdateRole(ctx, user.ID, newRole); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.audit.record(ctx, actor, domain.AuditRoleChanged, nil, map[string]any{
		"userId": user.ID.String(),
		"from":   user.Role.String(),
		"to":     newRole.String(),
	})

	user.Role = newRole
	return user, nil
}

// SetBatch moves a user into a batch, or out of any batch when batchID is nil.
func (s *UserService) SetBatch(ctx context.Context, actor domain.Actor, id string, batchID *uuid.UUID) (*domain.User, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if !actor.Can(domain.CapManageUsers) {
		return nil, domain.ErrRoleNotAllowed
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidUserID
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateBatch(ctx, user.ID, batchID); err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update batch: %w", err)
	}

	s.audit.record(ctx, actor, domain.AuditBatchChanged, nil, map[string]any{
		"userId":  user.ID.String(),
		"batchId": batchString(batchID),
	})

	user.BatchID = batchID
	return user, nil
}

func batchString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
