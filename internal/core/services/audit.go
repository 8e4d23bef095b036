package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

// auditor appends audit entries. A failed write is logged and never fails the caller.
type auditor struct {
	repo ports.AuditRepository
	log  *slog.Logger
}

func (a auditor) record(ctx context.Context, actor domain.Actor, action domain.AuditAction, pollID *uuid.UUID, details map[string]any) {
	entry := &domain.AuditEntry{
		ID:        uuid.New(),
		ActorID:   actor.UserID,
		Action:    action,
		PollID:    pollID,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := a.repo.Record(ctx, entry); err != nil {
		a.log.WarnContext(ctx, "failed to record audit entry",
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}

func loggerOrDefault(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
