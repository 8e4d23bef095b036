package ports

//go:generate mockgen -source=audit_ports.go -destination=mocks/audit_ports.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
)

type AuditRepository interface {
	Record(ctx context.Context, entry *domain.AuditEntry) error
	ListByPoll(ctx context.Context, pollID uuid.UUID) ([]*domain.AuditEntry, error)
}
