package domain

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditPollCreated   AuditAction = "poll.created"
	AuditPollUpdated   AuditAction = "poll.updated"
	AuditPollDeleted   AuditAction = "poll.deleted"
	AuditPollToggled   AuditAction = "poll.toggled"
	AuditResponseAdded AuditAction = "response.added"
	AuditRoleChanged   AuditAction = "user.role_changed"
	AuditBatchChanged  AuditAction = "user.batch_changed"
)

// AuditEntry records a mutating action. PollID is kept after the poll is deleted.
type AuditEntry struct {
	ID        uuid.UUID      `json:"id"`
	ActorID   uuid.UUID      `json:"actorId"`
	Action    AuditAction    `json:"action"`
	PollID    *uuid.UUID     `json:"pollId,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
