package ports

//go:generate mockgen -source=poll_ports.go -destination=mocks/poll_ports.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
)

type PollFilter struct {
	Category string
	BatchID  *uuid.UUID
	// BatchScoped keeps only polls without a batch or of ViewerBatchID.
	BatchScoped   bool
	ViewerBatchID *uuid.UUID
	Popular       bool
	Limit         int
	Offset        int
}

type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetAll(ctx context.Context) ([]*domain.Poll, error)
	List(ctx context.Context, filter PollFilter) ([]*domain.PollSummary, int, error)
	Update(ctx context.Context, poll *domain.Poll, diff domain.OptionDiff) error
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleActive(ctx context.Context, id uuid.UUID) (bool, error)
	BatchExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CreatePollInput struct {
	Title         string     `json:"title" validate:"notblank,max=200"`
	Question      string     `json:"question" validate:"notblank,max=1000"`
	Description   string     `json:"description" validate:"max=2000"`
	Category      string     `json:"category" validate:"max=100"`
	Options       []string   `json:"options" validate:"min=2,max=50,dive,notblank,max=500"`
	ExpiresAt     *time.Time `json:"expiresAt"`
	AllowMultiple bool       `json:"allowMultiple"`
	BatchID       *uuid.UUID `json:"batchId"`
}

type UpdatePollInput struct {
	Title         string               `json:"title" validate:"notblank,max=200"`
	Question      string               `json:"question" validate:"notblank,max=1000"`
	Description   string               `json:"description" validate:"max=2000"`
	Category      string               `json:"category" validate:"max=100"`
	Options       []domain.OptionDraft `json:"options" validate:"min=2,max=50,dive"`
	ExpiresAt     *time.Time           `json:"expiresAt"`
	AllowMultiple bool                 `json:"allowMultiple"`
	BatchID       *uuid.UUID           `json:"batchId"`
}

type ListPollsInput struct {
	Category string
	BatchID  *uuid.UUID
	Page     int
	Limit    int
	Sort     string
}

type PollList struct {
	Polls []*domain.PollSummary `json:"polls"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
	Total int                   `json:"total"`
}

type PollService interface {
	Create(ctx context.Context, actor domain.Actor, input CreatePollInput) (*domain.Poll, error)
	GetPoll(ctx context.Context, actor domain.Actor, id string) (*domain.Poll, error)
	ListPolls(ctx context.Context, actor domain.Actor, input ListPollsInput) (*PollList, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdatePollInput) (*domain.Poll, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	ToggleStatus(ctx context.Context, actor domain.Actor, id string) (*domain.Poll, error)
	AuditTrail(ctx context.Context, actor domain.Actor, id string) ([]*domain.AuditEntry, error)
}
