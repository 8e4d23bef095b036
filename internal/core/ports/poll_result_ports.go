package ports

//go:generate mockgen -source=poll_result_ports.go -destination=mocks/poll_result_ports.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
)

type PollResultRepository interface {
	SummarizeResponses(ctx context.Context, pollID uuid.UUID) error
}

type ResultService interface {
	Details(ctx context.Context, actor domain.Actor, pollID string) (*domain.PollDetails, error)
}

type SummaryService interface {
	SummarizeAllResponses(ctx context.Context) error
}
