package ports

//go:generate mockgen -source=response_ports.go -destination=mocks/response_ports.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
)

type ResponseRepository interface {
	// Save inserts the response, enforcing uniqueness in the store. A
	// duplicate yields an error wrapping domain.ErrConflict.
	Save(ctx context.Context, response *domain.Response) error
	HasResponded(ctx context.Context, pollID, userID uuid.UUID) (bool, error)
	HasSelected(ctx context.Context, pollID, userID, optionID uuid.UUID) (bool, error)
	OptionIDsByUser(ctx context.Context, pollID, userID uuid.UUID) ([]uuid.UUID, error)
	CountByOption(ctx context.Context, pollID uuid.UUID) (map[uuid.UUID]int64, error)
	CountByPoll(ctx context.Context, pollID uuid.UUID) (int64, error)
	ListDetailed(ctx context.Context, pollID uuid.UUID) ([]domain.ResponseDetail, error)
}

type RespondInput struct {
	PollID   uuid.UUID `json:"pollId"`
	OptionID uuid.UUID `json:"optionId"`
}

type ResponseService interface {
	Respond(ctx context.Context, actor domain.Actor, input RespondInput) error
	MyResponses(ctx context.Context, actor domain.Actor, pollID string) ([]uuid.UUID, error)
}
