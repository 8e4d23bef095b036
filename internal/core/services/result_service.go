package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

type resultService struct {
	pollRepo     ports.PollRepository
	responseRepo ports.ResponseRepository
}

func NewResultService(pollRepo ports.PollRepository, responseRepo ports.ResponseRepository) ports.ResultService {
	return &resultService{
		pollRepo:     pollRepo,
		responseRepo: responseRepo,
	}
}

// Details aggregates the responses of a poll on every call.
func (s *resultService) Details(ctx context.Context, actor domain.Actor, pollID string) (*domain.PollDetails, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	id, err := parsePollID(pollID)
	if err != nil {
		return nil, err
	}

	poll, err := s.pollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !poll.VisibleTo(actor) {
		return nil, domain.ErrNotInBatch
	}

	counts, err := s.responseRepo.CountByOption(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	results, total := domain.Tally(poll.Options, counts)

	mine, err := s.responseRepo.OptionIDsByUser(ctx, poll.ID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if mine == nil {
		mine = []uuid.UUID{}
	}

	details := &domain.PollDetails{
		Poll:                  poll,
		Results:               results,
		TotalResponses:        total,
		CanSeeDetailedResults: domain.CanSeeDetailedResults(actor, poll),
		HasVoted:              len(mine) > 0,
		MyOptionIDs:           mine,
		IsExpired:             poll.IsExpired(time.Now()),
		CanEdit:               poll.ManageableBy(actor),
	}

	if details.CanSeeDetailedResults {
		responses, err := s.responseRepo.ListDetailed(ctx, poll.ID)
		if err != nil {
			return nil, err
		}
		details.Responses = responses
	}

	return details, nil
}
