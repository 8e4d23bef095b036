package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

type responseService struct {
	pollRepo     ports.PollRepository
	responseRepo ports.ResponseRepository
	audit        auditor
	log          *slog.Logger
}

func NewResponseService(pollRepo ports.PollRepository, responseRepo ports.ResponseRepository, auditRepo ports.AuditRepository, log *slog.Logger) ports.ResponseService {
	log = loggerOrDefault(log)
	return &responseService{
		pollRepo:     pollRepo,
		responseRepo: responseRepo,
		audit:        auditor{repo: auditRepo, log: log},
		log:          log,
	}
}

// Respond records one vote. Checks run in a fixed order and the first failure
// is returned; the store's unique constraints back the duplicate checks.
func (s *responseService) Respond(ctx context.Context, actor domain.Actor, input ports.RespondInput) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthenticated
	}

	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return err
	}

	if !poll.VisibleTo(actor) {
		return domain.ErrNotInBatch
	}
	if !poll.IsActive {
		return domain.ErrPollInactive
	}
	if poll.IsExpired(time.Now()) {
		return domain.ErrPollExpired
	}
	if !poll.HasOption(input.OptionID) {
		return domain.ErrInvalidOption
	}

	if poll.AllowMultiple {
		selected, err := s.responseRepo.HasSelected(ctx, poll.ID, actor.UserID, input.OptionID)
		if err != nil {
			return err
		}
		if selected {
			return domain.ErrOptionAlreadySelected
		}
	} else {
		responded, err := s.responseRepo.HasResponded(ctx, poll.ID, actor.UserID)
		if err != nil {
			return err
		}
		if responded {
			return domain.ErrAlreadyVoted
		}
	}

	response := &domain.Response{
		ID:        uuid.New(),
		PollID:    poll.ID,
		OptionID:  input.OptionID,
		UserID:    actor.UserID,
		CreatedAt: time.Now(),
	}

	if err := s.responseRepo.Save(ctx, response); err != nil {
		// Lost a race against a concurrent submission from the same user.
		if errors.Is(err, domain.ErrConflict) {
			if poll.AllowMultiple {
				return domain.ErrOptionAlreadySelected
			}
			return domain.ErrAlreadyVoted
		}
		return err
	}

	s.audit.record(ctx, actor, domain.AuditResponseAdded, &poll.ID, map[string]any{"optionId": input.OptionID.String()})
	s.log.DebugContext(ctx, "response recorded",
		slog.String("poll_id", poll.ID.String()),
		slog.String("option_id", input.OptionID.String()),
	)

	return nil
}

func (s *responseService) MyResponses(ctx context.Context, actor domain.Actor, pollID string) ([]uuid.UUID, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	id, err := parsePollID(pollID)
	if err != nil {
		return nil, err
	}

	if _, err := s.pollRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	optionIDs, err := s.responseRepo.OptionIDsByUser(ctx, id, actor.UserID)
	if err != nil {
		return nil, err
	}
	if optionIDs == nil {
		optionIDs = []uuid.UUID{}
	}
	return optionIDs, nil
}
