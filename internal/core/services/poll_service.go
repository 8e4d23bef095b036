package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	// maxListOffset bounds page*limit so the offset stays a sane positive int.
	maxListOffset = 1_000_000
)

type pollService struct {
	repo      ports.PollRepository
	responses ports.ResponseRepository
	audit     auditor
	log       *slog.Logger
}

func NewPollService(repo ports.PollRepository, responseRepo ports.ResponseRepository, auditRepo ports.AuditRepository, log *slog.Logger) ports.PollService {
	log = loggerOrDefault(log)
	return &pollService{
		repo:      repo,
		responses: responseRepo,
		audit:     auditor{repo: auditRepo, log: log},
		log:       log,
	}
}

func (s *pollService) Create(ctx context.Context, actor domain.Actor, input ports.CreatePollInput) (*domain.Poll, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if !actor.Can(domain.CapCreatePoll) {
		return nil, domain.ErrRoleNotAllowed
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := s.checkBatch(ctx, input.BatchID); err != nil {
		return nil, err
	}

	pollID := uuid.New()
	now := time.Now()

	poll := &domain.Poll{
		ID:            pollID,
		Title:         strings.TrimSpace(input.Title),
		Question:      strings.TrimSpace(input.Question),
		Description:   strings.TrimSpace(input.Description),
		Category:      strings.TrimSpace(input.Category),
		CreatorID:     actor.UserID,
		BatchID:       input.BatchID,
		IsActive:      true,
		AllowMultiple: input.AllowMultiple,
		ExpiresAt:     input.ExpiresAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for i, optText := range input.Options {
		poll.Options = append(poll.Options, domain.PollOption{
			ID:        uuid.New(),
			PollID:    pollID,
			Text:      strings.TrimSpace(optText),
			Position:  i,
			CreatedAt: now,
		})
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, err
	}

	s.audit.record(ctx, actor, domain.AuditPollCreated, &poll.ID, map[string]any{"title": poll.Title})
	s.log.InfoContext(ctx, "poll created", slog.String("poll_id", poll.ID.String()), slog.String("creator_id", actor.UserID.String()))

	return poll, nil
}

func (s *pollService) GetPoll(ctx context.Context, actor domain.Actor, id string) (*domain.Poll, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	pollID, err := parsePollID(id)
	if err != nil {
		return nil, err
	}

	poll, err := s.repo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if !poll.VisibleTo(actor) {
		return nil, domain.ErrNotInBatch
	}
	return poll, nil
}

// ListPolls pages through the polls the actor may see. Students only get
// polls without a batch and polls of their own batch.
func (s *pollService) ListPolls(ctx context.Context, actor domain.Actor, input ports.ListPollsInput) (*ports.PollList, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page-1 > maxListOffset/limit {
		return nil, domain.NewFieldError("page", "page is out of range")
	}

	filter := ports.PollFilter{
		Category: strings.TrimSpace(input.Category),
		BatchID:  input.BatchID,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}
	if !actor.Can(domain.CapAnyBatch) {
		filter.BatchScoped = true
		filter.ViewerBatchID = actor.BatchID
	}
	switch input.Sort {
	case "", "newest":
	case "popular":
		filter.Popular = true
	default:
		return nil, domain.NewFieldError("sort", "sort must be one of [newest popular]")
	}

	polls, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if polls == nil {
		polls = []*domain.PollSummary{}
	}

	return &ports.PollList{Polls: polls, Page: page, Limit: limit, Total: total}, nil
}

func (s *pollService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdatePollInput) (*domain.Poll, error) {
	poll, err := s.loadManageable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := s.checkBatch(ctx, input.BatchID); err != nil {
		return nil, err
	}

	if input.AllowMultiple != poll.AllowMultiple {
		count, err := s.responses.CountByPoll(ctx, poll.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrPollHasResponses
		}
	}

	drafts := make([]domain.OptionDraft, len(input.Options))
	for i, d := range input.Options {
		drafts[i] = domain.OptionDraft{ID: d.ID, Text: strings.TrimSpace(d.Text)}
	}

	now := time.Now()
	diff, err := domain.DiffOptions(poll.ID, poll.Options, drafts, now)
	if err != nil {
		return nil, err
	}

	poll.Title = strings.TrimSpace(input.Title)
	poll.Question = strings.TrimSpace(input.Question)
	poll.Description = strings.TrimSpace(input.Description)
	poll.Category = strings.TrimSpace(input.Category)
	poll.BatchID = input.BatchID
	poll.AllowMultiple = input.AllowMultiple
	poll.ExpiresAt = input.ExpiresAt
	poll.Options = diff.Options()
	poll.UpdatedAt = now

	if err := s.repo.Update(ctx, poll, diff); err != nil {
		return nil, err
	}

	s.audit.record(ctx, actor, domain.AuditPollUpdated, &poll.ID, map[string]any{
		"added":   len(diff.Added),
		"removed": len(diff.Removed),
	})

	return poll, nil
}

func (s *pollService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	poll, err := s.loadManageable(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, poll.ID); err != nil {
		return err
	}

	s.audit.record(ctx, actor, domain.AuditPollDeleted, &poll.ID, map[string]any{"title": poll.Title})
	s.log.InfoContext(ctx, "poll deleted", slog.String("poll_id", poll.ID.String()))

	return nil
}

func (s *pollService) ToggleStatus(ctx context.Context, actor domain.Actor, id string) (*domain.Poll, error) {
	poll, err := s.loadManageable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.ToggleActive(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.IsActive = active

	s.audit.record(ctx, actor, domain.AuditPollToggled, &poll.ID, map[string]any{"isActive": active})

	return poll, nil
}

func (s *pollService) AuditTrail(ctx context.Context, actor domain.Actor, id string) ([]*domain.AuditEntry, error) {
	poll, err := s.loadManageable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.audit.repo.ListByPoll(ctx, poll.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

// loadManageable fetches the poll and checks the actor may manage it.
func (s *pollService) loadManageable(ctx context.Context, actor domain.Actor, id string) (*domain.Poll, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	pollID, err := parsePollID(id)
	if err != nil {
		return nil, err
	}

	poll, err := s.repo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if !poll.ManageableBy(actor) {
		return nil, domain.ErrNotPollOwner
	}
	return poll, nil
}

func (s *pollService) checkBatch(ctx context.Context, batchID *uuid.UUID) error {
	if batchID == nil {
		return nil
	}

	ok, err := s.repo.BatchExists(ctx, *batchID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownBatch
	}
	return nil
}

func parsePollID(id string) (uuid.UUID, error) {
	pollID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidPollID
	}
	return pollID, nil
}
