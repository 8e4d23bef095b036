package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

const defaultSummaryConcurrency = 8

type summaryService struct {
	pollRepo       ports.PollRepository
	pollResultRepo ports.PollResultRepository
	concurrency    int
	log            *slog.Logger
}

func NewSummaryService(pollRepo ports.PollRepository, pollResultRepo ports.PollResultRepository, concurrency int, log *slog.Logger) ports.SummaryService {
	if concurrency <= 0 {
		concurrency = defaultSummaryConcurrency
	}
	return &summaryService{
		pollRepo:       pollRepo,
		pollResultRepo: pollResultRepo,
		concurrency:    concurrency,
		log:            loggerOrDefault(log),
	}
}

// SummarizeAllResponses refreshes the poll_results snapshot of every poll.
// The first failure cancels the remaining work.
func (s *summaryService) SummarizeAllResponses(ctx context.Context) error {
	polls, err := s.pollRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all polls: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, poll := range polls {
		pollID := poll.ID
		g.Go(func() error {
			if err := s.pollResultRepo.SummarizeResponses(gctx, pollID); err != nil {
				return fmt.Errorf("failed to summarize poll %s: %w", pollID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "poll results summarized", slog.Int("polls", len(polls)))
	return nil
}
