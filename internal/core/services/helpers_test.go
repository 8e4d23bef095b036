package services

import (
	"io"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func actorWith(role domain.Role) domain.Actor {
	return domain.Actor{UserID: uuid.New(), Role: role}
}

// fakePoll builds an active single-choice poll with the given option texts.
func fakePoll(creatorID uuid.UUID, texts ...string) *domain.Poll {
	pollID := uuid.New()
	now := time.Now()
	poll := &domain.Poll{
		ID:        pollID,
		Title:     gofakeit.Word(),
		Question:  gofakeit.Question(),
		CreatorID: creatorID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, text := range texts {
		poll.Options = append(poll.Options, domain.PollOption{
			ID:        uuid.New(),
			PollID:    pollID,
			Text:      text,
			Position:  i,
			CreatedAt: now,
		})
	}
	return poll
}
