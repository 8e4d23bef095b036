package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PollResult is a snapshot row written by the summary job.
type PollResult struct {
	PollID        uuid.UUID
	OptionID      uuid.UUID
	ResponseCount int64
	LastUpdatedAt time.Time
}

type OptionResult struct {
	OptionID   uuid.UUID `json:"optionId"`
	Text       string    `json:"text"`
	Position   int       `json:"position"`
	Count      int64     `json:"count"`
	Percentage int       `json:"percentage"`
}

type PollDetails struct {
	Poll                  *Poll            `json:"poll"`
	Results               []OptionResult   `json:"results"`
	TotalResponses        int64            `json:"totalResponses"`
	CanSeeDetailedResults bool             `json:"canSeeDetailedResults"`
	Responses             []ResponseDetail `json:"responses,omitempty"`
	HasVoted              bool             `json:"hasVoted"`
	MyOptionIDs           []uuid.UUID      `json:"myOptionIds"`
	IsExpired             bool             `json:"isExpired"`
	CanEdit               bool             `json:"canEdit"`
}

// Tally returns one result per option, in option order, and the total.
// Options without responses are reported with a zero count.
func Tally(options []PollOption, counts map[uuid.UUID]int64) ([]OptionResult, int64) {
	var total int64
	for _, opt := range options {
		total += counts[opt.ID]
	}

	results := make([]OptionResult, 0, len(options))
	for _, opt := range options {
		count := counts[opt.ID]
		results = append(results, OptionResult{
			OptionID:   opt.ID,
			Text:       opt.Text,
			Position:   opt.Position,
			Count:      count,
			Percentage: Percentage(count, total),
		})
	}
	return results, total
}

// Percentage rounds count/total to a whole percent; zero when total is zero.
func Percentage(count, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
