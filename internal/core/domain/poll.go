package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type Poll struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	Question      string       `json:"question"`
	Description   string       `json:"description,omitempty"`
	Category      string       `json:"category,omitempty"`
	CreatorID     uuid.UUID    `json:"creatorId"`
	BatchID       *uuid.UUID   `json:"batchId,omitempty"`
	IsActive      bool         `json:"isActive"`
	AllowMultiple bool         `json:"allowMultiple"`
	ExpiresAt     *time.Time   `json:"expiresAt,omitempty"`
	Options       []PollOption `json:"options"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type PollOption struct {
	ID        uuid.UUID `json:"id"`
	PollID    uuid.UUID `json:"pollId"`
	Text      string    `json:"text"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// PollSummary is a list item.
type PollSummary struct {
	Poll
	CreatorName   string `json:"creatorName"`
	ResponseCount int64  `json:"responseCount"`
}

// IsExpired reports whether the expiry is strictly before now.
func (p *Poll) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}

func (p *Poll) HasOption(id uuid.UUID) bool {
	_, ok := p.Option(id)
	return ok
}

func (p *Poll) Option(id uuid.UUID) (PollOption, bool) {
	for _, opt := range p.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return PollOption{}, false
}

// ManageableBy reports whether the actor may edit, delete or toggle the poll.
func (p *Poll) ManageableBy(a Actor) bool {
	if !a.Authenticated() {
		return false
	}
	return a.UserID == p.CreatorID || a.Role.Can(CapManageAnyPoll)
}

// VisibleTo reports whether the actor may see and answer the poll. A poll
// without a batch is open to everyone; a batch poll only to that batch's
// members and to roles that span batches.
func (p *Poll) VisibleTo(a Actor) bool {
	if !a.Authenticated() {
		return false
	}
	if p.BatchID == nil || a.Role.Can(CapAnyBatch) {
		return true
	}
	return a.BatchID != nil && *a.BatchID == *p.BatchID
}

// CanSeeDetailedResults reports whether the actor may see individual responses.
func CanSeeDetailedResults(a Actor, p *Poll) bool {
	if !a.Authenticated() {
		return false
	}
	return a.Role.Can(CapViewDetailedResults) || a.UserID == p.CreatorID
}

// OptionDraft is a requested option on edit. A nil ID asks for a new option.
type OptionDraft struct {
	ID   *uuid.UUID `json:"id,omitempty"`
	Text string     `json:"text" validate:"notblank,max=500"`
}

type OptionDiff struct {
	Added   []PollOption
	Kept    []PollOption
	Removed []uuid.UUID
}

// Options returns the resulting option list in position order.
func (d OptionDiff) Options() []PollOption {
	out := make([]PollOption, 0, len(d.Added)+len(d.Kept))
	out = append(out, d.Kept...)
	out = append(out, d.Added...)
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// DiffOptions matches drafts against the current options by ID. Text never
// identifies an option: a kept ID may carry new text.
func DiffOptions(pollID uuid.UUID, current []PollOption, next []OptionDraft, now time.Time) (OptionDiff, error) {
	byID := make(map[uuid.UUID]PollOption, len(current))
	for _, opt := range current {
		byID[opt.ID] = opt
	}

	var diff OptionDiff
	seen := make(map[uuid.UUID]bool, len(next))
	for i, draft := range next {
		if draft.ID == nil {
			diff.Added = append(diff.Added, PollOption{
				ID:        uuid.New(),
				PollID:    pollID,
				Text:      draft.Text,
				Position:  i,
				CreatedAt: now,
			})
			continue
		}

		existing, ok := byID[*draft.ID]
		if !ok || seen[*draft.ID] {
			return OptionDiff{}, ErrInvalidOption
		}
		seen[*draft.ID] = true

		existing.Text = draft.Text
		existing.Position = i
		diff.Kept = append(diff.Kept, existing)
	}

	for _, opt := range current {
		if !seen[opt.ID] {
			diff.Removed = append(diff.Removed, opt.ID)
		}
	}

	return diff, nil
}
