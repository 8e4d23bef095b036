package domain

import (
	"time"

	"github.com/google/uuid"
)

// Response is one recorded vote by one user for one option. Responses are
// never edited; they disappear only with their poll or option.
type Response struct {
	ID        uuid.UUID `json:"id"`
	PollID    uuid.UUID `json:"pollId"`
	OptionID  uuid.UUID `json:"optionId"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type ResponseDetail struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
	OptionID   uuid.UUID `json:"optionId"`
	OptionText string    `json:"optionText"`
	CreatedAt  time.Time `json:"createdAt"`
}
