package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/daylex/daylex/internal/domain"
)

// ImportWordsRequest is the payload for importing a batch of words.
type ImportWordsRequest struct {
	Words []ImportWordEntry `json:"words" validate:"required,min=1,dive"`
}

// ImportWordEntry is one word in an import batch. Difficulty is optional;
// omitting it keeps the default rating.
type ImportWordEntry struct {
	Term          string   `json:"term" validate:"required"`
	Translation   string   `json:"translation" validate:"required"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	Example       string   `json:"example,omitempty"`
	Difficulty    int      `json:"difficulty,omitempty" validate:"omitempty,min=1,max=5"`
	Tags          []string `json:"tags,omitempty"`
}

// ReviewRequest grades a word.
type ReviewRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=again hard good easy"`
}

// PostponeRequest pushes a word's next review into the future.
type PostponeRequest struct {
	Days int `json:"days" validate:"required,min=1"`
}

// WordResponse mirrors domain.Word on the wire.
type WordResponse struct {
	ID            uuid.UUID `json:"id"`
	Term          string    `json:"term"`
	Translation   string    `json:"translation"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	Example       string    `json:"example,omitempty"`
	Difficulty    int       `json:"difficulty,omitempty"`
	Favorite      bool      `json:"favorite,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LearningStateResponse mirrors domain.LearningState on the wire. Interval
// is reported in seconds; unscheduled words have null review timestamps.
type LearningStateResponse struct {
	WordID             uuid.UUID  `json:"word_id"`
	Stage              string     `json:"stage"`
	IntervalSeconds    float64    `json:"interval_seconds"`
	Ease               float64    `json:"ease"`
	ConsecutiveCorrect int        `json:"consecutive_correct"`
	ReviewCount        int        `json:"review_count"`
	LastReviewedAt     *time.Time `json:"last_reviewed_at,omitempty"`
	DueAt              *time.Time `json:"due_at,omitempty"`
	Version            int64      `json:"version"`
}

// ImportWordsResponse reports a successful import.
type ImportWordsResponse struct {
	Imported int            `json:"imported"`
	Words    []WordResponse `json:"words"`
}

func wordToResponse(word *domain.Word) WordResponse {
	return WordResponse{
		ID:            word.ID,
		Term:          word.Term,
		Translation:   word.Translation,
		Pronunciation: word.Pronunciation,
		Example:       word.Example,
		Difficulty:    word.Difficulty,
		Favorite:      word.Favorite,
		Tags:          word.Tags,
		CreatedAt:     word.CreatedAt,
		UpdatedAt:     word.UpdatedAt,
	}
}

func wordsToResponse(words []*domain.Word) []WordResponse {
	resp := make([]WordResponse, 0, len(words))
	for _, word := range words {
		resp = append(resp, wordToResponse(word))
	}
	return resp
}

func stateToResponse(state *domain.LearningState) LearningStateResponse {
	resp := LearningStateResponse{
		WordID:             state.WordID,
		Stage:              string(state.Stage),
		IntervalSeconds:    state.Interval.Seconds(),
		Ease:               state.Ease,
		ConsecutiveCorrect: state.ConsecutiveCorrect,
		ReviewCount:        state.ReviewCount,
		Version:            state.Version,
	}
	if !state.LastReviewedAt.IsZero() {
		t := state.LastReviewedAt
		resp.LastReviewedAt = &t
	}
	if !state.DueAt.IsZero() {
		t := state.DueAt
		resp.DueAt = &t
	}
	return resp
}
