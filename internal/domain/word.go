package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordTermEmpty is returned when a word's term is empty.
	ErrWordTermEmpty = errors.New("word term cannot be empty")

	// ErrWordTranslationEmpty is returned when a word's translation is empty.
	ErrWordTranslationEmpty = errors.New("word translation cannot be empty")

	// ErrWordDifficultyRange is returned when a word's difficulty is outside 1-5.
	ErrWordDifficultyRange = errors.New("word difficulty must be between 1 and 5")
)

// Word is a single vocabulary catalog entry. Term, Translation and
// Pronunciation are opaque to the scheduling core; Tags carry list
// membership for grouping and import batches. Words are only created by
// import and only removed by explicit removal.
type Word struct {
	ID            uuid.UUID `json:"id"`
	Term          string    `json:"term"`
	Translation   string    `json:"translation"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	Example       string    `json:"example,omitempty"`
	Difficulty    int       `json:"difficulty"`
	Tags          []string  `json:"tags,omitempty"`

	// Favorite marks a word the learner wants to keep an eye on. It is a
	// learner preference, not a catalog field: imports never touch it.
	Favorite bool `json:"favorite,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWord creates a new Word with a generated ID and timestamps.
// Returns an error if validation fails.
func NewWord(term, translation string) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:          uuid.New(),
		Term:        term,
		Translation: translation,
		Difficulty:  1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if w.Term == "" {
		return ErrWordTermEmpty
	}

	if w.Translation == "" {
		return ErrWordTranslationEmpty
	}

	if w.Difficulty < 1 || w.Difficulty > 5 {
		return ErrWordDifficultyRange
	}

	return nil
}
