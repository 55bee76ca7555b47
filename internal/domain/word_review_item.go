package domain

import (
	"fmt"
	"time"
)

// Common validation errors for WordReviewItem
var (
	ErrInvalidReviewWord    = fmt.Errorf("%w: review word ID must be positive", ErrValidation)
	ErrInvalidReviewSession = fmt.Errorf("%w: review session ID must be positive", ErrValidation)
)

// WordReviewItem records one correct/incorrect outcome for a word within
// a study session. Review items are append-only: they are never updated,
// only created or bulk-deleted by a reset.
type WordReviewItem struct {
	ID             int64     `json:"id"`
	WordID         int64     `json:"word_id"`
	StudySessionID int64     `json:"study_session_id"`
	Correct        bool      `json:"correct"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewWordReviewItem creates a new review item with CreatedAt set to the
// current UTC time. Whether the referenced word and session exist is
// checked by the store before the insert, inside the same transaction.
// Returns an error if validation fails.
func NewWordReviewItem(wordID, studySessionID int64, correct bool) (*WordReviewItem, error) {
	item := &WordReviewItem{
		WordID:         wordID,
		StudySessionID: studySessionID,
		Correct:        correct,
		CreatedAt:      time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the WordReviewItem has valid data.
func (r *WordReviewItem) Validate() error {
	if r.WordID <= 0 {
		return ErrInvalidReviewWord
	}

	if r.StudySessionID <= 0 {
		return ErrInvalidReviewSession
	}

	return nil
}
