package domain

import (
	"fmt"
	"time"
)

// Common validation and lifecycle errors for StudySession
var (
	ErrInvalidSessionGroup     = fmt.Errorf("%w: study session group ID must be positive", ErrValidation)
	ErrInvalidSessionActivity  = fmt.Errorf("%w: study session activity ID must be positive", ErrValidation)
	ErrSessionEndedBeforeStart = fmt.Errorf("%w: study session cannot end before it started", ErrValidation)
)

// StudySession represents one practice run against a group using a study
// activity. The group and activity references are fixed at creation.
// EndedAt is nil while the session is open; once set it is never unset
// and a session cannot be reopened.
type StudySession struct {
	ID              int64      `json:"id"`
	GroupID         int64      `json:"group_id"`
	StudyActivityID int64      `json:"study_activity_id"`
	CreatedAt       time.Time  `json:"created_at"`
	EndedAt         *time.Time `json:"ended_at"`
}

// NewStudySession creates a new open session for the given group and
// activity, with CreatedAt set to the current UTC time. Whether the
// referenced group and activity exist is checked by the store at
// creation time, inside the same transaction as the insert.
// Returns an error if validation fails.
func NewStudySession(groupID, studyActivityID int64) (*StudySession, error) {
	session := &StudySession{
		GroupID:         groupID,
		StudyActivityID: studyActivityID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the StudySession has valid data.
// Returns an error if any field fails validation.
func (s *StudySession) Validate() error {
	if s.GroupID <= 0 {
		return ErrInvalidSessionGroup
	}

	if s.StudyActivityID <= 0 {
		return ErrInvalidSessionActivity
	}

	if s.EndedAt != nil && s.EndedAt.Before(s.CreatedAt) {
		return ErrSessionEndedBeforeStart
	}

	return nil
}

// IsEnded reports whether the session has been terminated.
func (s *StudySession) IsEnded() bool {
	return s.EndedAt != nil
}
