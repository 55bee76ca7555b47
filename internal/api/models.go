package api

import (
	"time"

	"github.com/phrazzld/lang-portal/internal/pagination"
	"github.com/phrazzld/lang-portal/internal/store"
)

// Response structures for the study-tracking endpoints. Every timestamp is
// rendered as RFC 3339 UTC so clients always see an unambiguous instant.

// WordListItem is one entry in a paged word listing.
type WordListItem struct {
	ID              int64  `json:"id"`
	Korean          string `json:"korean"`
	Transliteration string `json:"transliteration"`
	English         string `json:"english"`
	CorrectCount    int    `json:"correct_count"`
	WrongCount      int    `json:"wrong_count"`
}

// WordListResponse is the paged word listing.
type WordListResponse struct {
	Items      []WordListItem  `json:"items"`
	Pagination pagination.Page `json:"pagination"`
}

// GroupRef is the minimal group reference embedded in a word detail.
type GroupRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WordDetailResponse is the full view of one word.
type WordDetailResponse struct {
	ID              int64           `json:"id"`
	Korean          string          `json:"korean"`
	Transliteration string          `json:"transliteration"`
	English         string          `json:"english"`
	Stats           store.WordStats `json:"stats"`
	Groups          []GroupRef      `json:"groups"`
}

// GroupListItem is one entry in a paged group listing.
type GroupListItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	WordCount int    `json:"word_count"`
}

// GroupListResponse is the paged group listing.
type GroupListResponse struct {
	Items      []GroupListItem `json:"items"`
	Pagination pagination.Page `json:"pagination"`
}

// GroupStats carries the aggregate counts of a group detail view.
type GroupStats struct {
	TotalWordCount int `json:"total_word_count"`
}

// GroupDetailResponse is the full view of one group.
type GroupDetailResponse struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Stats GroupStats `json:"stats"`
}

// ActivityListItem is one entry in the activity catalog listing.
type ActivityListItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

// ActivityListResponse is the unpaged activity catalog.
type ActivityListResponse struct {
	Items []ActivityListItem `json:"items"`
}

// ActivityDetailResponse is the full view of one study activity.
type ActivityDetailResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// SessionSummaryResponse is the composed session record used by all session
// list and detail views. EndTime reports the current instant for a session
// that has not been terminated yet.
type SessionSummaryResponse struct {
	ID               int64  `json:"id"`
	ActivityName     string `json:"activity_name"`
	GroupName        string `json:"group_name"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	ReviewItemsCount int    `json:"review_items_count"`
}

// SessionListResponse is a paged session listing.
type SessionListResponse struct {
	Items      []SessionSummaryResponse `json:"items"`
	Pagination pagination.Page          `json:"pagination"`
}

// CreateSessionResponse is the payload returned when a session is started.
type CreateSessionResponse struct {
	ID      int64 `json:"id"`
	GroupID int64 `json:"group_id"`
}

// ReviewResponse is the payload returned when a review outcome is recorded.
type ReviewResponse struct {
	Success        bool   `json:"success"`
	WordID         int64  `json:"word_id"`
	StudySessionID int64  `json:"study_session_id"`
	Correct        bool   `json:"correct"`
	CreatedAt      string `json:"created_at"`
}

// EndSessionResponse is the payload returned when a session is terminated.
type EndSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID int64  `json:"session_id"`
	EndedAt   string `json:"ended_at"`
}

// ResetResponse is the payload returned by the reset endpoints.
type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LastSessionResponse is the dashboard view of the most recent session.
type LastSessionResponse struct {
	ID              int64  `json:"id"`
	GroupID         int64  `json:"group_id"`
	StudyActivityID int64  `json:"study_activity_id"`
	GroupName       string `json:"group_name"`
	CreatedAt       string `json:"created_at"`
}

// formatTimestamp renders a timestamp as RFC 3339 in UTC.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
