package domain

import "fmt"

// Common validation errors for Word
var (
	ErrEmptyWordKorean          = fmt.Errorf("%w: word korean text cannot be empty", ErrValidation)
	ErrEmptyWordTransliteration = fmt.Errorf("%w: word transliteration cannot be empty", ErrValidation)
	ErrEmptyWordEnglish         = fmt.Errorf("%w: word english text cannot be empty", ErrValidation)
)

// Word represents one vocabulary entry. The Parts map carries open-ended
// annotations (grammatical role, usage notes) and defaults to empty.
// A word belongs to zero or more groups through the words_groups association.
type Word struct {
	ID              int64          `json:"id"`
	Korean          string         `json:"korean"`
	Transliteration string         `json:"transliteration"`
	English         string         `json:"english"`
	Parts           map[string]any `json:"parts"`
}

// NewWord creates a new Word with the given texts and annotation map.
// The ID is assigned by the store on creation. A nil parts map is
// replaced with an empty one so the field always serializes as an object.
// Returns an error if validation fails.
func NewWord(korean, transliteration, english string, parts map[string]any) (*Word, error) {
	if parts == nil {
		parts = map[string]any{}
	}

	word := &Word{
		Korean:          korean,
		Transliteration: transliteration,
		English:         english,
		Parts:           parts,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.Korean == "" {
		return ErrEmptyWordKorean
	}

	if w.Transliteration == "" {
		return ErrEmptyWordTransliteration
	}

	if w.English == "" {
		return ErrEmptyWordEnglish
	}

	return nil
}
