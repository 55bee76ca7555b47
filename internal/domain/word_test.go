package domain

import "testing"

func TestNewWord(t *testing.T) {
	t.Parallel()

	word, err := NewWord("하나", "hana", "one", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if word.Korean != "하나" {
		t.Errorf("Expected korean 하나, got %s", word.Korean)
	}

	if word.Parts == nil {
		t.Error("Expected parts to default to an empty map, got nil")
	}

	if len(word.Parts) != 0 {
		t.Errorf("Expected empty parts map, got %v", word.Parts)
	}

	// Provided annotations are kept as-is
	word, err = NewWord("둘", "dul", "two", map[string]any{"type": "number"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if word.Parts["type"] != "number" {
		t.Errorf("Expected parts to carry annotations, got %v", word.Parts)
	}
}

func TestWordValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		word    Word
		wantErr error
	}{
		{
			name: "valid word",
			word: Word{Korean: "하나", Transliteration: "hana", English: "one"},
		},
		{
			name:    "missing korean",
			word:    Word{Transliteration: "hana", English: "one"},
			wantErr: ErrEmptyWordKorean,
		},
		{
			name:    "missing transliteration",
			word:    Word{Korean: "하나", English: "one"},
			wantErr: ErrEmptyWordTransliteration,
		},
		{
			name:    "missing english",
			word:    Word{Korean: "하나", Transliteration: "hana"},
			wantErr: ErrEmptyWordEnglish,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.word.Validate()
			if err != tc.wantErr {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}
