package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNote_Validate(t *testing.T) {
	tests := map[string]struct {
		note    Note
		wantErr string
	}{
		"valid": {
			note: Note{Title: "Einkauf", Content: "Milch kaufen"},
		},
		"missing-title": {
			note:    Note{Title: " ", Content: "Milch kaufen"},
			wantErr: "title is required",
		},
		"title-too-long": {
			note:    Note{Title: strings.Repeat("a", 101), Content: "x"},
			wantErr: "title must be at most 100 characters",
		},
		"missing-content": {
			note:    Note{Title: "Einkauf"},
			wantErr: "content is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.note.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestDeriveNoteTitle(t *testing.T) {
	tests := map[string]struct {
		content  string
		expected string
	}{
		"short": {
			content:  "Milch kaufen",
			expected: "Milch kaufen",
		},
		"first-line-only": {
			content:  "  Einkaufsliste\nMilch\nBrot",
			expected: "Einkaufsliste",
		},
		"truncated": {
			content:  strings.Repeat("ä", 120),
			expected: strings.Repeat("ä", 97) + "...",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveNoteTitle(tt.content))
		})
	}
}

func TestListNotesOptions(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	params := &ListNotesParams{}
	for _, opt := range []ListNotesOption{WithNoteQuery("  milch "), WithNotesSince(since)} {
		opt(params)
	}

	assert.Equal(t, "milch", params.Query)
	assert.Equal(t, since, *params.Since)
}
