package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSince(t *testing.T) {
	loc := time.UTC
	ref := time.Date(2026, 1, 27, 10, 0, 0, 0, loc)

	tests := map[string]struct {
		text     string
		expected time.Time
		ok       bool
	}{
		"today": {
			text:     "today",
			expected: time.Date(2026, 1, 27, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"heute": {
			text:     " Heute ",
			expected: time.Date(2026, 1, 27, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"gestern": {
			text:     "gestern",
			expected: time.Date(2026, 1, 26, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"last-week": {
			text:     "last week",
			expected: time.Date(2026, 1, 20, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"days-ago": {
			text:     "3 days ago",
			expected: time.Date(2026, 1, 24, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"vor-tagen": {
			text:     "vor 2 Tagen",
			expected: time.Date(2026, 1, 25, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"iso-date": {
			text:     "2026-01-15",
			expected: time.Date(2026, 1, 15, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"iso-datetime": {
			text:     "2026-01-15T13:45:00Z",
			expected: time.Date(2026, 1, 15, 0, 0, 0, 0, loc),
			ok:       true,
		},
		"empty": {
			text: "  ",
			ok:   false,
		},
		"garbage": {
			text: "whenever you like",
			ok:   false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseSince(tt.text, ref, loc)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
