package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/google/uuid"
	"github.com/toon-format/toon-go"
)

const previewLength = 80

// noteRow is the TOON row shape of a listed note.
type noteRow struct {
	ID        string `toon:"id"`
	Title     string `toon:"title"`
	Preview   string `toon:"preview"`
	CreatedAt string `toon:"created_at"`
}

type noteList struct {
	Notes []noteRow `toon:"notes"`
}

// formatNoteList renders notes as a short header plus a TOON table.
func formatNoteList(header string, notes []domain.Note) (string, error) {
	rows := make([]noteRow, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, noteRow{
			ID:        n.ID.String(),
			Title:     n.Title,
			Preview:   preview(n.Content),
			CreatedAt: n.CreatedAt.Format(time.DateTime),
		})
	}

	table, err := toon.MarshalString(noteList{Notes: rows}, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal notes: %w", err)
	}
	return header + "\n" + table, nil
}

func preview(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	runes := []rune(flat)
	if len(runes) <= previewLength {
		return flat
	}
	return string(runes[:previewLength-3]) + "..."
}

// parseNoteID validates the id argument.
func parseNoteID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, domain.NewValidationErr(fmt.Sprintf("%q is not a valid note id", raw))
	}
	return id, nil
}

func pluralNotes(n int) string {
	if n == 1 {
		return "1 note"
	}
	return fmt.Sprintf("%d notes", n)
}
