package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var daysAgoRe = regexp.MustCompile(`^(?:(\d{1,3})\s+(?:days?\s+ago|tagen?)|vor\s+(\d{1,3})\s+tagen?)$`)

// ParseSince turns a free-form "since" filter into the start of the referenced day.
// It understands a few English and German relative phrases and falls back to dateparse.
func ParseSince(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	token := strings.ToLower(strings.TrimSpace(text))
	if token == "" {
		return time.Time{}, false
	}

	if t, ok := resolveRelative(token, ref, loc); ok {
		return t, true
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}
	return dateOnly(t.In(loc)), true
}

func resolveRelative(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = dateOnly(ref.In(loc))

	switch token {
	case "today", "heute":
		return ref, true
	case "yesterday", "gestern":
		return ref.AddDate(0, 0, -1), true
	case "last week", "letzte woche":
		return ref.AddDate(0, 0, -7), true
	case "last month", "letzten monat":
		return ref.AddDate(0, -1, 0), true
	}

	if m := daysAgoRe.FindStringSubmatch(token); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return time.Time{}, false
		}
		return ref.AddDate(0, 0, -n), true
	}

	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
