package canvas

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// fallbackText fills canvas fields the model could not produce.
	fallbackText = "To be determined"

	// notesLimit caps the description stored in the Ideas tab.
	notesLimit = 500

	// problemLimit caps the description used as the fallback problem statement.
	problemLimit = 100
)

// IdeaSubmission is the raw idea as posted by the form. It is never
// persisted locally; it only lives for the duration of one request.
type IdeaSubmission struct {
	Title       string `json:"ideaTitle"`
	Description string `json:"ideaDescription"`
}

// LeanCanvasRecord holds the eight Lean Canvas sections for one idea.
// Fields left empty by the model stay empty here and are defaulted at
// write time.
type LeanCanvasRecord struct {
	Problem                string `json:"problem"`
	CustomerSegments       string `json:"customer_segments"`
	UniqueValueProposition string `json:"unique_value_proposition"`
	Solution               string `json:"solution"`
	Channels               string `json:"channels"`
	RevenueStreams         string `json:"revenue_streams"`
	CostStructure          string `json:"cost_structure"`
	KeyMetrics             string `json:"key_metrics"`
}

// Fallback builds the deterministic record used when the model call
// fails: the problem is the opening of the description, the solution is
// the title itself, everything else is a placeholder.
func Fallback(title, description string) LeanCanvasRecord {
	return LeanCanvasRecord{
		Problem:                Truncate(description, problemLimit),
		CustomerSegments:       fallbackText,
		UniqueValueProposition: fallbackText,
		Solution:               title,
		Channels:               fallbackText,
		RevenueStreams:         fallbackText,
		CostStructure:          fallbackText,
		KeyMetrics:             fallbackText,
	}
}

// NewIdeaID generates the short identifier joining an idea's two rows.
// Format: first 8 hex characters of a v4 UUID, e.g. "a1b2c3d4".
// Uniqueness is probabilistic; nothing enforces it.
func NewIdeaID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// IdeasRow lays out one row for the Ideas tab:
// idea_id, title, created_at, status, notes.
func IdeasRow(id string, sub IdeaSubmission, at time.Time) []interface{} {
	return []interface{}{
		id,
		sub.Title,
		at.UTC().Format(time.RFC3339),
		"processed",
		Truncate(sub.Description, notesLimit),
	}
}

// CanvasRow lays out one row for the LeanCanvas tab:
// idea_id followed by the eight canvas sections in fixed column order.
func CanvasRow(id string, rec LeanCanvasRecord) []interface{} {
	return []interface{}{
		id,
		rec.Problem,
		rec.CustomerSegments,
		rec.UniqueValueProposition,
		rec.Solution,
		rec.Channels,
		rec.RevenueStreams,
		rec.CostStructure,
		rec.KeyMetrics,
	}
}

// Truncate cuts s to at most n characters. Counting runes keeps
// multi-byte descriptions whole instead of splitting a UTF-8 sequence
// at a byte boundary.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
