package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Budget-Table/internal/budget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const historyMaxEntries = 10

// HistoryEntry is one accepted allocation as shown in the history panel.
type HistoryEntry struct {
	Round    int
	Category budget.Category
	Kind     budget.FeedbackKind
	Message  string
}

// History is a ring buffer of recent allocations rendered on-screen.
type History struct {
	entries []HistoryEntry
	head    int
	count   int
}

// NewHistory creates a history panel with a fixed capacity.
func NewHistory() *History {
	return &History{entries: make([]HistoryEntry, historyMaxEntries)}
}

// Add appends an entry, overwriting the oldest once full.
func (h *History) Add(e HistoryEntry) {
	h.entries[h.head] = e
	h.head = (h.head + 1) % historyMaxEntries
	if h.count < historyMaxEntries {
		h.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (h *History) Recent() []HistoryEntry {
	result := make([]HistoryEntry, h.count)
	for i := 0; i < h.count; i++ {
		idx := (h.head - h.count + i + historyMaxEntries) % historyMaxEntries
		result[i] = h.entries[idx]
	}
	return result
}

// Clear empties the buffer.
func (h *History) Clear() {
	h.head = 0
	h.count = 0
}

var kindColors = map[budget.FeedbackKind]color.RGBA{
	budget.FeedbackGoalReached: {R: 80, G: 230, B: 120, A: 255},
	budget.FeedbackStillNeeded: {R: 90, G: 200, B: 240, A: 255},
	budget.FeedbackOffPriority: {R: 240, G: 180, B: 70, A: 255},
}

// Draw renders the panel with its bottom-left corner at (x, bottom).
func (h *History) Draw(dst *ebiten.Image, x, bottom float32) {
	entries := h.Recent()
	if len(entries) == 0 {
		return
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%2d %-14s %s", e.Round, e.Category, e.Kind)
	}
	w := float32(longest(lines)*charW + 18)
	ph := float32(len(lines)*lineH + lineH + 8)
	y := bottom - ph

	vector.FillRect(dst, x, y, w, ph, color.RGBA{R: 6, G: 12, B: 16, A: 210}, false)
	vector.StrokeRect(dst, x, y, w, ph, 1.0, color.RGBA{R: 40, G: 110, B: 130, A: 180}, false)
	drawText(dst, "HISTORY", float64(x+6), float64(y+3), color.RGBA{R: 120, G: 220, B: 240, A: 255})

	recent := 3
	for i, line := range lines {
		ly := y + lineH + 4 + float32(i*lineH)
		if i >= len(lines)-recent {
			vector.FillRect(dst, x+2, ly, w-4, lineH, color.RGBA{R: 20, G: 40, B: 48, A: 160}, false)
		}
		vector.FillRect(dst, x+5, ly+4, 3, 6, kindColors[entries[i].Kind], false)
		drawText(dst, line, float64(x+12), float64(ly), color.White)
	}
}
