package budget

import (
	"fmt"
	"strings"
)

// EventEntry is one recorded session event.
type EventEntry struct {
	Round  int    // rounds played when the event was recorded
	Kind   string // role, allocate, game
	Key    string // specific event name within the kind
	Value  string // human-readable detail
	Amount Amount // optional amount for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[R=03] allocate  accepted        Research A +$1.0M
func (e EventEntry) String() string {
	return fmt.Sprintf("[R=%02d] %-9s %-15s %s", e.Round, e.Kind, e.Key, e.Value)
}

// EventLog collects structured session events. It is unbounded and
// machine-readable; the on-screen History is the bounded view.
type EventLog struct {
	entries []EventEntry
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records a new entry.
func (el *EventLog) Add(round int, kind, key, value string, amount Amount) {
	el.entries = append(el.entries, EventEntry{
		Round:  round,
		Kind:   kind,
		Key:    key,
		Value:  value,
		Amount: amount,
	})
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventEntry {
	return el.entries
}

// Filter returns entries matching the given kind and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(kind, key string) []EventEntry {
	var out []EventEntry
	for _, e := range el.entries {
		if kind != "" && e.Kind != kind {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given kind and key.
func (el *EventLog) Count(kind, key string) int {
	return len(el.Filter(kind, key))
}

// LastOf returns the most recent entry matching kind+key, or false if none.
func (el *EventLog) LastOf(kind, key string) (EventEntry, bool) {
	entries := el.Filter(kind, key)
	if len(entries) == 0 {
		return EventEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches kind, key, and value substring.
func (el *EventLog) HasEntry(kind, key, valueSubstr string) bool {
	for _, e := range el.entries {
		if kind != "" && e.Kind != kind {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
