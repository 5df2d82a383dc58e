package budget

import (
	"fmt"
	"strings"
)

// Category is one of the six fixed budget line items.
type Category string

const (
	ResearchA     Category = "Research A"
	ResearchB     Category = "Research B"
	FacilitiesA   Category = "Facilities A"
	FacilitiesB   Category = "Facilities B"
	ScholarshipsA Category = "Scholarships A"
	ScholarshipsB Category = "Scholarships B"
)

const categoryCount = 6

// categories is the display order around the table.
var categories = [categoryCount]Category{
	ResearchA,
	ResearchB,
	FacilitiesA,
	FacilitiesB,
	ScholarshipsA,
	ScholarshipsB,
}

// Categories returns the six categories in table order.
func Categories() []Category {
	out := make([]Category, categoryCount)
	copy(out, categories[:])
	return out
}

// Index returns the category's position around the table, or -1 if unknown.
func (c Category) Index() int {
	for i, k := range categories {
		if k == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Topic returns the topic prefix shared by the A/B pair, e.g. "Research".
func (c Category) Topic() string {
	s := string(c)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a category name, ignoring surrounding whitespace
// and letter case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("category %q: %w", s, ErrInvalidInput)
}

// Topics returns the distinct topic prefixes in table order.
func Topics() []string {
	var out []string
	seen := make(map[string]bool, categoryCount)
	for _, c := range categories {
		t := c.Topic()
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
