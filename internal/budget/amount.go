package budget

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount is a whole-dollar currency value.
type Amount int64

const (
	// Million is one million dollars.
	Million Amount = 1_000_000

	// DefaultBudget is the total budget on the table ($10M).
	DefaultBudget = 10 * Million
	// DefaultUnit is the increment applied per accepted click ($1M).
	DefaultUnit = Million
	// DefaultMaxRounds is the number of accepted allocations per playthrough.
	DefaultMaxRounds = 10
)

var dollarPrinter = message.NewPrinter(language.English)

// Millions formats the amount in millions with one decimal, e.g. "2.5".
func (a Amount) Millions() string {
	return fmt.Sprintf("%.1f", float64(a)/float64(Million))
}

// Dollars formats the amount with thousands separators, e.g. "$10,000,000".
func (a Amount) Dollars() string {
	return dollarPrinter.Sprintf("$%d", int64(a))
}

func (a Amount) String() string {
	return "$" + a.Millions() + "M"
}
