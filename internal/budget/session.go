package budget

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a rejected call: unknown role, repeated role
// selection, or unknown category. State is never changed by a rejection.
var ErrInvalidInput = errors.New("invalid input")

// State is the session lifecycle stage.
type State int

const (
	AwaitingRoleSelection State = iota
	Active
	Ended
)

func (s State) String() string {
	switch s {
	case AwaitingRoleSelection:
		return "awaiting_role"
	case Active:
		return "active"
	case Ended:
		return "ended"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// IgnoreReason explains why an allocation was a no-op.
type IgnoreReason string

const (
	IgnoredNoRole          IgnoreReason = "no_role"
	IgnoredEnded           IgnoreReason = "ended"
	IgnoredBudgetExhausted IgnoreReason = "budget_exhausted"
	IgnoredRoundsExhausted IgnoreReason = "rounds_exhausted"
)

// Option configures a Session at construction.
type Option func(*Session)

// WithBudget overrides the total budget.
func WithBudget(a Amount) Option {
	return func(s *Session) { s.budget = a }
}

// WithUnit overrides the per-click allocation unit.
func WithUnit(a Amount) Option {
	return func(s *Session) { s.unit = a }
}

// WithMaxRounds overrides the number of rounds per playthrough.
func WithMaxRounds(n int) Option {
	return func(s *Session) { s.maxRounds = n }
}

// WithEventLog records session events into el.
func WithEventLog(el *EventLog) Option {
	return func(s *Session) { s.log = el }
}

// Outcome is the result of one Allocate call.
type Outcome struct {
	Accepted bool
	Ignored  IgnoreReason // set when !Accepted

	Category        Category
	Applied         Amount // amount actually added; below unit only at the budget edge
	TotalInPriority Amount
	GoalAchieved    bool
	Feedback        Feedback
	Summary         *Summary // set on the allocation that ends the game
}

// Session is the mutable state of one playthrough. It is owned by a single
// event-handling goroutine and is not safe for concurrent use.
type Session struct {
	budget    Amount
	unit      Amount
	maxRounds int
	log       *EventLog
	opts      []Option

	state   State
	role    Role
	alloc   [categoryCount]Amount
	total   Amount
	rounds  int
	summary Summary
}

// NewSession creates a session awaiting role selection.
func NewSession(opts ...Option) *Session {
	s := &Session{
		budget:    DefaultBudget,
		unit:      DefaultUnit,
		maxRounds: DefaultMaxRounds,
		opts:      opts,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Restart resets to a fresh session with the same options.
// The event log, if any, is kept and records the restart.
func (s *Session) Restart() {
	*s = *NewSession(s.opts...)
	s.record("game", "restart", "", 0)
}

// SelectRole binds the session to a catalog role. It is valid once, while
// awaiting selection.
func (s *Session) SelectRole(id int) error {
	if s.state != AwaitingRoleSelection {
		s.record("role", "rejected", fmt.Sprintf("id=%d state=%s", id, s.state), 0)
		return fmt.Errorf("select role %d: role already selected: %w", id, ErrInvalidInput)
	}
	role, ok := RoleByID(id)
	if !ok {
		s.record("role", "rejected", fmt.Sprintf("id=%d unknown", id), 0)
		return fmt.Errorf("select role %d: unknown role: %w", id, ErrInvalidInput)
	}
	s.role = role
	s.state = Active
	s.record("role", "selected", role.Title, role.Goal)
	return nil
}

// Allocate applies one funding unit to c. Unknown categories are rejected
// with ErrInvalidInput; allocations outside an active game, or once the
// budget or rounds are spent, are silent no-ops.
func (s *Session) Allocate(c Category) (Outcome, error) {
	idx := c.Index()
	if idx < 0 {
		s.record("allocate", "rejected", fmt.Sprintf("%q unknown", string(c)), 0)
		return Outcome{}, fmt.Errorf("allocate %q: unknown category: %w", string(c), ErrInvalidInput)
	}
	if reason, ok := s.ignoreReason(); ok {
		s.record("allocate", "ignored", fmt.Sprintf("%s %s", c, reason), 0)
		return Outcome{Ignored: reason, Category: c}, nil
	}

	applied := s.unit
	if headroom := s.budget - s.total; applied > headroom {
		applied = headroom
	}
	s.alloc[idx] += applied
	s.total += applied
	s.rounds++

	inPriority := s.TotalInPriority()
	out := Outcome{
		Accepted:        true,
		Category:        c,
		Applied:         applied,
		TotalInPriority: inPriority,
		GoalAchieved:    inPriority >= s.role.Goal,
		Feedback:        newFeedback(s.role, c, inPriority, s.RoundsRemaining()),
	}
	s.record("allocate", "accepted", fmt.Sprintf("%s +$%sM (%s)", c, applied.Millions(), out.Feedback.Kind), applied)

	if s.rounds >= s.maxRounds {
		s.state = Ended
		s.summary = s.buildSummary()
		sum := s.summary.clone()
		out.Summary = &sum
		s.record("game", "ended", s.summary.Headline(), inPriority)
	}
	return out, nil
}

func (s *Session) ignoreReason() (IgnoreReason, bool) {
	switch {
	case s.state == AwaitingRoleSelection:
		return IgnoredNoRole, true
	case s.state == Ended:
		return IgnoredEnded, true
	case s.rounds >= s.maxRounds:
		return IgnoredRoundsExhausted, true
	case s.total >= s.budget:
		return IgnoredBudgetExhausted, true
	}
	return "", false
}

// Summary returns the end-of-game report. ok is false until the game ends.
func (s *Session) Summary() (Summary, bool) {
	if s.state != Ended {
		return Summary{}, false
	}
	return s.summary.clone(), true
}

func (s *Session) State() State { return s.state }

// Role returns the selected role; ok is false while awaiting selection.
func (s *Session) Role() (Role, bool) {
	return s.role, s.state != AwaitingRoleSelection
}

func (s *Session) Budget() Amount { return s.budget }
func (s *Session) Unit() Amount { return s.unit }
func (s *Session) MaxRounds() int { return s.maxRounds }
func (s *Session) TotalAllocated() Amount { return s.total }
func (s *Session) Remaining() Amount { return s.budget - s.total }
func (s *Session) RoundsPlayed() int { return s.rounds }

func (s *Session) RoundsRemaining() int {
	return s.maxRounds - s.rounds
}

// Allocation returns the amount allocated to c (zero for unknown categories).
func (s *Session) Allocation(c Category) Amount {
	if i := c.Index(); i >= 0 {
		return s.alloc[i]
	}
	return 0
}

// Allocations returns every category's amount in table order.
func (s *Session) Allocations() []CategoryAmount {
	out := make([]CategoryAmount, categoryCount)
	for i, c := range categories {
		out[i] = CategoryAmount{Category: c, Amount: s.alloc[i]}
	}
	return out
}

// TotalInPriority sums the allocations to the selected role's priorities.
func (s *Session) TotalInPriority() Amount {
	if s.state == AwaitingRoleSelection {
		return 0
	}
	var sum Amount
	for _, c := range s.role.Priorities {
		sum += s.Allocation(c)
	}
	return sum
}

// GoalProgress is TotalInPriority divided by the role goal. It may exceed 1.
func (s *Session) GoalProgress() float64 {
	if s.state == AwaitingRoleSelection || s.role.Goal <= 0 {
		return 0
	}
	return float64(s.TotalInPriority()) / float64(s.role.Goal)
}

// AllocatedFraction is the share of the budget already allocated, 0..1.
func (s *Session) AllocatedFraction() float64 {
	if s.budget <= 0 {
		return 0
	}
	return float64(s.total) / float64(s.budget)
}

func (s *Session) record(kind, key, value string, amount Amount) {
	if s.log == nil {
		return
	}
	s.log.Add(s.rounds, kind, key, value, amount)
}
