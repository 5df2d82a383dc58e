package budget

import "fmt"

// FeedbackKind classifies the message produced by an accepted allocation.
type FeedbackKind int

const (
	FeedbackGoalReached FeedbackKind = iota // priority allocation, goal met
	FeedbackStillNeeded                     // priority allocation, goal not yet met
	FeedbackOffPriority                     // allocation outside the role's priorities
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackGoalReached:
		return "goal_reached"
	case FeedbackStillNeeded:
		return "still_needed"
	case FeedbackOffPriority:
		return "off_priority"
	}
	return fmt.Sprintf("FeedbackKind(%d)", int(k))
}

// Feedback is the role-aware reaction to one accepted allocation.
type Feedback struct {
	Kind            FeedbackKind
	Topic           string // the role's priority topic
	CategoryTopic   string // topic of the category just funded
	Shortfall       Amount // goal minus priority total; zero once reached
	RoundsRemaining int
}

// newFeedback derives the message for an allocation to c.
func newFeedback(role Role, c Category, inPriority Amount, roundsRemaining int) Feedback {
	f := Feedback{
		Topic:           role.PriorityTopic(),
		CategoryTopic:   c.Topic(),
		RoundsRemaining: roundsRemaining,
	}
	switch {
	case !role.IsPriority(c):
		f.Kind = FeedbackOffPriority
	case inPriority >= role.Goal:
		f.Kind = FeedbackGoalReached
	default:
		f.Kind = FeedbackStillNeeded
	}
	if inPriority < role.Goal {
		f.Shortfall = role.Goal - inPriority
	}
	return f
}

// Message is the headline sentence.
func (f Feedback) Message() string {
	switch f.Kind {
	case FeedbackGoalReached:
		return fmt.Sprintf("Excellent! You've reached your funding goal for %s!", f.Topic)
	case FeedbackStillNeeded:
		return fmt.Sprintf("Good choice! Still need $%sM more for %s.", f.Shortfall.Millions(), f.Topic)
	default:
		return fmt.Sprintf("Allocated to %s. Remember your %s priorities!", f.CategoryTopic, f.Topic)
	}
}

// Text is the headline plus the rounds-remaining line.
func (f Feedback) Text() string {
	return fmt.Sprintf("%s\nRounds remaining: %d", f.Message(), f.RoundsRemaining)
}
