package budget

import (
	"fmt"
	"strings"
)

// CategoryAmount pairs a category with its allocation.
type CategoryAmount struct {
	Category Category
	Amount   Amount
}

// TopicAmount is the summed allocation of one topic area.
type TopicAmount struct {
	Topic  string
	Amount Amount
}

// Summary is the end-of-game report, derived once when the last round is played.
type Summary struct {
	Role            Role
	GoalAchieved    bool
	TotalInPriority Amount
	TotalAllocated  Amount
	Allocations     []CategoryAmount // table order
	OtherAreas      []TopicAmount    // non-priority allocations grouped by topic

	// RestartRequested asks the host to offer "play again". Restart is a
	// host action; the session never restarts itself.
	RestartRequested bool
}

func (s *Session) buildSummary() Summary {
	inPriority := s.TotalInPriority()
	sum := Summary{
		Role:             s.role,
		GoalAchieved:     inPriority >= s.role.Goal,
		TotalInPriority:  inPriority,
		TotalAllocated:   s.total,
		Allocations:      s.Allocations(),
		RestartRequested: true,
	}
	for _, topic := range Topics() {
		var area Amount
		seen := false
		for i, c := range categories {
			if c.Topic() != topic || s.role.IsPriority(c) {
				continue
			}
			area += s.alloc[i]
			seen = true
		}
		if seen {
			sum.OtherAreas = append(sum.OtherAreas, TopicAmount{Topic: topic, Amount: area})
		}
	}
	return sum
}

func (sum Summary) clone() Summary {
	out := sum
	out.Allocations = append([]CategoryAmount(nil), sum.Allocations...)
	out.OtherAreas = append([]TopicAmount(nil), sum.OtherAreas...)
	return out
}

// Headline is the success or failure sentence.
func (sum Summary) Headline() string {
	if sum.GoalAchieved {
		return fmt.Sprintf("Congratulations! You've successfully secured funding for %s!", sum.Role.PriorityTopic())
	}
	return "You didn't reach your funding goal. Better luck next time!"
}

// Report renders the summary as plain text.
//
//	Game Over!
//	Congratulations! You've successfully secured funding for Research!
//	Final Allocations:
//	- Research A: $5.0M
func (sum Summary) Report() string {
	var sb strings.Builder
	sb.WriteString("Game Over!\n")
	sb.WriteString(sum.Headline())
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%s: $%sM / $%sM in %s\n",
		sum.Role.Title, sum.TotalInPriority.Millions(), sum.Role.Goal.Millions(), sum.Role.PriorityTopic())
	sb.WriteString("Final Allocations:\n")
	for _, ca := range sum.Allocations {
		fmt.Fprintf(&sb, "- %s: $%sM\n", ca.Category, ca.Amount.Millions())
	}
	if len(sum.OtherAreas) > 0 {
		sb.WriteString("Other Areas:\n")
		for _, ta := range sum.OtherAreas {
			fmt.Fprintf(&sb, "- %s: $%sM\n", ta.Topic, ta.Amount.Millions())
		}
	}
	return sb.String()
}
