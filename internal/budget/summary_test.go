package budget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playAll(t *testing.T, s *Session, plays ...Category) {
	t.Helper()
	for _, c := range plays {
		_, err := s.Allocate(c)
		require.NoError(t, err)
	}
}

func TestSummary_OtherAreasGroupNonPriorityByTopic(t *testing.T) {
	s := newActiveSession(t, 0) // Research
	playAll(t, s,
		ResearchA, ResearchA, ResearchB,
		FacilitiesA, FacilitiesB, FacilitiesB,
		ScholarshipsA, ScholarshipsA, ScholarshipsA, ScholarshipsB,
	)
	sum, ok := s.Summary()
	require.True(t, ok)
	assert.True(t, sum.GoalAchieved)
	assert.Equal(t, 3*Million, sum.TotalInPriority)
	assert.Equal(t, DefaultBudget, sum.TotalAllocated)
	assert.Equal(t, []TopicAmount{
		{Topic: "Facilities", Amount: 3 * Million},
		{Topic: "Scholarships", Amount: 4 * Million},
	}, sum.OtherAreas)
	require.Len(t, sum.Allocations, 6)
	assert.Equal(t, CategoryAmount{Category: ResearchA, Amount: 2 * Million}, sum.Allocations[0])
}

func TestSummary_Idempotent(t *testing.T) {
	s := newActiveSession(t, 2)
	playAll(t, s, ResearchA, ResearchA, ResearchA, ResearchA, ResearchA,
		ResearchA, ResearchA, ResearchA, ResearchA, FacilitiesA)
	a, ok := s.Summary()
	require.True(t, ok)
	a.Allocations[0].Amount = 0
	a.OtherAreas = nil
	b, _ := s.Summary()
	c, _ := s.Summary()
	assert.Equal(t, b, c)
	assert.Equal(t, 9*Million, b.Allocations[0].Amount, "callers cannot mutate the stored summary")
	assert.False(t, b.GoalAchieved)
}

func TestSummary_Report(t *testing.T) {
	s := newActiveSession(t, 3) // Facilities, goal $2M
	playAll(t, s, ResearchA, ResearchA, ResearchA, ResearchA, ResearchA,
		ResearchB, ResearchB, ScholarshipsA, ScholarshipsB, FacilitiesA)
	sum, _ := s.Summary()
	report := sum.Report()
	assert.True(t, strings.HasPrefix(report, "Game Over!\nYou didn't reach your funding goal."), report)
	assert.Contains(t, report, "- Research A: $5.0M\n")
	assert.Contains(t, report, "- Facilities A: $1.0M\n")
	assert.Contains(t, report, "- Facilities B: $0.0M\n")
	assert.Contains(t, report, "Facilities Manager: $1.0M / $2.0M in Facilities")
	assert.Contains(t, report, "- Research: $7.0M\n")

	won := Summary{Role: Roles()[5], GoalAchieved: true}
	assert.Equal(t, "Congratulations! You've successfully secured funding for Scholarships!", won.Headline())
}
