package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScene maps column x/100 to the category at that table index.
type fakeScene struct {
	seats      []int
	highlights []Category
	deltas     []float64
	scales     []float64
	frames     int
	resets     int
}

func (f *fakeScene) PickAt(x, _ int) (Category, bool) {
	i := x / 100
	if x < 0 || i >= len(categories) {
		return "", false
	}
	return categories[i], true
}

func (f *fakeScene) HighlightAllocated(c Category, d float64) {
	f.highlights = append(f.highlights, c)
	f.deltas = append(f.deltas, d)
}

func (f *fakeScene) ScaleIndicator(fraction float64) { f.scales = append(f.scales, fraction) }
func (f *fakeScene) MoveCameraToSeat(seat int) { f.seats = append(f.seats, seat) }
func (f *fakeScene) RenderFrame() { f.frames++ }
func (f *fakeScene) Reset() { f.resets++ }

func clickAt(c Category) int { return c.Index()*100 + 50 }

func newTestController() (*Controller, *fakeScene) {
	scene := &fakeScene{}
	return NewController(NewSession(), scene, NewFeedbackTimer(3*time.Second)), scene
}

func TestController_SelectRoleMovesCamera(t *testing.T) {
	c, scene := newTestController()
	require.NoError(t, c.SelectRole(4))
	assert.Equal(t, []int{4}, scene.seats)

	assert.ErrorIs(t, c.SelectRole(99), ErrInvalidInput)
	assert.ErrorIs(t, c.SelectRole(1), ErrInvalidInput)
	assert.Equal(t, []int{4}, scene.seats, "rejected selections do not move the camera")
}

func TestController_ClickBeforeRoleIgnored(t *testing.T) {
	c, scene := newTestController()
	out, hit := c.Click(clickAt(ResearchA), 0, time.Unix(0, 0))
	assert.False(t, hit)
	assert.Equal(t, IgnoredNoRole, out.Ignored)
	assert.Empty(t, scene.highlights)
	assert.Zero(t, c.Session().TotalAllocated())
}

func TestController_ClickMissChangesNothing(t *testing.T) {
	c, scene := newTestController()
	require.NoError(t, c.SelectRole(0))
	_, hit := c.Click(-10, 0, time.Unix(0, 0))
	assert.False(t, hit)
	_, hit = c.Click(900, 0, time.Unix(0, 0))
	assert.False(t, hit)
	assert.Zero(t, c.Session().RoundsPlayed())
	assert.Empty(t, scene.scales)
	assert.False(t, c.Feedback().Visible())
}

func TestController_ClickAllocatesAndUpdatesScene(t *testing.T) {
	c, scene := newTestController()
	require.NoError(t, c.SelectRole(0))
	now := time.Unix(100, 0)

	out, hit := c.Click(clickAt(FacilitiesB), 0, now)
	require.True(t, hit)
	require.True(t, out.Accepted)
	assert.Equal(t, FacilitiesB, out.Category)
	assert.Equal(t, []Category{FacilitiesB}, scene.highlights)
	assert.Equal(t, []float64{highlightDelta}, scene.deltas)
	assert.Equal(t, []float64{0.1}, scene.scales)
	assert.True(t, c.Feedback().Visible())
	assert.Contains(t, c.Feedback().Text(), "Remember your Research priorities!")
	deadline, ok := c.Feedback().Pending()
	require.True(t, ok)
	assert.Equal(t, now.Add(3*time.Second), deadline)
}

func TestController_NewAllocationRestartsDismissal(t *testing.T) {
	c, _ := newTestController()
	require.NoError(t, c.SelectRole(1))
	t0 := time.Unix(0, 0)
	c.Click(clickAt(ResearchA), 0, t0)
	c.Tick(t0.Add(2 * time.Second))
	require.True(t, c.Feedback().Visible())

	t1 := t0.Add(2500 * time.Millisecond)
	c.Click(clickAt(ResearchB), 0, t1)
	c.Tick(t0.Add(3500 * time.Millisecond))
	assert.True(t, c.Feedback().Visible(), "first dismissal was cancelled")
	assert.Contains(t, c.Feedback().Text(), "Excellent!")

	c.Tick(t1.Add(3 * time.Second))
	assert.False(t, c.Feedback().Visible())
}

func TestController_EndOfGameShowsStickySummary(t *testing.T) {
	c, scene := newTestController()
	require.NoError(t, c.SelectRole(0))
	now := time.Unix(0, 0)
	var last Outcome
	for i := 0; i < DefaultMaxRounds; i++ {
		last, _ = c.Click(clickAt(ResearchA), 0, now)
	}
	require.NotNil(t, last.Summary)
	assert.True(t, last.Summary.RestartRequested)
	assert.True(t, c.Feedback().Sticky())
	c.Tick(now.Add(time.Hour))
	assert.True(t, c.Feedback().Visible())
	assert.Contains(t, c.Feedback().Text(), "Game Over!")
	assert.Equal(t, 1.0, scene.scales[len(scene.scales)-1])

	out, hit := c.Click(clickAt(ResearchA), 0, now)
	assert.False(t, hit)
	assert.Equal(t, IgnoredEnded, out.Ignored)
	assert.Len(t, scene.highlights, DefaultMaxRounds)
}

func TestController_TickNeverMutatesSession(t *testing.T) {
	c, scene := newTestController()
	require.NoError(t, c.SelectRole(2))
	c.Click(clickAt(FacilitiesA), 0, time.Unix(0, 0))
	before := c.Session().Allocations()
	for i := 0; i < 120; i++ {
		c.Tick(time.Unix(int64(i), 0))
	}
	assert.Equal(t, 120, scene.frames)
	assert.Equal(t, before, c.Session().Allocations())
	assert.Equal(t, 1, c.Session().RoundsPlayed())
}

func TestController_Restart(t *testing.T) {
	c, scene := newTestController()
	require.NoError(t, c.SelectRole(5))
	c.Click(clickAt(ScholarshipsA), 0, time.Unix(0, 0))

	c.Restart()
	assert.Equal(t, 1, scene.resets)
	assert.Equal(t, AwaitingRoleSelection, c.Session().State())
	assert.Zero(t, c.Session().TotalAllocated())
	assert.False(t, c.Feedback().Visible())
	require.NoError(t, c.SelectRole(3))
}
