package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackTimer_DismissesAfterDuration(t *testing.T) {
	ft := NewFeedbackTimer(0)
	t0 := time.Unix(10, 0)
	ft.Show("hello", t0)
	assert.False(t, ft.Tick(t0.Add(DefaultFeedbackDuration-time.Millisecond)))
	assert.True(t, ft.Visible())
	assert.True(t, ft.Tick(t0.Add(DefaultFeedbackDuration)))
	assert.False(t, ft.Visible())
	assert.False(t, ft.Tick(t0.Add(time.Hour)), "dismissal fires once")
}

func TestFeedbackTimer_ShowReplacesPendingDismissal(t *testing.T) {
	ft := NewFeedbackTimer(time.Second)
	t0 := time.Unix(0, 0)
	ft.Show("first", t0)
	ft.Show("second", t0.Add(900*time.Millisecond))

	d, ok := ft.Pending()
	require.True(t, ok)
	assert.Equal(t, t0.Add(1900*time.Millisecond), d)
	assert.False(t, ft.Tick(t0.Add(time.Second)))
	assert.Equal(t, "second", ft.Text())
}

func TestFeedbackTimer_StickyAndClear(t *testing.T) {
	ft := NewFeedbackTimer(time.Second)
	ft.ShowSticky("Game Over!")
	_, ok := ft.Pending()
	assert.False(t, ok)
	assert.False(t, ft.Tick(time.Now().Add(time.Hour)))
	assert.True(t, ft.Visible())

	ft.Clear()
	assert.False(t, ft.Visible())
	assert.Empty(t, ft.Text())
}
