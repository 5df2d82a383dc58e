package budget

import "time"

// DefaultFeedbackDuration is how long an allocation message stays visible.
const DefaultFeedbackDuration = 3000 * time.Millisecond

// FeedbackTimer holds the visible feedback text and its single pending
// dismissal. Show replaces both, so two dismissals never coexist.
type FeedbackTimer struct {
	duration time.Duration
	text     string
	deadline time.Time
	visible  bool
	sticky   bool
}

// NewFeedbackTimer creates a timer; a non-positive duration falls back to
// DefaultFeedbackDuration.
func NewFeedbackTimer(d time.Duration) *FeedbackTimer {
	if d <= 0 {
		d = DefaultFeedbackDuration
	}
	return &FeedbackTimer{duration: d}
}

// Show displays text and reschedules the dismissal to now+duration.
func (ft *FeedbackTimer) Show(text string, now time.Time) {
	ft.text = text
	ft.visible = true
	ft.sticky = false
	ft.deadline = now.Add(ft.duration)
}

// ShowSticky displays text with no dismissal pending.
func (ft *FeedbackTimer) ShowSticky(text string) {
	ft.text = text
	ft.visible = true
	ft.sticky = true
	ft.deadline = time.Time{}
}

// Tick dismisses the text once its deadline has passed and reports whether
// it did so on this call.
func (ft *FeedbackTimer) Tick(now time.Time) bool {
	if !ft.visible || ft.sticky || now.Before(ft.deadline) {
		return false
	}
	ft.visible = false
	ft.deadline = time.Time{}
	return true
}

// Clear hides the text and cancels any pending dismissal.
func (ft *FeedbackTimer) Clear() {
	ft.text = ""
	ft.visible = false
	ft.sticky = false
	ft.deadline = time.Time{}
}

func (ft *FeedbackTimer) Visible() bool { return ft.visible }
func (ft *FeedbackTimer) Sticky() bool { return ft.sticky }
func (ft *FeedbackTimer) Text() string { return ft.text }

// Pending returns the scheduled dismissal, if any.
func (ft *FeedbackTimer) Pending() (time.Time, bool) {
	if !ft.visible || ft.sticky {
		return time.Time{}, false
	}
	return ft.deadline, true
}
