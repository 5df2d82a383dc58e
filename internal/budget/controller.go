package budget

import "time"

// highlightDelta is the extra glow given to the display that was just funded.
const highlightDelta = 0.5

// Controller routes host input through the Session and mirrors the results
// onto the Scene. Like the Session it expects a single caller.
type Controller struct {
	session  *Session
	scene    Scene
	feedback *FeedbackTimer
}

// NewController binds a session to a scene.
func NewController(session *Session, scene Scene, feedback *FeedbackTimer) *Controller {
	if feedback == nil {
		feedback = NewFeedbackTimer(DefaultFeedbackDuration)
	}
	return &Controller{session: session, scene: scene, feedback: feedback}
}

func (c *Controller) Session() *Session { return c.session }
func (c *Controller) Feedback() *FeedbackTimer { return c.feedback }
func (c *Controller) Summary() (Summary, bool) { return c.session.Summary() }

// SelectRole picks the player's role and moves the camera to its seat.
func (c *Controller) SelectRole(id int) error {
	if err := c.session.SelectRole(id); err != nil {
		return err
	}
	role, _ := c.session.Role()
	c.scene.MoveCameraToSeat(role.Seat)
	return nil
}

// Click handles a pointer click at screen coordinates. hit is false when the
// click missed every display; the outcome is only meaningful when hit.
func (c *Controller) Click(x, y int, now time.Time) (out Outcome, hit bool) {
	if c.session.State() != Active {
		return Outcome{Ignored: c.idleReason()}, false
	}
	cat, ok := c.scene.PickAt(x, y)
	if !ok {
		return Outcome{}, false
	}
	out, err := c.session.Allocate(cat)
	if err != nil || !out.Accepted {
		return out, true
	}

	c.scene.HighlightAllocated(cat, highlightDelta)
	c.scene.ScaleIndicator(c.session.AllocatedFraction())
	if out.Summary != nil {
		c.feedback.ShowSticky(out.Summary.Report())
	} else {
		c.feedback.Show(out.Feedback.Text(), now)
	}
	return out, true
}

func (c *Controller) idleReason() IgnoreReason {
	if c.session.State() == Ended {
		return IgnoredEnded
	}
	return IgnoredNoRole
}

// Tick runs once per frame: expires feedback and advances scene animation.
// It never mutates the session.
func (c *Controller) Tick(now time.Time) {
	c.feedback.Tick(now)
	c.scene.RenderFrame()
}

// Restart discards the playthrough and returns to role selection.
func (c *Controller) Restart() {
	c.session.Restart()
	c.feedback.Clear()
	c.scene.Reset()
}
