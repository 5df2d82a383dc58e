package game

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/Budget-Table/internal/budget"
	"github.com/Garsondee/Budget-Table/internal/config"
	"github.com/hajimehoshi/ebiten/v2"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestGame(t *testing.T) (*Game, *testClock) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	cfg.CameraFrames = 5
	g := New(cfg)
	clock := &testClock{t: time.Unix(1000, 0)}
	g.now = clock.now
	return g, clock
}

// clickRole presses the "Select Role" button of role id in window pixels.
func clickRole(g *Game, id int) {
	s := g.hudScale()
	for _, c := range roleCards(g.width/s, g.height/s) {
		if c.role.ID == id {
			g.handleClick((c.button.x+c.button.w/2)*s, (c.button.y+c.button.h/2)*s)
			return
		}
	}
}

func clickCategory(g *Game, c budget.Category) {
	x, y := screenOf(g.scene, g.scene.layout.displays[c.Index()])
	g.handleClick(x, y)
}

func TestGame_RoleModalThenAllocate(t *testing.T) {
	g, _ := newTestGame(t)
	clickCategory(g, budget.ResearchA)
	if g.ctrl.Session().TotalAllocated() != 0 {
		t.Fatal("display clicks before role selection must be ignored")
	}

	clickRole(g, 2)
	r, ok := g.ctrl.Session().Role()
	if !ok || r.Title != "Facilities Director" {
		t.Fatalf("expected Facilities Director, got %+v ok=%v", r, ok)
	}
	if g.scene.selectedSeat != 2 {
		t.Fatalf("camera should target seat 2, got %d", g.scene.selectedSeat)
	}

	for i := 0; i < 10; i++ {
		g.step(g.now())
	}
	clickCategory(g, budget.FacilitiesA)
	if got := g.ctrl.Session().Allocation(budget.FacilitiesA); got != budget.Million {
		t.Fatalf("expected $1M in Facilities A, got %s", got.Dollars())
	}
	if h := g.history.Recent(); len(h) != 1 || h[0].Kind != budget.FeedbackStillNeeded {
		t.Fatalf("unexpected history %+v", h)
	}
	if !g.ctrl.Feedback().Visible() {
		t.Fatal("feedback should be visible after an allocation")
	}
}

func TestGame_FeedbackExpiresOnStep(t *testing.T) {
	g, clock := newTestGame(t)
	g.handleKey(ebiten.Key1)
	clickCategory(g, budget.ResearchB)
	clock.t = clock.t.Add(2 * time.Second)
	g.step(clock.t)
	if !g.ctrl.Feedback().Visible() {
		t.Fatal("feedback hidden too early")
	}
	clock.t = clock.t.Add(time.Second)
	g.step(clock.t)
	if g.ctrl.Feedback().Visible() {
		t.Fatal("feedback should be dismissed after 3s")
	}
}

func TestGame_EndCopyAndRestart(t *testing.T) {
	g, _ := newTestGame(t)
	var copied string
	g.clip = func(s string) error {
		copied = s
		return nil
	}

	g.handleKey(ebiten.Key6)
	for i := 0; i < budget.DefaultMaxRounds; i++ {
		clickCategory(g, budget.ScholarshipsA)
	}
	if g.ctrl.Session().State() != budget.Ended {
		t.Fatalf("expected ended, got %s", g.ctrl.Session().State())
	}

	g.handleKey(ebiten.KeyC)
	if !strings.HasPrefix(copied, "Game Over!\nCongratulations!") {
		t.Fatalf("unexpected copied report %q", copied)
	}
	if g.notice != "report copied to clipboard" {
		t.Fatalf("unexpected notice %q", g.notice)
	}

	s := g.hudScale()
	_, again, _ := summaryLayout(g.width/s, g.height/s, g.summaryReportLines())
	g.handleClick((again.x+again.w/2)*s, (again.y+again.h/2)*s)
	if g.ctrl.Session().State() != budget.AwaitingRoleSelection {
		t.Fatal("play again should restart the session")
	}
	if len(g.history.Recent()) != 0 {
		t.Fatal("restart should clear history")
	}
	if g.events.Count("game", "restart") != 1 {
		t.Fatalf("restart not logged:\n%s", g.events.Format())
	}
}

func TestGame_ClipboardFailureBecomesNotice(t *testing.T) {
	g, _ := newTestGame(t)
	g.clip = func(string) error { return errors.New("clipboard: no xclip") }
	g.handleKey(ebiten.Key1)
	for i := 0; i < budget.DefaultMaxRounds; i++ {
		clickCategory(g, budget.ResearchA)
	}
	g.copyReport()
	if !strings.Contains(g.notice, "no xclip") {
		t.Fatalf("expected clipboard error notice, got %q", g.notice)
	}
}

func TestGame_LayoutTracksResize(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1600, 900)
	if w != 1600 || h != 900 {
		t.Fatalf("layout returned %dx%d", w, h)
	}
	if g.scene.view.cx != 800 || g.scene.view.cy != 450 {
		t.Fatalf("scene not re-centred: %+v", g.scene.view)
	}
	g.handleKey(ebiten.Key1)
	clickCategory(g, budget.FacilitiesB)
	if g.ctrl.Session().Allocation(budget.FacilitiesB) != budget.Million {
		t.Fatal("picking should use the resized viewport")
	}
}
