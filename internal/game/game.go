package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Garsondee/Budget-Table/internal/budget"
	"github.com/Garsondee/Budget-Table/internal/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the ebiten host for one budget table.
type Game struct {
	cfg    config.Config
	width  int
	height int

	scene   *Scene
	ctrl    *budget.Controller
	events  *budget.EventLog
	history *History

	showHistory   bool
	notice        string // one-line status (clipboard result, rejected input)
	noticeUntil   time.Time
	prevMouseLeft bool
	prevKeys      map[ebiten.Key]bool

	// hudBuf holds all HUD text at 1x; blitted at cfg.HUDScale.
	hudBuf *ebiten.Image

	now  func() time.Time
	clip func(string) error
}

// New builds a game from cfg. It creates no GPU resources; those are
// allocated on the first Draw.
func New(cfg config.Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- cosmetic only

	events := budget.NewEventLog()
	scene := NewScene(cfg.WindowWidth, cfg.WindowHeight, cfg.CameraFrames, cfg.ParticleCount, rng)
	g := &Game{
		cfg:         cfg,
		width:       cfg.WindowWidth,
		height:      cfg.WindowHeight,
		scene:       scene,
		events:      events,
		history:     NewHistory(),
		showHistory: true,
		prevKeys:    make(map[ebiten.Key]bool),
		now:         time.Now,
		clip:        copyText,
	}
	g.ctrl = budget.NewController(
		budget.NewSession(budget.WithEventLog(events)),
		scene,
		budget.NewFeedbackTimer(cfg.FeedbackDuration),
	)
	return g
}

// Events exposes the session event log.
func (g *Game) Events() *budget.EventLog {
	return g.events
}

func (g *Game) Update() error {
	g.handleInput()
	g.step(g.now())
	return nil
}

// step is the per-frame tick: feedback expiry and scene animation only.
func (g *Game) step(now time.Time) {
	g.ctrl.Tick(now)
	if g.notice != "" && !now.Before(g.noticeUntil) {
		g.notice = ""
	}
}

// handleInput polls ebiten for edge-triggered clicks and keys.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	for _, k := range []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6,
		ebiten.KeyR, ebiten.KeyC, ebiten.KeyH,
	} {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		if currentKeys[k] && !g.prevKeys[k] {
			g.handleKey(k)
		}
	}
	g.prevKeys = currentKeys

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.prevMouseLeft {
			mx, my := ebiten.CursorPosition()
			g.handleClick(mx, my)
		}
	}
	g.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (g *Game) handleKey(k ebiten.Key) {
	switch {
	case k >= ebiten.Key1 && k <= ebiten.Key6:
		if g.ctrl.Session().State() == budget.AwaitingRoleSelection {
			g.selectRole(int(k - ebiten.Key1))
		}
	case k == ebiten.KeyR:
		g.restart()
	case k == ebiten.KeyC:
		g.copyReport()
	case k == ebiten.KeyH:
		g.showHistory = !g.showHistory
	}
}

// handleClick routes a click in window pixels to the modal, the summary
// buttons or the table.
func (g *Game) handleClick(mx, my int) {
	scale := g.hudScale()
	hx, hy := mx/scale, my/scale
	bw, bh := g.width/scale, g.height/scale

	switch g.ctrl.Session().State() {
	case budget.AwaitingRoleSelection:
		if id, ok := roleAt(roleCards(bw, bh), hx, hy); ok {
			g.selectRole(id)
		}
	case budget.Ended:
		_, again, copyBtn := summaryLayout(bw, bh, g.summaryReportLines())
		switch {
		case again.contains(hx, hy):
			g.restart()
		case copyBtn.contains(hx, hy):
			g.copyReport()
		}
	default:
		out, hit := g.ctrl.Click(mx, my, g.now())
		if hit && out.Accepted {
			g.history.Add(HistoryEntry{
				Round:    g.ctrl.Session().RoundsPlayed(),
				Category: out.Category,
				Kind:     out.Feedback.Kind,
				Message:  out.Feedback.Message(),
			})
		}
	}
}

func (g *Game) selectRole(id int) {
	if err := g.ctrl.SelectRole(id); err != nil {
		g.setNotice(err.Error())
	}
}

func (g *Game) restart() {
	g.ctrl.Restart()
	g.history.Clear()
	g.notice = ""
}

func (g *Game) copyReport() {
	sum, ok := g.ctrl.Summary()
	if !ok {
		return
	}
	if err := g.clip(sum.Report()); err != nil {
		g.setNotice(err.Error())
		return
	}
	g.setNotice("report copied to clipboard")
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeUntil = g.now().Add(g.cfg.FeedbackDuration)
}

func (g *Game) hudScale() int {
	if g.cfg.HUDScale < 1 {
		return 1
	}
	return g.cfg.HUDScale
}

func (g *Game) Draw(screen *ebiten.Image) {
	session := g.ctrl.Session()
	g.scene.Draw(screen, session.Allocations())

	scale := g.hudScale()
	bw, bh := g.width/scale, g.height/scale
	if g.hudBuf == nil || g.hudBuf.Bounds().Dx() != bw || g.hudBuf.Bounds().Dy() != bh {
		g.hudBuf = ebiten.NewImage(bw, bh)
	}
	g.hudBuf.Clear()

	g.drawBudgetPanel(g.hudBuf)
	g.drawRolePanel(g.hudBuf)
	g.drawFeedback(g.hudBuf)
	if g.showHistory {
		g.history.Draw(g.hudBuf, panelMargin, float32(bh-panelMargin))
	}
	g.drawKeys(g.hudBuf)

	switch session.State() {
	case budget.AwaitingRoleSelection:
		drawRoleModal(g.hudBuf, roleCards(bw, bh), g.notice)
	case budget.Ended:
		g.drawSummary(g.hudBuf)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(g.hudBuf, opts)
}

// Layout follows the window size so the table stays centred on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(g.width, g.height)
	}
	return g.width, g.height
}

// String is a one-line status used by the window title and logs.
func (g *Game) String() string {
	s := g.ctrl.Session()
	return fmt.Sprintf("%s round=%d/%d allocated=%s", s.State(), s.RoundsPlayed(), s.MaxRounds(), s.TotalAllocated().Dollars())
}
