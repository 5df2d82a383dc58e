package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/Garsondee/Budget-Table/internal/budget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudPad      = 5
	panelMargin = 4
	roleWrap    = 38 // characters per line in the role panel
	feedbackMax = 46
)

var (
	panelFill   = color.RGBA{R: 6, G: 12, B: 16, A: 210}
	panelBorder = color.RGBA{R: 40, G: 110, B: 130, A: 180}
	titleColor  = color.RGBA{R: 120, G: 220, B: 240, A: 255}
	dimText     = color.RGBA{R: 170, G: 190, B: 195, A: 255}
)

// drawPanel renders a bordered box sized to lines and returns its height.
func drawPanel(dst *ebiten.Image, x, y float32, lines []string, colors []color.Color) float32 {
	w := float32(longest(lines)*charW + hudPad*2)
	h := float32(len(lines)*lineH + hudPad*2)
	vector.FillRect(dst, x, y, w, h, panelFill, false)
	vector.StrokeRect(dst, x, y, w, h, 1.0, panelBorder, false)
	vector.StrokeLine(dst, x+1, y+1, x+w-1, y+1, 1.0, color.RGBA{R: 80, G: 160, B: 180, A: 80}, false)
	for i, l := range lines {
		clr := color.Color(color.White)
		if i < len(colors) && colors[i] != nil {
			clr = colors[i]
		}
		drawText(dst, l, float64(x+hudPad), float64(y+hudPad+float32(i*lineH)), clr)
	}
	return h
}

// budgetLines is the top-left budget readout.
func budgetLines(s *budget.Session) []string {
	lines := []string{
		"BUDGET " + s.Budget().Dollars(),
		"Remaining: " + s.Remaining().Dollars(),
		"Allocated: " + s.TotalAllocated().Dollars(),
	}
	for _, ca := range s.Allocations() {
		lines = append(lines, fmt.Sprintf("  %-14s %s", ca.Category, ca.Amount.Dollars()))
	}
	return lines
}

// roleLines is the top-right role readout; empty until a role is chosen.
func roleLines(s *budget.Session) []string {
	r, ok := s.Role()
	if !ok {
		return nil
	}
	lines := []string{strings.ToUpper(r.Title)}
	lines = append(lines, wrapText(r.Dilemma, roleWrap)...)
	lines = append(lines, wrapText(r.Hint, roleWrap)...)
	lines = append(lines,
		fmt.Sprintf("Rounds Left: %d", s.RoundsRemaining()),
		fmt.Sprintf("Goal Progress: $%sM / $%sM", s.TotalInPriority().Millions(), r.Goal.Millions()),
	)
	return lines
}

func (g *Game) drawBudgetPanel(dst *ebiten.Image) {
	lines := budgetLines(g.ctrl.Session())
	colors := make([]color.Color, len(lines))
	colors[0] = titleColor
	for i := 3; i < len(lines); i++ {
		colors[i] = dimText
	}
	drawPanel(dst, panelMargin, panelMargin, lines, colors)
}

func (g *Game) drawRolePanel(dst *ebiten.Image) {
	s := g.ctrl.Session()
	lines := roleLines(s)
	if len(lines) == 0 {
		return
	}
	colors := make([]color.Color, len(lines))
	colors[0] = titleColor
	w := float32(longest(lines)*charW + hudPad*2)
	x := float32(dst.Bounds().Dx()) - w - panelMargin
	h := drawPanel(dst, x, panelMargin, lines, colors)

	// Goal progress bar under the panel.
	by := panelMargin + h + 2
	vector.FillRect(dst, x, by, w, 6, color.RGBA{R: 20, G: 30, B: 34, A: 220}, false)
	frac := float32(s.GoalProgress())
	if frac > 1 {
		frac = 1
	}
	barCol := color.RGBA{R: 0, G: 190, B: 220, A: 255}
	if frac >= 1 {
		barCol = color.RGBA{R: 60, G: 230, B: 110, A: 255}
	}
	vector.FillRect(dst, x, by, w*frac, 6, barCol, false)
}

// drawFeedback shows the transient allocation message centred near the bottom.
func (g *Game) drawFeedback(dst *ebiten.Image) {
	fb := g.ctrl.Feedback()
	if !fb.Visible() || fb.Sticky() {
		return
	}
	lines := wrapText(fb.Text(), feedbackMax)
	b := dst.Bounds()
	w := float32(longest(lines)*charW + hudPad*2)
	h := float32(len(lines)*lineH + hudPad*2)
	x := (float32(b.Dx()) - w) / 2
	y := float32(b.Dy()) - h - 24
	colors := []color.Color{titleColor}
	drawPanel(dst, x, y, lines, colors)
}

// summaryLayout places the end-of-game box and its two buttons in a w×h buffer.
func summaryLayout(w, h int, lines []string) (box, again, copyBtn rect) {
	bw := longest(lines)*charW + hudPad*2
	if minW := 2*120 + hudPad*3; bw < minW {
		bw = minW
	}
	bh := len(lines)*lineH + hudPad*3 + buttonHeight
	box = rect{x: (w - bw) / 2, y: (h - bh) / 2, w: bw, h: bh}
	btnW := (bw - hudPad*3) / 2
	by := box.y + bh - hudPad - buttonHeight
	again = rect{x: box.x + hudPad, y: by, w: btnW, h: buttonHeight}
	copyBtn = rect{x: again.x + btnW + hudPad, y: by, w: btnW, h: buttonHeight}
	return box, again, copyBtn
}

func (g *Game) summaryReportLines() []string {
	sum, ok := g.ctrl.Summary()
	if !ok {
		return nil
	}
	return strings.Split(strings.TrimRight(sum.Report(), "\n"), "\n")
}

func (g *Game) drawSummary(dst *ebiten.Image) {
	lines := g.summaryReportLines()
	if lines == nil {
		return
	}
	b := dst.Bounds()
	vector.FillRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: 120}, false)
	box, again, copyBtn := summaryLayout(b.Dx(), b.Dy(), lines)
	colors := make([]color.Color, len(lines))
	colors[0] = titleColor
	if sum, _ := g.ctrl.Summary(); sum.GoalAchieved {
		colors[1] = color.RGBA{R: 80, G: 230, B: 120, A: 255}
	} else {
		colors[1] = color.RGBA{R: 240, G: 120, B: 100, A: 255}
	}
	vector.FillRect(dst, float32(box.x), float32(box.y), float32(box.w), float32(box.h), panelFill, false)
	vector.StrokeRect(dst, float32(box.x), float32(box.y), float32(box.w), float32(box.h), 1.0, panelBorder, false)
	for i, l := range lines {
		drawText(dst, l, float64(box.x+hudPad), float64(box.y+hudPad+i*lineH), colors[i])
	}
	for _, btn := range []struct {
		r     rect
		label string
	}{{again, "Play Again [R]"}, {copyBtn, "Copy Report [C]"}} {
		vector.FillRect(dst, float32(btn.r.x), float32(btn.r.y), float32(btn.r.w), float32(btn.r.h), color.RGBA{R: 0, G: 120, B: 140, A: 255}, false)
		drawTextCentered(dst, btn.label, float64(btn.r.x+btn.r.w/2), float64(btn.r.y+3), color.White)
	}
}

// drawKeys renders the shortcut legend in the bottom-right corner.
func (g *Game) drawKeys(dst *ebiten.Image) {
	lines := []string{"click display = allocate $1M", "[H] history  [R] restart"}
	if g.notice != "" {
		lines = append([]string{g.notice}, lines...)
	}
	b := dst.Bounds()
	w := float32(longest(lines)*charW + hudPad*2)
	h := float32(len(lines)*lineH + hudPad*2)
	drawPanel(dst, float32(b.Dx())-w-panelMargin, float32(b.Dy())-h-panelMargin, lines, []color.Color{dimText, dimText, dimText})
}
