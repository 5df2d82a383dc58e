package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Budget-Table/internal/budget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type rect struct {
	x int
	y int
	w int
	h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

const (
	modalCols    = 3
	modalGap     = 8
	modalPad     = 6
	buttonHeight = lineH + 6
)

// roleCard is one entry in the role-selection modal, in HUD-buffer pixels.
type roleCard struct {
	role   budget.Role
	card   rect
	button rect
}

// roleCards lays out the six roles in a grid centred in a w×h buffer.
func roleCards(w, h int) []roleCard {
	roles := budget.Roles()
	rows := (len(roles) + modalCols - 1) / modalCols
	cardW := (w - modalGap*(modalCols+1)) / modalCols
	if cardW > 240 {
		cardW = 240
	}
	cardH := lineH*9 + buttonHeight + modalPad*3
	gridW := cardW*modalCols + modalGap*(modalCols-1)
	gridH := cardH*rows + modalGap*(rows-1)
	ox := (w - gridW) / 2
	oy := (h-gridH)/2 + lineH

	cards := make([]roleCard, len(roles))
	for i, r := range roles {
		col, row := i%modalCols, i/modalCols
		c := rect{x: ox + col*(cardW+modalGap), y: oy + row*(cardH+modalGap), w: cardW, h: cardH}
		cards[i] = roleCard{
			role:   r,
			card:   c,
			button: rect{x: c.x + modalPad, y: c.y + c.h - buttonHeight - modalPad, w: c.w - 2*modalPad, h: buttonHeight},
		}
	}
	return cards
}

// roleAt returns the role whose "Select Role" button contains (x, y).
func roleAt(cards []roleCard, x, y int) (int, bool) {
	for _, c := range cards {
		if c.button.contains(x, y) {
			return c.role.ID, true
		}
	}
	return 0, false
}

// drawRoleModal renders the role picker into the HUD buffer.
func drawRoleModal(dst *ebiten.Image, cards []roleCard, notice string) {
	b := dst.Bounds()
	vector.FillRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: 170}, false)
	if len(cards) == 0 {
		return
	}
	top := float64(cards[0].card.y - lineH*2)
	drawTextCentered(dst, "Choose your seat at the table", float64(b.Dx())/2, top, color.RGBA{R: 120, G: 240, B: 255, A: 255})
	if notice != "" {
		drawTextCentered(dst, notice, float64(b.Dx())/2, top+lineH, color.RGBA{R: 255, G: 120, B: 100, A: 255})
	}

	for _, c := range cards {
		x, y := float32(c.card.x), float32(c.card.y)
		vector.FillRect(dst, x, y, float32(c.card.w), float32(c.card.h), color.RGBA{R: 8, G: 22, B: 28, A: 235}, false)
		vector.StrokeRect(dst, x, y, float32(c.card.w), float32(c.card.h), 1.0, color.RGBA{R: 0, G: 200, B: 220, A: 200}, false)

		chars := (c.card.w - 2*modalPad) / charW
		lines := []string{fmt.Sprintf("%d. %s", c.role.ID+1, c.role.Title)}
		lines = append(lines, wrapText(c.role.Description, chars)...)
		lines = append(lines, wrapText("Dilemma: "+c.role.Dilemma, chars)...)
		lines = append(lines, fmt.Sprintf("Goal: Secure $%sM", c.role.Goal.Millions()))
		for i, l := range lines {
			clr := color.Color(color.RGBA{R: 200, G: 220, B: 225, A: 255})
			if i == 0 {
				clr = color.RGBA{R: 120, G: 240, B: 255, A: 255}
			}
			drawText(dst, l, float64(c.card.x+modalPad), float64(c.card.y+modalPad+i*lineH), clr)
		}

		bx, by := float32(c.button.x), float32(c.button.y)
		vector.FillRect(dst, bx, by, float32(c.button.w), float32(c.button.h), color.RGBA{R: 0, G: 120, B: 140, A: 255}, false)
		drawTextCentered(dst, "Select Role", float64(c.button.x+c.button.w/2), float64(c.button.y+3), color.White)
	}
}
