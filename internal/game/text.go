package game

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD text is drawn with the 7x13 bitmap face at 1x into hudBuf, then blitted
// at the configured HUD scale.
const (
	charW = 7
	lineH = 14
)

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// drawText draws s with its top-left corner at (x, y). Newlines start new lines.
func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineH
	text.Draw(dst, s, hudFace, op)
}

// drawTextCentered centres s horizontally on cx.
func drawTextCentered(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineH
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, hudFace, op)
}

// wrapText breaks s into lines of at most width characters, splitting on
// spaces. Words longer than width get a line of their own.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

// longest returns the length of the longest line.
func longest(lines []string) int {
	n := 0
	for _, l := range lines {
		if len(l) > n {
			n = len(l)
		}
	}
	return n
}
