package game

import (
	"image/color"
	"math"

	"github.com/Garsondee/Budget-Table/internal/budget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// sliceColors tints each category's share of the hologram ring.
var sliceColors = [seatCount]color.RGBA{
	colornames.Cyan,
	colornames.Deepskyblue,
	colornames.Orange,
	colornames.Gold,
	colornames.Limegreen,
	colornames.Springgreen,
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

// Draw paints the room, table, chairs, displays and hologram. allocations
// drives the hologram slices and is only read.
func (s *Scene) Draw(screen *ebiten.Image, allocations []budget.CategoryAmount) {
	p := s.cam.pose
	v := s.view

	screen.Fill(color.RGBA{R: 5, G: 8, B: 14, A: 255})
	s.drawWalls(screen)

	// Table with a soft emissive rim.
	tx, ty := v.toScreen(p, vec2{})
	vector.FillCircle(screen, tx, ty, v.pixels(p, tableRadius+0.08), color.RGBA{R: 20, G: 60, B: 70, A: 120}, true)
	vector.FillCircle(screen, tx, ty, v.pixels(p, tableRadius), color.RGBA{R: 28, G: 37, B: 38, A: 255}, true)
	vector.StrokeCircle(screen, tx, ty, v.pixels(p, tableRadius*0.96), 1.0, color.RGBA{R: 60, G: 90, B: 92, A: 160}, true)

	s.drawChairs(screen)
	s.drawHologram(screen, allocations)
	s.drawDisplays(screen)
}

func (s *Scene) drawWalls(screen *ebiten.Image) {
	p, v := s.cam.pose, s.view
	wallCol := color.RGBA{R: 0, G: 160, B: 180, A: 110}
	gridCol := color.RGBA{R: 0, G: 90, B: 110, A: 50}
	for _, w := range s.layout.walls {
		x0, y0 := v.toScreen(p, w[0])
		x1, y1 := v.toScreen(p, w[1])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2.0, wallCol, true)
	}
	// Data-screen grid on the floor.
	for i := -4; i <= 4; i++ {
		f := float64(i)
		a0, b0 := v.toScreen(p, vec2{f, -roomHalf})
		a1, b1 := v.toScreen(p, vec2{f, roomHalf})
		vector.StrokeLine(screen, a0, b0, a1, b1, 1.0, gridCol, false)
		c0, d0 := v.toScreen(p, vec2{-roomHalf, f})
		c1, d1 := v.toScreen(p, vec2{roomHalf, f})
		vector.StrokeLine(screen, c0, d0, c1, d1, 1.0, gridCol, false)
	}
}

func (s *Scene) drawChairs(screen *ebiten.Image) {
	p, v := s.cam.pose, s.view
	half := v.pixels(p, chairHalf)
	for i, c := range s.layout.chairs {
		x, y := v.toScreen(p, c)
		if i == s.selectedSeat {
			vector.FillCircle(screen, x, y, half*2.2, color.RGBA{R: 0, G: 255, B: 0, A: 60}, true)
		}
		vector.FillRect(screen, x-half, y-half, half*2, half*2, color.RGBA{R: 47, G: 79, B: 79, A: 255}, false)
		// Backrest on the side away from the table.
		back := c.add(polar(seatAngle(i), chairHalf+0.05))
		bx, by := v.toScreen(p, back)
		vector.FillCircle(screen, bx, by, half*0.6, color.RGBA{R: 35, G: 60, B: 60, A: 255}, true)
	}
}

func (s *Scene) drawDisplays(screen *ebiten.Image) {
	p, v := s.cam.pose, s.view
	opacity := s.pulseOpacity()
	r := v.pixels(p, displayRadius)
	for _, d := range s.displays {
		x, y := v.toScreen(p, d.pos)
		// Glow halo grows with intensity; 1.0 after a fresh allocation.
		vector.FillCircle(screen, x, y, r*float32(1+d.glow*0.6), withAlpha(colornames.Cyan, 0.25*d.glow), true)
		vector.FillCircle(screen, x, y, r, withAlpha(colornames.Cyan, opacity), true)
		vector.StrokeCircle(screen, x, y, r, 1.5, color.RGBA{R: 200, G: 255, B: 255, A: 220}, true)
		drawTextCentered(screen, d.category.String(), float64(x), float64(y+r+4), color.RGBA{R: 180, G: 250, B: 255, A: 230})
	}
}

// drawHologram draws the allocation ring at the table centre: one arc per
// category sized by its share of the allocated total, spun by holoRotation
// and scaled by holoScale.
func (s *Scene) drawHologram(screen *ebiten.Image, allocations []budget.CategoryAmount) {
	p, v := s.cam.pose, s.view
	radius := hologramRadius * s.holoScale
	width := v.pixels(p, hologramWidth*s.holoScale*2)

	var total budget.Amount
	for _, a := range allocations {
		total += a.Amount
	}

	const segs = 90
	start := s.holoRotation
	if total == 0 {
		s.drawArc(screen, start, start+2*math.Pi, radius, width, color.RGBA{R: 0, G: 255, B: 0, A: 180}, segs)
	} else {
		for i, a := range allocations {
			if a.Amount == 0 {
				continue
			}
			sweep := 2 * math.Pi * float64(a.Amount) / float64(total)
			n := int(math.Ceil(segs * sweep / (2 * math.Pi)))
			s.drawArc(screen, start, start+sweep, radius, width, withAlpha(sliceColors[i%seatCount], 0.8), n)
			start += sweep
		}
	}

	for _, pt := range s.particles {
		w := polar(pt.angle+s.particleRotation, pt.radius*s.holoScale)
		x, y := v.toScreen(p, w)
		size := float32(1.5 + pt.lift*2)
		vector.FillCircle(screen, x, y, size, color.RGBA{R: 0, G: 200, B: 0, A: 150}, false)
	}
}

func (s *Scene) drawArc(screen *ebiten.Image, from, to, radius float64, width float32, clr color.Color, segs int) {
	if segs < 1 {
		segs = 1
	}
	p, v := s.cam.pose, s.view
	step := (to - from) / float64(segs)
	px, py := v.toScreen(p, polar(from, radius))
	for i := 1; i <= segs; i++ {
		x, y := v.toScreen(p, polar(from+step*float64(i), radius))
		vector.StrokeLine(screen, px, py, x, y, width, clr, true)
		px, py = x, y
	}
}
