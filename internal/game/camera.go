package game

import "math"

// cameraPose is where the camera looks from: a rotation about the table
// centre and a zoom factor.
type cameraPose struct {
	angle float64
	zoom  float64
}

const (
	overviewZoom = 0.75
	seatZoom     = 1.15
)

var overviewPose = cameraPose{angle: 0, zoom: overviewZoom}

// seatPose rotates the view so the seat sits at the bottom of the screen.
func seatPose(seat int) cameraPose {
	return cameraPose{angle: wrapAngle(math.Pi/2 - seatAngle(seat)), zoom: seatZoom}
}

// camera eases between poses over a fixed number of frames. A transition
// always runs to completion; starting a new one begins from the current pose.
type camera struct {
	pose     cameraPose
	from     cameraPose
	to       cameraPose
	progress float64
	step     float64
	moving   bool
}

func newCamera(frames int, start, target cameraPose) camera {
	if frames <= 0 {
		frames = 1
	}
	c := camera{pose: start, step: 1 / float64(frames)}
	c.moveTo(target)
	return c
}

func (c *camera) moveTo(target cameraPose) {
	c.from = c.pose
	c.to = target
	c.progress = 0
	c.moving = true
}

// advance moves one frame along the transition.
func (c *camera) advance() {
	if !c.moving {
		return
	}
	c.progress += c.step
	if c.progress >= 1 {
		c.progress = 1
		c.moving = false
	}
	e := easeOutCubic(c.progress)
	c.pose.angle = wrapAngle(c.from.angle + wrapAngle(c.to.angle-c.from.angle)*e)
	c.pose.zoom = c.from.zoom + (c.to.zoom-c.from.zoom)*e
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// wrapAngle maps a to (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// viewport maps world units to screen pixels for one camera pose.
type viewport struct {
	cx, cy float64 // screen centre
	ppu    float64 // pixels per world unit at zoom 1
}

func newViewport(w, h int) viewport {
	m := math.Min(float64(w), float64(h))
	return viewport{cx: float64(w) / 2, cy: float64(h) / 2, ppu: m / (2 * (roomHalf + 0.4))}
}

func (v viewport) toScreen(p cameraPose, w vec2) (float32, float32) {
	r := w.rotate(p.angle).scale(v.ppu * p.zoom)
	return float32(v.cx + r.x), float32(v.cy + r.y)
}

// toWorld is the inverse of toScreen.
func (v viewport) toWorld(p cameraPose, sx, sy float64) vec2 {
	r := vec2{sx - v.cx, sy - v.cy}.scale(1 / (v.ppu * p.zoom))
	return r.rotate(-p.angle)
}

// pixels converts a world length to screen pixels.
func (v viewport) pixels(p cameraPose, units float64) float32 {
	return float32(units * v.ppu * p.zoom)
}
