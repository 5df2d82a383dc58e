package game

import (
	"math"
	"math/rand"

	"github.com/Garsondee/Budget-Table/internal/budget"
)

const (
	restingGlow        = 0.5
	hologramGrowth     = 0.5 // hologram scale at a fully allocated budget is 1+growth
	hologramSpin       = 0.01
	particleSpin       = 0.005
	pulseBaseOpacity   = 0.6
	pulseAmplitude     = 0.2
	pulseRatePerMillis = 0.002
	frameMillis        = 1000.0 / 60
)

// displayState is the presentation of one category display.
type displayState struct {
	category budget.Category
	pos      vec2
	glow     float64
}

type particle struct {
	angle  float64
	radius float64
	lift   float64 // -0.25..0.25, drawn as a small size jitter
}

// Scene is the top-down table view. It implements budget.Scene and owns
// nothing but presentation state.
type Scene struct {
	view        viewport
	layout      tableLayout
	cam         camera
	tweenFrames int

	displays   []displayState
	byCategory map[budget.Category]int // built once; never changes

	selectedSeat     int // -1 until a role is chosen
	holoScale        float64
	holoRotation     float64
	particleRotation float64
	particles        []particle
	frame            int
}

var _ budget.Scene = (*Scene)(nil)

// NewScene builds the table for a window of w×h pixels. cameraFrames is the
// length of a seat transition.
func NewScene(w, h, cameraFrames, particleCount int, rng *rand.Rand) *Scene {
	s := &Scene{
		view:        newViewport(w, h),
		layout:      buildTableLayout(),
		tweenFrames: cameraFrames,
		byCategory:  make(map[budget.Category]int, seatCount),
	}
	for i, c := range budget.Categories() {
		s.displays = append(s.displays, displayState{category: c, pos: s.layout.displays[i]})
		s.byCategory[c] = i
	}
	for i := 0; i < particleCount; i++ {
		s.particles = append(s.particles, particle{
			angle:  rng.Float64() * 2 * math.Pi,
			radius: rng.Float64() * particleMaxR,
			lift:   (rng.Float64() - 0.5) * 0.5,
		})
	}
	s.Reset()
	return s
}

// Resize keeps the table centred after the window changes size.
func (s *Scene) Resize(w, h int) {
	s.view = newViewport(w, h)
}

func (s *Scene) PickAt(x, y int) (budget.Category, bool) {
	w := s.view.toWorld(s.cam.pose, float64(x), float64(y))
	best := sqr(displayRadius * pickRadiusFactor)
	hit := -1
	for i, d := range s.displays {
		if d2 := d.pos.dist2(w); d2 <= best {
			best = d2
			hit = i
		}
	}
	if hit < 0 {
		return "", false
	}
	return s.displays[hit].category, true
}

func (s *Scene) HighlightAllocated(c budget.Category, intensityDelta float64) {
	for i := range s.displays {
		s.displays[i].glow = restingGlow
	}
	if i, ok := s.byCategory[c]; ok {
		s.displays[i].glow = restingGlow + intensityDelta
	}
}

func (s *Scene) ScaleIndicator(fraction float64) {
	s.holoScale = 1 + math.Max(0, math.Min(1, fraction))*hologramGrowth
}

func (s *Scene) MoveCameraToSeat(seat int) {
	s.selectedSeat = seat
	s.cam.moveTo(seatPose(seat))
}

func (s *Scene) RenderFrame() {
	s.frame++
	s.cam.advance()
	s.holoRotation = wrapAngle(s.holoRotation + hologramSpin)
	s.particleRotation = wrapAngle(s.particleRotation + particleSpin)
}

func (s *Scene) Reset() {
	for i := range s.displays {
		s.displays[i].glow = restingGlow
	}
	s.selectedSeat = -1
	s.holoScale = 1
	s.cam = newCamera(s.tweenFrames, cameraPose{angle: 0, zoom: overviewZoom * 0.6}, overviewPose)
}

// pulseOpacity is the shared breathing opacity of the displays.
func (s *Scene) pulseOpacity() float64 {
	return pulseBaseOpacity + math.Sin(float64(s.frame)*frameMillis*pulseRatePerMillis)*pulseAmplitude
}

// CameraSettled reports whether the current seat transition has finished.
func (s *Scene) CameraSettled() bool {
	return !s.cam.moving
}
