package game

import "math"

// World units: the table sits at the origin, +X to the right, +Y towards the
// bottom of the screen before camera rotation.
const (
	tableRadius      = 3.0
	displayRing      = 2.0 // distance of category displays from the table centre
	displayRadius    = 0.3
	chairRing        = 4.0
	chairHalf        = 0.25
	hologramRadius   = 1.0
	hologramWidth    = 0.1
	roomHalf         = 5.0
	particleMaxR     = 1.5
	pickRadiusFactor = 1.4 // click tolerance around a display
	seatCount        = 6
)

type vec2 struct {
	x, y float64
}

func (v vec2) add(o vec2) vec2 { return vec2{v.x + o.x, v.y + o.y} }

func (v vec2) scale(s float64) vec2 { return vec2{v.x * s, v.y * s} }

func (v vec2) dist2(o vec2) float64 { return sqr(v.x-o.x) + sqr(v.y-o.y) }

func (v vec2) rotate(a float64) vec2 {
	s, c := math.Sincos(a)
	return vec2{v.x*c - v.y*s, v.x*s + v.y*c}
}

func polar(angle, r float64) vec2 {
	s, c := math.Sincos(angle)
	return vec2{c * r, s * r}
}

func sqr(x float64) float64 { return x * x }

// seatAngle is the bearing of seat i (and of display i) from the table centre.
func seatAngle(i int) float64 {
	return float64(i) / seatCount * 2 * math.Pi
}

// tableLayout is the static arrangement of the room. It is a pure function
// of nothing but the constants above, built once per scene.
type tableLayout struct {
	displays [seatCount]vec2
	chairs   [seatCount]vec2
	walls    [4][2]vec2
}

func buildTableLayout() tableLayout {
	var l tableLayout
	for i := 0; i < seatCount; i++ {
		a := seatAngle(i)
		l.displays[i] = polar(a, displayRing)
		l.chairs[i] = polar(a, chairRing)
	}
	corners := [4]vec2{
		{-roomHalf, -roomHalf}, {roomHalf, -roomHalf},
		{roomHalf, roomHalf}, {-roomHalf, roomHalf},
	}
	for i := range corners {
		l.walls[i] = [2]vec2{corners[i], corners[(i+1)%4]}
	}
	return l
}
