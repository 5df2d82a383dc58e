package budget

// Scene is the rendering collaborator driven by the Controller. It owns all
// presentation state; the session never reads it back.
type Scene interface {
	// PickAt resolves the category display under a screen position.
	PickAt(x, y int) (Category, bool)
	// HighlightAllocated resets every display to its resting glow and raises
	// c by intensityDelta.
	HighlightAllocated(c Category, intensityDelta float64)
	// ScaleIndicator sizes the allocation hologram for the allocated share
	// of the budget, 0..1.
	ScaleIndicator(fraction float64)
	// MoveCameraToSeat starts the camera transition to a seat.
	MoveCameraToSeat(seat int)
	// RenderFrame advances presentation-only animation by one frame.
	RenderFrame()
	// Reset returns the scene to its initial look.
	Reset()
}
