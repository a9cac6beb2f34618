// Package canvas holds the pure geometry of the builder canvas: the
// zoom/pan viewport transform and the curve math for rendered edges.
// Nothing here touches I/O or the funnel data model; viewport state is
// presentation-only and never persisted.
package canvas

// Point is a 2D coordinate, in screen or graph space depending on context.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zoom bounds and factors. Button zoom steps by 1.2; wheel zoom nudges by
// 0.9/1.1 per tick. Zoom pivots at the origin; pan is never adjusted by
// a zoom change.
const (
	MinZoom = 0.3
	MaxZoom = 3.0

	zoomStep     = 1.2
	wheelZoomIn  = 1.1
	wheelZoomOut = 0.9
	DefaultZoom  = 1.0
)

// Viewport owns the zoom/pan state of the canvas and the screen<->graph
// coordinate transforms derived from it.
type Viewport struct {
	zoom      float64
	pan       Point
	panning   bool
	panAnchor Point
}

// NewViewport returns a viewport at zoom 1 with no pan offset.
func NewViewport() *Viewport {
	return &Viewport{zoom: DefaultZoom}
}

// Zoom returns the current zoom factor, always within [MinZoom, MaxZoom].
func (v *Viewport) Zoom() float64 { return v.zoom }

// Pan returns the current screen-space pan offset.
func (v *Viewport) Pan() Point { return v.pan }

// Panning reports whether a pan gesture is engaged.
func (v *Viewport) Panning() bool { return v.panning }

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// ZoomIn multiplies zoom by 1.2, clamped.
func (v *Viewport) ZoomIn() {
	v.zoom = clampZoom(v.zoom * zoomStep)
}

// ZoomOut divides zoom by 1.2, clamped.
func (v *Viewport) ZoomOut() {
	v.zoom = clampZoom(v.zoom / zoomStep)
}

// ZoomAtWheel applies one wheel tick: positive delta (scroll down) zooms
// out by 0.9, negative zooms in by 1.1. Pan is left untouched.
func (v *Viewport) ZoomAtWheel(delta float64) {
	factor := wheelZoomIn
	if delta > 0 {
		factor = wheelZoomOut
	}
	v.zoom = clampZoom(v.zoom * factor)
}

// Reset restores zoom 1 and zero pan.
func (v *Viewport) Reset() {
	v.zoom = DefaultZoom
	v.pan = Point{}
	v.panning = false
}

// BeginPan engages a pan gesture anchored at the given pointer position.
// Callers only invoke this when the pointer-down target was the empty
// canvas background, never a node.
func (v *Viewport) BeginPan(pointer Point) {
	v.panning = true
	v.panAnchor = Point{X: pointer.X - v.pan.X, Y: pointer.Y - v.pan.Y}
}

// UpdatePan moves the pan offset while a gesture is engaged; pan follows
// the pointer relative to the anchor. No-op when not panning.
func (v *Viewport) UpdatePan(pointer Point) {
	if !v.panning {
		return
	}
	v.pan = Point{X: pointer.X - v.panAnchor.X, Y: pointer.Y - v.panAnchor.Y}
}

// EndPan disengages the pan gesture.
func (v *Viewport) EndPan() {
	v.panning = false
}

// ScreenToGraph converts a screen-space position into graph space:
// (screen - pan) / zoom. Used for the live connection preview endpoint.
func (v *Viewport) ScreenToGraph(screen Point) Point {
	return Point{
		X: (screen.X - v.pan.X) / v.zoom,
		Y: (screen.Y - v.pan.Y) / v.zoom,
	}
}
