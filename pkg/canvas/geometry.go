package canvas

// Step cards render at a fixed size; edge endpoints attach to card
// anchors and drag clamping keeps the full card inside the canvas.
const (
	NodeWidth  = 300.0
	NodeHeight = 120.0
)

// Size is the unscaled canvas-container rectangle. Zoom is applied as a
// transform on top, so clamp math always works in these dimensions.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EdgeCurve is the quadratic curve an edge renders as: from the source
// card anchor to the target card anchor, with the control point lifted
// above the midpoint for legibility. Purely visual; no data-model effect.
type EdgeCurve struct {
	From      Point  `json:"from"`
	Control   Point  `json:"control"`
	To        Point  `json:"to"`
	Condition string `json:"condition"`
}

const (
	controlLift = 50.0
	// edges attach slightly above the card's vertical center
	anchorOffsetY = 50.0
)

// EdgeAnchor returns the point edges attach to on a card whose top-left
// corner is at p: horizontal center, 50px below the top edge.
func EdgeAnchor(p Point) Point {
	return Point{X: p.X + NodeWidth/2, Y: p.Y + anchorOffsetY}
}

// CurveBetween computes the rendered edge curve between two card
// positions (top-left corners, graph space).
func CurveBetween(fromPos, toPos Point, condition string) EdgeCurve {
	from := EdgeAnchor(fromPos)
	to := EdgeAnchor(toPos)
	return EdgeCurve{
		From:      from,
		Control:   Point{X: (from.X + to.X) / 2, Y: from.Y - controlLift},
		To:        to,
		Condition: condition,
	}
}

// ClampToCanvas keeps a card's bounding box inside the unscaled canvas
// rect: 0 <= x <= width-NodeWidth and 0 <= y <= height-NodeHeight.
func ClampToCanvas(p Point, canvas Size) Point {
	maxX := canvas.Width - NodeWidth
	maxY := canvas.Height - NodeHeight
	if p.X < 0 {
		p.X = 0
	} else if p.X > maxX {
		p.X = maxX
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > maxY {
		p.Y = maxY
	}
	return p
}
