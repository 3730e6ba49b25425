package menu

// Point is a cell coordinate on the terminal grid. A nil *Point on a context
// means the menu was invoked programmatically rather than by a pointer.
type Point struct {
	X int
	Y int
}

// Viewport is the size of the terminal grid menus are placed on.
type Viewport struct {
	Width  int
	Height int
}

// FlipThreshold is the fraction of the viewport past which the menu anchors
// its far edge at the cursor instead of its near edge. Flipping keys off the
// cursor position, not off whether the menu would actually overflow.
const FlipThreshold = 0.7

// Place computes the top-left cell for a menu of size (w, h) opened at
// cursor (x, y) on vp, keeping margin cells clear of every viewport edge.
//
// Horizontal: a cursor in the right 30% of the viewport anchors the menu's
// right edge at x; otherwise its left edge. Vertical mirrors that with the
// bottom 30%. Both axes are then clamped to [margin, size-extent-margin].
func Place(x, y, w, h int, vp Viewport, margin int) (int, int) {
	return PlaceThreshold(x, y, w, h, vp, margin, FlipThreshold)
}

// PlaceThreshold is Place with a caller-supplied flip threshold, for
// configurations that override the default.
func PlaceThreshold(x, y, w, h int, vp Viewport, margin int, threshold float64) (int, int) {
	menuX := x
	if float64(x) > threshold*float64(vp.Width) {
		menuX = x - w
	}
	menuY := y
	if float64(y) > threshold*float64(vp.Height) {
		menuY = y - h
	}

	menuX = clamp(menuX, margin, vp.Width-w-margin)
	menuY = clamp(menuY, margin, vp.Height-h-margin)
	return menuX, menuY
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		// Menu larger than the viewport minus margins; pin to the margin.
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
