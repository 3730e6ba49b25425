package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceAnchorsLeftEdgeBelowThreshold(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	x, y := Place(10, 10, 20, 10, vp, 1)
	assert.Equal(t, 10, x)
	assert.Equal(t, 10, y)
}

func TestPlaceFlipsPastThreshold(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}

	// x=71 is past 0.7*100: the right edge anchors at the cursor.
	x, _ := Place(71, 10, 20, 10, vp, 1)
	assert.Equal(t, 51, x)

	// y=71 mirrors vertically.
	_, y := Place(10, 71, 20, 10, vp, 1)
	assert.Equal(t, 61, y)

	// Exactly at the threshold does not flip.
	x, _ = Place(70, 10, 20, 10, vp, 1)
	assert.Equal(t, 70, x)
}

func TestPlaceConcreteScenario(t *testing.T) {
	// Viewport 1000x800, margin 8, cursor in the right+bottom zone, menu
	// 200x100: both axes flip, landing inside the clamp range.
	vp := Viewport{Width: 1000, Height: 800}
	x, y := Place(950, 750, 200, 100, vp, 8)
	assert.Equal(t, 750, x)
	assert.Equal(t, 650, y)

	// A cursor at the far corner does hit the clamp.
	x, y = Place(1000, 800, 200, 100, vp, 8)
	assert.Equal(t, 792, x)
	assert.Equal(t, 692, y)
}

func TestPlaceStaysInBounds(t *testing.T) {
	vp := Viewport{Width: 120, Height: 50}
	const m = 2
	w, h := 30, 12

	for x := 0; x <= vp.Width; x += 7 {
		for y := 0; y <= vp.Height; y += 5 {
			gotX, gotY := Place(x, y, w, h, vp, m)
			require.GreaterOrEqual(t, gotX, m, "cursor (%d,%d)", x, y)
			require.LessOrEqual(t, gotX, vp.Width-w-m, "cursor (%d,%d)", x, y)
			require.GreaterOrEqual(t, gotY, m, "cursor (%d,%d)", x, y)
			require.LessOrEqual(t, gotY, vp.Height-h-m, "cursor (%d,%d)", x, y)
		}
	}
}

func TestPlaceOversizedMenuPinsToMargin(t *testing.T) {
	vp := Viewport{Width: 20, Height: 10}
	x, y := Place(5, 5, 30, 20, vp, 1)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestPlaceThresholdOverride(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}

	// With a 0.5 threshold, x=60 flips even though the default would not.
	x, _ := PlaceThreshold(60, 10, 20, 10, vp, 1, 0.5)
	assert.Equal(t, 40, x)

	x, _ = Place(60, 10, 20, 10, vp, 1)
	assert.Equal(t, 60, x)
}
