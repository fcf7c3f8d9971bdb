package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RefreshIconSize is the side of the square the refresh icon occupies.
const RefreshIconSize = 24

// drawRefreshIcon draws a circular arrow at (cx, cy) with given radius.
func drawRefreshIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Open ring, gap at the top right
	const (
		start = -math.Pi / 2
		sweep = 1.6 * math.Pi
		steps = 20
	)
	px, py := arcPoint(cx, cy, r, start)
	for i := 1; i <= steps; i++ {
		x, y := arcPoint(cx, cy, r, start+sweep*float64(i)/steps)
		vector.StrokeLine(dst, px, py, x, y, 2, clr, true)
		px, py = x, y
	}
	// Arrow head at the start of the ring, pointing along the sweep
	hx, hy := arcPoint(cx, cy, r, start)
	vector.StrokeLine(dst, hx, hy, hx-r*0.45, hy-r*0.4, 2, clr, true)
	vector.StrokeLine(dst, hx, hy, hx-r*0.45, hy+r*0.4, 2, clr, true)
}

func arcPoint(cx, cy, r float32, angle float64) (float32, float32) {
	return cx + r*float32(math.Cos(angle)), cy + r*float32(math.Sin(angle))
}
