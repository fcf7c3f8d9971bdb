package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for _, k := range repeatKeys {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var (
	keyHoldFrames = make(map[ebiten.Key]int)
	repeatKeys    = []ebiten.Key{
		ebiten.KeyArrowUp, ebiten.KeyArrowDown,
		ebiten.KeyPageUp, ebiten.KeyPageDown, ebiten.KeySpace,
	}
)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// ScrollKeyDelta returns the keyboard scroll request for this frame in units
// of rows (arrows) or pages (page keys, space), and whether a jump to an edge
// was requested: -1 for Home, +1 for End.
func ScrollKeyDelta() (rows, pages float64, edge int) {
	switch {
	case inputRepeating(ebiten.KeyArrowUp):
		rows = -1
	case inputRepeating(ebiten.KeyArrowDown):
		rows = 1
	}
	switch {
	case inputRepeating(ebiten.KeyPageUp):
		pages = -1
	case inputRepeating(ebiten.KeyPageDown), inputRepeating(ebiten.KeySpace):
		pages = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		edge = -1
	} else if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		edge = 1
	}
	return
}

// MouseJustClicked returns the cursor position and whether the left mouse button was just clicked.
func MouseJustClicked() (x, y int, clicked bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		clicked = true
	}
	return
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}
