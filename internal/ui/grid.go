package ui

import (
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/depeter/stretchyheader/internal/stretchy"
)

// GridScreen is a collection of numbered square cells, GridColumns per row,
// under the header.
type GridScreen struct {
	headerScreen
	cells int
}

func NewGridScreen(tr *stretchy.Transitioner, opts HeaderOptions, header *StretchyHeaderView, nav *NavBar, log zerolog.Logger) *GridScreen {
	gs := &GridScreen{cells: GridCellCount}
	gs.init("Grid", tr, opts, header, nav, log, gs)
	gs.scroll.SetContentInsetBottom(GridBottomInset)
	return gs
}

func (gs *GridScreen) rowCount() int {
	return (gs.cells + GridColumns - 1) / GridColumns
}

func (gs *GridScreen) ContentHeight(width float64) float64 {
	return float64(gs.rowCount()) * width / GridColumns
}

// CellRect returns the frame of cell i in content coordinates.
func (gs *GridScreen) CellRect(i int, width float64) ButtonRect {
	side := width / GridColumns
	row, col := i/GridColumns, i%GridColumns
	return ButtonRect{
		X: float64(col)*side + GridCellInset,
		Y: float64(row)*side + GridCellInset,
		W: side - 2*GridCellInset,
		H: side - 2*GridCellInset,
	}
}

func (gs *GridScreen) DrawContent(dst *ebiten.Image, width, offsetY, viewport float64) {
	side := width / GridColumns
	if side <= 0 {
		return
	}
	// Section background
	top := math.Max(0, -offsetY)
	bottom := math.Min(viewport, gs.ContentHeight(width)-offsetY)
	if bottom > top {
		vector.DrawFilledRect(dst, 0, float32(top), float32(width), float32(bottom-top), ColorBackground, false)
	}

	firstRow := max(0, int(math.Floor(offsetY/side)))
	lastRow := min(gs.rowCount(), int(math.Ceil((offsetY+viewport)/side)))
	for row := firstRow; row < lastRow; row++ {
		for col := 0; col < GridColumns; col++ {
			i := row*GridColumns + col
			if i >= gs.cells {
				break
			}
			r := gs.CellRect(i, width)
			x, y := float32(r.X), float32(r.Y-offsetY)
			vector.DrawFilledRect(dst, x, y, float32(r.W), float32(r.H), ColorOrange, false)
			vector.StrokeRect(dst, x, y, float32(r.W), float32(r.H), 1, ColorBorder, false)
			DrawTextCentered(dst, strconv.Itoa(i), r.X+r.W/2, r.Y-offsetY+r.H/2, FontSizeTitle, ColorText)
		}
	}
}
