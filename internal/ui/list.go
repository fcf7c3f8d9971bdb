package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/depeter/stretchyheader/internal/stretchy"
)

const listRowText = "This is your content"

// ListScreen is a plain table of identical rows under the header.
type ListScreen struct {
	headerScreen
	rows int
}

func NewListScreen(tr *stretchy.Transitioner, opts HeaderOptions, header *StretchyHeaderView, nav *NavBar, log zerolog.Logger) *ListScreen {
	ls := &ListScreen{rows: ListRowCount}
	ls.init("List", tr, opts, header, nav, log, ls)
	return ls
}

func (ls *ListScreen) ContentHeight(float64) float64 {
	return float64(ls.rows) * RowHeight
}

// VisibleRows returns the half-open range of rows intersecting a viewport
// of the given height at offsetY.
func (ls *ListScreen) VisibleRows(offsetY, viewport float64) (first, last int) {
	first = max(0, int(math.Floor(offsetY/RowHeight)))
	last = min(ls.rows, int(math.Ceil((offsetY+viewport)/RowHeight)))
	if last < first {
		last = first
	}
	return first, last
}

func (ls *ListScreen) DrawContent(dst *ebiten.Image, width, offsetY, viewport float64) {
	first, last := ls.VisibleRows(offsetY, viewport)
	_, th := MeasureText(listRowText, FontSizeBody)
	for i := first; i < last; i++ {
		y := float64(i)*RowHeight - offsetY
		vector.DrawFilledRect(dst, 0, float32(y), float32(width), RowHeight, ColorBackground, false)
		DrawText(dst, listRowText, MarginX, y+(RowHeight-th)/2, FontSizeBody, ColorText)
		if i < ls.rows-1 {
			vector.DrawFilledRect(dst, SeparatorInset, float32(y+RowHeight-0.5), float32(width-SeparatorInset), 0.5, ColorSeparator, false)
		}
	}
}
