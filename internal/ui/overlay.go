package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// maskFraction is the share of the overlay, from the bottom, darkened behind
// the title.
const maskFraction = 4.0 / 7.0

// OverlayHeaderView carries the large title over the header's lower edge.
// It scrolls with the content and fades out as the header collapses.
type OverlayHeaderView struct {
	Title string
	alpha float64
	mask  Gradient
}

func NewOverlayHeaderView(title string) *OverlayHeaderView {
	return &OverlayHeaderView{
		Title: title,
		alpha: 1,
		mask:  Gradient{Top: ColorClear, Bottom: ColorMaskBottom},
	}
}

func (ov *OverlayHeaderView) SetAlpha(a float64) { ov.alpha = a }
func (ov *OverlayHeaderView) Alpha() float64     { return ov.alpha }

// Draw renders the overlay with its bottom edge at bottom.
func (ov *OverlayHeaderView) Draw(dst *ebiten.Image, x, bottom, w, h float64) {
	if ov.alpha <= 0 || h <= 0 {
		return
	}
	maskH := h * maskFraction
	ov.mask.Draw(dst, x, bottom-maskH, w, maskH, ov.alpha)

	_, th := MeasureBoldText(ov.Title, FontSizeLargeTitle)
	DrawBoldText(dst, ov.Title, x+MarginX, bottom-MarginY-th, FontSizeLargeTitle, ColorWhite, ov.alpha)
}
