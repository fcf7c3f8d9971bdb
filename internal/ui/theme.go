package ui

import "image/color"

// Colors follow the light system palette the header is drawn against.
var (
	ColorBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorText       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorSeparator  = color.RGBA{R: 0xC6, G: 0xC6, B: 0xC8, A: 0xFF}
	ColorOrange     = color.RGBA{R: 0xFF, G: 0x95, B: 0x00, A: 0xFF} // systemOrange
	ColorBorder     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorOverlay    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorClear      = color.RGBA{}
	ColorWhite      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// Bar background when the header has collapsed into it.
	ColorBarBackground = color.NRGBA{R: 0xF9, G: 0xF9, B: 0xF9, A: 0xF0}
	ColorBarHairline   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x30}

	// Header layers.
	ColorHeaderBackdrop = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0x33} // white 0.2 over the page
	ColorUnderlayTop    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x80}
	ColorMaskBottom     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x73}
	ColorMaterialWash   = color.NRGBA{R: 0xF2, G: 0xF2, B: 0xF7, A: 0x99}
	ColorIndicator      = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x59}
)

// Layout constants
const (
	MarginX = 20
	MarginY = 8

	RowHeight      = 44
	SeparatorInset = MarginX

	GridColumns     = 5
	GridCellInset   = 5
	GridBottomInset = 34
	GridCellCount   = 94

	ListRowCount = 3000

	FontSizeLargeTitle = 34
	FontSizeTitle      = 28
	FontSizeHeadline   = 17
	FontSizeBody       = 17
	FontSizeSmall      = 13
	FontSizeStatus     = 12

	IndicatorWidth  = 3
	IndicatorMargin = 3
	IndicatorMinLen = 36

	ScrollAnimSpeed = 0.2
	SpringSpeed     = 0.18
	// RubberBand is the resistance applied to over-scroll past the top edge.
	RubberBand = 0.55
	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 40
	// WheelSettleFrames is how long the view waits after the last wheel
	// event before springing back from an over-scroll.
	WheelSettleFrames = 8
)
