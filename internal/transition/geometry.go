package transition

import "fmt"

// Regime is the geometry mode selected by the relative offset.
type Regime int

const (
	// RegimeStretch: pulled down past the header; the header grows to fill the gap.
	RegimeStretch Regime = iota
	// RegimeContract: at rest or scrolled up; the header slides up with parallax.
	RegimeContract
)

func (r Regime) String() string {
	if r == RegimeStretch {
		return "stretch"
	}
	return "contract"
}

// Geometry is the background layer's placement in scroll-content coordinates.
type Geometry struct {
	Top    float64
	Height float64
	Regime Regime
}

// Bottom is the y coordinate of the header's bottom edge.
func (g Geometry) Bottom() float64 {
	return g.Top + g.Height
}

// GeometryInput is everything the offset computation reads.
type GeometryInput struct {
	// HeaderHeight is the rest height for the current container width.
	HeaderHeight float64
	// OffsetY is the live content offset, or the new rest height when
	// previewing the end state of a resize.
	OffsetY float64
	// OverlayOffsetY is how far the overlay sits below the header's bottom.
	OverlayOffsetY float64
	// CurrentHeight is the height constant already installed; it is kept
	// unchanged in the contract regime.
	CurrentHeight float64
}

// RelativeOffset is the distance between the header's rest bottom edge and
// the top of the visible area. Zero or less means the list is over-scrolled.
func RelativeOffset(headerHeight, offsetY, overlayOffsetY float64) float64 {
	return headerHeight + offsetY + overlayOffsetY
}

// StretchHeight is the header height that fills an over-scrolled gap. It is
// never negative.
func StretchHeight(offsetY, overlayOffsetY float64) float64 {
	return max(0, -offsetY-overlayOffsetY)
}

// ParallaxOffset is how far the header has slid behind the navigation bar for
// a given relative offset.
func ParallaxOffset(relativeOffset, headerHeight, budget float64) float64 {
	return relativeOffset / headerHeight * budget
}

// ComputeGeometry places the background layer for one frame.
func ComputeGeometry(in GeometryInput, c Constants) (Geometry, error) {
	if !(in.HeaderHeight > 0) {
		return Geometry{}, fmt.Errorf("compute geometry (height %v): %w", in.HeaderHeight, ErrHeaderNotLaidOut)
	}
	rel := RelativeOffset(in.HeaderHeight, in.OffsetY, in.OverlayOffsetY)
	if rel <= 0 {
		return Geometry{
			Top:    in.OffsetY,
			Height: StretchHeight(in.OffsetY, in.OverlayOffsetY),
			Regime: RegimeStretch,
		}, nil
	}
	return Geometry{
		Top:    in.OffsetY - ParallaxOffset(rel, in.HeaderHeight, c.ParallaxBudget),
		Height: in.CurrentHeight,
		Regime: RegimeContract,
	}, nil
}

// ScrollInset is the content inset that places the first row right under the
// header (and overlay offset) at rest.
type ScrollInset struct {
	Top          float64
	OffsetY      float64
	IndicatorTop float64
}

// ComputeScrollInset derives the scroll container's inset from the installed
// header height constant.
func ComputeScrollInset(heightConstant, overlayOffsetY, safeAreaTop float64) ScrollInset {
	inset := heightConstant + overlayOffsetY
	return ScrollInset{
		Top:          inset,
		OffsetY:      -inset,
		IndicatorTop: inset - safeAreaTop,
	}
}
