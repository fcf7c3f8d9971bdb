package transition

import "fmt"

// BarMode is the navigation bar background mode.
type BarMode int

const (
	// BarOpaque draws the default bar background without a shadow.
	BarOpaque BarMode = iota
	// BarTransparent lets the header's blur layer show through.
	BarTransparent
)

func (m BarMode) String() string {
	if m == BarOpaque {
		return "opaque"
	}
	return "transparent"
}

// ChromeInput is everything the appearance computation reads.
type ChromeInput struct {
	HeaderHeight   float64
	ContentOffsetY float64
	Chrome         Chrome
}

// Appearance holds every alpha and chrome value for one frame.
type Appearance struct {
	GradientUnderlayAlpha float64
	ImageAlpha            float64
	BlurAlpha             float64
	OverlayAlpha          float64

	BarMode               BarMode
	TintSaturation        float64
	StatusBarFadeFraction float64
	TitleViewAlpha        float64
}

// EffectiveOffset combines the scroll offset with the bar heights so that a
// phase's midpoint lines up with where the large title finishes collapsing.
func EffectiveOffset(threshold, contentOffsetY float64, chrome Chrome, c Constants) float64 {
	return threshold + chrome.NavigationControllerHeight() + contentOffsetY + c.LargeTitleCompensation
}

// PhaseAlpha is the fade fraction of a phase starting after threshold.
func PhaseAlpha(threshold, contentOffsetY float64, chrome Chrome, c Constants) float64 {
	return FractionComplete(EffectiveOffset(threshold, contentOffsetY, chrome, c) / threshold)
}

// ModeFor reports the bar mode for a content offset. The bar stays opaque
// while the content's top edge is at or above the bottom of the bar.
func ModeFor(contentOffsetY float64, chrome Chrome) BarMode {
	if -contentOffsetY <= chrome.NavigationControllerHeight() {
		return BarOpaque
	}
	return BarTransparent
}

// ComputeAppearance runs both fade phases for one frame.
func ComputeAppearance(in ChromeInput, c Constants) (Appearance, error) {
	if !(in.HeaderHeight > 0) {
		return Appearance{}, fmt.Errorf("compute appearance (height %v): %w", in.HeaderHeight, ErrHeaderNotLaidOut)
	}

	// Phase 1: gradient underlay.
	alpha1 := PhaseAlpha(TwoThirds(in.HeaderHeight), in.ContentOffsetY, in.Chrome, c)

	// Phase 2: image to blur, overlay out, chrome in.
	alpha2 := PhaseAlpha(OneThird(in.HeaderHeight), in.ContentOffsetY, in.Chrome, c)
	reversed := 1 - alpha2

	return Appearance{
		GradientUnderlayAlpha: 1 - alpha1,
		ImageAlpha:            reversed,
		BlurAlpha:             alpha2,
		OverlayAlpha:          reversed,
		BarMode:               ModeFor(in.ContentOffsetY, in.Chrome),
		TintSaturation:        alpha2,
		StatusBarFadeFraction: alpha2,
		TitleViewAlpha:        alpha2,
	}, nil
}
