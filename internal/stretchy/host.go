package stretchy

import (
	"image/color"

	"github.com/depeter/stretchyheader/internal/transition"
)

// ScrollView is the scrollable container hosting the header. Content offsets
// follow the convention that the first row sits at y=0, so the rest offset is
// minus the top inset.
type ScrollView interface {
	ContentOffsetY() float64
	// SetContentOffsetY moves the content and notifies scroll listeners.
	SetContentOffsetY(y float64)
	SetContentInsetTop(top float64)
	SetIndicatorInsetTop(top float64)
	SafeAreaTop() float64
}

// TransitionView is the background layer: image, gradient underlay and blur.
type TransitionView interface {
	Aspect() transition.Aspect
	SetGradientAlpha(alpha float64)
	SetImageAlpha(alpha float64)
	SetBlurAlpha(alpha float64)
}

// OverlayView is the title layer laid over the header.
type OverlayView interface {
	SetAlpha(alpha float64)
}

// NavigationBar is the host's bar chrome.
type NavigationBar interface {
	SetMode(mode transition.BarMode)
	SetTint(tint color.Color)
	SetTitleAlpha(alpha float64)
	SetStatusBarProgress(fraction float64)
}

// Host is implemented by screens that carry a stretchy header. All handles
// must be non-nil; Constraints must return the same value on every call.
type Host interface {
	ScrollView() ScrollView
	TransitionView() TransitionView
	OverlayView() OverlayView
	NavigationBar() NavigationBar
	Constraints() *Constraints

	// OverlayOffsetY is how far the overlay sits below the header's bottom.
	OverlayOffsetY() float64
	// ContainerSize is the current size of the host's root surface.
	ContainerSize() transition.Size
	// ChromeMetrics returns the bar heights for the current layout pass.
	ChromeMetrics() transition.Chrome
}
