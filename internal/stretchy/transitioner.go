// Package stretchy drives a host's header, overlay, scroll container and
// navigation bar from the transition engine.
//
// A host calls Configure once after building its views, WillLayoutSubviews on
// every layout pass, WillTransition before a resize and DidScroll for every
// scroll notification.
package stretchy

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/rs/zerolog"

	"github.com/depeter/stretchyheader/internal/transition"
)

// ErrNotLaidOut is returned by updates that run before the first layout pass
// has installed the header height.
var ErrNotLaidOut = errors.New("stretchy: header height constraints not installed")

// ErrNotConfigured is returned by WillLayoutSubviews when Configure has not
// created the position handles.
var ErrNotConfigured = errors.New("stretchy: host not configured")

// Frame is the output tuple of one scroll notification.
type Frame struct {
	HeaderHeight float64
	Geometry     transition.Geometry
	Appearance   transition.Appearance
	Tint         color.Color
}

// Transitioner holds no per-host state; one value can serve many hosts.
type Transitioner struct {
	Constants transition.Constants
	// Brand is the tint of a fully collapsed bar.
	Brand color.Color
	Log   zerolog.Logger
}

// New returns a Transitioner using c and brand.
func New(c transition.Constants, brand color.Color, log zerolog.Logger) *Transitioner {
	return &Transitioner{Constants: c, Brand: brand, Log: log}
}

// Configure creates the position handles. Height handles are created later by
// WillLayoutSubviews once the container has a width.
func (t *Transitioner) Configure(h Host) {
	cs := h.Constraints()
	if cs.TransitionTop == nil {
		cs.TransitionTop = NewConstraint(0)
	}
	if cs.OverlayBottom == nil {
		cs.OverlayBottom = NewConstraint(0)
	}
}

// HeaderHeight is the rest height for the host's current container size.
func (t *Transitioner) HeaderHeight(h Host) float64 {
	return t.headerHeightFor(h, h.ContainerSize())
}

func (t *Transitioner) headerHeightFor(h Host, size transition.Size) float64 {
	return transition.HeaderHeight(size.Width, h.TransitionView().Aspect().Multiplier(size))
}

// WillLayoutSubviews installs the height handles on the first pass and
// establishes the starting state. Later passes are no-ops and report false.
func (t *Transitioner) WillLayoutSubviews(h Host) (bool, error) {
	cs := h.Constraints()
	if cs.TransitionTop == nil || cs.OverlayBottom == nil {
		return false, ErrNotConfigured
	}
	if cs.TransitionHeight != nil || cs.OverlayHeight != nil {
		return false, nil
	}
	height := t.HeaderHeight(h)
	if !(height > 0) {
		return false, fmt.Errorf("layout header for size %+v: %w", h.ContainerSize(), transition.ErrHeaderNotLaidOut)
	}

	cs.TransitionHeight = NewConstraint(height)
	cs.OverlayHeight = NewConstraint(height)
	t.Log.Debug().Float64("height", height).Msg("installed header height")

	if _, err := t.updateTransitionView(h, h.ScrollView().ContentOffsetY(), height); err != nil {
		return true, err
	}
	t.updateScrollView(h)
	return true, nil
}

// WillTransition adapts the header to a new container size inside the
// coordinator's animation block. A nil coordinator applies immediately.
func (t *Transitioner) WillTransition(h Host, size transition.Size, co Coordinator) error {
	if !h.Constraints().LaidOut() {
		return fmt.Errorf("resize to %+v: %w", size, ErrNotLaidOut)
	}
	height := t.headerHeightFor(h, size)
	if !(height > 0) {
		return fmt.Errorf("resize to %+v: %w", size, transition.ErrHeaderNotLaidOut)
	}
	if co == nil {
		co = Immediate{}
	}

	var err error
	co.AnimateAlongside(func() {
		cs := h.Constraints()
		// Preview the end state with the new rest height standing in for
		// the live offset.
		if _, err = t.updateTransitionView(h, height, height); err != nil {
			return
		}
		cs.OverlayHeight.Constant = height
		cs.TransitionHeight.Constant = height
		t.updateScrollView(h)
	})
	if err != nil {
		return err
	}
	t.Log.Debug().Float64("width", size.Width).Float64("height", height).Msg("resized header")
	return nil
}

// DidScroll recomputes geometry and then appearance for the current offset
// and applies both to the host.
func (t *Transitioner) DidScroll(h Host) (Frame, error) {
	if !h.Constraints().LaidOut() {
		return Frame{}, ErrNotLaidOut
	}
	height := t.HeaderHeight(h)
	offsetY := h.ScrollView().ContentOffsetY()

	g, err := t.updateTransitionView(h, offsetY, height)
	if err != nil {
		return Frame{}, err
	}
	a, err := transition.ComputeAppearance(transition.ChromeInput{
		HeaderHeight:   height,
		ContentOffsetY: offsetY,
		Chrome:         h.ChromeMetrics(),
	}, t.Constants)
	if err != nil {
		return Frame{}, err
	}
	tint := transition.TintColor(t.Brand, a.TintSaturation)
	t.applyAppearance(h, a, tint)

	return Frame{HeaderHeight: height, Geometry: g, Appearance: a, Tint: tint}, nil
}

// updateTransitionView is the offset updater. offsetY is either the live
// content offset or, during a resize, the new rest height.
func (t *Transitioner) updateTransitionView(h Host, offsetY, height float64) (transition.Geometry, error) {
	cs := h.Constraints()
	g, err := transition.ComputeGeometry(transition.GeometryInput{
		HeaderHeight:   height,
		OffsetY:        offsetY,
		OverlayOffsetY: h.OverlayOffsetY(),
		CurrentHeight:  cs.TransitionHeight.Constant,
	}, t.Constants)
	if err != nil {
		return transition.Geometry{}, err
	}
	cs.TransitionTop.Constant = g.Top
	cs.TransitionHeight.Constant = g.Height
	return g, nil
}

// updateScrollView is the scroll inset updater.
func (t *Transitioner) updateScrollView(h Host) {
	sv := h.ScrollView()
	in := transition.ComputeScrollInset(h.Constraints().TransitionHeight.Constant, h.OverlayOffsetY(), sv.SafeAreaTop())
	sv.SetContentInsetTop(in.Top)
	sv.SetContentOffsetY(in.OffsetY)
	sv.SetIndicatorInsetTop(in.IndicatorTop)
}

func (t *Transitioner) applyAppearance(h Host, a transition.Appearance, tint color.Color) {
	tv := h.TransitionView()
	tv.SetGradientAlpha(a.GradientUnderlayAlpha)
	tv.SetImageAlpha(a.ImageAlpha)
	tv.SetBlurAlpha(a.BlurAlpha)
	h.OverlayView().SetAlpha(a.OverlayAlpha)

	nb := h.NavigationBar()
	nb.SetMode(a.BarMode)
	nb.SetTint(tint)
	nb.SetStatusBarProgress(a.StatusBarFadeFraction)
	nb.SetTitleAlpha(a.TitleViewAlpha)
}
