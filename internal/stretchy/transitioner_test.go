package stretchy

import (
	"errors"
	"image/color"
	"testing"

	"github.com/rs/zerolog"

	"github.com/depeter/stretchyheader/internal/transition"
)

var orange = color.RGBA{R: 0xFF, G: 0x95, B: 0x00, A: 0xFF}

type fakeScroll struct {
	offsetY      float64
	insetTop     float64
	indicatorTop float64
	safeTop      float64
	onScroll     func()
}

func (s *fakeScroll) ContentOffsetY() float64 { return s.offsetY }
func (s *fakeScroll) SetContentOffsetY(y float64) {
	s.offsetY = y
	if s.onScroll != nil {
		s.onScroll()
	}
}
func (s *fakeScroll) SetContentInsetTop(top float64)   { s.insetTop = top }
func (s *fakeScroll) SetIndicatorInsetTop(top float64) { s.indicatorTop = top }
func (s *fakeScroll) SafeAreaTop() float64             { return s.safeTop }

type fakeTransitionView struct {
	aspect                  transition.Aspect
	gradient, image, blurry float64
}

func (v *fakeTransitionView) Aspect() transition.Aspect  { return v.aspect }
func (v *fakeTransitionView) SetGradientAlpha(a float64) { v.gradient = a }
func (v *fakeTransitionView) SetImageAlpha(a float64)    { v.image = a }
func (v *fakeTransitionView) SetBlurAlpha(a float64)     { v.blurry = a }

type fakeOverlay struct{ alpha float64 }

func (o *fakeOverlay) SetAlpha(a float64) { o.alpha = a }

type fakeBar struct {
	mode   transition.BarMode
	tint   color.Color
	title  float64
	status float64
}

func (b *fakeBar) SetMode(m transition.BarMode)   { b.mode = m }
func (b *fakeBar) SetTint(c color.Color)          { b.tint = c }
func (b *fakeBar) SetTitleAlpha(a float64)        { b.title = a }
func (b *fakeBar) SetStatusBarProgress(f float64) { b.status = f }

type fakeHost struct {
	scroll  *fakeScroll
	view    *fakeTransitionView
	overlay *fakeOverlay
	bar     *fakeBar
	cs      Constraints
	offset  float64
	size    transition.Size
	chrome  transition.Chrome
}

func (h *fakeHost) ScrollView() ScrollView           { return h.scroll }
func (h *fakeHost) TransitionView() TransitionView   { return h.view }
func (h *fakeHost) OverlayView() OverlayView         { return h.overlay }
func (h *fakeHost) NavigationBar() NavigationBar     { return h.bar }
func (h *fakeHost) Constraints() *Constraints        { return &h.cs }
func (h *fakeHost) OverlayOffsetY() float64          { return h.offset }
func (h *fakeHost) ContainerSize() transition.Size   { return h.size }
func (h *fakeHost) ChromeMetrics() transition.Chrome { return h.chrome }

func newFakeHost(width float64) *fakeHost {
	return &fakeHost{
		scroll:  &fakeScroll{safeTop: 47},
		view:    &fakeTransitionView{aspect: transition.FixedRatio{HeightRatio: 2.0 / 3.0}},
		overlay: &fakeOverlay{},
		bar:     &fakeBar{},
		size:    transition.Size{Width: width, Height: 900},
		chrome:  transition.Chrome{StatusBarHeight: 20, NavigationBarHeight: 44},
	}
}

func newTestTransitioner() *Transitioner {
	return New(transition.DefaultConstants(), orange, zerolog.Nop())
}

func layOut(t *testing.T, tr *Transitioner, h *fakeHost) {
	t.Helper()
	tr.Configure(h)
	installed, err := tr.WillLayoutSubviews(h)
	if err != nil {
		t.Fatalf("WillLayoutSubviews: %v", err)
	}
	if !installed {
		t.Fatal("expected first layout pass to install heights")
	}
}

func TestUpdatesBeforeLayoutFail(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(400)

	if _, err := tr.WillLayoutSubviews(h); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("layout before configure: got %v", err)
	}

	tr.Configure(h)
	if _, err := tr.DidScroll(h); !errors.Is(err, ErrNotLaidOut) {
		t.Fatalf("scroll before layout: got %v", err)
	}
	if err := tr.WillTransition(h, transition.Size{Width: 500, Height: 900}, nil); !errors.Is(err, ErrNotLaidOut) {
		t.Fatalf("resize before layout: got %v", err)
	}
}

func TestLayoutInitializerInstallsOnce(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(400)
	layOut(t, tr, h)

	if h.cs.TransitionHeight.Constant != 600 || h.cs.OverlayHeight.Constant != 600 {
		t.Fatalf("heights: got %v and %v, want 600", h.cs.TransitionHeight.Constant, h.cs.OverlayHeight.Constant)
	}
	if h.scroll.insetTop != 600 || h.scroll.offsetY != -600 || h.scroll.indicatorTop != 553 {
		t.Fatalf("scroll view: got %+v", *h.scroll)
	}

	h.size.Width = 800
	h.scroll.offsetY = -10
	installed, err := tr.WillLayoutSubviews(h)
	if err != nil || installed {
		t.Fatalf("second pass: installed=%v err=%v", installed, err)
	}
	if h.cs.OverlayHeight.Constant != 600 || h.scroll.offsetY != -10 {
		t.Fatal("second layout pass must not touch the header")
	}
}

func TestLayoutInitializerWaitsForWidth(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(0)
	tr.Configure(h)

	if _, err := tr.WillLayoutSubviews(h); !errors.Is(err, transition.ErrHeaderNotLaidOut) {
		t.Fatalf("zero width: got %v", err)
	}
	if h.cs.LaidOut() {
		t.Fatal("zero width must not install heights")
	}

	h.size.Width = 400
	layOut(t, tr, h)
}

func TestDidScrollAtRest(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(400)
	layOut(t, tr, h)

	f, err := tr.DidScroll(h)
	if err != nil {
		t.Fatal(err)
	}
	if f.Geometry != (transition.Geometry{Top: -600, Height: 600, Regime: transition.RegimeStretch}) {
		t.Fatalf("geometry: got %+v", f.Geometry)
	}
	if h.cs.TransitionTop.Constant != -600 {
		t.Fatalf("top constant: got %v", h.cs.TransitionTop.Constant)
	}
	if h.view.gradient != 1 || h.view.image != 1 || h.view.blurry != 0 || h.overlay.alpha != 1 {
		t.Fatalf("alphas: view %+v overlay %v", *h.view, h.overlay.alpha)
	}
	if h.bar.mode != transition.BarTransparent || h.bar.tint != color.Color(transition.White) || h.bar.title != 0 {
		t.Fatalf("bar: got %+v", *h.bar)
	}
}

func TestDidScrollCollapsed(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(400)
	layOut(t, tr, h)

	h.scroll.offsetY = 0
	f, err := tr.DidScroll(h)
	if err != nil {
		t.Fatal(err)
	}
	if f.Geometry.Top != -65 || f.Geometry.Height != 600 || h.cs.TransitionHeight.Constant != 600 {
		t.Fatalf("geometry: got %+v", f.Geometry)
	}
	if h.view.blurry != 1 || h.view.image != 0 || h.overlay.alpha != 0 || h.bar.status != 1 {
		t.Fatalf("alphas: view %+v overlay %v bar %+v", *h.view, h.overlay.alpha, *h.bar)
	}
	if h.bar.mode != transition.BarOpaque {
		t.Fatalf("expected opaque bar, got %v", h.bar.mode)
	}
	tint := h.bar.tint.(color.RGBA)
	if tint.R != 0xFF || tint.B != 0 {
		t.Fatalf("expected brand tint, got %v", tint)
	}
}

func TestContractKeepsLastStretchHeight(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(400)
	layOut(t, tr, h)

	h.scroll.offsetY = -800
	if _, err := tr.DidScroll(h); err != nil {
		t.Fatal(err)
	}
	if h.cs.TransitionHeight.Constant != 800 {
		t.Fatalf("stretch height: got %v", h.cs.TransitionHeight.Constant)
	}

	h.scroll.offsetY = -300
	f, err := tr.DidScroll(h)
	if err != nil {
		t.Fatal(err)
	}
	if f.Geometry.Regime != transition.RegimeContract || h.cs.TransitionHeight.Constant != 800 {
		t.Fatalf("contract: got %+v, height %v", f.Geometry, h.cs.TransitionHeight.Constant)
	}
}

func TestScrollNotificationFollowsInsetUpdate(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(400)
	var frames []Frame
	h.scroll.onScroll = func() {
		if f, err := tr.DidScroll(h); err == nil {
			frames = append(frames, f)
		}
	}
	layOut(t, tr, h)

	if len(frames) != 1 {
		t.Fatalf("expected one scroll notification, got %d", len(frames))
	}
	if frames[0].Geometry.Top != -600 || frames[0].Appearance.ImageAlpha != 1 {
		t.Fatalf("frame: got %+v", frames[0])
	}
}

type snapshot struct {
	top, height, overlayHeight float64
	inset, offset, indicator   float64
}

func snap(h *fakeHost) snapshot {
	return snapshot{
		top:           h.cs.TransitionTop.Constant,
		height:        h.cs.TransitionHeight.Constant,
		overlayHeight: h.cs.OverlayHeight.Constant,
		inset:         h.scroll.insetTop,
		offset:        h.scroll.offsetY,
		indicator:     h.scroll.indicatorTop,
	}
}

func TestResizeHandler(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(400)
	layOut(t, tr, h)

	size := transition.Size{Width: 500, Height: 900}
	h.size = size
	if err := tr.WillTransition(h, size, nil); err != nil {
		t.Fatal(err)
	}
	if got := tr.HeaderHeight(h); got != 750 {
		t.Fatalf("header height: got %v, want 750", got)
	}
	got := snap(h)
	want := snapshot{
		top:           750 - 130,
		height:        750,
		overlayHeight: 750,
		inset:         750,
		offset:        -750,
		indicator:     703,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestResizeIdempotent(t *testing.T) {
	tr := newTestTransitioner()
	size := transition.Size{Width: 640, Height: 900}

	once := newFakeHost(400)
	layOut(t, tr, once)
	once.size = size
	if err := tr.WillTransition(once, size, nil); err != nil {
		t.Fatal(err)
	}

	twice := newFakeHost(400)
	layOut(t, tr, twice)
	twice.size = size
	for i := 0; i < 2; i++ {
		if err := tr.WillTransition(twice, size, nil); err != nil {
			t.Fatal(err)
		}
	}

	if snap(once) != snap(twice) {
		t.Fatalf("once %+v, twice %+v", snap(once), snap(twice))
	}
}

func TestResizeWithTween(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(400)
	layOut(t, tr, h)

	tw := NewTween(&h.cs, 10)
	size := transition.Size{Width: 800, Height: 900}
	h.size = size
	if err := tr.WillTransition(h, size, tw); err != nil {
		t.Fatal(err)
	}

	oh := h.cs.OverlayHeight
	if oh.Constant != 1200 || oh.Value() != 600 {
		t.Fatalf("start: constant %v value %v", oh.Constant, oh.Value())
	}
	if !tw.Running() {
		t.Fatal("expected tween to be running")
	}

	tw.Step()
	if v := oh.Value(); v <= 600 || v >= 1200 {
		t.Fatalf("after one step: value %v", v)
	}
	for i := 0; i < 9; i++ {
		tw.Step()
	}
	if tw.Running() || oh.Value() != 1200 {
		t.Fatalf("end: running=%v value %v", tw.Running(), oh.Value())
	}
}

func TestSettleEndsAnimations(t *testing.T) {
	tr := newTestTransitioner()
	h := newFakeHost(400)
	layOut(t, tr, h)

	size := transition.Size{Width: 800, Height: 900}
	h.size = size
	if err := tr.WillTransition(h, size, NewTween(&h.cs, 10)); err != nil {
		t.Fatal(err)
	}
	h.cs.Settle()
	for _, c := range h.cs.All() {
		if c.Animating() || c.Value() != c.Constant {
			t.Fatalf("settled constraint: value %v constant %v", c.Value(), c.Constant)
		}
	}
}
