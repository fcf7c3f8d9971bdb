package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/internal/transition"
)

// ScrollView is a vertical scroll container. Offsets follow the convention
// that content y=0 is the first row, so at rest with a top inset the offset
// is -inset. Dragging or wheeling past either edge rubber-bands; releasing
// springs back.
type ScrollView struct {
	offsetY      float64
	raw          float64 // offset before rubber-banding
	insetTop     float64
	insetBottom  float64
	indicatorTop float64
	safeTop      float64

	contentHeight float64
	viewport      float64

	listeners []func()

	target    float64
	animating bool
	dragging  bool
	dragLastY float64
	settle    int
	activity  int
}

// NewScrollView returns a scroll view whose safe area starts safeAreaTop
// below its top edge.
func NewScrollView(safeAreaTop float64) *ScrollView {
	return &ScrollView{safeTop: safeAreaTop}
}

// ContentOffsetY implements stretchy.ScrollView.
func (sv *ScrollView) ContentOffsetY() float64 { return sv.offsetY }

// SetContentOffsetY moves the content, cancelling any running animation, and
// notifies listeners even when the offset is unchanged.
func (sv *ScrollView) SetContentOffsetY(y float64) {
	sv.animating = false
	sv.offsetY = y
	sv.raw = sv.unband(y)
	sv.notify()
}

func (sv *ScrollView) SetContentInsetTop(top float64)   { sv.insetTop = top }
func (sv *ScrollView) SetIndicatorInsetTop(top float64) { sv.indicatorTop = top }
func (sv *ScrollView) SafeAreaTop() float64             { return sv.safeTop }
func (sv *ScrollView) ContentInsetTop() float64         { return sv.insetTop }
func (sv *ScrollView) IndicatorInsetTop() float64       { return sv.indicatorTop }
func (sv *ScrollView) SetContentInsetBottom(b float64)  { sv.insetBottom = b }
func (sv *ScrollView) SetContentHeight(h float64)       { sv.contentHeight = h }
func (sv *ScrollView) SetViewport(h float64)            { sv.viewport = h }
func (sv *ScrollView) Viewport() float64                { return sv.viewport }

// OnScroll registers fn to run after every offset change.
func (sv *ScrollView) OnScroll(fn func()) {
	sv.listeners = append(sv.listeners, fn)
}

func (sv *ScrollView) notify() {
	sv.activity = 60
	for _, fn := range sv.listeners {
		fn()
	}
}

// MinOffset is the resting offset at the top edge.
func (sv *ScrollView) MinOffset() float64 { return -sv.insetTop }

// MaxOffset is the resting offset at the bottom edge.
func (sv *ScrollView) MaxOffset() float64 {
	return math.Max(sv.MinOffset(), sv.contentHeight+sv.insetBottom-sv.viewport)
}

// OverScroll reports how far past the top edge the content is pulled.
func (sv *ScrollView) OverScroll() float64 {
	return math.Max(0, sv.MinOffset()-sv.offsetY)
}

func (sv *ScrollView) move(y float64) {
	sv.raw = sv.unband(y)
	if y == sv.offsetY {
		return
	}
	sv.offsetY = y
	sv.notify()
}

// ScrollBy moves the content by dy, resisting past the edges.
func (sv *ScrollView) ScrollBy(dy float64) {
	sv.animating = false
	sv.raw += dy
	y := sv.band(sv.raw)
	if y != sv.offsetY {
		sv.offsetY = y
		sv.notify()
	}
}

func (sv *ScrollView) band(raw float64) float64 {
	lo, hi := sv.MinOffset(), sv.MaxOffset()
	switch {
	case raw < lo:
		return lo - rubberBand(lo-raw, sv.viewport)
	case raw > hi:
		return hi + rubberBand(raw-hi, sv.viewport)
	}
	return raw
}

// rubberBand maps an over-scroll distance to the displayed distance, which
// approaches dim asymptotically.
func rubberBand(over, dim float64) float64 {
	if dim <= 0 {
		dim = 1
	}
	return (1 - 1/(over*RubberBand/dim+1)) * dim
}

// ScrollTo animates toward y, clamped to the resting range.
func (sv *ScrollView) ScrollTo(y float64) {
	sv.target = math.Max(sv.MinOffset(), math.Min(y, sv.MaxOffset()))
	sv.animating = true
	sv.settle = 0
}

// BeginDrag starts a drag at pointer position y.
func (sv *ScrollView) BeginDrag(y float64) {
	sv.dragging = true
	sv.animating = false
	sv.dragLastY = y
}

// DragTo follows the pointer.
func (sv *ScrollView) DragTo(y float64) {
	if !sv.dragging {
		return
	}
	sv.ScrollBy(sv.dragLastY - y)
	sv.dragLastY = y
}

// EndDrag releases the content so it can spring back.
func (sv *ScrollView) EndDrag() {
	sv.dragging = false
	sv.settle = 0
}

// Wheel scrolls by dy and delays the spring back so consecutive wheel
// events keep stretching.
func (sv *ScrollView) Wheel(dy float64) {
	sv.ScrollBy(dy)
	sv.settle = WheelSettleFrames
}

// unband inverts band so a drag resumes from the displayed position.
func (sv *ScrollView) unband(y float64) float64 {
	lo, hi := sv.MinOffset(), sv.MaxOffset()
	dim := sv.viewport
	if dim <= 0 {
		dim = 1
	}
	inv := func(d float64) float64 {
		if d >= dim {
			d = dim - 1e-6
		}
		return d / (RubberBand * (1 - d/dim))
	}
	switch {
	case y < lo:
		return lo - inv(lo-y)
	case y > hi:
		return hi + inv(y-hi)
	}
	return y
}

// Step advances animations by one tick: keyboard scrolling first, then the
// spring back from an over-scroll.
func (sv *ScrollView) Step() {
	if sv.activity > 0 {
		sv.activity--
	}
	if sv.dragging {
		return
	}
	if sv.settle > 0 {
		sv.settle--
		return
	}
	if sv.animating {
		next := transition.Lerp(sv.offsetY, sv.target, ScrollAnimSpeed)
		if math.Abs(sv.target-next) < 0.5 {
			next = sv.target
			sv.animating = false
		}
		sv.move(next)
		return
	}
	lo, hi := sv.MinOffset(), sv.MaxOffset()
	var rest float64
	switch {
	case sv.offsetY < lo:
		rest = lo
	case sv.offsetY > hi:
		rest = hi
	default:
		return
	}
	next := transition.Lerp(sv.offsetY, rest, SpringSpeed)
	if math.Abs(rest-next) < 0.5 {
		next = rest
	}
	sv.move(next)
}

// Settled reports whether nothing is moving the content.
func (sv *ScrollView) Settled() bool {
	y := sv.offsetY
	return !sv.dragging && !sv.animating && y >= sv.MinOffset() && y <= sv.MaxOffset()
}

// HandleInput feeds this frame's wheel, pointer and keyboard input. Drags
// only start at or below grabTop so bar buttons keep their clicks.
func (sv *ScrollView) HandleInput(grabTop float64) {
	if _, wy := MouseWheelDelta(); wy != 0 {
		sv.Wheel(-wy * ScrollWheelSpeed)
	}

	_, cy := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && float64(cy) >= grabTop:
		sv.BeginDrag(float64(cy))
	case sv.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		sv.DragTo(float64(cy))
	case sv.dragging:
		sv.EndDrag()
	}

	rows, pages, edge := ScrollKeyDelta()
	base := sv.offsetY
	if sv.animating {
		base = sv.target
	}
	switch {
	case edge < 0:
		sv.ScrollTo(sv.MinOffset())
	case edge > 0:
		sv.ScrollTo(sv.MaxOffset())
	case rows != 0 || pages != 0:
		sv.ScrollTo(base + rows*RowHeight + pages*sv.viewport*0.9)
	}
}

// Indicator returns the scroll indicator's top and length in view
// coordinates. The track starts below the safe area plus the indicator inset.
func (sv *ScrollView) Indicator() (y, length float64, ok bool) {
	total := sv.contentHeight + sv.insetTop + sv.insetBottom
	if total <= sv.viewport || sv.viewport <= 0 {
		return 0, 0, false
	}
	top := sv.safeTop + sv.indicatorTop
	track := sv.viewport - IndicatorMargin - top
	if track <= 0 {
		return 0, 0, false
	}

	length = math.Max(IndicatorMinLen, track*sv.viewport/total)
	lo, hi := sv.MinOffset(), sv.MaxOffset()
	progress := 0.0
	switch {
	case sv.offsetY < lo:
		length -= lo - sv.offsetY
	case sv.offsetY > hi:
		length -= sv.offsetY - hi
		progress = 1
	default:
		progress = (sv.offsetY - lo) / (hi - lo)
	}
	length = math.Max(IndicatorWidth*2, math.Min(length, track))
	return top + progress*(track-length), length, true
}

// DrawIndicator draws the indicator along the right edge while the content
// is moving, fading out once it stops.
func (sv *ScrollView) DrawIndicator(dst *ebiten.Image, width float64) {
	if sv.activity == 0 {
		return
	}
	y, length, ok := sv.Indicator()
	if !ok {
		return
	}
	a := math.Min(1, float64(sv.activity)/20)
	clr := ColorIndicator
	clr.A = uint8(float64(clr.A) * a)
	x := width - IndicatorMargin - IndicatorWidth
	vector.DrawFilledRect(dst, float32(x), float32(y), IndicatorWidth, float32(length), clr, true)
}
