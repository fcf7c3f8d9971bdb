package ui

import (
	"math"
	"testing"
)

func newTestScroll() *ScrollView {
	sv := NewScrollView(20)
	sv.SetViewport(800)
	sv.SetContentHeight(3000)
	sv.SetContentInsetTop(600)
	sv.SetContentOffsetY(-600)
	return sv
}

func TestScrollBounds(t *testing.T) {
	sv := newTestScroll()
	if got := sv.MinOffset(); got != -600 {
		t.Errorf("MinOffset = %v, want -600", got)
	}
	if got := sv.MaxOffset(); got != 2200 {
		t.Errorf("MaxOffset = %v, want 2200", got)
	}
	sv.SetContentInsetBottom(34)
	if got := sv.MaxOffset(); got != 2234 {
		t.Errorf("MaxOffset with bottom inset = %v, want 2234", got)
	}

	short := NewScrollView(0)
	short.SetViewport(800)
	short.SetContentHeight(100)
	short.SetContentInsetTop(200)
	if short.MaxOffset() != short.MinOffset() {
		t.Errorf("short content: MaxOffset %v should equal MinOffset %v", short.MaxOffset(), short.MinOffset())
	}
}

func TestSetContentOffsetAlwaysNotifies(t *testing.T) {
	sv := newTestScroll()
	calls := 0
	sv.OnScroll(func() { calls++ })
	sv.SetContentOffsetY(-600)
	sv.SetContentOffsetY(-600)
	if calls != 2 {
		t.Fatalf("listener calls = %d, want 2", calls)
	}
}

func TestScrollByInsideBoundsIsLinear(t *testing.T) {
	sv := newTestScroll()
	sv.ScrollBy(250)
	if got := sv.ContentOffsetY(); got != -350 {
		t.Fatalf("offset = %v, want -350", got)
	}
}

func TestRubberBandResistsPastTop(t *testing.T) {
	sv := newTestScroll()
	sv.ScrollBy(-200)

	pulled := sv.OverScroll()
	if pulled <= 0 || pulled >= 200 {
		t.Fatalf("overscroll = %v, want within (0, 200)", pulled)
	}

	// Further pulls keep stretching but by less each time.
	sv.ScrollBy(-200)
	second := sv.OverScroll() - pulled
	if second <= 0 || second >= pulled {
		t.Fatalf("second pull added %v, want within (0, %v)", second, pulled)
	}
	if sv.OverScroll() >= sv.Viewport() {
		t.Fatalf("overscroll %v must stay below the viewport", sv.OverScroll())
	}
}

func TestRubberBandIsReversible(t *testing.T) {
	sv := newTestScroll()
	sv.BeginDrag(100)
	sv.DragTo(400)
	sv.DragTo(100)
	sv.EndDrag()
	if got := sv.ContentOffsetY(); math.Abs(got-(-600)) > 1e-6 {
		t.Fatalf("drag down then back: offset = %v, want -600", got)
	}
}

func TestUnbandInvertsBand(t *testing.T) {
	sv := newTestScroll()
	for _, raw := range []float64{-1200, -700, -600, 0, 2200, 2500} {
		if got := sv.unband(sv.band(raw)); math.Abs(got-raw) > 1e-6 {
			t.Errorf("unband(band(%v)) = %v", raw, got)
		}
	}
}

func TestSpringBackAfterRelease(t *testing.T) {
	sv := newTestScroll()
	sv.BeginDrag(100)
	sv.DragTo(300)
	if sv.OverScroll() == 0 {
		t.Fatal("expected over-scroll while dragging")
	}

	// No spring back while the pointer holds the content.
	held := sv.ContentOffsetY()
	sv.Step()
	if sv.ContentOffsetY() != held {
		t.Fatal("content moved while dragging")
	}

	sv.EndDrag()
	prev := sv.OverScroll()
	for i := 0; i < 200 && !sv.Settled(); i++ {
		sv.Step()
		if o := sv.OverScroll(); o > prev {
			t.Fatalf("spring back overshot: %v after %v", o, prev)
		} else {
			prev = o
		}
	}
	if !sv.Settled() || sv.ContentOffsetY() != sv.MinOffset() {
		t.Fatalf("did not settle at rest: offset %v", sv.ContentOffsetY())
	}
}

func TestWheelWaitsBeforeSpringBack(t *testing.T) {
	sv := newTestScroll()
	sv.Wheel(-80)
	pulled := sv.ContentOffsetY()
	for i := 0; i < WheelSettleFrames; i++ {
		sv.Step()
	}
	if sv.ContentOffsetY() != pulled {
		t.Fatalf("sprang back during the settle window: %v -> %v", pulled, sv.ContentOffsetY())
	}
	sv.Step()
	if sv.ContentOffsetY() <= pulled {
		t.Fatalf("expected spring back after the settle window")
	}
}

func TestScrollToAnimatesAndClamps(t *testing.T) {
	sv := newTestScroll()
	notified := 0
	sv.OnScroll(func() { notified++ })

	sv.ScrollTo(10_000)
	for i := 0; i < 500 && !sv.Settled(); i++ {
		sv.Step()
	}
	if got := sv.ContentOffsetY(); got != sv.MaxOffset() {
		t.Fatalf("offset = %v, want clamped to %v", got, sv.MaxOffset())
	}
	if notified < 2 {
		t.Fatalf("expected a notification per animated step, got %d", notified)
	}
}

func TestIndicatorHonorsInset(t *testing.T) {
	sv := newTestScroll()
	sv.SetIndicatorInsetTop(580)

	y, length, ok := sv.Indicator()
	if !ok {
		t.Fatal("indicator hidden for long content")
	}
	if y != 600 {
		t.Errorf("indicator top at rest = %v, want safe area + inset = 600", y)
	}
	if length < IndicatorMinLen {
		t.Errorf("indicator length %v below minimum", length)
	}

	sv.SetContentOffsetY(sv.MaxOffset())
	y2, length2, _ := sv.Indicator()
	if bottom := y2 + length2; math.Abs(bottom-(800-IndicatorMargin)) > 1e-6 {
		t.Errorf("indicator bottom at end = %v, want %v", bottom, 800-IndicatorMargin)
	}

	sv.SetContentOffsetY(-700)
	_, stretched, _ := sv.Indicator()
	if stretched >= length {
		t.Errorf("indicator should shrink while over-scrolled: %v >= %v", stretched, length)
	}
}

func TestIndicatorHiddenForShortContent(t *testing.T) {
	sv := NewScrollView(0)
	sv.SetViewport(800)
	sv.SetContentHeight(100)
	if _, _, ok := sv.Indicator(); ok {
		t.Fatal("indicator shown for content that fits")
	}
}
