package ui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/depeter/stretchyheader/internal/stretchy"
	"github.com/depeter/stretchyheader/internal/transition"
)

func TestNavBarButtons(t *testing.T) {
	if err := InitFonts(nil, nil); err != nil {
		t.Fatalf("InitFonts: %v", err)
	}
	nb := NewNavBar("San Francisco", testChrome)
	var got []NavBarAction
	nb.OnAction = func(a NavBarAction) { got = append(got, a) }
	nb.layout(400)

	barY := int(testChrome.StatusBarHeight + testChrome.NavigationBarHeight/2)
	tests := []struct {
		name string
		x, y int
		want NavBarAction
	}{
		{"edit", MarginX + 2, barY, NavBarActionEdit},
		{"refresh", 400 - MarginX - 2, barY, NavBarActionRefresh},
		{"title", 200, barY, NavBarActionNone},
		{"status strip", MarginX + 2, 5, NavBarActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a := nb.HandleClick(tt.x, tt.y); a != tt.want {
				t.Errorf("HandleClick(%d, %d) = %v, want %v", tt.x, tt.y, a, tt.want)
			}
		})
	}
	if len(got) != 2 || got[0] != NavBarActionEdit || got[1] != NavBarActionRefresh {
		t.Fatalf("OnAction calls = %v", got)
	}
}

func TestNavBarBeforeLayoutIgnoresClicks(t *testing.T) {
	nb := NewNavBar("", testChrome)
	if a := nb.HandleClick(MarginX+2, 40); a != NavBarActionNone {
		t.Fatalf("click before layout hit %v", a)
	}
}

func TestStatusColorFollowsProgress(t *testing.T) {
	if c := statusColorFor(0); c != color.Color(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("progress 0 = %v, want white", c)
	}
	if c := statusColorFor(1); c != color.Color(color.RGBA{A: 0xFF}) {
		t.Errorf("progress 1 = %v, want black", c)
	}
	r, _, _, _ := statusColorFor(0.5).RGBA()
	if r == 0 || r == 0xFFFF {
		t.Errorf("progress 0.5 should be a grey, got r=%#x", r)
	}
}

func TestDebugLines(t *testing.T) {
	sv := NewScrollView(20)
	sv.SetContentInsetTop(600)
	sv.SetContentOffsetY(-650)
	f := stretchy.Frame{
		HeaderHeight: 600,
		Geometry:     transition.Geometry{Top: -650, Height: 650, Regime: transition.RegimeStretch},
		Appearance:   transition.Appearance{ImageAlpha: 1, OverlayAlpha: 1, BarMode: transition.BarTransparent},
		Tint:         transition.White,
	}
	out := strings.Join(debugLines("List", f, sv), "\n")
	for _, want := range []string{"List", "-650.0", "overscroll 50.0", "#FFFFFF", f.Geometry.Regime.String(), f.Appearance.BarMode.String()} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestMixPremultiplied(t *testing.T) {
	top := color.RGBA{A: 0x80}
	bottom := color.RGBA{}
	if got := mixPremultiplied(top, bottom, 0); got != top {
		t.Errorf("t=0: %v", got)
	}
	if got := mixPremultiplied(top, bottom, 1); got != bottom {
		t.Errorf("t=1: %v", got)
	}
	if got := mixPremultiplied(top, bottom, 0.5); got.A != 0x40 {
		t.Errorf("t=0.5 alpha = %#x, want 0x40", got.A)
	}
}
