package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/internal/stretchy"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// frameSource is implemented by screens that drive a header transition.
type frameSource interface {
	Frame() stretchy.Frame
	Scroll() *ScrollView
}

func hexColor(c color.Color) string {
	if c == nil {
		return "-"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}

func debugLines(name string, f stretchy.Frame, sv *ScrollView) []string {
	a := f.Appearance
	g := f.Geometry
	return []string{
		fmt.Sprintf("screen      %s", name),
		fmt.Sprintf("offset      %.1f  inset %.1f  overscroll %.1f", sv.ContentOffsetY(), sv.ContentInsetTop(), sv.OverScroll()),
		fmt.Sprintf("header      %.1f  %s", f.HeaderHeight, g.Regime),
		fmt.Sprintf("geometry    top %.1f  height %.1f", g.Top, g.Height),
		fmt.Sprintf("underlay    %.3f", a.GradientUnderlayAlpha),
		fmt.Sprintf("image/blur  %.3f / %.3f", a.ImageAlpha, a.BlurAlpha),
		fmt.Sprintf("overlay     %.3f", a.OverlayAlpha),
		fmt.Sprintf("bar         %s  tint %s (s=%.3f)", a.BarMode, hexColor(f.Tint), a.TintSaturation),
		fmt.Sprintf("status      %.3f  title %.3f", a.StatusBarFadeFraction, a.TitleViewAlpha),
	}
}

// DrawDebugOverlay draws the current screen's transition frame if visible.
func DrawDebugOverlay(dst *ebiten.Image, s Screen, width float64) {
	if !debugOverlayVisible || s == nil {
		return
	}
	fs, ok := s.(frameSource)
	if !ok {
		return
	}

	const (
		padX    = 12.0
		padY    = 10.0
		lineH   = 17.0
		marginR = 12.0
		marginT = 100.0
		panelW  = 360.0
	)
	lines := debugLines(s.Name(), fs.Frame(), fs.Scroll())
	panelH := float64(len(lines)+1)*lineH + padY*2
	px := width - panelW - marginR
	py := marginT

	vector.DrawFilledRect(dst, float32(px), float32(py), panelW, float32(panelH), ColorOverlay, false)
	x, y := px+padX, py+padY
	DrawText(dst, "Transition (F12 to close)", x, y, FontSizeSmall, ColorOrange)
	y += lineH
	for _, l := range lines {
		DrawText(dst, l, x, y, FontSizeSmall, ColorWhite)
		y += lineH
	}
}
