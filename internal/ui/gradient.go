package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const gradientSteps = 64

// Gradient is a vertical two-stop gradient rendered once and stretched to
// the target rectangle.
type Gradient struct {
	Top, Bottom color.Color
	img         *ebiten.Image
}

func (g *Gradient) image() *ebiten.Image {
	if g.img != nil {
		return g.img
	}
	src := image.NewRGBA(image.Rect(0, 0, 1, gradientSteps))
	for y := 0; y < gradientSteps; y++ {
		t := float64(y) / float64(gradientSteps-1)
		src.SetRGBA(0, y, mixPremultiplied(g.Top, g.Bottom, t))
	}
	g.img = ebiten.NewImageFromImage(src)
	return g.img
}

// mixPremultiplied interpolates in premultiplied space so fading to a
// transparent stop does not darken the midpoint.
func mixPremultiplied(a, b color.Color, t float64) color.RGBA {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	lerp := func(x, y uint32) uint8 {
		return uint8((float64(x) + (float64(y)-float64(x))*t) / 257)
	}
	return color.RGBA{R: lerp(ar, br), G: lerp(ag, bg), B: lerp(ab, bb), A: lerp(aa, ba)}
}

// Draw fills the rectangle with the gradient at alpha.
func (g *Gradient) Draw(dst *ebiten.Image, x, y, w, h, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h/gradientSteps)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(g.image(), op)
}

// drawAspectFill draws img scaled to cover the rectangle and clipped to it.
func drawAspectFill(dst, img *ebiten.Image, x, y, w, h, alpha float64) {
	if img == nil || w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	clip := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5)).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	sub := dst.SubImage(clip).(*ebiten.Image)

	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	scale := w / iw
	if s := h / ih; s > scale {
		scale = s
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(w-iw*scale)/2, y+(h-ih*scale)/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	sub.DrawImage(img, op)
}
