package cache

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Blur approximates a gaussian blur by shrinking src by factor and scaling it
// back up with bilinear filtering. A factor below 2 returns a plain copy.
func Blur(src image.Image, factor int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if factor < 2 || b.Dx() < factor || b.Dy() < factor {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}

	small := image.NewRGBA(image.Rect(0, 0, max(1, b.Dx()/factor), max(1, b.Dy()/factor)))
	xdraw.CatmullRom.Scale(small, small.Bounds(), src, b, draw.Src, nil)
	xdraw.BiLinear.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)
	return dst
}
