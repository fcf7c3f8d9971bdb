// Package placeholder paints the default header images: a dusk sky over a
// bay with a suspension bridge.
package placeholder

import (
	"image"
	"image/color"
	"math"
)

var (
	skyTop    = color.RGBA{R: 0x2A, G: 0x1B, B: 0x4A, A: 0xFF}
	skyMid    = color.RGBA{R: 0xC8, G: 0x4B, B: 0x5E, A: 0xFF}
	skyLow    = color.RGBA{R: 0xFF, G: 0xA0, B: 0x4C, A: 0xFF}
	sunCol    = color.RGBA{R: 0xFF, G: 0xE0, B: 0x9A, A: 0xFF}
	waterCol  = color.RGBA{R: 0x1E, G: 0x2B, B: 0x48, A: 0xFF}
	hillCol   = color.RGBA{R: 0x18, G: 0x14, B: 0x2A, A: 0xFF}
	bridgeCol = color.RGBA{R: 0xB3, G: 0x3A, B: 0x2A, A: 0xFF}
)

// Generate paints a w×h placeholder.
func Generate(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fw, fh := float64(w), float64(h)
	horizon := fh * 0.68

	for y := 0; y < h; y++ {
		fy := float64(y)
		var row color.RGBA
		if fy < horizon {
			t := fy / horizon
			if t < 0.6 {
				row = mix(skyTop, skyMid, t/0.6)
			} else {
				row = mix(skyMid, skyLow, (t-0.6)/0.4)
			}
		} else {
			row = mix(skyLow, waterCol, math.Min(1, (fy-horizon)/(fh*0.08)))
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, row)
		}
	}

	drawSun(img, fw*0.68, horizon-fh*0.04, math.Min(fw, fh)*0.09)
	drawHills(img, horizon)
	drawBridge(img, horizon)
	return img
}

// Icon returns window icons cut from a square placeholder.
func Icon() []image.Image {
	return []image.Image{Generate(64, 64), Generate(32, 32)}
}

func drawSun(img *image.RGBA, cx, cy, r float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d > r*1.6 {
				continue
			}
			a := 1.0
			if d > r {
				a = 1 - (d-r)/(r*0.6)
			}
			img.SetRGBA(x, y, mix(img.RGBAAt(x, y), sunCol, a*0.9))
		}
	}
}

func drawHills(img *image.RGBA, horizon float64) {
	b := img.Bounds()
	fw := float64(b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		fx := float64(x) / fw
		top := horizon - fw*0.05*(math.Sin(fx*5.1)+1.2)*(1-fx*0.6)
		for y := int(top); y < int(horizon); y++ {
			if y >= b.Min.Y {
				img.SetRGBA(x, y, hillCol)
			}
		}
	}
}

func drawBridge(img *image.RGBA, horizon float64) {
	b := img.Bounds()
	fw := float64(b.Dx())
	deck := horizon - 2
	towerH := float64(b.Dy()) * 0.22
	towers := []float64{fw * 0.22, fw * 0.62}
	thick := math.Max(1, fw/220)

	// Deck
	fillRect(img, 0, deck-thick, fw, thick*1.5, bridgeCol)
	// Towers
	for _, tx := range towers {
		fillRect(img, tx-thick, deck-towerH, thick*2, towerH, bridgeCol)
	}
	// Main cable sags between the towers
	for x := towers[0]; x <= towers[1]; x++ {
		t := (x - towers[0]) / (towers[1] - towers[0])
		y := deck - towerH + towerH*0.85*4*t*(1-t)
		fillRect(img, x, y, 1, thick, bridgeCol)
	}
}

func fillRect(img *image.RGBA, x, y, w, h float64, c color.RGBA) {
	b := img.Bounds()
	for py := int(y); py < int(y+h); py++ {
		for px := int(x); px < int(x+w); px++ {
			if image.Pt(px, py).In(b) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xFF}
}
