package transition

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// White is the tint used while the bar is fully transparent.
var White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// TintColor returns brand with its HSV saturation replaced by saturation.
// A saturation of exactly zero yields pure white rather than a grey.
func TintColor(brand color.Color, saturation float64) color.Color {
	if saturation == 0 {
		return White
	}
	c, ok := colorful.MakeColor(brand)
	if !ok {
		return brand
	}
	h, _, v := c.Hsv()
	r, g, b := colorful.Hsv(h, FractionComplete(saturation), v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// BlendColor mixes a toward b by t in Lab space.
func BlendColor(a, b color.Color, t float64) color.Color {
	ca, okA := colorful.MakeColor(a)
	cb, okB := colorful.MakeColor(b)
	if !okA || !okB {
		if t < 0.5 {
			return a
		}
		return b
	}
	r, g, bl := ca.BlendLab(cb, FractionComplete(t)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xFF}
}

// ParseHex parses "#RRGGBB" into a colour.
func ParseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
