package ui

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/internal/cache"
	"github.com/depeter/stretchyheader/internal/transition"
)

type headerImages struct {
	sharp, blurred *ebiten.Image
}

// StretchyHeaderView is the background layer of the header: the image, a
// gradient under the navigation bar and a blurred material that takes over
// as the header collapses.
type StretchyHeaderView struct {
	aspect         transition.Aspect
	underlayHeight float64

	gradientAlpha float64
	imageAlpha    float64
	blurAlpha     float64

	underlay Gradient

	mu      sync.Mutex
	pending map[transition.SizeClass]*cache.Entry
	images  map[transition.SizeClass]headerImages
}

// NewStretchyHeaderView returns a header sized by aspect. underlayHeight is
// the navigation controller height the top gradient covers.
func NewStretchyHeaderView(aspect transition.Aspect, underlayHeight float64) *StretchyHeaderView {
	return &StretchyHeaderView{
		aspect:         aspect,
		underlayHeight: underlayHeight,
		gradientAlpha:  1,
		imageAlpha:     1,
		underlay:       Gradient{Top: ColorUnderlayTop, Bottom: ColorClear},
		pending:        make(map[transition.SizeClass]*cache.Entry),
		images:         make(map[transition.SizeClass]headerImages),
	}
}

func (hv *StretchyHeaderView) Aspect() transition.Aspect  { return hv.aspect }
func (hv *StretchyHeaderView) SetGradientAlpha(a float64) { hv.gradientAlpha = a }
func (hv *StretchyHeaderView) SetImageAlpha(a float64)    { hv.imageAlpha = a }
func (hv *StretchyHeaderView) SetBlurAlpha(a float64)     { hv.blurAlpha = a }

// Alphas returns the current layer opacities: underlay, image and blur.
func (hv *StretchyHeaderView) Alphas() (gradient, image, blur float64) {
	return hv.gradientAlpha, hv.imageAlpha, hv.blurAlpha
}

// SetSource hands over the image for a size class. Safe to call from any
// goroutine; the GPU copy happens on the next Draw.
func (hv *StretchyHeaderView) SetSource(class transition.SizeClass, e *cache.Entry) {
	hv.mu.Lock()
	hv.pending[class] = e
	hv.mu.Unlock()
}

// SetAllSources uses e for every size class.
func (hv *StretchyHeaderView) SetAllSources(e *cache.Entry) {
	hv.SetSource(transition.SizeClassCompactRegular, e)
	hv.SetSource(transition.SizeClassOther, e)
}

func (hv *StretchyHeaderView) flush() {
	hv.mu.Lock()
	pending := hv.pending
	hv.pending = make(map[transition.SizeClass]*cache.Entry)
	hv.mu.Unlock()

	for class, e := range pending {
		imgs := headerImages{sharp: ebiten.NewImageFromImage(e.Sharp)}
		if e.Blurred != nil {
			imgs.blurred = ebiten.NewImageFromImage(e.Blurred)
		}
		if old, ok := hv.images[class]; ok {
			old.sharp.Deallocate()
			if old.blurred != nil {
				old.blurred.Deallocate()
			}
		}
		hv.images[class] = imgs
	}
}

// Draw renders the header into the rectangle at (x, y) with size w×h. size
// is the container size, which picks the image variant.
func (hv *StretchyHeaderView) Draw(dst *ebiten.Image, x, y, w, h float64, size transition.Size) {
	hv.flush()
	if w <= 0 || h <= 0 {
		return
	}
	imgs, ok := hv.images[transition.SizeClassOf(size)]
	if !ok {
		// Fall back to whichever variant has loaded.
		for _, v := range hv.images {
			imgs, ok = v, true
			break
		}
	}

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorHeaderBackdrop, false)
	if ok {
		drawAspectFill(dst, imgs.sharp, x, y, w, h, hv.imageAlpha)
	}
	hv.underlay.Draw(dst, x, y, w, min(hv.underlayHeight, h), hv.gradientAlpha)

	if hv.blurAlpha > 0 {
		if ok && imgs.blurred != nil {
			drawAspectFill(dst, imgs.blurred, x, y, w, h, hv.blurAlpha)
		}
		wash := ColorMaterialWash
		wash.A = uint8(float64(wash.A) * hv.blurAlpha)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), wash, false)
	}
}
