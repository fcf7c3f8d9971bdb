package transition

// Aspect maps a container size to the header's height multiplier, so that
// HeaderHeight(width, aspect.Multiplier(size)) gives the rest height.
type Aspect interface {
	Multiplier(container Size) float64
}

// FixedRatio keeps the header at a constant width-to-height proportion.
// HeightRatio is the width of the header relative to its height: 2/3 gives a
// header one and a half times as tall as it is wide.
type FixedRatio struct {
	HeightRatio float64
}

// Multiplier implements Aspect.
func (r FixedRatio) Multiplier(Size) float64 {
	if r.HeightRatio <= 0 {
		return 0
	}
	return 1 / r.HeightRatio
}

// SizeClass is the coarse layout class of a container.
type SizeClass int

const (
	// SizeClassCompactRegular is a narrow, tall container (portrait phone).
	SizeClassCompactRegular SizeClass = iota
	// SizeClassOther covers every other combination.
	SizeClassOther
)

func (s SizeClass) String() string {
	if s == SizeClassCompactRegular {
		return "compact-regular"
	}
	return "other"
}

// Breakpoints below which a dimension is considered compact.
const (
	CompactWidthBreakpoint  = 700
	CompactHeightBreakpoint = 480
)

// SizeClassOf classifies a container size.
func SizeClassOf(container Size) SizeClass {
	if container.Width < CompactWidthBreakpoint && container.Height >= CompactHeightBreakpoint {
		return SizeClassCompactRegular
	}
	return SizeClassOther
}

// SizeClassRatio picks one of two placeholder image variants by size class and
// uses that image's height/width as the multiplier. The header height jumps
// when the container crosses a size class boundary; there is no blending.
type SizeClassRatio struct {
	Compact Size // image used for compact-regular containers
	Regular Size // image used for everything else
}

// Variant returns the image size selected for the container.
func (r SizeClassRatio) Variant(container Size) Size {
	if SizeClassOf(container) == SizeClassCompactRegular {
		return r.Compact
	}
	return r.Regular
}

// Multiplier implements Aspect.
func (r SizeClassRatio) Multiplier(container Size) float64 {
	v := r.Variant(container)
	if v.Width <= 0 {
		return 0
	}
	return v.Height / v.Width
}

// HeaderHeight is the rest height of the header for a container width.
func HeaderHeight(width, multiplier float64) float64 {
	return width * multiplier
}
