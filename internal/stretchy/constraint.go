package stretchy

import "github.com/depeter/stretchyheader/internal/transition"

// Constraint is a mutable layout handle. Constant is the model value written
// by the updaters; Value is what surfaces should render, which trails
// Constant while a resize animation is running.
type Constraint struct {
	Constant float64
	anim     *tween
}

type tween struct {
	from        float64
	tick, ticks int
}

// NewConstraint returns a constraint holding constant.
func NewConstraint(constant float64) *Constraint {
	return &Constraint{Constant: constant}
}

// Value returns the presented value.
func (c *Constraint) Value() float64 {
	if c == nil {
		return 0
	}
	if c.anim == nil {
		return c.Constant
	}
	t := float64(c.anim.tick) / float64(c.anim.ticks)
	return transition.Lerp(c.anim.from, c.Constant, easeOutCubic(t))
}

// Animating reports whether the presented value still trails Constant.
func (c *Constraint) Animating() bool {
	return c != nil && c.anim != nil
}

func (c *Constraint) animateFrom(from float64, ticks int) {
	if ticks <= 0 || from == c.Constant {
		c.anim = nil
		return
	}
	c.anim = &tween{from: from, ticks: ticks}
}

func (c *Constraint) step() bool {
	if c.anim == nil {
		return false
	}
	c.anim.tick++
	if c.anim.tick >= c.anim.ticks {
		c.anim = nil
		return false
	}
	return true
}

func easeOutCubic(t float64) float64 {
	t = transition.FractionComplete(t)
	u := 1 - t
	return 1 - u*u*u
}

// Constraints groups the four handles the transition drives. The height
// handles stay nil until the first layout pass installs them.
type Constraints struct {
	TransitionTop    *Constraint
	TransitionHeight *Constraint
	OverlayBottom    *Constraint
	OverlayHeight    *Constraint
}

// LaidOut reports whether every handle exists.
func (cs *Constraints) LaidOut() bool {
	return cs != nil && cs.TransitionTop != nil && cs.OverlayBottom != nil &&
		cs.TransitionHeight != nil && cs.OverlayHeight != nil
}

// Settle ends every running animation so each handle presents its Constant.
func (cs *Constraints) Settle() {
	for _, c := range cs.All() {
		c.anim = nil
	}
}

// All returns the non-nil handles.
func (cs *Constraints) All() []*Constraint {
	var out []*Constraint
	for _, c := range []*Constraint{cs.TransitionTop, cs.TransitionHeight, cs.OverlayBottom, cs.OverlayHeight} {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
