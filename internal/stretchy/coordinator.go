package stretchy

// Coordinator runs layout changes alongside a host transition.
type Coordinator interface {
	AnimateAlongside(changes func())
}

// Immediate applies changes without animation.
type Immediate struct{}

// AnimateAlongside implements Coordinator.
func (Immediate) AnimateAlongside(changes func()) { changes() }

// Tween animates every handle of a Constraints set that changes inside the
// block. Hosts call Step once per tick.
type Tween struct {
	set    *Constraints
	ticks  int
	active []*Constraint
}

// NewTween returns a coordinator animating set over ticks frames.
func NewTween(set *Constraints, ticks int) *Tween {
	return &Tween{set: set, ticks: ticks}
}

// AnimateAlongside implements Coordinator.
func (tw *Tween) AnimateAlongside(changes func()) {
	before := make(map[*Constraint]float64)
	for _, c := range tw.set.All() {
		before[c] = c.Value()
	}

	changes()

	for _, c := range tw.set.All() {
		from, ok := before[c]
		if !ok {
			continue
		}
		c.animateFrom(from, tw.ticks)
		if c.Animating() && !tw.tracking(c) {
			tw.active = append(tw.active, c)
		}
	}
}

func (tw *Tween) tracking(c *Constraint) bool {
	for _, a := range tw.active {
		if a == c {
			return true
		}
	}
	return false
}

// Step advances every running animation by one frame.
func (tw *Tween) Step() {
	live := tw.active[:0]
	for _, c := range tw.active {
		if c.step() {
			live = append(live, c)
		}
	}
	tw.active = live
}

// Running reports whether any handle is still animating.
func (tw *Tween) Running() bool {
	return len(tw.active) > 0
}
