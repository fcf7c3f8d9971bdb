// Package transition computes the geometry and chrome appearance of a stretchy
// header that collapses into a translucent navigation bar as a list scrolls.
//
// Every function here is a pure function of the scroll offset, the container
// size and the layout constants handed in by the caller. Nothing is cached.
package transition

import "errors"

// ErrHeaderNotLaidOut is returned when a computation needs a header height that
// has not been established yet (zero or negative).
var ErrHeaderNotLaidOut = errors.New("transition: header height not laid out")

const (
	// DefaultParallaxBudget is how far, in points, the header slides up behind
	// the navigation bar over a full collapse.
	DefaultParallaxBudget = 65
	// DefaultLargeTitleCompensation approximates half the extra height taken
	// by a single-line large title.
	DefaultLargeTitleCompensation = 26
)

// Constants holds the empirically tuned values of the choreography.
type Constants struct {
	ParallaxBudget         float64
	LargeTitleCompensation float64
}

// DefaultConstants returns the values tuned for a single-line large title bar.
func DefaultConstants() Constants {
	return Constants{
		ParallaxBudget:         DefaultParallaxBudget,
		LargeTitleCompensation: DefaultLargeTitleCompensation,
	}
}

// Chrome describes the host's status bar and navigation bar heights. Both may
// change with rotation or bar visibility, so hosts refresh it every layout pass.
type Chrome struct {
	StatusBarHeight     float64
	NavigationBarHeight float64
}

// NavigationControllerHeight is the combined height of the status and
// navigation bars.
func (c Chrome) NavigationControllerHeight() float64 {
	return c.StatusBarHeight + c.NavigationBarHeight
}

// Size is a container size in points.
type Size struct {
	Width, Height float64
}
