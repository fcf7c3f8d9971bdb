package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/stretchyheader/internal/transition"
)

// Screen is the interface for all UI screens (List, Grid).
type Screen interface {
	// Update handles input and logic.
	Update() error
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// Resize adopts a new container size, animating over frames ticks when
	// frames is positive.
	Resize(size transition.Size, frames int)
	// OnEnter is called when the screen becomes active.
	OnEnter()
	// OnExit is called when the screen is removed.
	OnExit()
	// Name returns the screen name for debugging.
	Name() string
}

// ScreenManager manages a stack of screens and forwards container size
// changes to the one on top.
type ScreenManager struct {
	stack        []Screen
	size         transition.Size
	resizeFrames int
}

func NewScreenManager(resizeFrames int) *ScreenManager {
	return &ScreenManager{resizeFrames: resizeFrames}
}

func (sm *ScreenManager) Push(s Screen) {
	sm.stack = append(sm.stack, s)
	sm.enter(s)
}

func (sm *ScreenManager) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	top.OnExit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if len(sm.stack) > 0 {
		sm.enter(sm.stack[len(sm.stack)-1])
	}
}

func (sm *ScreenManager) Replace(s Screen) {
	if len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack[len(sm.stack)-1] = s
	} else {
		sm.stack = append(sm.stack, s)
	}
	sm.enter(s)
}

// enter brings s up to the current size without animation before it
// becomes active.
func (sm *ScreenManager) enter(s Screen) {
	if sm.size.Width > 0 {
		s.Resize(sm.size, 0)
	}
	s.OnEnter()
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}

// Size returns the last container size seen.
func (sm *ScreenManager) Size() transition.Size {
	return sm.size
}

// Resize records the container size and forwards changes to the current
// screen. The first size is applied immediately; later ones animate.
func (sm *ScreenManager) Resize(size transition.Size) {
	if size == sm.size {
		return
	}
	frames := sm.resizeFrames
	if sm.size.Width == 0 {
		frames = 0
	}
	sm.size = size
	if s := sm.Current(); s != nil {
		s.Resize(size, frames)
	}
}

func (sm *ScreenManager) Update() error {
	s := sm.Current()
	if s == nil {
		return nil
	}
	return s.Update()
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
}
