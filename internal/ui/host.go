package ui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/depeter/stretchyheader/internal/stretchy"
	"github.com/depeter/stretchyheader/internal/transition"
)

// HeaderOptions configures a screen carrying a stretchy header.
type HeaderOptions struct {
	Title         string
	Chrome        transition.Chrome
	SafeAreaTop   float64
	OverlayOffset float64
}

// content is the scrollable body below the header.
type content interface {
	ContentHeight(width float64) float64
	DrawContent(dst *ebiten.Image, width, offsetY, viewport float64)
}

// headerScreen implements stretchy.Host over a ScrollView. The header view
// and bar are shared between screens; the scroll view, overlay and
// constraints belong to each screen.
type headerScreen struct {
	name string
	tr   *stretchy.Transitioner
	log  zerolog.Logger
	opts HeaderOptions
	body content

	scroll  *ScrollView
	header  *StretchyHeaderView
	overlay *OverlayHeaderView
	nav     *NavBar
	cs      stretchy.Constraints

	size     transition.Size
	frame    stretchy.Frame
	tween    *stretchy.Tween
	reported map[string]bool
}

func (s *headerScreen) init(name string, tr *stretchy.Transitioner, opts HeaderOptions, header *StretchyHeaderView, nav *NavBar, log zerolog.Logger, body content) {
	s.name = name
	s.tr = tr
	s.opts = opts
	s.body = body
	s.header = header
	s.nav = nav
	s.log = log.With().Str("screen", name).Logger()
	s.scroll = NewScrollView(opts.SafeAreaTop)
	s.overlay = NewOverlayHeaderView(opts.Title)
	s.reported = make(map[string]bool)

	s.scroll.OnScroll(s.didScroll)
	tr.Configure(s)
}

func (s *headerScreen) ScrollView() stretchy.ScrollView         { return s.scroll }
func (s *headerScreen) TransitionView() stretchy.TransitionView { return s.header }
func (s *headerScreen) OverlayView() stretchy.OverlayView       { return s.overlay }
func (s *headerScreen) NavigationBar() stretchy.NavigationBar   { return s.nav }
func (s *headerScreen) Constraints() *stretchy.Constraints      { return &s.cs }
func (s *headerScreen) OverlayOffsetY() float64                 { return s.opts.OverlayOffset }
func (s *headerScreen) ContainerSize() transition.Size          { return s.size }
func (s *headerScreen) ChromeMetrics() transition.Chrome        { return s.opts.Chrome }

func (s *headerScreen) Name() string          { return s.name }
func (s *headerScreen) Frame() stretchy.Frame { return s.frame }
func (s *headerScreen) Scroll() *ScrollView   { return s.scroll }

// SetTitle replaces the large title and the bar title.
func (s *headerScreen) SetTitle(title string) {
	s.opts.Title = title
	s.overlay.Title = title
	s.nav.Title = title
}

// Resize adopts a new container size. Once the header is laid out, the
// change runs through the transition, tweened over frames ticks.
func (s *headerScreen) Resize(size transition.Size, frames int) {
	if size == s.size {
		return
	}
	s.size = size
	s.scroll.SetViewport(size.Height)
	s.scroll.SetContentHeight(s.body.ContentHeight(size.Width))
	if !s.cs.LaidOut() {
		return
	}

	var co stretchy.Coordinator
	if frames > 0 {
		tw := stretchy.NewTween(&s.cs, frames)
		s.tween, co = tw, tw
	} else {
		// An unanimated resize jumps straight to the new layout.
		s.tween = nil
		s.cs.Settle()
	}
	s.report(s.tr.WillTransition(s, size, co))
}

// layoutPass runs the layout initializer; it is a no-op once heights exist.
func (s *headerScreen) layoutPass() {
	if _, err := s.tr.WillLayoutSubviews(s); err != nil {
		s.report(err)
	}
}

func (s *headerScreen) didScroll() {
	f, err := s.tr.DidScroll(s)
	if err != nil {
		s.report(err)
		return
	}
	s.frame = f
}

// report logs each distinct failure once per screen.
func (s *headerScreen) report(err error) {
	if err == nil || s.reported[err.Error()] {
		return
	}
	s.reported[err.Error()] = true
	if errors.Is(err, transition.ErrHeaderNotLaidOut) {
		s.log.Warn().Err(err).Msg("header layout deferred")
		return
	}
	s.log.Error().Err(err).Msg("header transition skipped")
}

func (s *headerScreen) Update() error {
	s.layoutPass()

	if mx, my, clicked := MouseJustClicked(); clicked && float64(my) < s.nav.Height() {
		s.nav.HandleClick(mx, my)
	}
	s.scroll.HandleInput(s.nav.Height())
	s.step()
	return nil
}

// step advances the scroll physics and any resize animation.
func (s *headerScreen) step() {
	s.scroll.Step()
	if s.tween != nil {
		s.tween.Step()
		if !s.tween.Running() {
			s.tween = nil
		}
	}
}

func (s *headerScreen) Draw(dst *ebiten.Image) {
	w := s.size.Width
	off := s.scroll.ContentOffsetY()
	laidOut := s.cs.LaidOut()

	if laidOut {
		top := s.cs.TransitionTop.Value() - off
		s.header.Draw(dst, 0, top, w, s.cs.TransitionHeight.Value(), s.size)
	}
	s.body.DrawContent(dst, w, off, s.size.Height)
	if laidOut {
		bottom := s.cs.OverlayBottom.Value() - off
		s.overlay.Draw(dst, 0, bottom, w, s.cs.OverlayHeight.Value())
	}
	s.scroll.DrawIndicator(dst, w)
	s.nav.Draw(dst, w)
}

// OnEnter reapplies this screen's appearance to the shared header and bar.
func (s *headerScreen) OnEnter() {
	s.nav.Title = s.opts.Title
	if s.cs.LaidOut() {
		s.didScroll()
	}
}

func (s *headerScreen) OnExit() {
	s.scroll.EndDrag()
}
