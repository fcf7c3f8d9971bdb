package app

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/depeter/stretchyheader/internal/cache"
	"github.com/depeter/stretchyheader/internal/config"
	"github.com/depeter/stretchyheader/internal/jellyfin"
	"github.com/depeter/stretchyheader/internal/logging"
	"github.com/depeter/stretchyheader/internal/stretchy"
	"github.com/depeter/stretchyheader/internal/transition"
	"github.com/depeter/stretchyheader/internal/ui"
)

// titledScreen is a screen whose header title can change.
type titledScreen interface {
	ui.Screen
	SetTitle(title string)
}

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Header  *ui.StretchyHeaderView
	NavBar  *ui.NavBar
	Screens *ui.ScreenManager

	list, grid titledScreen
	source     jellyfin.HeaderSource
	log        zerolog.Logger

	mu            sync.Mutex
	pendingSource *jellyfin.HeaderSource

	// Set by Layout, applied on the next Update.
	Width, Height int
}

// NewGame creates the Game with all dependencies. The header shows the
// configured images until SetHeaderSource replaces them.
func NewGame(cfg *config.Config, imgCache *cache.ImageCache) (*Game, error) {
	brand, err := transition.ParseHex(cfg.Chrome.Tint)
	if err != nil {
		return nil, fmt.Errorf("chrome tint: %w", err)
	}
	for _, k := range []string{cfg.Keys.SwitchScreen, cfg.Keys.Refresh} {
		if _, ok := parseKey(k); !ok {
			return nil, fmt.Errorf("keys: unknown key %q", k)
		}
	}

	metrics := cfg.Chrome.Metrics()
	tr := stretchy.New(cfg.Header.Constants(), brand, logging.New("stretchy"))
	g := &Game{
		Config:  cfg,
		Cache:   imgCache,
		Header:  ui.NewStretchyHeaderView(cfg.Header.Aspect(), metrics.NavigationControllerHeight()),
		NavBar:  ui.NewNavBar(cfg.Header.Title, metrics),
		Screens: ui.NewScreenManager(cfg.Header.ResizeFrames),
		log:     logging.New("app"),
		source: jellyfin.HeaderSource{
			Title:   cfg.Header.Title,
			Compact: cfg.Header.ImageCompact,
			Regular: cfg.Header.ImageRegular,
		},
	}
	g.NavBar.OnAction = g.handleAction

	opts := ui.HeaderOptions{
		Title:         cfg.Header.Title,
		Chrome:        metrics,
		SafeAreaTop:   cfg.Chrome.SafeAreaTop,
		OverlayOffset: cfg.Header.OverlayOffset,
	}
	uiLog := logging.New("ui")
	g.list = ui.NewListScreen(tr, opts, g.Header, g.NavBar, uiLog)
	g.grid = ui.NewGridScreen(tr, opts, g.Header, g.NavBar, uiLog)

	if cfg.UI.Screen == "grid" {
		g.Screens.Push(g.grid)
	} else {
		g.Screens.Push(g.list)
	}
	g.loadHeaderImages()
	return g, nil
}

// SetHeaderSource switches the header to a new title and image pair.
func (g *Game) SetHeaderSource(src jellyfin.HeaderSource) {
	g.source = src
	g.list.SetTitle(src.Title)
	g.grid.SetTitle(src.Title)
	g.loadHeaderImages()
	g.log.Info().Str("title", src.Title).Msg("header source updated")
}

// SetHeaderSourceAsync queues src for the next Update. Safe to call from
// any goroutine.
func (g *Game) SetHeaderSourceAsync(src jellyfin.HeaderSource) {
	g.mu.Lock()
	g.pendingSource = &src
	g.mu.Unlock()
}

func (g *Game) applyPendingSource() {
	g.mu.Lock()
	src := g.pendingSource
	g.pendingSource = nil
	g.mu.Unlock()
	if src != nil {
		g.SetHeaderSource(*src)
	}
}

// switchScreen toggles between the list and grid demos.
func (g *Game) switchScreen() {
	next := ui.Screen(g.list)
	if g.Screens.Current() == ui.Screen(g.list) {
		next = g.grid
	}
	g.Screens.Replace(next)
	g.log.Debug().Str("screen", next.Name()).Msg("switched screen")
}

func (g *Game) handleAction(a ui.NavBarAction) {
	switch a {
	case ui.NavBarActionRefresh:
		g.Cache.Clear()
		g.loadHeaderImages()
	}
	g.log.Info().Stringer("action", a).Msg("bar button")
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	g.applyPendingSource()

	if keyJustPressed(g.Config.Keys.SwitchScreen) {
		g.switchScreen()
	}
	if keyJustPressed(g.Config.Keys.Refresh) {
		g.handleAction(ui.NavBarActionRefresh)
	}

	g.Screens.Resize(transition.Size{Width: float64(g.Width), Height: float64(g.Height)})
	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screens.Current(), float64(g.Width))
}

// Layout follows the window: the logical screen is the outside size, so a
// window resize becomes a container size change.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
