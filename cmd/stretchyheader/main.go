package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/depeter/stretchyheader/assets/placeholder"
	"github.com/depeter/stretchyheader/internal/app"
	"github.com/depeter/stretchyheader/internal/cache"
	"github.com/depeter/stretchyheader/internal/config"
	"github.com/depeter/stretchyheader/internal/jellyfin"
	"github.com/depeter/stretchyheader/internal/logging"
	"github.com/depeter/stretchyheader/internal/ui"
)

// blurFactor is the downsampling factor of the header's blurred variant.
const blurFactor = 16

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/stretchyheader/config.toml)")
	screen := flag.String("screen", "", `first screen: "list" or "grid"`)
	flag.Parse()

	// Load config
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	logging.Init(os.Stderr, levelOf(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *screen != "" {
		cfg.UI.Screen = *screen
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("invalid flags")
		}
	}

	// Init fonts
	if err := ui.InitFonts(nil, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to init fonts")
	}

	// Init image cache
	cacheDir := filepath.Join(os.TempDir(), "stretchyheader", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir, blurFactor, logging.New("cache"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init image cache")
	}

	game, err := app.NewGame(cfg, imgCache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	// Optional Jellyfin item as the header source
	if s := cfg.Server; s.URL != "" && s.Token != "" && s.ItemID != "" {
		client := jellyfin.NewClient(context.Background(), s.URL)
		client.SetToken(s.Token, s.UserID)
		go func() {
			src, err := client.HeaderSource(s.ItemID, headerSizes(cfg.Header))
			if err != nil {
				log.Warn().Err(err).Str("server", client.ServerURL()).Str("item", s.ItemID).Msg("jellyfin header source unavailable, keeping placeholder")
				return
			}
			game.SetHeaderSourceAsync(src)
		}()
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle(cfg.Header.Title)
	ebiten.SetWindowIcon(placeholder.Icon())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	log.Info().Str("cache", cacheDir).Str("screen", cfg.UI.Screen).Msg("starting")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// headerSizes bounds fetched images by the configured variant sizes.
func headerSizes(h config.HeaderConfig) jellyfin.HeaderSizes {
	return jellyfin.HeaderSizes{
		Compact: jellyfin.VariantSize{Width: int(h.CompactWidth), Height: int(h.CompactHeight)},
		Regular: jellyfin.VariantSize{Width: int(h.RegularWidth), Height: int(h.RegularHeight)},
	}
}

func levelOf(cfg *config.Config) string {
	if cfg == nil {
		return "info"
	}
	return cfg.UI.LogLevel
}
