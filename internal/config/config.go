package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/stretchyheader/internal/transition"
)

type Config struct {
	UI     UIConfig     `toml:"ui"`
	Header HeaderConfig `toml:"header"`
	Chrome ChromeConfig `toml:"chrome"`
	Server ServerConfig `toml:"server"`
	Keys   KeysConfig   `toml:"keys"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	LogLevel   string `toml:"log_level"`
	// Screen is the first demo screen: "list" or "grid".
	Screen string `toml:"screen"`
}

// HeaderConfig describes the stretchy header and its tuning constants.
type HeaderConfig struct {
	Title string `toml:"title"`

	// SizeClass selects the image variant by container size class. When
	// false, HeightRatio fixes the proportion.
	SizeClass     bool    `toml:"size_class"`
	HeightRatio   float64 `toml:"height_ratio"`
	CompactWidth  float64 `toml:"compact_width"`
	CompactHeight float64 `toml:"compact_height"`
	RegularWidth  float64 `toml:"regular_width"`
	RegularHeight float64 `toml:"regular_height"`

	// Images: file paths or URLs. Empty means a generated placeholder.
	ImageCompact string `toml:"image_compact"`
	ImageRegular string `toml:"image_regular"`

	OverlayOffset          float64 `toml:"overlay_offset"`
	ParallaxBudget         float64 `toml:"parallax_budget"`
	LargeTitleCompensation float64 `toml:"large_title_compensation"`
	ResizeFrames           int     `toml:"resize_frames"`
}

type ChromeConfig struct {
	StatusBarHeight     float64 `toml:"status_bar_height"`
	NavigationBarHeight float64 `toml:"navigation_bar_height"`
	SafeAreaTop         float64 `toml:"safe_area_top"`
	Tint                string  `toml:"tint"`
}

// KeysConfig binds demo actions to key names such as "tab" or "r".
type KeysConfig struct {
	SwitchScreen string `toml:"switch_screen"`
	Refresh      string `toml:"refresh"`
}

// ServerConfig optionally points the header at a Jellyfin item: its name
// becomes the title and its poster and backdrop the image variants.
type ServerConfig struct {
	URL    string `toml:"url"`
	Token  string `toml:"token"`
	UserID string `toml:"user_id"`
	ItemID string `toml:"item_id"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Width:    1280,
			Height:   800,
			LogLevel: "info",
			Screen:   "list",
		},
		Header: HeaderConfig{
			Title:                  "San Francisco",
			SizeClass:              true,
			HeightRatio:            2.0 / 3.0,
			CompactWidth:           1000,
			CompactHeight:          1500,
			RegularWidth:           1600,
			RegularHeight:          700,
			ParallaxBudget:         transition.DefaultParallaxBudget,
			LargeTitleCompensation: transition.DefaultLargeTitleCompensation,
			ResizeFrames:           18,
		},
		Chrome: ChromeConfig{
			StatusBarHeight:     20,
			NavigationBarHeight: 44,
			SafeAreaTop:         20,
			Tint:                "#FF9500",
		},
		Keys: KeysConfig{
			SwitchScreen: "tab",
			Refresh:      "r",
		},
	}
}

// Aspect returns the header aspect described by the config.
func (h HeaderConfig) Aspect() transition.Aspect {
	if h.SizeClass {
		return transition.SizeClassRatio{
			Compact: transition.Size{Width: h.CompactWidth, Height: h.CompactHeight},
			Regular: transition.Size{Width: h.RegularWidth, Height: h.RegularHeight},
		}
	}
	return transition.FixedRatio{HeightRatio: h.HeightRatio}
}

// Constants returns the tuning constants described by the config.
func (h HeaderConfig) Constants() transition.Constants {
	return transition.Constants{
		ParallaxBudget:         h.ParallaxBudget,
		LargeTitleCompensation: h.LargeTitleCompensation,
	}
}

func (c ChromeConfig) Metrics() transition.Chrome {
	return transition.Chrome{
		StatusBarHeight:     c.StatusBarHeight,
		NavigationBarHeight: c.NavigationBarHeight,
	}
}

// Validate rejects values that would leave the header without a height.
func (c *Config) Validate() error {
	var errs []error
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf("ui: window size %dx%d must be positive", c.UI.Width, c.UI.Height))
	}
	if c.UI.Screen != "list" && c.UI.Screen != "grid" {
		errs = append(errs, fmt.Errorf("ui: unknown screen %q", c.UI.Screen))
	}
	h := c.Header
	if h.SizeClass {
		if h.CompactWidth <= 0 || h.CompactHeight <= 0 || h.RegularWidth <= 0 || h.RegularHeight <= 0 {
			errs = append(errs, errors.New("header: size class variants must have positive sizes"))
		}
	} else if h.HeightRatio <= 0 {
		errs = append(errs, fmt.Errorf("header: height_ratio %v must be positive", h.HeightRatio))
	}
	if h.ResizeFrames < 0 {
		errs = append(errs, fmt.Errorf("header: resize_frames %d must not be negative", h.ResizeFrames))
	}
	if c.Chrome.StatusBarHeight < 0 || c.Chrome.NavigationBarHeight < 0 || c.Chrome.SafeAreaTop < 0 {
		errs = append(errs, errors.New("chrome: heights must not be negative"))
	}
	if _, err := transition.ParseHex(c.Chrome.Tint); err != nil {
		errs = append(errs, fmt.Errorf("chrome: tint %q: %w", c.Chrome.Tint, err))
	}
	return errors.Join(errs...)
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stretchyheader"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from ConfigPath, falling back to defaults when the
// file does not exist.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config at path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
