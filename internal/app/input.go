package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"return": ebiten.KeyEnter,
	"tab":    ebiten.KeyTab,
	"f1":     ebiten.KeyF1,
	"f2":     ebiten.KeyF2,
	"f3":     ebiten.KeyF3,
	"f4":     ebiten.KeyF4,
	"f5":     ebiten.KeyF5,
	"g":      ebiten.KeyG,
	"l":      ebiten.KeyL,
	"r":      ebiten.KeyR,
	"s":      ebiten.KeyS,
	"1":      ebiten.KeyDigit1,
	"2":      ebiten.KeyDigit2,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// keyJustPressed checks if the key named by the config string was just pressed.
func keyJustPressed(name string) bool {
	if k, ok := parseKey(name); ok {
		return inpututil.IsKeyJustPressed(k)
	}
	return false
}
