package ui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	size float64
	bold bool
}

var (
	fontSource *text.GoTextFaceSource
	boldSource *text.GoTextFaceSource
	fontFaces  map[faceKey]*text.GoTextFace
)

// InitFonts loads the regular and bold faces. Nil data selects the bundled
// Go fonts.
func InitFonts(regular, bold []byte) error {
	if regular == nil {
		regular = goregular.TTF
	}
	if bold == nil {
		bold = gobold.TTF
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(regular))
	if err != nil {
		return err
	}
	bsrc, err := text.NewGoTextFaceSource(bytes.NewReader(bold))
	if err != nil {
		return err
	}
	fontSource, boldSource = src, bsrc
	fontFaces = make(map[faceKey]*text.GoTextFace)
	return nil
}

func getFace(size float64, bold bool) *text.GoTextFace {
	k := faceKey{size, bold}
	if face, ok := fontFaces[k]; ok {
		return face
	}
	src := fontSource
	if bold {
		src = boldSource
	}
	face := &text.GoTextFace{Source: src, Size: size}
	fontFaces[k] = face
	return face
}

func drawText(dst *ebiten.Image, txt string, x, y, size float64, bold bool, clr color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, txt, getFace(size, bold), op)
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawText(dst, txt, x, y, size, false, clr, 1)
}

func DrawBoldText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color, alpha float64) {
	drawText(dst, txt, x, y, size, true, clr, alpha)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, getFace(size, false), 0)
}

func MeasureBoldText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, getFace(size, true), 0)
}
