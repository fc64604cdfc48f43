package main

import (
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont attempts to load fonts/Inter-Regular.ttf and falls back to
// basicfont.Face7x13 when it is missing or unparsable.
func LoadUIFont(logger *log.Logger) font.Face {
	data, err := os.ReadFile("fonts/Inter-Regular.ttf")
	if err != nil {
		logger.Debug("UI font not found, using basic font", "err", err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		logger.Warn("UI font parse failed, using basic font", "err", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logger.Warn("UI font face failed, using basic font", "err", err)
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with its top-left corner at (x, y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	lineHeight := ascent + int(metrics.Descent>>6)
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, y+ascent+i*lineHeight, clr)
	}
}
