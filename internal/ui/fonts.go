// internal/ui/fonts.go
package ui

import (
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор начертаний для HUD, панели и экранов.
type Fonts struct {
	Regular font.Face
	Title   font.Face
	Large   font.Face
}

// LoadFonts builds faces from the embedded Go Regular font. If parsing fails
// every face falls back to basicfont so the game still renders text.
func LoadFonts() *Fonts {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		slog.Warn("font parse failed, using basicfont", "error", err)
		return basicFonts()
	}

	newFace := func(size float64) font.Face {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			slog.Warn("font face failed, using basicfont", "size", size, "error", err)
			return basicfont.Face7x13
		}
		return face
	}

	return &Fonts{
		Regular: newFace(14),
		Title:   newFace(18),
		Large:   newFace(40),
	}
}

func basicFonts() *Fonts {
	return &Fonts{
		Regular: basicfont.Face7x13,
		Title:   basicfont.Face7x13,
		Large:   basicfont.Face7x13,
	}
}
