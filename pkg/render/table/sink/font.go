package sink

import (
	"sync"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
)

// Liberation variants accepted by [WithFont].
const (
	FontSerif = "Serif"
	FontSans  = "Sans"
	FontMono  = "Mono"
)

// capRatio approximates capital height as a fraction of the font ascent.
const capRatio = 0.74

var (
	fontsOnce sync.Once
	fonts     *font.Cache
)

func fontCache() *font.Cache {
	fontsOnce.Do(func() {
		fonts = font.NewCache(liberation.Collection())
	})
	return fonts
}

func face(variant string, size vg.Length) font.Face {
	return fontCache().Lookup(font.Font{
		Typeface: "Liberation",
		Variant:  font.Variant(variant),
	}, size)
}

func validVariant(v string) bool {
	switch v {
	case FontSerif, FontSans, FontMono:
		return true
	}
	return false
}

// centred returns the baseline origin that centres text on (cx, cy).
func centred(f font.Face, text string, cx, cy vg.Length) vg.Point {
	return vg.Point{
		X: cx - f.Width(text)/2,
		Y: cy - f.Extents().Ascent*capRatio/2,
	}
}
