package ui

import (
	"image/color"

	"github.com/04pril/mega-guess/internal/app"
)

type palette struct {
	Name     string
	BG       color.Color
	FG       color.Color
	FGSoft   color.Color
	Accent   color.Color
	Control  color.Color
	Light    color.Color
	Dark     color.Color
	Disabled color.Color
	Overlay  color.Color
	Digit    color.Color
	DigitOff color.Color
	DigitBox color.Color
	OnAccent color.Color
}

var palettes = map[app.Theme]palette{
	app.ThemeDark: {
		Name:     "Dark",
		BG:       rgb(0x1e, 0x1e, 0x1e),
		FG:       rgb(0xff, 0xff, 0xff),
		FGSoft:   rgb(170, 170, 178),
		Accent:   rgb(0x00, 0xff, 0xcc),
		Control:  rgb(0x33, 0x33, 0x33),
		Light:    rgb(78, 82, 93),
		Dark:     rgb(12, 12, 14),
		Disabled: rgb(90, 90, 96),
		Overlay:  color.RGBA{0, 0, 0, 150},
		Digit:    rgb(0xff, 0x44, 0x44),
		DigitOff: rgb(60, 20, 20),
		DigitBox: rgb(20, 20, 20),
		OnAccent: rgb(0, 0, 0),
	},
	app.ThemeLight: {
		Name:     "Light",
		BG:       rgb(0xff, 0xff, 0xff),
		FG:       rgb(0x00, 0x00, 0x00),
		FGSoft:   rgb(90, 90, 96),
		Accent:   rgb(0x00, 0x78, 0xd7),
		Control:  rgb(0xf0, 0xf0, 0xf0),
		Light:    rgb(255, 255, 255),
		Dark:     rgb(160, 160, 160),
		Disabled: rgb(200, 200, 204),
		Overlay:  color.RGBA{0, 0, 0, 90},
		Digit:    rgb(0xff, 0x44, 0x44),
		DigitOff: rgb(240, 214, 214),
		DigitBox: rgb(250, 246, 246),
		OnAccent: rgb(0, 0, 0),
	},
}

func paletteFor(t app.Theme) palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[app.ThemeDark]
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
