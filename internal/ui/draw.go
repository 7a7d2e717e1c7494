package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var face font.Face = basicfont.Face7x13

type button struct {
	Label string
	Rect  image.Rectangle
}

func (b button) hit(x, y int) bool {
	return pointInRect(x, y, b.Rect)
}

// drawButton renders a beveled button. Accent buttons use the theme accent as
// their face; disabled ones are flattened and greyed.
func drawButton(screen *ebiten.Image, b button, accent, enabled bool, p palette) {
	r := b.Rect
	fill, label := p.Control, p.FG
	if accent {
		fill, label = p.Accent, p.OnAccent
	}
	if !enabled {
		fill, label = p.Control, p.Disabled
	}
	drawBevel(screen, r, fill, p.Light, p.Dark)
	if !enabled {
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, p.Disabled, false)
	}
	drawTextCentered(screen, b.Label, r.Min.X, r.Min.Y+(r.Dy()-13)/2, r.Dx(), label)
}

func drawBevel(screen *ebiten.Image, r image.Rectangle, fill, hi, lo color.Color) {
	x, y, w, h := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeLine(screen, x, y, x+w, y, 2, hi, false)
	vector.StrokeLine(screen, x, y, x, y+h, 2, hi, false)
	vector.StrokeLine(screen, x+w, y, x+w, y+h, 2, lo, false)
	vector.StrokeLine(screen, x, y+h, x+w, y+h, 2, lo, false)
}

// drawSunken is drawBevel with the light edge at the bottom right.
func drawSunken(screen *ebiten.Image, r image.Rectangle, fill color.Color, p palette) {
	drawBevel(screen, r, fill, p.Dark, p.Light)
}

func drawTextCentered(screen *ebiten.Image, s string, x, y, w int, clr color.Color) {
	tw := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, x+(w-tw)/2, y+13, clr)
}

// drawOverlayPanel dims the window and shows a titled panel in the middle.
func drawOverlayPanel(screen *ebiten.Image, title string, lines []string, p palette) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), p.Overlay)

	pw, ph := min(340, w-40), 150
	px, py := (w-pw)/2, (h-ph)/2
	panel := image.Rect(px, py, px+pw, py+ph)
	drawSunken(screen, panel, p.Control, p)
	ebitenutil.DrawRect(screen, float64(px), float64(py), float64(pw), 26, p.Accent)

	drawTextCentered(screen, title, px, py+6, pw, p.OnAccent)
	y := py + 50
	for _, ln := range lines {
		drawTextCentered(screen, ln, px, y, pw, p.FG)
		y += 22
	}
}

// drawCounter draws value as a row of seven-segment digits, each scale times
// the 18x24 base cell.
func drawCounter(screen *ebiten.Image, x, y, value, digits int, scale float64, p palette) {
	cw := 18 * scale
	ebitenutil.DrawRect(screen, float64(x)-3*scale, float64(y)-3*scale, float64(digits)*cw+6*scale, 30*scale, p.DigitBox)

	n := max(value, 0)
	chars := make([]int, digits)
	for i := digits - 1; i >= 0; i-- {
		chars[i] = n % 10
		n /= 10
	}
	for i, d := range chars {
		drawSegments(screen, float64(x)+float64(i)*cw, float64(y), d, scale, p.Digit, p.DigitOff)
	}
}

// segment bits: a b c d e f g, high to low
var digitMasks = [10]int{
	0b1111110,
	0b0110000,
	0b1101101,
	0b1111001,
	0b0110011,
	0b1011011,
	0b1011111,
	0b1110000,
	0b1111111,
	0b1111011,
}

var segmentRects = [7][4]float64{
	{3, 0, 10, 2},  // a
	{13, 2, 2, 9},  // b
	{13, 13, 2, 9}, // c
	{3, 22, 10, 2}, // d
	{1, 13, 2, 9},  // e
	{1, 2, 2, 9},   // f
	{3, 11, 10, 2}, // g
}

func drawSegments(screen *ebiten.Image, x, y float64, d int, scale float64, on, off color.Color) {
	mask := digitMasks[d%10]
	for i, r := range segmentRects {
		clr := off
		if mask&(1<<(6-i)) != 0 {
			clr = on
		}
		ebitenutil.DrawRect(screen, x+r[0]*scale, y+r[1]*scale, r[2]*scale, r[3]*scale, clr)
	}
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}
