package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/04pril/mega-guess/internal/app"
)

const (
	Title        = "Mega Guessing Game"
	ScreenWidth  = 450
	ScreenHeight = 550

	caretBlink = 500 * time.Millisecond
)

var entryRect = image.Rect(125, 206, 325, 256)

// Game adapts an app.App to ebiten's game loop.
type Game struct {
	app *app.App

	guessBtn button
	startBtn button
	themeBtn button

	last  time.Time
	blink time.Duration
	runes []rune
}

func NewGame(a *app.App) *Game {
	return &Game{
		app:      a,
		guessBtn: button{Label: "GUESS", Rect: image.Rect(165, 276, 285, 312)},
		startBtn: button{Label: "START GAME", Rect: image.Rect(150, 336, 300, 372)},
		themeBtn: button{Label: "Toggle Theme", Rect: image.Rect(165, 490, 285, 520)},
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) Update() error {
	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now
	g.blink += dt

	g.handleKeys()
	for _, pt := range pressedPoints() {
		g.handleClick(pt.X, pt.Y)
	}
	g.app.Advance(dt)
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.app.ToggleTheme()
	}

	if _, ok := g.app.Outcome(); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.app.DismissOutcome()
		}
		return
	}

	if !g.app.InputEnabled() {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.app.Start()
		}
		return
	}

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	if len(g.runes) > 0 {
		g.app.TypeRunes(g.runes)
		g.blink = 0
	}
	if repeating(ebiten.KeyBackspace) {
		g.app.Backspace()
		g.blink = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		g.app.SubmitGuess()
	}
}

func (g *Game) handleClick(x, y int) {
	if _, ok := g.app.Outcome(); ok {
		g.app.DismissOutcome()
		return
	}
	switch {
	case g.themeBtn.hit(x, y):
		g.app.ToggleTheme()
	case g.startBtn.hit(x, y):
		g.app.Start()
	case g.guessBtn.hit(x, y):
		g.app.SubmitGuess()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	p := paletteFor(g.app.Theme())
	screen.Fill(p.BG)
	w := ScreenWidth

	drawTextCentered(screen, g.app.BestLabel(), 0, 24, w, p.FG)

	// two digits at triple size
	const scale = 3.0
	cx := w/2 - int(18*scale)
	drawCounter(screen, cx, 64, g.app.Remaining(), 2, scale, p)
	drawTextCentered(screen, "s", cx+int(36*scale)+6, 64+int(18*scale), 12, p.Digit)

	drawTextCentered(screen, g.app.Hint(), 0, 172, w, p.FG)

	g.drawEntry(screen, p)
	drawButton(screen, g.guessBtn, true, g.app.InputEnabled(), p)
	drawButton(screen, g.startBtn, true, g.app.StartEnabled(), p)

	drawTextCentered(screen, fmt.Sprintf("Guesses: %d", g.app.Guesses()), 0, 400, w, p.FGSoft)
	drawTextCentered(screen, "Enter: guess | Space: start | T: theme", 0, 440, w, p.FGSoft)

	drawButton(screen, g.themeBtn, false, true, p)

	if o, ok := g.app.Outcome(); ok {
		lines := []string{o.Message()}
		if o.NewBest {
			lines = append(lines, "New best score!")
		}
		lines = append(lines, "(Click or press Enter)")
		drawOverlayPanel(screen, o.Title(), lines, p)
	}
}

func (g *Game) drawEntry(screen *ebiten.Image, p palette) {
	enabled := g.app.InputEnabled()
	fill := p.Control
	if !enabled {
		fill = p.BG
	}
	drawSunken(screen, entryRect, fill, p)

	s := g.app.Entry()
	if enabled && (g.blink/caretBlink)%2 == 0 {
		s += "_"
	}
	clr := p.FG
	if !enabled {
		clr = p.Disabled
	}
	drawTextCentered(screen, s, entryRect.Min.X, entryRect.Min.Y+(entryRect.Dy()-13)/2, entryRect.Dx(), clr)
}

// repeating reports a key press plus auto-repeat while it is held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && d%4 == 0)
}

// pressedPoints collects left clicks and finished taps for this frame.
func pressedPoints() []image.Point {
	var pts []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, image.Pt(x, y))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}
