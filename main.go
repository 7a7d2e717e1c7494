package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/04pril/mega-guess/internal/app"
	"github.com/04pril/mega-guess/internal/config"
	"github.com/04pril/mega-guess/internal/score"
	"github.com/04pril/mega-guess/internal/ui"
)

func main() {
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	store := score.NewStore(cfg.ScoreFile)
	best := score.NewTracker(store.Load(), store)
	log.Info().Str("path", store.Path()).Str("best", best.Label()).Msg("score loaded")

	var sounds app.Sounder = app.Mute
	if !cfg.Mute {
		sounds = ui.NewAudio()
	}

	a := app.New(best, sounds, rand.New(rand.NewSource(time.Now().UnixNano())))

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle(ui.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(ui.NewGame(a)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
