package ui

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"github.com/04pril/mega-guess/internal/sound"
)

// Audio plays the synthesized cues through ebiten's audio context.
type Audio struct {
	players map[sound.Cue]*audio.Player
}

// NewAudio opens the process-wide audio context. Call it at most once.
func NewAudio() *Audio {
	ctx := audio.NewContext(sound.SampleRate)
	a := &Audio{players: make(map[sound.Cue]*audio.Player, len(sound.Cues))}
	for _, c := range sound.Cues {
		a.players[c] = ctx.NewPlayerFromBytes(sound.PCM(c))
	}
	return a
}

func (a *Audio) Play(c sound.Cue) {
	p, ok := a.players[c]
	if !ok {
		return
	}
	if err := p.SetPosition(0); err != nil {
		log.Warn().Err(err).Stringer("cue", c).Msg("rewind failed")
		return
	}
	p.Play()
}
