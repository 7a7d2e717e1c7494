// Package sound synthesizes the game's feedback cues as raw PCM.
package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate matches the audio context opened by the view.
const SampleRate = 44100

type Cue int

const (
	CueTick Cue = iota
	CueMiss
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CueTick:
		return "tick"
	case CueMiss:
		return "miss"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	}
	return "unknown"
}

// Cues lists every cue, in declaration order.
var Cues = []Cue{CueTick, CueMiss, CueWin, CueLose}

type note struct {
	freq float64
	dur  time.Duration
}

var scores = map[Cue][]note{
	CueTick: {{1000, 50 * time.Millisecond}},
	CueMiss: {{440, 90 * time.Millisecond}},
	CueWin:  {{523.25, 110 * time.Millisecond}, {659.25, 110 * time.Millisecond}, {783.99, 220 * time.Millisecond}},
	CueLose: {{392, 180 * time.Millisecond}, {311.13, 180 * time.Millisecond}, {196, 320 * time.Millisecond}},
}

// PCM renders a cue as 16-bit little-endian stereo samples.
func PCM(c Cue) []byte {
	var out []byte
	for _, n := range scores[c] {
		out = append(out, tone(n.freq, n.dur, 0.3)...)
	}
	return out
}

// Duration reports how long a cue plays.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range scores[c] {
		d += n.dur
	}
	return d
}

func tone(freq float64, dur time.Duration, vol float64) []byte {
	n := int(dur.Seconds() * SampleRate)
	buf := make([]byte, n*4)
	fade := SampleRate / 200
	for i := 0; i < n; i++ {
		amp := vol
		// short linear ramps keep the edges from clicking
		if i < fade {
			amp *= float64(i) / float64(fade)
		} else if n-i < fade {
			amp *= float64(n-i) / float64(fade)
		}
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/SampleRate))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
