package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/number-guesser/constants"
)

// Cue identifies an end-of-game sound
type Cue int

const (
	CueNone       Cue = iota
	CueWin            // rising major arpeggio
	CueNumberwang     // fast square-wave fanfare
	CueLoss           // falling saw tones
)

func (c Cue) String() string {
	switch c {
	case CueWin:
		return "win"
	case CueNumberwang:
		return "numberwang"
	case CueLoss:
		return "loss"
	default:
		return "none"
	}
}

// note is one step of a cue
type note struct {
	freq float64
	wave WaveType
	len  int // multiples of CueNoteDuration
}

// Note frequencies (Hz)
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	noteA4 = 440.00
	noteF4 = 349.23
	noteD4 = 293.66
)

var cueNotes = map[Cue][]note{
	CueWin: {
		{noteC5, WaveSine, 1},
		{noteE5, WaveSine, 1},
		{noteG5, WaveSine, 1},
		{noteC6, WaveSine, 2},
	},
	CueNumberwang: {
		{noteG5, WaveSquare, 1},
		{noteC6, WaveSquare, 1},
		{noteG5, WaveSquare, 1},
		{noteC6, WaveSquare, 1},
		{noteC6, WaveSquare, 3},
	},
	CueLoss: {
		{noteA4, WaveSaw, 2},
		{noteF4, WaveSaw, 2},
		{noteD4, WaveSaw, 4},
	},
}

// Streamer builds the sample stream for c at the given rate
// Returns nil for CueNone or an unknown cue
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := time.Duration(n.len) * constants.CueNoteDuration
		osc := NewOscillator(n.freq, d, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, d, constants.CueAttack, constants.CueRelease, rate))
	}

	// Square and saw cues play at half gain
	gain := 1.0
	if c != CueWin {
		gain = 0.5
	}
	return &effects.Volume{
		Streamer: newVolume(beep.Seq(parts...), gain),
		Base:     2,
		Volume:   constants.CueVolume,
	}
}

// Duration is the total playing time of c
func (c Cue) Duration() time.Duration {
	var total time.Duration
	for _, n := range cueNotes[c] {
		total += time.Duration(n.len) * constants.CueNoteDuration
	}
	return total
}
