// Package audio plays short synthesized cues at the end of a game.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/number-guesser/constants"
)

// Player owns the speaker for the process lifetime
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	timeout     time.Duration
	initialized bool
}

// NewPlayer creates an uninitialized player; Play is a no-op until Init succeeds
func NewPlayer() *Player {
	return &Player{
		rate:    beep.SampleRate(constants.CueSampleRate),
		timeout: constants.CueWaitTimeout,
	}
}

// Init opens the audio device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(constants.CueBufferDuration)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	p.initialized = true
	return nil
}

// Play blocks until the cue finishes or the wait timeout elapses
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := c.Streamer(p.rate)
	if s == nil {
		return
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
	case <-time.After(p.timeout):
		speaker.Clear()
	}
}

// Close releases the audio device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
