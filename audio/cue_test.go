package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/number-guesser/constants"
)

const testRate = beep.SampleRate(8000)

// drain streams s to exhaustion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestCue_StreamLengthMatchesNotes(t *testing.T) {
	for _, c := range []Cue{CueWin, CueNumberwang, CueLoss} {
		t.Run(c.String(), func(t *testing.T) {
			s := c.Streamer(testRate)
			require.NotNil(t, s)

			want := 0
			for _, n := range cueNotes[c] {
				want += testRate.N(time.Duration(n.len) * constants.CueNoteDuration)
			}
			assert.Len(t, drain(t, s), want)
		})
	}
}

func TestCue_SamplesBounded(t *testing.T) {
	samples := drain(t, CueNumberwang.Streamer(testRate))
	for _, s := range samples {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.Equal(t, s[0], s[1], "cues are mono")
	}
}

func TestCue_None(t *testing.T) {
	assert.Nil(t, CueNone.Streamer(testRate))
	assert.Zero(t, CueNone.Duration())
}

func TestCue_Duration(t *testing.T) {
	assert.Equal(t, 5*constants.CueNoteDuration, CueWin.Duration())
	assert.Equal(t, 8*constants.CueNoteDuration, CueLoss.Duration())
	assert.Less(t, CueNumberwang.Duration(), constants.CueWaitTimeout)
}

func TestEnvelope_RampsFromSilence(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // phase stays 0, square wave holds +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	samples := drain(t, env)
	require.Len(t, samples, testRate.N(d))

	assert.Equal(t, 0.0, samples[0][0])
	assert.Equal(t, 1.0, samples[len(samples)/2][0])
	assert.InDelta(t, 0.0, samples[len(samples)-1][0], 0.02)
}

func TestOscillator_Saw(t *testing.T) {
	osc := NewOscillator(float64(testRate)/4, time.Second, WaveSaw, testRate)
	buf := make([][2]float64, 4)
	n, ok := osc.Stream(buf)

	require.True(t, ok)
	require.Equal(t, 4, n)
	assert.InDelta(t, -1.0, buf[0][0], 1e-9)
	assert.InDelta(t, -0.5, buf[1][0], 1e-9)
	assert.InDelta(t, 0.0, buf[2][0], 1e-9)
	assert.InDelta(t, 0.5, buf[3][0], 1e-9)
}

func TestPlayer_UninitializedIsNoop(t *testing.T) {
	p := NewPlayer()

	done := make(chan struct{})
	go func() {
		p.Play(CueWin)
		p.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Play blocked without an initialized speaker")
	}
}
