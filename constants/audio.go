package constants

import "time"

// Audio cue parameters
const (
	// CueSampleRate is the speaker sample rate in Hz
	CueSampleRate = 44100

	// CueBufferDuration sizes the speaker buffer
	CueBufferDuration = 100 * time.Millisecond

	// CueNoteDuration is the length of a single cue note
	CueNoteDuration = 120 * time.Millisecond

	// CueAttack and CueRelease shape each note to avoid clicks
	CueAttack  = 5 * time.Millisecond
	CueRelease = 40 * time.Millisecond

	// CueVolume is the beep effects.Volume exponent (base 2) applied to cues
	CueVolume = -1.5

	// CueWaitTimeout bounds how long the process waits for a cue before exiting
	CueWaitTimeout = 2 * time.Second
)
