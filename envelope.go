package phosphene

type (
	// Envelope is a linear ADSR amplitude envelope. All four fields are in
	// seconds except Sustain, which is the 0..1 level held between the decay
	// and release phases.
	Envelope struct {
		Attack  float64
		Decay   float64
		Sustain float64
		Release float64
	}
)

// SecondsPerBeat converts a tempo to the duration of one beat. A nonpositive
// bpm falls back to 120 so callers never divide by zero.
func SecondsPerBeat(bpm float64) float64 {
	if bpm <= 0 {
		bpm = 120
	}
	return 60 / bpm
}

// Amplitude evaluates the envelope at time t for a note sounding from noteOn
// to noteOff, all in seconds on the same absolute clock. The result is always
// in [0,1]. Zero-length phases are special-cased: a zero attack is at full
// level immediately at noteOn, a zero decay jumps straight to the sustain
// level, and a zero release cuts to silence right after noteOff. None of the
// branches divide by a phase length that can be zero, so the result is never
// NaN.
func (e Envelope) Amplitude(t, noteOn, noteOff float64) float64 {
	if t < noteOn || noteOff < noteOn {
		return 0
	}
	if t > noteOff {
		// The release starts from wherever the envelope was when the note
		// ended, which for notes shorter than attack+decay is not the sustain
		// level.
		return e.releaseFrom(t, noteOff, e.levelAtRelease(noteOff-noteOn))
	}
	dt := t - noteOn
	if dt < e.Attack {
		return dt / e.Attack // e.Attack > dt >= 0, so no division by zero
	}
	if dt < e.Attack+e.Decay {
		return e.decayLevel(dt)
	}
	return e.Sustain
}

// ReleaseBeats returns the release time converted to beats at the given
// tempo, i.e. how far past a note's end it can still be audible.
func (e Envelope) ReleaseBeats(bpm float64) float64 {
	return e.Release / SecondsPerBeat(bpm)
}

func (e Envelope) decayLevel(dt float64) float64 {
	if e.Decay <= 0 {
		return e.Sustain
	}
	return 1 - (1-e.Sustain)*((dt-e.Attack)/e.Decay)
}

// levelAtRelease is the envelope level at the moment the note ends, which is
// the sustain level unless the note was cut short mid-attack or mid-decay.
func (e Envelope) levelAtRelease(noteLen float64) float64 {
	if noteLen < e.Attack {
		if e.Attack <= 0 {
			return 1
		}
		return noteLen / e.Attack
	}
	if noteLen < e.Attack+e.Decay {
		return e.decayLevel(noteLen)
	}
	return e.Sustain
}

func (e Envelope) releaseFrom(t, noteOff, level float64) float64 {
	if e.Release <= 0 {
		return 0
	}
	dt := t - noteOff
	if dt >= e.Release {
		return 0
	}
	return level * (1 - dt/e.Release)
}
