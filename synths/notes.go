package synths

import "github.com/velverin/phosphene"

type (
	// activeNote is one note that is audible at the query time: the note
	// itself, its envelope amplitude and its absolute placement. Index counts
	// over all notes of all blocks in order, skipped or not, so it is a stable
	// identity a synth can use for deterministic per-note variation.
	activeNote struct {
		phosphene.Note
		Amplitude float64
		On, Off   float64 // absolute beats
		Index     int
	}
)

// forEachActive calls yield for every note whose envelope is above the
// epsilon at the given beat. Blocks whose release-extended span does not
// contain the beat are skipped wholesale; malformed blocks and notes are
// treated as permanently inactive. Iteration order is block order, then note
// order, so output order is deterministic.
func forEachActive(time float64, blocks []phosphene.Block, bpm float64, env phosphene.Envelope, yield func(activeNote)) {
	spb := phosphene.SecondsPerBeat(bpm)
	tail := env.ReleaseBeats(bpm)
	index := 0
	for i := range blocks {
		b := &blocks[i]
		if !b.Spans(time, tail) {
			index += len(b.Notes)
			continue
		}
		for _, n := range b.Notes {
			index++
			if !n.Valid() {
				continue
			}
			on := b.Start + n.Start
			off := on + n.Duration
			amp := env.Amplitude(time*spb, on*spb, off*spb)
			if amp < amplitudeEpsilon {
				continue
			}
			yield(activeNote{Note: n, Amplitude: amp, On: on, Off: off, Index: index - 1})
		}
	}
}

// hash01 maps an integer to a deterministic pseudo-random float in [0,1).
// Same integer splitmix-style finalizer the jitter effect uses; good enough
// scatter for visual variation and fully reproducible.
func hash01(v uint64) float64 {
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	v *= 0xc4ceb9fe1a85ec53
	v ^= v >> 33
	return float64(v>>11) / float64(1<<53)
}
