package phosphene

import "fmt"

type (
	// Track is one lane of the editor: its MIDI blocks, the synthesizer
	// turning their notes into objects and the effect chain transforming the
	// result. Tracks never share instances; duplicating a track clones the
	// synthesizer and every effect.
	Track struct {
		Name   string
		Blocks []Block
		Synth  Synthesizer
		Chain  Chain
	}

	// Project is the whole editable document: a tempo and a list of tracks.
	Project struct {
		BPM    float64
		Tracks []Track
	}

	// TrackError reports a panic inside one track's synthesizer or effect,
	// caught at the track boundary so that the other tracks still render.
	TrackError struct {
		Track string
		Err   error
	}
)

func (e *TrackError) Error() string {
	return fmt.Sprintf("track %q: render failed: %v", e.Track, e.Err)
}

func (e *TrackError) Unwrap() error { return e.Err }

// Render evaluates the track at the given beat: synthesize, then fold through
// the effect chain. A panic anywhere inside the track's own units is converted
// to a *TrackError instead of taking down the caller's frame loop.
func (t *Track) Render(time float64, bpm float64) (objects []VisualObject, err error) {
	defer func() {
		if p := recover(); p != nil {
			objects = nil
			err = &TrackError{Track: t.Name, Err: fmt.Errorf("%v", p)}
		}
	}()
	if t.Synth == nil {
		return nil, nil
	}
	return t.Chain.Evaluate(t.Synth.Synthesize(time, t.Blocks, bpm), time, bpm), nil
}

// Copy makes a deep copy of a Track, cloning the synthesizer and effects.
func (t *Track) Copy() Track {
	ret := Track{Name: t.Name, Blocks: CopyBlocks(t.Blocks), Chain: t.Chain.Copy()}
	if t.Synth != nil {
		ret.Synth = t.Synth.Clone()
	}
	return ret
}

// Render evaluates every track at the given beat. Tracks that fail yield a nil
// slice and their error in the same position; one broken track does not stop
// the rest.
func (p *Project) Render(time float64) (objects [][]VisualObject, errs []error) {
	objects = make([][]VisualObject, len(p.Tracks))
	errs = make([]error, len(p.Tracks))
	for i := range p.Tracks {
		objects[i], errs[i] = p.Tracks[i].Render(time, p.BPM)
	}
	return objects, errs
}

// Copy makes a deep copy of a Project.
func (p *Project) Copy() Project {
	tracks := make([]Track, len(p.Tracks))
	for i := range p.Tracks {
		tracks[i] = p.Tracks[i].Copy()
	}
	return Project{BPM: p.BPM, Tracks: tracks}
}

// Validate checks that the project looks sane: positive tempo and every block
// inside every track well-formed. Malformed blocks do not make rendering fail,
// so this is only used to warn the user on load.
func (p *Project) Validate() []error {
	var errs []error
	if p.BPM <= 0 {
		errs = append(errs, fmt.Errorf("BPM should be > 0, was %v", p.BPM))
	}
	for _, t := range p.Tracks {
		for _, b := range t.Blocks {
			if !b.Valid() {
				errs = append(errs, fmt.Errorf("track %q: block %q ends (%v) before it starts (%v)", t.Name, b.ID, b.End, b.Start))
			}
			for _, n := range b.Notes {
				if !n.Valid() {
					errs = append(errs, fmt.Errorf("track %q: block %q: note %q can never sound (pitch %v, duration %v)", t.Name, b.ID, n.ID, n.Pitch, n.Duration))
				}
			}
		}
	}
	return errs
}
