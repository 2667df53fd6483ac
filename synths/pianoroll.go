package synths

import "github.com/velverin/phosphene"

// PianoRoll renders notes as falling blocks, the familiar piano tutorial
// view: pitch is the X lane, the note's distance from the playhead is Y, the
// note duration is the block's height. Notes crossing the playhead light up
// with the envelope.
type PianoRoll struct {
	phosphene.PropertySet
}

func NewPianoRoll() *PianoRoll {
	props := append(adsrProperties(0.0, 0.05, 0.9, 0.2), phosphene.PropertyList{
		{Name: "laneWidth", Value: 0.22, UIType: phosphene.UISlider, Min: 0.05, Max: 1, Step: 0.01,
			Label: "Lane width", Description: "X distance between adjacent pitches"},
		{Name: "fallSpeed", Value: 1.5, UIType: phosphene.UISlider, Min: 0.2, Max: 8, Step: 0.1,
			Label: "Fall speed", Description: "Y distance per beat"},
		{Name: "lookahead", Value: 8.0, UIType: phosphene.UISlider, Min: 1, Max: 32, Step: 0.5,
			Label: "Lookahead", Description: "How many beats ahead of the playhead are shown"},
	}...)
	return &PianoRoll{PropertySet: phosphene.NewPropertySet("pianoroll", props)}
}

func (s *PianoRoll) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	laneWidth := props.Float("laneWidth")
	fallSpeed := props.Float("fallSpeed")
	lookahead := props.Float("lookahead")
	env := envelope(props)
	spb := phosphene.SecondsPerBeat(bpm)

	// This synth shows upcoming notes too, so it cannot use forEachActive's
	// now-only windowing; it walks the blocks itself with the same
	// malformed-data rules.
	var ret []phosphene.VisualObject
	for i := range blocks {
		b := &blocks[i]
		if !b.Valid() || b.Start > time+lookahead || b.End+env.ReleaseBeats(bpm) < time {
			continue
		}
		for _, n := range b.Notes {
			if !n.Valid() {
				continue
			}
			on := b.Start + n.Start
			off := on + n.Duration
			if on > time+lookahead || off+env.ReleaseBeats(bpm) < time {
				continue
			}
			amp := env.Amplitude(time*spb, on*spb, off*spb)
			mid := (on+off)/2 - time
			ret = append(ret, phosphene.VisualObject{
				Type: "box",
				Properties: phosphene.ObjectProperties{
					Position: phosphene.Vec3{(float64(n.Pitch) - 64) * laneWidth, mid * fallSpeed, 0},
					Scale:    phosphene.Vec3{laneWidth * 0.9, n.Duration * fallSpeed, laneWidth * 0.9},
					Color:    phosphene.HueColor(float64(n.Pitch%12)*30, 0.75, 0.4+0.3*amp),
					Opacity:  0.35 + 0.65*amp,
				},
			})
		}
	}
	return ret
}

func (s *PianoRoll) Clone() phosphene.Synthesizer {
	return &PianoRoll{PropertySet: s.CopyProperties()}
}
