package synths

import "github.com/velverin/phosphene"

// Spheres scatters one sphere per note: pitch maps to height, the note's
// start beat spreads the spheres along X, and the envelope drives opacity so
// notes bloom in and fade out in place.
type Spheres struct {
	phosphene.PropertySet
}

func NewSpheres() *Spheres {
	props := append(adsrProperties(0.1, 0.2, 0.6, 0.8), phosphene.PropertyList{
		{Name: "radius", Value: 0.4, UIType: phosphene.UISlider, Min: 0.05, Max: 3, Step: 0.05,
			Label: "Radius", Description: "Sphere radius at full velocity"},
		{Name: "beatSpread", Value: 1.0, UIType: phosphene.UISlider, Min: 0.1, Max: 4, Step: 0.1,
			Label: "Beat spread", Description: "X distance per beat of note start"},
		{Name: "pitchSpread", Value: 0.15, UIType: phosphene.UISlider, Min: 0.01, Max: 1, Step: 0.01,
			Label: "Pitch spread", Description: "Y distance per semitone"},
		{Name: "depthJitter", Value: 2.0, UIType: phosphene.UISlider, Min: 0, Max: 10, Step: 0.1,
			Label: "Depth jitter", Description: "Deterministic per-note Z scatter"},
	}...)
	return &Spheres{PropertySet: phosphene.NewPropertySet("spheres", props)}
}

func (s *Spheres) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	radius := props.Float("radius")
	beatSpread := props.Float("beatSpread")
	pitchSpread := props.Float("pitchSpread")
	depthJitter := props.Float("depthJitter")
	var ret []phosphene.VisualObject
	forEachActive(time, blocks, bpm, envelope(props), func(n activeNote) {
		// jitter depends only on the note's identity, so the sphere stays put
		// over its whole lifetime
		z := (hash01(uint64(n.Index)*0x9e3779b97f4a7c15+uint64(n.Pitch)) - 0.5) * depthJitter
		ret = append(ret, phosphene.VisualObject{
			Type: "sphere",
			Properties: phosphene.ObjectProperties{
				Position: phosphene.Vec3{(n.On - time) * beatSpread, (float64(n.Pitch) - 64) * pitchSpread, z},
				Scale:    phosphene.Uniform(radius * float64(n.Velocity) / 127),
				Color:    phosphene.HueColor(float64(n.Pitch)*2.8125, 0.7, 0.6),
				Opacity:  n.Amplitude,
			},
		})
	})
	return ret
}

func (s *Spheres) Clone() phosphene.Synthesizer {
	return &Spheres{PropertySet: s.CopyProperties()}
}
