package synths

import "github.com/velverin/phosphene"

// Particles bursts a deterministic cloud of small objects out of each note.
// The scatter directions are hashed from the note identity and the particle
// index, so the same query time always produces the same cloud; the cloud
// expands with time since note-on and fades with the envelope.
type Particles struct {
	phosphene.PropertySet
}

func NewParticles() *Particles {
	props := append(adsrProperties(0.0, 0.2, 0.4, 1.2), phosphene.PropertyList{
		{Name: "count", Value: 12, UIType: phosphene.UISlider, Min: 1, Max: 64, Step: 1,
			Label: "Count", Description: "Particles per note"},
		{Name: "speed", Value: 3.0, UIType: phosphene.UISlider, Min: 0.1, Max: 20, Step: 0.1,
			Label: "Speed", Description: "Cloud expansion per beat"},
		{Name: "size", Value: 0.12, UIType: phosphene.UISlider, Min: 0.01, Max: 1, Step: 0.01,
			Label: "Size", Description: "Particle size"},
	}...)
	return &Particles{PropertySet: phosphene.NewPropertySet("particles", props)}
}

func (s *Particles) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	count := props.Int("count")
	speed := props.Float("speed")
	size := props.Float("size")
	var ret []phosphene.VisualObject
	forEachActive(time, blocks, bpm, envelope(props), func(n activeNote) {
		origin := phosphene.Vec3{(float64(n.Pitch) - 64) * 0.2, 0, 0}
		dist := (time - n.On) * speed * float64(n.Velocity) / 127
		for i := 0; i < count; i++ {
			seed := uint64(n.Index)<<16 | uint64(i)
			dir := phosphene.Vec3{
				hash01(seed*3 + 0),
				hash01(seed*3 + 1),
				hash01(seed*3 + 2),
			}
			dir = dir.Add(phosphene.Uniform(-0.5)) // center on the origin
			ret = append(ret, phosphene.VisualObject{
				Type: "sphere",
				Properties: phosphene.ObjectProperties{
					Position: origin.Add(dir.Scaled(2 * dist)),
					Scale:    phosphene.Uniform(size),
					Color:    phosphene.HueColor(float64(n.Pitch%12)*30+hash01(seed)*20, 0.9, 0.6),
					Opacity:  n.Amplitude,
				},
			})
		}
	})
	return ret
}

func (s *Particles) Clone() phosphene.Synthesizer {
	return &Particles{PropertySet: s.CopyProperties()}
}
