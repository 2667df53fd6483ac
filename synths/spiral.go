package synths

import (
	"math"

	"github.com/velverin/phosphene"
)

// Spiral places notes on a helix: the pitch class is the angle, the octave is
// the turn, so an octave jump lands directly above its lower neighbor.
type Spiral struct {
	phosphene.PropertySet
}

func NewSpiral() *Spiral {
	props := append(adsrProperties(0.05, 0.15, 0.6, 0.5), phosphene.PropertyList{
		{Name: "radius", Value: 3.0, UIType: phosphene.UISlider, Min: 0.5, Max: 10, Step: 0.1,
			Label: "Radius", Description: "Radius of the helix"},
		{Name: "pitch", Value: 1.2, UIType: phosphene.UISlider, Min: 0.1, Max: 5, Step: 0.1,
			Label: "Rise", Description: "Height gained per octave"},
		{Name: "size", Value: 0.5, UIType: phosphene.UISlider, Min: 0.05, Max: 3, Step: 0.05,
			Label: "Size", Description: "Object size at full velocity and amplitude"},
	}...)
	return &Spiral{PropertySet: phosphene.NewPropertySet("spiral", props)}
}

func (s *Spiral) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	radius := props.Float("radius")
	rise := props.Float("pitch")
	size := props.Float("size")
	var ret []phosphene.VisualObject
	forEachActive(time, blocks, bpm, envelope(props), func(n activeNote) {
		angle := float64(n.Pitch%12) / 12 * 2 * math.Pi
		octave := float64(n.Pitch / 12)
		ret = append(ret, phosphene.VisualObject{
			Type: "sphere",
			Properties: phosphene.ObjectProperties{
				Position: phosphene.Vec3{radius * math.Cos(angle), (octave - 5) * rise, radius * math.Sin(angle)},
				Scale:    phosphene.Uniform(size * float64(n.Velocity) / 127 * n.Amplitude),
				Color:    phosphene.HueColor(float64(n.Pitch%12)*30, 0.9, 0.55),
				Opacity:  1,
			},
		})
	})
	return ret
}

func (s *Spiral) Clone() phosphene.Synthesizer {
	return &Spiral{PropertySet: s.CopyProperties()}
}
