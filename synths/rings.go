package synths

import "github.com/velverin/phosphene"

// Rings emits an expanding torus per note, like a ripple: the ring radius
// grows with the time since note-on and the envelope fades it out.
type Rings struct {
	phosphene.PropertySet
}

func NewRings() *Rings {
	props := append(adsrProperties(0.0, 0.3, 0.5, 1.0), phosphene.PropertyList{
		{Name: "growth", Value: 2.0, UIType: phosphene.UISlider, Min: 0.1, Max: 10, Step: 0.1,
			Label: "Growth", Description: "Ring radius growth per beat since note start"},
		{Name: "thickness", Value: 0.08, UIType: phosphene.UISlider, Min: 0.01, Max: 0.5, Step: 0.01,
			Label: "Thickness", Description: "Tube thickness of the torus"},
		{Name: "tilt", Value: 90.0, UIType: phosphene.UISlider, Min: 0, Max: 90, Step: 1,
			Label: "Tilt", Description: "X rotation of the rings, in degrees"},
	}...)
	return &Rings{PropertySet: phosphene.NewPropertySet("rings", props)}
}

func (s *Rings) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	growth := props.Float("growth")
	thickness := props.Float("thickness")
	tilt := props.Float("tilt")
	var ret []phosphene.VisualObject
	forEachActive(time, blocks, bpm, envelope(props), func(n activeNote) {
		radius := (time - n.On) * growth
		if radius <= 0 {
			return
		}
		ret = append(ret, phosphene.VisualObject{
			Type: "torus",
			Properties: phosphene.ObjectProperties{
				Position: phosphene.Vec3{0, (float64(n.Pitch) - 64) * 0.05, 0},
				Rotation: phosphene.Vec3{tilt, 0, 0},
				Scale:    phosphene.Vec3{radius, radius, thickness},
				Color:    phosphene.HueColor(float64(n.Pitch%12)*30, 0.8, 0.6),
				Opacity:  n.Amplitude,
			},
		})
	})
	return ret
}

func (s *Rings) Clone() phosphene.Synthesizer {
	return &Rings{PropertySet: s.CopyProperties()}
}
