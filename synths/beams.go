package synths

import "github.com/velverin/phosphene"

// Beams shoots thin boxes out of the origin, one per note. Pitch sets the yaw
// angle of the beam, velocity its length, the envelope its opacity.
type Beams struct {
	phosphene.PropertySet
}

func NewBeams() *Beams {
	props := append(adsrProperties(0.0, 0.1, 0.7, 0.4), phosphene.PropertyList{
		{Name: "length", Value: 6.0, UIType: phosphene.UISlider, Min: 1, Max: 30, Step: 0.5,
			Label: "Length", Description: "Beam length at full velocity"},
		{Name: "width", Value: 0.06, UIType: phosphene.UISlider, Min: 0.01, Max: 0.5, Step: 0.01,
			Label: "Width", Description: "Beam width and depth"},
		{Name: "fan", Value: 180.0, UIType: phosphene.UISlider, Min: 10, Max: 360, Step: 1,
			Label: "Fan", Description: "Total fan angle the 128 pitches spread over, in degrees"},
	}...)
	return &Beams{PropertySet: phosphene.NewPropertySet("beams", props)}
}

func (s *Beams) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	length := props.Float("length")
	width := props.Float("width")
	fan := props.Float("fan")
	var ret []phosphene.VisualObject
	forEachActive(time, blocks, bpm, envelope(props), func(n activeNote) {
		yaw := (float64(n.Pitch)/127 - 0.5) * fan
		l := length * float64(n.Velocity) / 127
		ret = append(ret, phosphene.VisualObject{
			Type: "box",
			Properties: phosphene.ObjectProperties{
				Position: phosphene.Vec3{0, 0, 0},
				Rotation: phosphene.Vec3{0, yaw, 0},
				Scale:    phosphene.Vec3{width, width, l},
				Color:    phosphene.HueColor(float64(n.Pitch)*2.8125, 1, 0.5),
				Opacity:  n.Amplitude,
			},
		})
	})
	return ret
}

func (s *Beams) Clone() phosphene.Synthesizer {
	return &Beams{PropertySet: s.CopyProperties()}
}
