package synths

import "github.com/velverin/phosphene"

// Cubes is the default synthesizer: one cube per active note, laid out along
// the X axis by pitch, scaled by velocity times the envelope amplitude and
// colored by pitch class.
type Cubes struct {
	phosphene.PropertySet
}

func NewCubes() *Cubes {
	props := append(adsrProperties(0.05, 0.1, 0.7, 0.3), phosphene.PropertyList{
		{Name: "spacing", Value: 0.5, UIType: phosphene.UISlider, Min: 0.1, Max: 2, Step: 0.05,
			Label: "Spacing", Description: "Distance between adjacent pitches along X"},
		{Name: "baseScale", Value: 0.8, UIType: phosphene.UISlider, Min: 0.1, Max: 4, Step: 0.05,
			Label: "Size", Description: "Cube edge length at full velocity and amplitude"},
		{Name: "height", Value: 0.0, UIType: phosphene.UISlider, Min: -10, Max: 10, Step: 0.1,
			Label: "Height", Description: "Y position of the cube row"},
		{Name: "saturation", Value: 0.85, UIType: phosphene.UISlider, Min: 0, Max: 1, Step: 0.01,
			Label: "Saturation", Description: "Color saturation of the pitch-class hue"},
	}...)
	return &Cubes{PropertySet: phosphene.NewPropertySet("cubes", props)}
}

func (s *Cubes) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	spacing := props.Float("spacing")
	baseScale := props.Float("baseScale")
	height := props.Float("height")
	saturation := props.Float("saturation")
	var ret []phosphene.VisualObject
	forEachActive(time, blocks, bpm, envelope(props), func(n activeNote) {
		// center the 128-pitch row around the origin
		x := (float64(n.Pitch) - 64) * spacing
		size := baseScale * float64(n.Velocity) / 127 * n.Amplitude
		ret = append(ret, phosphene.VisualObject{
			Type: "cube",
			Properties: phosphene.ObjectProperties{
				Position: phosphene.Vec3{x, height, 0},
				Scale:    phosphene.Uniform(size),
				Color:    phosphene.HueColor(float64(n.Pitch%12)*30, saturation, 0.55),
				Opacity:  n.Amplitude,
			},
		})
	})
	return ret
}

func (s *Cubes) Clone() phosphene.Synthesizer {
	return &Cubes{PropertySet: s.CopyProperties()}
}
