package synths

import "github.com/velverin/phosphene"

// Bars draws a bar graph: a vertical box per note whose height follows the
// envelope. Bars grow upward from a floor line, so the box center moves up by
// half the height.
type Bars struct {
	phosphene.PropertySet
}

func NewBars() *Bars {
	props := append(adsrProperties(0.02, 0.05, 0.8, 0.25), phosphene.PropertyList{
		{Name: "maxHeight", Value: 4.0, UIType: phosphene.UISlider, Min: 0.5, Max: 20, Step: 0.1,
			Label: "Max height", Description: "Bar height at full velocity and amplitude"},
		{Name: "width", Value: 0.3, UIType: phosphene.UISlider, Min: 0.05, Max: 2, Step: 0.05,
			Label: "Width", Description: "Bar width and depth"},
		{Name: "spacing", Value: 0.4, UIType: phosphene.UISlider, Min: 0.1, Max: 2, Step: 0.05,
			Label: "Spacing", Description: "Distance between adjacent pitches along X"},
		{Name: "floor", Value: 0.0, UIType: phosphene.UISlider, Min: -10, Max: 10, Step: 0.1,
			Label: "Floor", Description: "Y position the bars grow from"},
	}...)
	return &Bars{PropertySet: phosphene.NewPropertySet("bars", props)}
}

func (s *Bars) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	maxHeight := props.Float("maxHeight")
	width := props.Float("width")
	spacing := props.Float("spacing")
	floor := props.Float("floor")
	var ret []phosphene.VisualObject
	forEachActive(time, blocks, bpm, envelope(props), func(n activeNote) {
		height := maxHeight * float64(n.Velocity) / 127 * n.Amplitude
		ret = append(ret, phosphene.VisualObject{
			Type: "box",
			Properties: phosphene.ObjectProperties{
				Position: phosphene.Vec3{(float64(n.Pitch) - 64) * spacing, floor + height/2, 0},
				Scale:    phosphene.Vec3{width, height, width},
				Color:    phosphene.HueColor(240-n.Amplitude*240, 0.9, 0.5),
				Opacity:  1,
			},
		})
	})
	return ret
}

func (s *Bars) Clone() phosphene.Synthesizer {
	return &Bars{PropertySet: s.CopyProperties()}
}
