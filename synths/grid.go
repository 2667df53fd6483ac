package synths

import "github.com/velverin/phosphene"

// Grid lights up cells in a fixed 12 by 11 wall: pitch class is the column,
// octave the row. Unlike most synths it emits the silent cells too, dimmed,
// so the wall is always visible; cells under active notes scale up and
// brighten with the envelope.
type Grid struct {
	phosphene.PropertySet
}

func NewGrid() *Grid {
	props := append(adsrProperties(0.02, 0.1, 0.8, 0.3), phosphene.PropertyList{
		{Name: "cellSize", Value: 0.4, UIType: phosphene.UISlider, Min: 0.1, Max: 2, Step: 0.05,
			Label: "Cell size", Description: "Edge length of an idle cell"},
		{Name: "gap", Value: 0.5, UIType: phosphene.UISlider, Min: 0.1, Max: 2, Step: 0.05,
			Label: "Gap", Description: "Center-to-center distance between cells"},
		{Name: "idleOpacity", Value: 0.08, UIType: phosphene.UISlider, Min: 0, Max: 1, Step: 0.01,
			Label: "Idle opacity", Description: "Opacity of cells with no active note; 0 hides them"},
		{Name: "punch", Value: 1.8, UIType: phosphene.UISlider, Min: 1, Max: 4, Step: 0.05,
			Label: "Punch", Description: "Scale multiplier of a fully lit cell"},
	}...)
	return &Grid{PropertySet: phosphene.NewPropertySet("grid", props)}
}

func (s *Grid) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	props := s.Props()
	cellSize := props.Float("cellSize")
	gap := props.Float("gap")
	idleOpacity := props.Float("idleOpacity")
	punch := props.Float("punch")

	// per-cell peak amplitude; overlapping notes on the same cell take the max
	var levels [12 * 11]float64
	forEachActive(time, blocks, bpm, envelope(props), func(n activeNote) {
		cell := n.Pitch%12 + (n.Pitch/12)*12
		if n.Amplitude > levels[cell] {
			levels[cell] = n.Amplitude
		}
	})

	var ret []phosphene.VisualObject
	for class := 0; class < 12; class++ {
		for octave := 0; octave < 11; octave++ {
			level := levels[class+octave*12]
			opacity := idleOpacity + (1-idleOpacity)*level
			if opacity < amplitudeEpsilon {
				continue
			}
			ret = append(ret, phosphene.VisualObject{
				Type: "box",
				Properties: phosphene.ObjectProperties{
					Position: phosphene.Vec3{(float64(class) - 5.5) * gap, (float64(octave) - 5) * gap, 0},
					Scale:    phosphene.Uniform(cellSize * (1 + (punch-1)*level)),
					Color:    phosphene.HueColor(float64(class)*30, 0.8, 0.3+0.4*level),
					Opacity:  opacity,
				},
			})
		}
	}
	return ret
}

func (s *Grid) Clone() phosphene.Synthesizer {
	return &Grid{PropertySet: s.CopyProperties()}
}
