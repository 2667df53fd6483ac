package effects

import (
	"math"

	"github.com/velverin/phosphene"
)

// Wave displaces objects vertically with a sine traveling along X, phase
// advancing with the beat.
type Wave struct {
	phosphene.PropertySet
}

func NewWave() *Wave {
	return &Wave{PropertySet: phosphene.NewPropertySet("wave", phosphene.PropertyList{
		{Name: "amplitude", Value: 0.5, UIType: phosphene.UISlider, Min: 0, Max: 10, Step: 0.05,
			Label: "Amplitude", Description: "Peak vertical displacement"},
		{Name: "wavelength", Value: 4.0, UIType: phosphene.UISlider, Min: 0.2, Max: 40, Step: 0.2,
			Label: "Wavelength", Description: "X distance of one full wave"},
		{Name: "speed", Value: 1.0, UIType: phosphene.UISlider, Min: -8, Max: 8, Step: 0.1,
			Label: "Speed", Description: "Wave cycles per beat; negative runs the wave backwards"},
	})}
}

func (e *Wave) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	amplitude := props.Float("amplitude")
	wavelength := props.Float("wavelength")
	speed := props.Float("speed")
	if wavelength == 0 {
		wavelength = 1
	}
	ret := make([]phosphene.VisualObject, len(objects))
	for i, o := range objects {
		phase := o.Properties.Position[0]/wavelength - time*speed
		o.Properties.Position[1] += amplitude * math.Sin(2*math.Pi*phase)
		ret[i] = o
	}
	return ret
}

func (e *Wave) Clone() phosphene.Effect {
	return &Wave{PropertySet: e.CopyProperties()}
}
