package effects

import "github.com/velverin/phosphene"

// ColorShift rotates the hue of every object, with an optional drift that
// keeps the hue moving over time.
type ColorShift struct {
	phosphene.PropertySet
}

func NewColorShift() *ColorShift {
	return &ColorShift{PropertySet: phosphene.NewPropertySet("colorshift", phosphene.PropertyList{
		{Name: "shift", Value: 0.0, UIType: phosphene.UISlider, Min: -360, Max: 360, Step: 1,
			Label: "Shift", Description: "Hue rotation in degrees"},
		{Name: "drift", Value: 0.0, UIType: phosphene.UISlider, Min: -360, Max: 360, Step: 1,
			Label: "Drift", Description: "Additional hue degrees per beat"},
	})}
}

func (e *ColorShift) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	degrees := props.Float("shift") + props.Float("drift")*time
	ret := make([]phosphene.VisualObject, len(objects))
	for i, o := range objects {
		o.Properties.Color = phosphene.ShiftHue(o.Properties.Color, degrees)
		ret[i] = o
	}
	return ret
}

func (e *ColorShift) Clone() phosphene.Effect {
	return &ColorShift{PropertySet: e.CopyProperties()}
}
