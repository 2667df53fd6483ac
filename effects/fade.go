package effects

import "github.com/velverin/phosphene"

// Fade multiplies every object's opacity by a constant.
type Fade struct {
	phosphene.PropertySet
}

func NewFade() *Fade {
	return &Fade{PropertySet: phosphene.NewPropertySet("fade", phosphene.PropertyList{
		{Name: "opacity", Value: 1.0, UIType: phosphene.UISlider, Min: 0, Max: 1, Step: 0.01,
			Label: "Opacity", Description: "Multiplier applied to every object's opacity"},
	})}
}

func (e *Fade) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	opacity := e.Props().Float("opacity")
	ret := make([]phosphene.VisualObject, len(objects))
	for i, o := range objects {
		o.Properties.Opacity *= opacity
		ret[i] = o
	}
	return ret
}

func (e *Fade) Clone() phosphene.Effect {
	return &Fade{PropertySet: e.CopyProperties()}
}
