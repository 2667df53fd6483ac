package effects

import "github.com/velverin/phosphene"

// Scale scales the whole scene uniformly about the origin: both the object
// positions and their sizes. Putting it before or after an Offset in the
// chain therefore gives different results, which is intended.
type Scale struct {
	phosphene.PropertySet
}

func NewScale() *Scale {
	return &Scale{PropertySet: phosphene.NewPropertySet("scale", phosphene.PropertyList{
		{Name: "factor", Value: 1.0, UIType: phosphene.UISlider, Min: 0, Max: 10, Step: 0.05,
			Label: "Factor", Description: "Uniform scale applied to positions and sizes"},
	})}
}

func (e *Scale) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	factor := e.Props().Float("factor")
	ret := make([]phosphene.VisualObject, len(objects))
	for i, o := range objects {
		o.Properties.Position = o.Properties.Position.Scaled(factor)
		o.Properties.Scale = o.Properties.Scale.Scaled(factor)
		ret[i] = o
	}
	return ret
}

func (e *Scale) Clone() phosphene.Effect {
	return &Scale{PropertySet: e.CopyProperties()}
}
