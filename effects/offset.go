package effects

import "github.com/velverin/phosphene"

// Offset moves every object by a constant vector.
type Offset struct {
	phosphene.PropertySet
}

func NewOffset() *Offset {
	return &Offset{PropertySet: phosphene.NewPropertySet("offset", phosphene.PropertyList{
		{Name: "offset", Value: phosphene.Vec3{0, 0, 0}, UIType: phosphene.UIVector, Min: -50, Max: 50, Step: 0.1,
			Label: "Offset", Description: "Translation added to every object position"},
	})}
}

func (e *Offset) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	offset := e.Props().Vec("offset")
	ret := make([]phosphene.VisualObject, len(objects))
	for i, o := range objects {
		o.Properties.Position = o.Properties.Position.Add(offset)
		ret[i] = o
	}
	return ret
}

func (e *Offset) Clone() phosphene.Effect {
	return &Offset{PropertySet: e.CopyProperties()}
}
