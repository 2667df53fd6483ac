package effects

import "github.com/velverin/phosphene"

// Rotate adds a fixed rotation to every object, plus an optional spin that
// advances with the beat. The spin is a pure function of the query time, so
// scrubbing backwards just turns it back.
type Rotate struct {
	phosphene.PropertySet
}

func NewRotate() *Rotate {
	return &Rotate{PropertySet: phosphene.NewPropertySet("rotate", phosphene.PropertyList{
		{Name: "rotation", Value: phosphene.Vec3{0, 0, 0}, UIType: phosphene.UIVector, Min: -360, Max: 360, Step: 1,
			Label: "Rotation", Description: "Static rotation added per axis, in degrees"},
		{Name: "spin", Value: phosphene.Vec3{0, 0, 0}, UIType: phosphene.UIVector, Min: -360, Max: 360, Step: 1,
			Label: "Spin", Description: "Additional degrees per beat per axis"},
	})}
}

func (e *Rotate) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	rotation := props.Vec("rotation").Add(props.Vec("spin").Scaled(time))
	ret := make([]phosphene.VisualObject, len(objects))
	for i, o := range objects {
		o.Properties.Rotation = o.Properties.Rotation.Add(rotation)
		ret[i] = o
	}
	return ret
}

func (e *Rotate) Clone() phosphene.Effect {
	return &Rotate{PropertySet: e.CopyProperties()}
}
