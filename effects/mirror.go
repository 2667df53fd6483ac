package effects

import "github.com/velverin/phosphene"

// Mirror adds a reflected duplicate of every object across one of the
// coordinate planes. The mirrored copy negates the position component
// perpendicular to the plane and flips the matching rotation axes.
type Mirror struct {
	phosphene.PropertySet
}

func NewMirror() *Mirror {
	return &Mirror{PropertySet: phosphene.NewPropertySet("mirror", phosphene.PropertyList{
		{Name: "axis", Value: "x", UIType: phosphene.UISelect,
			Label: "Axis", Description: "Axis perpendicular to the mirror plane: x, y or z"},
		{Name: "keepOriginal", Value: true, UIType: phosphene.UIToggle,
			Label: "Keep original", Description: "Emit the unmirrored objects too"},
	})}
}

func (e *Mirror) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	axis := 0
	switch props.String("axis") {
	case "y":
		axis = 1
	case "z":
		axis = 2
	}
	keep := props.Bool("keepOriginal")
	size := len(objects)
	if keep {
		size *= 2
	}
	ret := make([]phosphene.VisualObject, 0, size)
	if keep {
		ret = append(ret, objects...)
	}
	for _, o := range objects {
		o.Properties.Position[axis] = -o.Properties.Position[axis]
		// mirroring flips the handedness; negating the two other rotation
		// axes keeps the copy visually mirrored rather than just moved
		o.Properties.Rotation[(axis+1)%3] = -o.Properties.Rotation[(axis+1)%3]
		o.Properties.Rotation[(axis+2)%3] = -o.Properties.Rotation[(axis+2)%3]
		ret = append(ret, o)
	}
	return ret
}

func (e *Mirror) Clone() phosphene.Effect {
	return &Mirror{PropertySet: e.CopyProperties()}
}
