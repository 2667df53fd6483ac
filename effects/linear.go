package effects

import "github.com/velverin/phosphene"

// Linear duplicates every object along an axis: count copies at fixed
// spacing, optionally fading each successive copy.
type Linear struct {
	phosphene.PropertySet
}

func NewLinear() *Linear {
	return &Linear{PropertySet: phosphene.NewPropertySet("linear", phosphene.PropertyList{
		{Name: "copies", Value: 2, UIType: phosphene.UISlider, Min: 0, Max: 16, Step: 1,
			Label: "Copies", Description: "How many duplicates to add"},
		{Name: "step", Value: phosphene.Vec3{2, 0, 0}, UIType: phosphene.UIVector, Min: -20, Max: 20, Step: 0.1,
			Label: "Step", Description: "Offset between successive copies"},
		{Name: "falloff", Value: 1.0, UIType: phosphene.UISlider, Min: 0, Max: 1, Step: 0.01,
			Label: "Falloff", Description: "Opacity multiplier applied per copy; 1 keeps copies at full strength"},
	})}
}

func (e *Linear) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	copies := props.Int("copies")
	step := props.Vec("step")
	falloff := props.Float("falloff")
	if copies < 0 {
		copies = 0
	}
	ret := make([]phosphene.VisualObject, 0, len(objects)*(copies+1))
	ret = append(ret, objects...)
	opacity := 1.0
	for k := 1; k <= copies; k++ {
		opacity *= falloff
		for _, o := range objects {
			o.Properties.Position = o.Properties.Position.Add(step.Scaled(float64(k)))
			o.Properties.Opacity *= opacity
			ret = append(ret, o)
		}
	}
	return ret
}

func (e *Linear) Clone() phosphene.Effect {
	return &Linear{PropertySet: e.CopyProperties()}
}
