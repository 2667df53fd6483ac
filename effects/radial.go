package effects

import (
	"math"

	"github.com/velverin/phosphene"
)

// Radial duplicates every object in a circle around the Y axis: the original
// stays put and count copies are placed at equal angles on a circle of the
// given radius, each copy otherwise identical to its source.
type Radial struct {
	phosphene.PropertySet
}

func NewRadial() *Radial {
	return &Radial{PropertySet: phosphene.NewPropertySet("radial", phosphene.PropertyList{
		{Name: "copies", Value: 3, UIType: phosphene.UISlider, Min: 0, Max: 16, Step: 1,
			Label: "Copies", Description: "How many duplicates to place on the circle"},
		{Name: "radius", Value: 1.0, UIType: phosphene.UISlider, Min: 0, Max: 20, Step: 0.1,
			Label: "Radius", Description: "Circle radius the duplicates are placed on"},
		{Name: "turn", Value: true, UIType: phosphene.UIToggle,
			Label: "Turn copies", Description: "Rotate each copy to face outward along its angle"},
	})}
}

func (e *Radial) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	copies := props.Int("copies")
	radius := props.Float("radius")
	turn := props.Bool("turn")
	if copies < 0 {
		copies = 0
	}
	ret := make([]phosphene.VisualObject, 0, len(objects)*(copies+1))
	ret = append(ret, objects...)
	for k := 0; k < copies; k++ {
		angle := float64(k) / float64(copies) * 2 * math.Pi
		shift := phosphene.Vec3{radius * math.Cos(angle), 0, radius * math.Sin(angle)}
		for _, o := range objects {
			o.Properties.Position = o.Properties.Position.Add(shift)
			if turn {
				o.Properties.Rotation = o.Properties.Rotation.Add(phosphene.Vec3{0, -angle * 180 / math.Pi, 0})
			}
			ret = append(ret, o)
		}
	}
	return ret
}

func (e *Radial) Clone() phosphene.Effect {
	return &Radial{PropertySet: e.CopyProperties()}
}
