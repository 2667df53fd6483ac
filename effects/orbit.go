package effects

import (
	"math"

	"github.com/velverin/phosphene"
)

// Orbit revolves every object around the Y axis at a beat-synced rate, so the
// whole scene slowly circles the camera.
type Orbit struct {
	phosphene.PropertySet
}

func NewOrbit() *Orbit {
	return &Orbit{PropertySet: phosphene.NewPropertySet("orbit", phosphene.PropertyList{
		{Name: "speed", Value: 0.125, UIType: phosphene.UISlider, Min: -2, Max: 2, Step: 0.005,
			Label: "Speed", Description: "Revolutions per beat"},
		{Name: "phase", Value: 0.0, UIType: phosphene.UISlider, Min: 0, Max: 360, Step: 1,
			Label: "Phase", Description: "Fixed angle offset in degrees"},
	})}
}

func (e *Orbit) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	angle := 2*math.Pi*props.Float("speed")*time + props.Float("phase")*math.Pi/180
	sin, cos := math.Sin(angle), math.Cos(angle)
	ret := make([]phosphene.VisualObject, len(objects))
	for i, o := range objects {
		p := o.Properties.Position
		o.Properties.Position = phosphene.Vec3{p[0]*cos + p[2]*sin, p[1], -p[0]*sin + p[2]*cos}
		o.Properties.Rotation[1] += angle * 180 / math.Pi
		ret[i] = o
	}
	return ret
}

func (e *Orbit) Clone() phosphene.Effect {
	return &Orbit{PropertySet: e.CopyProperties()}
}
