package effects

import "github.com/velverin/phosphene"

// Jitter displaces every object by a pseudo-random vector hashed from the
// object index and the quantized query time. No state is kept: the same time
// always jitters the same way, so the effect stays pure and scrub-safe.
type Jitter struct {
	phosphene.PropertySet
}

func NewJitter() *Jitter {
	return &Jitter{PropertySet: phosphene.NewPropertySet("jitter", phosphene.PropertyList{
		{Name: "amount", Value: 0.2, UIType: phosphene.UISlider, Min: 0, Max: 5, Step: 0.01,
			Label: "Amount", Description: "Maximum displacement per axis"},
		{Name: "rate", Value: 8.0, UIType: phosphene.UISlider, Min: 0.5, Max: 64, Step: 0.5,
			Label: "Rate", Description: "Jitter steps per beat"},
	})}
}

func (e *Jitter) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	amount := props.Float("amount")
	rate := props.Float("rate")
	step := uint64(int64(time * rate)) // quantize so the jitter holds between steps
	ret := make([]phosphene.VisualObject, len(objects))
	for i, o := range objects {
		seed := step<<20 | uint64(i)
		shift := phosphene.Vec3{
			(hash01(seed*3+0) - 0.5) * 2 * amount,
			(hash01(seed*3+1) - 0.5) * 2 * amount,
			(hash01(seed*3+2) - 0.5) * 2 * amount,
		}
		o.Properties.Position = o.Properties.Position.Add(shift)
		ret[i] = o
	}
	return ret
}

func (e *Jitter) Clone() phosphene.Effect {
	return &Jitter{PropertySet: e.CopyProperties()}
}
