package effects

import (
	"sort"

	"github.com/velverin/phosphene"
)

// Cull bounds what reaches the renderer: objects under an opacity threshold
// are dropped, and if a maximum count is set, only the most opaque objects
// survive. Useful at the end of a chain whose duplications multiplied the
// object count.
type Cull struct {
	phosphene.PropertySet
}

func NewCull() *Cull {
	return &Cull{PropertySet: phosphene.NewPropertySet("cull", phosphene.PropertyList{
		{Name: "threshold", Value: 0.02, UIType: phosphene.UISlider, Min: 0, Max: 1, Step: 0.01,
			Label: "Threshold", Description: "Objects with opacity below this are dropped"},
		{Name: "maxObjects", Value: 0, UIType: phosphene.UISlider, Min: 0, Max: 4096, Step: 1,
			Label: "Max objects", Description: "Keep at most this many objects; 0 means unlimited"},
	})}
}

func (e *Cull) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	threshold := props.Float("threshold")
	maxObjects := props.Int("maxObjects")
	ret := make([]phosphene.VisualObject, 0, len(objects))
	for _, o := range objects {
		if o.Properties.Opacity >= threshold {
			ret = append(ret, o)
		}
	}
	if maxObjects > 0 && len(ret) > maxObjects {
		// stable sort keeps the synthesizer's emission order among equals
		sort.SliceStable(ret, func(i, j int) bool {
			return ret[i].Properties.Opacity > ret[j].Properties.Opacity
		})
		ret = ret[:maxObjects]
	}
	return ret
}

func (e *Cull) Clone() phosphene.Effect {
	return &Cull{PropertySet: e.CopyProperties()}
}
