package effects

import (
	"math"

	"github.com/velverin/phosphene"
)

// echoTolerance is how close (in beats) the query time must be to an echo's
// ideal time for the echo to show, and also the spacing below which a second
// snapshot of the same moment is considered a duplicate and not buffered.
const echoTolerance = 0.05

type (
	// Echo is the one stateful effect: it remembers snapshots of the objects
	// it has seen and re-emits fading copies of them delay beats later, up to
	// a maximum number of repeats. The buffer is keyed by absolute emission
	// time, so seeking backwards past buffered material can resurface echoes;
	// clearing that is the caller's job (cloning resets the buffer).
	Echo struct {
		phosphene.PropertySet
		buffer []echoEntry
	}

	echoEntry struct {
		time    float64
		objects []phosphene.VisualObject
	}
)

func NewEcho() *Echo {
	return &Echo{PropertySet: phosphene.NewPropertySet("echo", phosphene.PropertyList{
		{Name: "delay", Value: 0.5, UIType: phosphene.UISlider, Min: 0.05, Max: 8, Step: 0.05,
			Label: "Delay", Description: "Beats between successive echoes"},
		{Name: "feedback", Value: 0.6, UIType: phosphene.UISlider, Min: 0, Max: 1, Step: 0.01,
			Label: "Feedback", Description: "Opacity multiplier per echo"},
		{Name: "copies", Value: 3, UIType: phosphene.UISlider, Min: 1, Max: 16, Step: 1,
			Label: "Copies", Description: "Maximum number of echoes per snapshot"},
		{Name: "spread", Value: phosphene.Vec3{0, 0, 0}, UIType: phosphene.UIVector, Min: -10, Max: 10, Step: 0.1,
			Label: "Spread", Description: "Offset added per echo, so echoes trail away spatially"},
	})}
}

func (e *Echo) Apply(objects []phosphene.VisualObject, time float64, bpm float64) []phosphene.VisualObject {
	props := e.Props()
	delay := props.Float("delay")
	feedback := props.Float("feedback")
	copies := props.Int("copies")
	spread := props.Vec("spread")
	if delay <= 0 || copies < 1 {
		return phosphene.CopyObjects(objects)
	}

	// prune entries whose last possible echo has passed, keeping the buffer
	// bounded however long the transport runs
	kept := e.buffer[:0]
	for _, entry := range e.buffer {
		if entry.time+float64(copies)*delay >= time-echoTolerance {
			kept = append(kept, entry)
		}
	}
	e.buffer = kept

	// snapshot the incoming objects unless this moment is already buffered
	// (repeated queries at the same playhead must not stack duplicates)
	if len(objects) > 0 {
		seen := false
		for _, entry := range e.buffer {
			if math.Abs(entry.time-time) < echoTolerance {
				seen = true
				break
			}
		}
		if !seen {
			e.buffer = append(e.buffer, echoEntry{time: time, objects: phosphene.CopyObjects(objects)})
		}
	}

	ret := phosphene.CopyObjects(objects)
	for _, entry := range e.buffer {
		for k := 1; k <= copies; k++ {
			if math.Abs(entry.time+float64(k)*delay-time) >= echoTolerance {
				continue
			}
			gain := math.Pow(feedback, float64(k))
			for _, o := range entry.objects {
				o.Properties.Position = o.Properties.Position.Add(spread.Scaled(float64(k)))
				o.Properties.Opacity *= gain
				ret = append(ret, o)
			}
		}
	}
	return ret
}

// Clone copies the configuration but starts with an empty buffer: a clone is
// a new configuration, not a continuation of the original's timeline.
func (e *Echo) Clone() phosphene.Effect {
	return &Echo{PropertySet: e.CopyProperties()}
}
