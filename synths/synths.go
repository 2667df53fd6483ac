// Package synths contains the built-in synthesizers: the units that turn the
// notes active at a query time into renderable VisualObjects. Every synth
// declares its tunable values as properties, shares the same ADSR envelope
// evaluation and note windowing, and differs only in how pitch, velocity and
// amplitude map to geometry and color.
package synths

import (
	"github.com/velverin/phosphene"
)

// Builders is the constructor table of the built-in synthesizers, passed to
// phosphene.NewRegistry by the process entry point.
func Builders() map[string]func() phosphene.Synthesizer {
	return map[string]func() phosphene.Synthesizer{
		"cubes":     func() phosphene.Synthesizer { return NewCubes() },
		"bars":      func() phosphene.Synthesizer { return NewBars() },
		"spheres":   func() phosphene.Synthesizer { return NewSpheres() },
		"rings":     func() phosphene.Synthesizer { return NewRings() },
		"spiral":    func() phosphene.Synthesizer { return NewSpiral() },
		"beams":     func() phosphene.Synthesizer { return NewBeams() },
		"particles": func() phosphene.Synthesizer { return NewParticles() },
		"grid":      func() phosphene.Synthesizer { return NewGrid() },
		"pianoroll": func() phosphene.Synthesizer { return NewPianoRoll() },
		"terrain":   func() phosphene.Synthesizer { return NewTerrain() },
	}
}

// amplitudeEpsilon is the level below which a note emits no object at all;
// objects that would be invisible anyway just make the renderer's life harder.
const amplitudeEpsilon = 1e-3

// adsrProperties returns the four envelope properties every synth declares,
// with per-synth defaults. Times are in seconds, sustain is a 0..1 level.
func adsrProperties(attack, decay, sustain, release float64) phosphene.PropertyList {
	return phosphene.PropertyList{
		{Name: "attack", Value: attack, UIType: phosphene.UISlider, Min: 0, Max: 2, Step: 0.01,
			Label: "Attack", Description: "Ramp-up time from silence to full level, in seconds"},
		{Name: "decay", Value: decay, UIType: phosphene.UISlider, Min: 0, Max: 2, Step: 0.01,
			Label: "Decay", Description: "Time to fall from full level to the sustain level, in seconds"},
		{Name: "sustain", Value: sustain, UIType: phosphene.UISlider, Min: 0, Max: 1, Step: 0.01,
			Label: "Sustain", Description: "Level held while the note is down"},
		{Name: "release", Value: release, UIType: phosphene.UISlider, Min: 0, Max: 4, Step: 0.01,
			Label: "Release", Description: "Fade-out time after the note ends, in seconds"},
	}
}

// envelope reads the four ADSR properties back into an Envelope.
func envelope(props phosphene.PropertyList) phosphene.Envelope {
	return phosphene.Envelope{
		Attack:  props.Float("attack"),
		Decay:   props.Float("decay"),
		Sustain: props.Float("sustain"),
		Release: props.Float("release"),
	}
}
