// Package effects contains the built-in effect chain stages. An effect is a
// pure transform from an object list to a new object list: it may move,
// recolor, duplicate or drop objects, but never mutates its input. The one
// stateful effect, echo, keeps a private snapshot buffer; its clone starts
// empty.
package effects

import "github.com/velverin/phosphene"

// Builders is the constructor table of the built-in effects, passed to
// phosphene.NewRegistry by the process entry point.
func Builders() map[string]func() phosphene.Effect {
	return map[string]func() phosphene.Effect{
		"offset":     func() phosphene.Effect { return NewOffset() },
		"scale":      func() phosphene.Effect { return NewScale() },
		"rotate":     func() phosphene.Effect { return NewRotate() },
		"colorshift": func() phosphene.Effect { return NewColorShift() },
		"fade":       func() phosphene.Effect { return NewFade() },
		"radial":     func() phosphene.Effect { return NewRadial() },
		"linear":     func() phosphene.Effect { return NewLinear() },
		"mirror":     func() phosphene.Effect { return NewMirror() },
		"echo":       func() phosphene.Effect { return NewEcho() },
		"jitter":     func() phosphene.Effect { return NewJitter() },
		"wave":       func() phosphene.Effect { return NewWave() },
		"orbit":      func() phosphene.Effect { return NewOrbit() },
		"cull":       func() phosphene.Effect { return NewCull() },
	}
}

// hash01 maps an integer to a deterministic pseudo-random float in [0,1), for
// effects that need scatter without carrying any state between calls.
func hash01(v uint64) float64 {
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	v *= 0xc4ceb9fe1a85ec53
	v ^= v >> 33
	return float64(v>>11) / float64(1<<53)
}
