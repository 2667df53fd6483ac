package phosphene

type (
	// Synthesizer converts the notes active at a query time into renderable
	// VisualObjects. Synthesize must be referentially pure: same time, blocks,
	// bpm and instance configuration always produce deep-equal output, and the
	// inputs are never mutated. Implementations skip notes whose envelope
	// amplitude is negligible and treat malformed blocks/notes as permanently
	// inactive.
	Synthesizer interface {
		Configured
		Synthesize(time float64, blocks []Block, bpm float64) []VisualObject
		Clone() Synthesizer
	}

	// Effect is one stage of a track's effect chain: a pure transform from an
	// object list to a new object list. It may move, recolor, duplicate or
	// drop objects but must not mutate the input slice or its elements.
	// Stateful effects (echo) keep private buffers; Clone resets them, as a
	// clone is a new configuration, not a temporal continuation.
	Effect interface {
		Configured
		Apply(objects []VisualObject, time float64, bpm float64) []VisualObject
		Clone() Effect
	}

	// Chain is the ordered list of effects of one track. The slice position is
	// the evaluation order; there is no separate order field.
	Chain []Effect
)

// Evaluate folds the objects through every effect in order. Order matters:
// effects do not commute.
func (c Chain) Evaluate(objects []VisualObject, time float64, bpm float64) []VisualObject {
	for _, e := range c {
		objects = e.Apply(objects, time, bpm)
	}
	return objects
}

// Insert inserts a clone of the given effect at index, clamped to the valid
// range. Cloning here guarantees that two tracks never end up sharing one
// effect instance, even when both were built from the same template.
func (c *Chain) Insert(index int, effect Effect) {
	if index < 0 {
		index = 0
	}
	if index > len(*c) {
		index = len(*c)
	}
	*c = append(*c, nil)
	copy((*c)[index+1:], (*c)[index:])
	(*c)[index] = effect.Clone()
}

// Remove deletes the effect at index; the remaining effects keep their
// relative order. Out-of-range indices are ignored.
func (c *Chain) Remove(index int) {
	if index < 0 || index >= len(*c) {
		return
	}
	*c = append((*c)[:index], (*c)[index+1:]...)
}

// Reorder moves the effect at from to position to, without cloning it and
// without resetting its state. Out-of-range indices are ignored.
func (c *Chain) Reorder(from, to int) {
	if from < 0 || from >= len(*c) || to < 0 || to >= len(*c) || from == to {
		return
	}
	e := (*c)[from]
	*c = append((*c)[:from], (*c)[from+1:]...)
	*c = append(*c, nil)
	copy((*c)[to+1:], (*c)[to:])
	(*c)[to] = e
}

// Copy returns a chain of clones, for duplicating a whole track.
func (c Chain) Copy() Chain {
	ret := make(Chain, len(c))
	for i, e := range c {
		ret[i] = e.Clone()
	}
	return ret
}
