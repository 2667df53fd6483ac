package phosphene

import (
	"fmt"
	"sort"
)

type (
	// Registry is the closed table mapping stable type tags to constructors of
	// default synthesizer/effect instances. It is built explicitly once, at
	// process start, and passed to whoever needs it; there is no module-level
	// registry and nothing is discovered by reflection. Only the persistence
	// boundary uses it.
	Registry struct {
		synths  map[string]func() Synthesizer
		effects map[string]func() Effect
	}

	// UnknownTypeError is returned when a file references a type tag the
	// registry does not know. The persistence collaborator decides what to do
	// with it; the core does not guess a fallback.
	UnknownTypeError struct {
		Kind string // "synthesizer" or "effect"
		Type string
	}
)

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown %s type %q", e.Kind, e.Type)
}

// NewRegistry builds a registry from the given constructor tables. The maps
// are copied, so the caller's maps can be literals without aliasing worries.
func NewRegistry(synths map[string]func() Synthesizer, effects map[string]func() Effect) *Registry {
	r := &Registry{
		synths:  make(map[string]func() Synthesizer, len(synths)),
		effects: make(map[string]func() Effect, len(effects)),
	}
	for k, v := range synths {
		r.synths[k] = v
	}
	for k, v := range effects {
		r.effects[k] = v
	}
	return r
}

// NewSynthesizer creates a default instance of the named synthesizer type.
func (r *Registry) NewSynthesizer(typeName string) (Synthesizer, error) {
	create, ok := r.synths[typeName]
	if !ok {
		return nil, &UnknownTypeError{Kind: "synthesizer", Type: typeName}
	}
	return create(), nil
}

// NewEffect creates a default instance of the named effect type.
func (r *Registry) NewEffect(typeName string) (Effect, error) {
	create, ok := r.effects[typeName]
	if !ok {
		return nil, &UnknownTypeError{Kind: "effect", Type: typeName}
	}
	return create(), nil
}

// SynthesizerTypes returns the known synthesizer type tags, sorted.
func (r *Registry) SynthesizerTypes() []string {
	ret := make([]string, 0, len(r.synths))
	for k := range r.synths {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// EffectTypes returns the known effect type tags, sorted.
func (r *Registry) EffectTypes() []string {
	ret := make([]string, 0, len(r.effects))
	for k := range r.effects {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
