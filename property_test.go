package phosphene_test

import (
	"reflect"
	"testing"

	"github.com/velverin/phosphene"
)

func exampleProps() phosphene.PropertyList {
	return phosphene.PropertyList{
		{Name: "gain", Value: 0.5, UIType: phosphene.UISlider, Min: 0, Max: 1, Step: 0.01, Label: "Gain"},
		{Name: "steps", Value: 4, UIType: phosphene.UISlider, Min: 1, Max: 16, Step: 1, Label: "Steps"},
		{Name: "offset", Value: phosphene.Vec3{1, 2, 3}, UIType: phosphene.UIVector, Label: "Offset"},
		{Name: "weights", Value: []float64{1, 2}, UIType: phosphene.UIVector, Label: "Weights"},
	}
}

func TestPropertyListCopyIsDeep(t *testing.T) {
	original := exampleProps()
	clone := original.Copy()
	clone.Set("gain", 0.9)
	clone.Set("offset", phosphene.Vec3{9, 9, 9})
	w, _ := clone.Get("weights")
	w.([]float64)[0] = 99
	if got := original.Float("gain"); got != 0.5 {
		t.Errorf("original gain changed to %v after mutating clone", got)
	}
	if got := original.Vec("offset"); got != (phosphene.Vec3{1, 2, 3}) {
		t.Errorf("original offset changed to %v after mutating clone", got)
	}
	if w, _ := original.Get("weights"); w.([]float64)[0] != 1 {
		t.Errorf("original weights aliased by clone: %v", w)
	}
}

func TestPropertyListSetUnknownName(t *testing.T) {
	props := exampleProps()
	if err := props.Set("nosuch", 1); err == nil {
		t.Errorf("Set of unknown property should error")
	}
}

func TestPropertyListSetNormalizesNumbers(t *testing.T) {
	props := exampleProps()
	// yaml/json hand over ints for float properties and vice versa
	props.Set("gain", 1)
	props.Set("steps", 8.0)
	props.Set("offset", []any{4.0, 5, 6.0})
	if _, ok := mustGet(t, props, "gain").(float64); !ok {
		t.Errorf("gain should stay float64 after Set(int)")
	}
	if _, ok := mustGet(t, props, "steps").(int); !ok {
		t.Errorf("steps should stay int after Set(float64)")
	}
	if got := props.Vec("offset"); got != (phosphene.Vec3{4, 5, 6}) {
		t.Errorf("offset = %v, expected {4 5 6}", got)
	}
}

func TestPropertyBoundsAreAdvisory(t *testing.T) {
	props := exampleProps()
	props.Set("gain", 7.5) // far above Max
	if got := props.Float("gain"); got != 7.5 {
		t.Errorf("out-of-range value was altered: %v", got)
	}
}

func TestSerializeApplyRoundTrip(t *testing.T) {
	set := phosphene.NewPropertySet("example", exampleProps())
	set.SetProperty("gain", 0.8)
	values := phosphene.SerializeProperties(&set)

	fresh := phosphene.NewPropertySet("example", exampleProps())
	phosphene.ApplySerializedProperties(&fresh, values)
	got := phosphene.SerializeProperties(&fresh)
	if !reflect.DeepEqual(values, got) {
		t.Errorf("round trip mismatch: %v vs %v", values, got)
	}
}

func TestApplySerializedPropertiesSkipsUnknownKeepsDefaults(t *testing.T) {
	set := phosphene.NewPropertySet("example", exampleProps())
	phosphene.ApplySerializedProperties(&set, []phosphene.PropertyValue{
		{Name: "removedInV2", Value: 123},
		{Name: "steps", Value: 7},
	})
	if got := set.Props().Int("steps"); got != 7 {
		t.Errorf("steps = %v, expected 7", got)
	}
	if got := set.Props().Float("gain"); got != 0.5 {
		t.Errorf("gain should keep its default, got %v", got)
	}
}

func mustGet(t *testing.T, props phosphene.PropertyList, name string) any {
	t.Helper()
	v, ok := props.Get(name)
	if !ok {
		t.Fatalf("property %q missing", name)
	}
	return v
}
