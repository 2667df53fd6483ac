package effects_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/velverin/phosphene"
	"github.com/velverin/phosphene/effects"
)

func originObject() phosphene.VisualObject {
	return phosphene.VisualObject{
		Type: "cube",
		Properties: phosphene.ObjectProperties{
			Position: phosphene.Vec3{0, 0, 0},
			Scale:    phosphene.Uniform(1),
			Color:    "#ff0000",
			Opacity:  1,
		},
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := []phosphene.VisualObject{originObject(), {
		Type: "sphere",
		Properties: phosphene.ObjectProperties{
			Position: phosphene.Vec3{1, 2, 3},
			Rotation: phosphene.Vec3{10, 20, 30},
			Scale:    phosphene.Uniform(2),
			Color:    "#00ff00",
			Opacity:  0.5,
		},
	}}
	snapshot := phosphene.CopyObjects(input)
	for name, create := range effects.Builders() {
		e := create()
		e.Apply(input, 1.25, 120)
		if !reflect.DeepEqual(input, snapshot) {
			t.Errorf("%v mutated its input", name)
		}
	}
}

func TestRadialDuplication(t *testing.T) {
	radial := effects.NewRadial()
	radial.SetProperty("copies", 3)
	radial.SetProperty("radius", 1.0)
	out := radial.Apply([]phosphene.VisualObject{originObject()}, 0, 120)
	if len(out) != 4 {
		t.Fatalf("expected 4 objects, got %v", len(out))
	}
	for k := 1; k < 4; k++ {
		p := out[k].Properties.Position
		dist := math.Hypot(p[0], p[2])
		if math.Abs(dist-1) > 1e-9 {
			t.Errorf("copy %v at distance %v from origin, expected 1", k, dist)
		}
		angle := math.Atan2(p[2], p[0]) * 180 / math.Pi
		expected := float64(k-1) * 120
		if expected > 180 {
			expected -= 360
		}
		if math.Abs(angle-expected) > 1e-9 {
			t.Errorf("copy %v at angle %v, expected %v", k, angle, expected)
		}
	}
}

func TestChainOrderSensitivity(t *testing.T) {
	offset := effects.NewOffset()
	offset.SetProperty("offset", phosphene.Vec3{1, 0, 0})
	scale := effects.NewScale()
	scale.SetProperty("factor", 2.0)

	var offsetThenScale, scaleThenOffset phosphene.Chain
	offsetThenScale.Insert(0, offset)
	offsetThenScale.Insert(1, scale)
	scaleThenOffset.Insert(0, scale)
	scaleThenOffset.Insert(1, offset)

	input := []phosphene.VisualObject{originObject()}
	a := offsetThenScale.Evaluate(input, 0, 120)
	b := scaleThenOffset.Evaluate(input, 0, 120)
	if a[0].Properties.Position != (phosphene.Vec3{2, 0, 0}) {
		t.Errorf("offset then scale moved to %v, expected {2 0 0}", a[0].Properties.Position)
	}
	if b[0].Properties.Position != (phosphene.Vec3{1, 0, 0}) {
		t.Errorf("scale then offset moved to %v, expected {1 0 0}", b[0].Properties.Position)
	}
}

func TestChainInsertClonesTemplate(t *testing.T) {
	template := effects.NewFade()
	var chain phosphene.Chain
	chain.Insert(0, template)
	template.SetProperty("opacity", 0.1)
	if p, _ := chain[0].GetProperty("opacity"); p.Value != 1.0 {
		t.Errorf("chain should hold a clone; template change leaked, opacity %v", p.Value)
	}
}

func TestChainRemoveAndReorder(t *testing.T) {
	var chain phosphene.Chain
	chain.Insert(0, effects.NewOffset())
	chain.Insert(1, effects.NewScale())
	chain.Insert(2, effects.NewFade())
	chain.Reorder(0, 2)
	if chain[0].TypeName() != "scale" || chain[1].TypeName() != "fade" || chain[2].TypeName() != "offset" {
		t.Errorf("order after Reorder(0,2): %v %v %v", chain[0].TypeName(), chain[1].TypeName(), chain[2].TypeName())
	}
	chain.Remove(1)
	if len(chain) != 2 || chain[0].TypeName() != "scale" || chain[1].TypeName() != "offset" {
		t.Errorf("order after Remove(1): %v", chain)
	}
	chain.Remove(7) // out of range, ignored
	if len(chain) != 2 {
		t.Errorf("out-of-range Remove changed the chain")
	}
}

func TestCloneIsolation(t *testing.T) {
	original := effects.NewOffset()
	original.SetProperty("offset", phosphene.Vec3{1, 1, 1})
	clone := original.Clone()
	clone.SetProperty("offset", phosphene.Vec3{5, 5, 5})
	if p, _ := original.GetProperty("offset"); p.Value != (phosphene.Vec3{1, 1, 1}) {
		t.Errorf("mutating a clone changed the original: %v", p.Value)
	}
}

func TestMirrorAndLinearCounts(t *testing.T) {
	mirror := effects.NewMirror()
	out := mirror.Apply([]phosphene.VisualObject{originObject(), originObject()}, 0, 120)
	if len(out) != 4 {
		t.Errorf("mirror should double the objects, got %v", len(out))
	}
	mirror.SetProperty("keepOriginal", false)
	out = mirror.Apply([]phosphene.VisualObject{originObject()}, 0, 120)
	if len(out) != 1 {
		t.Errorf("mirror without originals should keep the count, got %v", len(out))
	}

	linear := effects.NewLinear()
	linear.SetProperty("copies", 3)
	linear.SetProperty("step", phosphene.Vec3{0, 1, 0})
	out = linear.Apply([]phosphene.VisualObject{originObject()}, 0, 120)
	if len(out) != 4 {
		t.Fatalf("linear with 3 copies should yield 4 objects, got %v", len(out))
	}
	if out[3].Properties.Position != (phosphene.Vec3{0, 3, 0}) {
		t.Errorf("third copy at %v, expected {0 3 0}", out[3].Properties.Position)
	}
}

func TestCullThresholdAndCap(t *testing.T) {
	faint := originObject()
	faint.Properties.Opacity = 0.001
	cull := effects.NewCull()
	out := cull.Apply([]phosphene.VisualObject{originObject(), faint}, 0, 120)
	if len(out) != 1 {
		t.Errorf("cull should drop the faint object, got %v", len(out))
	}
	cull.SetProperty("maxObjects", 1)
	half := originObject()
	half.Properties.Opacity = 0.5
	out = cull.Apply([]phosphene.VisualObject{half, originObject()}, 0, 120)
	if len(out) != 1 || out[0].Properties.Opacity != 1 {
		t.Errorf("cull cap should keep the most opaque object, got %v", out)
	}
}
