package synths_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/velverin/phosphene"
	"github.com/velverin/phosphene/synths"
)

func testBlocks() []phosphene.Block {
	return []phosphene.Block{{
		ID:    "b1",
		Start: 0,
		End:   8,
		Notes: []phosphene.Note{
			{ID: "n1", Pitch: 60, Velocity: 127, Start: 0, Duration: 4},
			{ID: "n2", Pitch: 72, Velocity: 64, Start: 2, Duration: 2},
		},
	}}
}

func TestSynthesizePurity(t *testing.T) {
	blocks := testBlocks()
	for name, create := range synths.Builders() {
		synth := create()
		first := synth.Synthesize(1.5, blocks, 120)
		second := synth.Synthesize(1.5, blocks, 120)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%v: repeated synthesis with identical inputs differs", name)
		}
	}
}

func TestSynthesizeToleratesMalformedData(t *testing.T) {
	blocks := []phosphene.Block{
		{ID: "backwards", Start: 4, End: 2, Notes: []phosphene.Note{{Pitch: 60, Velocity: 100, Start: 0, Duration: 1}}},
		{ID: "badnotes", Start: 0, End: 8, Notes: []phosphene.Note{
			{Pitch: 60, Velocity: 100, Start: 1, Duration: 0},
			{Pitch: 60, Velocity: 100, Start: 1, Duration: -2},
			{Pitch: 300, Velocity: 100, Start: 1, Duration: 1},
		}},
	}
	for name, create := range synths.Builders() {
		if name == "grid" || name == "terrain" {
			continue // these draw their idle geometry even in silence
		}
		synth := create()
		for _, time := range []float64{0, 1.5, 3, 100} {
			if objects := synth.Synthesize(time, blocks, 120); len(objects) != 0 {
				t.Errorf("%v: malformed data produced %v objects at beat %v", name, len(objects), time)
			}
		}
	}
}

func TestSynthesizeMalformedNeverActivates(t *testing.T) {
	// grid and terrain emit background geometry regardless; malformed notes
	// must still never light anything up, i.e. output equals the silent output
	blocks := []phosphene.Block{{ID: "bad", Start: 4, End: 2, Notes: []phosphene.Note{{Pitch: 60, Velocity: 100, Start: 0, Duration: 1}}}}
	for _, name := range []string{"grid", "terrain"} {
		synth := synths.Builders()[name]()
		silent := synth.Synthesize(1, nil, 120)
		got := synth.Synthesize(1, blocks, 120)
		if !reflect.DeepEqual(silent, got) {
			t.Errorf("%v: malformed block changed the output", name)
		}
	}
}

func TestCubesAmplitudeMapping(t *testing.T) {
	cubes := synths.NewCubes()
	cubes.SetProperty("attack", 0.1)
	cubes.SetProperty("decay", 0.1)
	cubes.SetProperty("sustain", 0.5)
	cubes.SetProperty("release", 0.2)
	cubes.SetProperty("baseScale", 1.0)
	// 60 BPM, so beats are seconds; a single full-velocity note over beats 0..4
	blocks := []phosphene.Block{{ID: "b", Start: 0, End: 4, Notes: []phosphene.Note{
		{ID: "n", Pitch: 60, Velocity: 127, Start: 0, Duration: 4},
	}}}

	objects := cubes.Synthesize(0.1, blocks, 60) // attack peak
	if len(objects) != 1 {
		t.Fatalf("expected 1 object, got %v", len(objects))
	}
	if s := objects[0].Properties.Scale[0]; math.Abs(s-1.0) > 1e-9 {
		t.Errorf("scale at attack peak = %v, expected 1.0", s)
	}
	objects = cubes.Synthesize(1.0, blocks, 60) // sustain
	if o := objects[0].Properties.Opacity; math.Abs(o-0.5) > 1e-9 {
		t.Errorf("opacity at sustain = %v, expected 0.5", o)
	}
	objects = cubes.Synthesize(4.1, blocks, 60) // mid release
	if o := objects[0].Properties.Opacity; math.Abs(o-0.25) > 1e-9 {
		t.Errorf("opacity mid release = %v, expected 0.25", o)
	}
	if objects = cubes.Synthesize(4.3, blocks, 60); len(objects) != 0 {
		t.Errorf("expected silence after the release tail, got %v objects", len(objects))
	}
	if objects = cubes.Synthesize(20, blocks, 60); len(objects) != 0 {
		t.Errorf("expected silence long after the block, got %v objects", len(objects))
	}
}

func TestSynthCloneIsolation(t *testing.T) {
	for name, create := range synths.Builders() {
		synth := create()
		clone := synth.Clone()
		if err := clone.SetProperty("attack", 1.9); err != nil {
			t.Errorf("%v: clone rejects attack: %v", name, err)
			continue
		}
		if p, _ := synth.GetProperty("attack"); p.Value == 1.9 {
			t.Errorf("%v: mutating a clone changed the original", name)
		}
	}
}

func TestCubesPitchLayout(t *testing.T) {
	cubes := synths.NewCubes()
	cubes.SetProperty("spacing", 1.0)
	blocks := []phosphene.Block{{ID: "b", Start: 0, End: 4, Notes: []phosphene.Note{
		{ID: "low", Pitch: 60, Velocity: 100, Start: 0, Duration: 4},
		{ID: "high", Pitch: 72, Velocity: 100, Start: 0, Duration: 4},
	}}}
	objects := cubes.Synthesize(1, blocks, 120)
	if len(objects) != 2 {
		t.Fatalf("expected 2 objects, got %v", len(objects))
	}
	if dx := objects[1].Properties.Position[0] - objects[0].Properties.Position[0]; math.Abs(dx-12) > 1e-9 {
		t.Errorf("an octave should span 12 units at spacing 1, got %v", dx)
	}
}

func TestOverlappingIdenticalNotes(t *testing.T) {
	// two identical overlapping notes yield two independent objects; there is
	// no voice stealing or merging
	blocks := []phosphene.Block{{ID: "b", Start: 0, End: 4, Notes: []phosphene.Note{
		{ID: "a", Pitch: 60, Velocity: 100, Start: 0, Duration: 4},
		{ID: "b", Pitch: 60, Velocity: 100, Start: 0, Duration: 4},
	}}}
	cubes := synths.NewCubes()
	if objects := cubes.Synthesize(1, blocks, 120); len(objects) != 2 {
		t.Errorf("expected 2 overlapping objects, got %v", len(objects))
	}
}
