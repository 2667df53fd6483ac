package phosphene_test

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/velverin/phosphene"
	"github.com/velverin/phosphene/effects"
	"github.com/velverin/phosphene/synths"
)

func testRegistry() *phosphene.Registry {
	return phosphene.NewRegistry(synths.Builders(), effects.Builders())
}

func TestProjectRoundTrip(t *testing.T) {
	registry := testRegistry()
	synth, err := registry.NewSynthesizer("cubes")
	if err != nil {
		t.Fatalf("NewSynthesizer failed: %v", err)
	}
	synth.SetProperty("spacing", 0.75)
	offset, err := registry.NewEffect("offset")
	if err != nil {
		t.Fatalf("NewEffect failed: %v", err)
	}
	offset.SetProperty("offset", phosphene.Vec3{1, 2, 3})
	project := &phosphene.Project{BPM: 128, Tracks: []phosphene.Track{{
		Name:   "lead",
		Synth:  synth,
		Chain:  phosphene.Chain{offset},
		Blocks: []phosphene.Block{{ID: "b1", Start: 0, End: 4, Notes: []phosphene.Note{{ID: "n1", Pitch: 60, Velocity: 100, Start: 1, Duration: 2}}}},
	}}}

	data, err := phosphene.SaveProject(project)
	if err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	loaded, err := phosphene.LoadProject(data, registry)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if !reflect.DeepEqual(project.Record(), loaded.Record()) {
		t.Errorf("round trip mismatch:\n%v\nvs\n%v", project.Record(), loaded.Record())
	}
	if got := loaded.Tracks[0].Chain[0].(*effects.Offset).Props().Vec("offset"); got != (phosphene.Vec3{1, 2, 3}) {
		t.Errorf("effect offset = %v after round trip", got)
	}
}

func TestLoadProjectUnknownType(t *testing.T) {
	data := []byte("bpm: 120\ntracks:\n  - name: t\n    synth:\n      type: nosuchsynth\n    blocks: []\n")
	_, err := phosphene.LoadProject(data, testRegistry())
	var unknown *phosphene.UnknownTypeError
	if !errors.As(err, &unknown) || unknown.Type != "nosuchsynth" {
		t.Errorf("expected UnknownTypeError for nosuchsynth, got %v", err)
	}
}

func TestLoadProjectBadData(t *testing.T) {
	if _, err := phosphene.LoadProject([]byte("{][not valid"), testRegistry()); err == nil {
		t.Errorf("garbage input should not load")
	}
}

func TestRegistryTypeLists(t *testing.T) {
	registry := testRegistry()
	synthTypes := registry.SynthesizerTypes()
	effectTypes := registry.EffectTypes()
	if len(synthTypes) != 10 {
		t.Errorf("expected 10 synthesizer types, got %v: %v", len(synthTypes), synthTypes)
	}
	if len(effectTypes) != 13 {
		t.Errorf("expected 13 effect types, got %v: %v", len(effectTypes), effectTypes)
	}
	if !sort.StringsAreSorted(synthTypes) || !sort.StringsAreSorted(effectTypes) {
		t.Errorf("type lists should be sorted")
	}
}

func TestPresetsInstantiate(t *testing.T) {
	registry := testRegistry()
	presets := phosphene.Presets()
	if len(presets) == 0 {
		t.Fatalf("no built-in presets")
	}
	for _, p := range presets {
		track, err := p.Instantiate(registry)
		if err != nil {
			t.Errorf("preset %q: %v", p.Name, err)
			continue
		}
		if track.Synth == nil {
			t.Errorf("preset %q has no synthesizer", p.Name)
		}
	}
}
