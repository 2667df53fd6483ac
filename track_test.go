package phosphene_test

import (
	"errors"
	"testing"

	"github.com/velverin/phosphene"
)

type stubSynth struct {
	phosphene.PropertySet
	output []phosphene.VisualObject
}

func newStubSynth(output ...phosphene.VisualObject) *stubSynth {
	return &stubSynth{
		PropertySet: phosphene.NewPropertySet("stub", phosphene.PropertyList{
			{Name: "gain", Value: 1.0, UIType: phosphene.UISlider, Label: "Gain"},
		}),
		output: output,
	}
}

func (s *stubSynth) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	return phosphene.CopyObjects(s.output)
}

func (s *stubSynth) Clone() phosphene.Synthesizer {
	return &stubSynth{PropertySet: s.CopyProperties(), output: phosphene.CopyObjects(s.output)}
}

type panicSynth struct {
	phosphene.PropertySet
}

func (s *panicSynth) Synthesize(time float64, blocks []phosphene.Block, bpm float64) []phosphene.VisualObject {
	panic("broken unit")
}

func (s *panicSynth) Clone() phosphene.Synthesizer {
	return &panicSynth{PropertySet: s.CopyProperties()}
}

func TestProjectRenderIsolatesPanics(t *testing.T) {
	object := phosphene.VisualObject{Type: "cube", Properties: phosphene.ObjectProperties{Color: "#ffffff", Opacity: 1}}
	project := phosphene.Project{BPM: 120, Tracks: []phosphene.Track{
		{Name: "bad", Synth: &panicSynth{PropertySet: phosphene.NewPropertySet("panic", nil)}},
		{Name: "good", Synth: newStubSynth(object)},
	}}
	objects, errs := project.Render(0)
	if errs[0] == nil {
		t.Fatalf("panicking track should report an error")
	}
	var trackErr *phosphene.TrackError
	if !errors.As(errs[0], &trackErr) || trackErr.Track != "bad" {
		t.Errorf("expected a *TrackError for track bad, got %v", errs[0])
	}
	if errs[1] != nil {
		t.Errorf("healthy track errored: %v", errs[1])
	}
	if len(objects[1]) != 1 {
		t.Errorf("healthy track should still render, got %v objects", len(objects[1]))
	}
}

func TestTrackRenderWithoutSynth(t *testing.T) {
	track := phosphene.Track{Name: "empty"}
	objects, err := track.Render(0, 120)
	if err != nil || objects != nil {
		t.Errorf("synthless track should render to nothing, got %v, %v", objects, err)
	}
}

func TestTrackCopyClonesInstances(t *testing.T) {
	track := phosphene.Track{Name: "a", Synth: newStubSynth()}
	dup := track.Copy()
	dup.Synth.SetProperty("gain", 0.2)
	if p, _ := track.Synth.GetProperty("gain"); p.Value != 1.0 {
		t.Errorf("copying a track should clone its synth, gain changed to %v", p.Value)
	}
}

func TestProjectValidateFlagsMalformedData(t *testing.T) {
	project := phosphene.Project{BPM: 0, Tracks: []phosphene.Track{{
		Name: "t",
		Blocks: []phosphene.Block{
			{ID: "b", Start: 4, End: 2},
			{ID: "c", Start: 0, End: 4, Notes: []phosphene.Note{{ID: "n", Pitch: 60, Duration: -1}}},
		},
	}}}
	if errs := project.Validate(); len(errs) != 3 {
		t.Errorf("expected 3 validation errors, got %v: %v", len(errs), errs)
	}
}
