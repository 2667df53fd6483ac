package export_test

import (
	"math"
	"strings"
	"testing"

	"github.com/velverin/phosphene"
	"github.com/velverin/phosphene/export"
	"github.com/velverin/phosphene/synths"
)

func testProject() *phosphene.Project {
	return &phosphene.Project{
		BPM: 120,
		Tracks: []phosphene.Track{{
			Name:  "lead",
			Synth: synths.NewCubes(),
			Blocks: []phosphene.Block{{
				ID: "b", Start: 0, End: 4,
				Notes: []phosphene.Note{{ID: "n", Pitch: 60, Velocity: 100, Start: 0, Duration: 4}},
			}},
		}},
	}
}

func TestSample(t *testing.T) {
	// 120 BPM and 4 fps means half a beat per frame, so 0..2 samples 5 frames
	doc, err := export.Sample(testProject(), 0, 2, 4)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(doc.Frames) != 5 {
		t.Fatalf("expected 5 frames, got %v", len(doc.Frames))
	}
	for i, f := range doc.Frames {
		if want := float64(i) * 0.5; math.Abs(f.Time-want) > 1e-9 {
			t.Errorf("frame %d at beat %v, expected %v", i, f.Time, want)
		}
	}
	// the note holds through the sampled range; every frame past the initial
	// attack ramp carries its cube
	for _, f := range doc.Frames[1:] {
		if len(f.Objects) != 1 {
			t.Errorf("frame at beat %v has %v objects, expected 1", f.Time, len(f.Objects))
		}
	}
	if len(doc.Errors) != 0 {
		t.Errorf("unexpected render errors: %v", doc.Errors)
	}
	if doc.BPM != 120 || doc.FPS != 4 {
		t.Errorf("document tempo/fps = %v/%v, expected 120/4", doc.BPM, doc.FPS)
	}
}

func TestSampleRejectsBadRanges(t *testing.T) {
	if _, err := export.Sample(testProject(), 0, 2, 0); err == nil {
		t.Error("expected an error for fps 0")
	}
	if _, err := export.Sample(testProject(), 2, 0, 4); err == nil {
		t.Error("expected an error for an inverted range")
	}
}

func TestMeasure(t *testing.T) {
	obj := func(opacity float64) phosphene.VisualObject {
		return phosphene.VisualObject{Type: "cube", Properties: phosphene.ObjectProperties{Opacity: opacity}}
	}
	stats := export.Measure([]export.Frame{
		{Time: 0, Objects: []phosphene.VisualObject{obj(0.5), obj(1.0)}},
		{Time: 1},
		{Time: 2, Objects: []phosphene.VisualObject{obj(0.1)}},
	})
	if stats.Frames != 3 || stats.TotalObjects != 3 || stats.MaxObjects != 2 {
		t.Errorf("counts = %v/%v/%v, expected 3/3/2", stats.Frames, stats.TotalObjects, stats.MaxObjects)
	}
	if math.Abs(stats.MeanObjects-1) > 1e-9 {
		t.Errorf("mean objects = %v, expected 1", stats.MeanObjects)
	}
	if math.Abs(stats.PeakOpacity-1.0) > 1e-9 {
		t.Errorf("peak opacity = %v, expected 1.0", stats.PeakOpacity)
	}
	if mean := (0.5 + 1.0 + 0.1) / 3; math.Abs(stats.MeanOpacity-mean) > 1e-9 {
		t.Errorf("mean opacity = %v, expected %v", stats.MeanOpacity, mean)
	}
	if empty := export.Measure(nil); empty.Frames != 0 || empty.PeakOpacity != 0 {
		t.Errorf("empty measure = %+v, expected zeros", empty)
	}
}

func TestExportFormats(t *testing.T) {
	e, err := export.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	formats := e.Formats()
	for _, want := range []string{"frames.json", "frames.js", "frames.csv"} {
		found := false
		for _, f := range formats {
			if f == want {
				found = true
			}
		}
		if !found {
			t.Errorf("format %q missing from %v", want, formats)
		}
	}
}

func TestExport(t *testing.T) {
	e, err := export.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	doc, err := export.Sample(testProject(), 0, 1, 4)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	out, err := e.Export("frames.json", doc)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	for _, want := range []string{`"bpm"`, `"frames"`, `"stats"`, `"cube"`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("json export is missing %q", want)
		}
	}
	js, err := e.Export("frames.js", doc)
	if err != nil {
		t.Fatalf("Export js: %v", err)
	}
	if !strings.Contains(string(js), "export const") {
		t.Error("js export is missing the module exports")
	}
	if _, err := e.Export("nope", doc); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
