// Package midi imports Standard MIDI Files into the editor's block model. It
// lives at the persistence boundary: the core never touches files, this
// package turns bytes into Blocks and leaves the rest to the caller.
package midi

import (
	"bytes"
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/velverin/phosphene"
)

type (
	// Import is the result of reading one MIDI file: a tempo and one imported
	// track per SMF track that contained notes.
	Import struct {
		BPM    float64
		Tracks []ImportedTrack
	}

	// ImportedTrack is one SMF track's notes packed into a single Block
	// starting at beat 0.
	ImportedTrack struct {
		Name  string
		Block phosphene.Block
	}

	openNote struct {
		startTick int64
		velocity  uint8
	}
)

// Read parses SMF data. The first tempo event wins; files without one default
// to 120 BPM. Note-ons with velocity 0 count as note-offs, orphan note-offs
// are ignored and notes left hanging at the end of a track are dropped, which
// matches the core's rule that malformed notes are never active.
func Read(data []byte) (*Import, error) {
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing SMF: %w", err)
	}
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported SMF time format %v", s.TimeFormat)
	}
	resolution := float64(ticks.Resolution())

	ret := &Import{BPM: 120}
	tempoSet := false
	for i, track := range s.Tracks {
		name := fmt.Sprintf("Track %d", i+1)
		open := make(map[uint8]openNote)
		var notes []phosphene.Note
		var tick int64
		var end float64
		for _, ev := range track {
			tick += int64(ev.Delta)
			var channel, key, velocity uint8
			var bpm float64
			var trackName string
			switch {
			case ev.Message.GetMetaTempo(&bpm):
				if !tempoSet && bpm > 0 {
					ret.BPM = bpm
					tempoSet = true
				}
			case ev.Message.GetMetaTrackName(&trackName):
				if trackName != "" {
					name = trackName
				}
			case ev.Message.GetNoteStart(&channel, &key, &velocity):
				open[key] = openNote{startTick: tick, velocity: velocity}
			case ev.Message.GetNoteEnd(&channel, &key):
				on, ok := open[key]
				if !ok {
					continue
				}
				delete(open, key)
				start := float64(on.startTick) / resolution
				duration := float64(tick-on.startTick) / resolution
				if duration <= 0 {
					continue
				}
				notes = append(notes, phosphene.Note{
					ID:       fmt.Sprintf("t%d-n%d", i, len(notes)),
					Pitch:    int(key),
					Velocity: int(on.velocity),
					Start:    start,
					Duration: duration,
				})
				if start+duration > end {
					end = start + duration
				}
			}
		}
		if len(notes) == 0 {
			continue
		}
		ret.Tracks = append(ret.Tracks, ImportedTrack{
			Name: name,
			Block: phosphene.Block{
				ID:    fmt.Sprintf("import-%d", i),
				Start: 0,
				End:   end,
				Notes: notes,
			},
		})
	}
	return ret, nil
}

// Project builds a Project with the given synthesizer type on every imported
// track, ready to save or render.
func (imp *Import) Project(registry *phosphene.Registry, synthType string) (*phosphene.Project, error) {
	p := &phosphene.Project{BPM: imp.BPM}
	for _, t := range imp.Tracks {
		synth, err := registry.NewSynthesizer(synthType)
		if err != nil {
			return nil, err
		}
		p.Tracks = append(p.Tracks, phosphene.Track{
			Name:   t.Name,
			Blocks: []phosphene.Block{t.Block},
			Synth:  synth,
		})
	}
	return p, nil
}
