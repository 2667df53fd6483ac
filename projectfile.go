package phosphene

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type (
	// ProjectRecord is the on-disk shape of a Project. Synthesizers and
	// effects are stored as their type tag plus ordered property pairs; the
	// registry turns them back into live instances on load. The core itself
	// does no file I/O; these functions work on bytes and the collaborator
	// owns the files.
	ProjectRecord struct {
		BPM    float64       `yaml:"bpm" json:"bpm"`
		Tracks []TrackRecord `yaml:"tracks" json:"tracks"`
	}

	TrackRecord struct {
		Name   string           `yaml:"name,omitempty" json:"name,omitempty"`
		Synth  InstanceRecord   `yaml:"synth" json:"synth"`
		Chain  []InstanceRecord `yaml:"effects,omitempty" json:"effects,omitempty"`
		Blocks []Block          `yaml:"blocks" json:"blocks"`
	}

	InstanceRecord struct {
		Type       string          `yaml:"type" json:"type"`
		Properties []PropertyValue `yaml:"properties,omitempty" json:"properties,omitempty"`
	}
)

// Record flattens a live Project into its serializable form.
func (p *Project) Record() ProjectRecord {
	ret := ProjectRecord{BPM: p.BPM, Tracks: make([]TrackRecord, len(p.Tracks))}
	for i := range p.Tracks {
		t := &p.Tracks[i]
		tr := TrackRecord{Name: t.Name, Blocks: CopyBlocks(t.Blocks)}
		if t.Synth != nil {
			tr.Synth = InstanceRecord{Type: t.Synth.TypeName(), Properties: SerializeProperties(t.Synth)}
		}
		for _, e := range t.Chain {
			tr.Chain = append(tr.Chain, InstanceRecord{Type: e.TypeName(), Properties: SerializeProperties(e)})
		}
		ret.Tracks[i] = tr
	}
	return ret
}

// SaveProject marshals a project to YAML.
func SaveProject(p *Project) ([]byte, error) {
	return yaml.Marshal(p.Record())
}

// LoadProject unmarshals a project from JSON or YAML (tried in that order,
// since every JSON file is also valid YAML but not vice versa) and rebuilds
// the instances through the registry. Unknown type tags surface as
// *UnknownTypeError; the caller decides whether to drop the track or abort.
func LoadProject(data []byte, registry *Registry) (*Project, error) {
	var record ProjectRecord
	if errJSON := json.Unmarshal(data, &record); errJSON != nil {
		if errYaml := yaml.Unmarshal(data, &record); errYaml != nil {
			return nil, fmt.Errorf("unmarshaling project: %v / %v", errYaml, errJSON)
		}
	}
	return record.Project(registry)
}

// Project turns a record back into a live Project using the registry's
// constructors, applying the serialized properties on top of the defaults.
func (r *ProjectRecord) Project(registry *Registry) (*Project, error) {
	p := &Project{BPM: r.BPM, Tracks: make([]Track, len(r.Tracks))}
	for i, tr := range r.Tracks {
		track := Track{Name: tr.Name, Blocks: CopyBlocks(tr.Blocks)}
		if tr.Synth.Type != "" {
			synth, err := registry.NewSynthesizer(tr.Synth.Type)
			if err != nil {
				return nil, fmt.Errorf("track %q: %w", tr.Name, err)
			}
			ApplySerializedProperties(synth, tr.Synth.Properties)
			track.Synth = synth
		}
		for _, er := range tr.Chain {
			effect, err := registry.NewEffect(er.Type)
			if err != nil {
				return nil, fmt.Errorf("track %q: %w", tr.Name, err)
			}
			ApplySerializedProperties(effect, er.Properties)
			track.Chain = append(track.Chain, effect)
		}
		p.Tracks[i] = track
	}
	return p, nil
}
