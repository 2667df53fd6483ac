package phosphene

import (
	"embed"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v2"
)

//go:embed presets/*.yml
var presetFS embed.FS

type (
	// Preset is a ready-made track configuration shipped with the editor: a
	// synthesizer and an effect chain with tuned properties. Presets are plain
	// records; instantiating one goes through the registry like loading a
	// project does.
	Preset struct {
		Name  string           `yaml:"name"`
		Synth InstanceRecord   `yaml:"synth"`
		Chain []InstanceRecord `yaml:"effects,omitempty"`
	}
)

// presets are parsed from the embedded files once during init. A broken
// embedded file is a programming error, so this panics instead of hiding it.
var presets = func() []Preset {
	var ret []Preset
	err := fs.WalkDir(presetFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := presetFS.ReadFile(path)
		if err != nil {
			return err
		}
		var entries []Preset
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return err
		}
		ret = append(ret, entries...)
		return nil
	})
	if err != nil {
		panic("parsing embedded presets: " + err.Error())
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret
}()

// Presets returns the built-in presets. The returned slice is shared; callers
// should not modify it.
func Presets() []Preset {
	return presets
}

// Instantiate builds a live track from the preset through the registry.
func (p *Preset) Instantiate(registry *Registry) (Track, error) {
	record := TrackRecord{Name: p.Name, Synth: p.Synth, Chain: p.Chain}
	project, err := (&ProjectRecord{BPM: 120, Tracks: []TrackRecord{record}}).Project(registry)
	if err != nil {
		return Track{}, err
	}
	return project.Tracks[0], nil
}
