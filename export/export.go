// Package export samples a project into discrete frames and renders them
// through text templates, producing the files a headless browser renderer (or
// anything else) can consume. Templates get the whole Document and the full
// sprig function map, so custom templates can reshape the output freely.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/velverin/phosphene"
)

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

type (
	// Frame is the project output at one sampled time: every track's objects
	// merged, in track order. Tracks that failed are skipped and their errors
	// recorded, so one broken track does not abort an export.
	Frame struct {
		Time    float64                  `json:"time" yaml:"time"`
		Objects []phosphene.VisualObject `json:"objects" yaml:"objects"`
	}

	// Document is what gets handed to the templates.
	Document struct {
		BPM    float64  `json:"bpm" yaml:"bpm"`
		FPS    float64  `json:"fps" yaml:"fps"`
		Frames []Frame  `json:"frames" yaml:"frames"`
		Stats  Stats    `json:"stats" yaml:"stats"`
		Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	}

	// Exporter holds the parsed template set. Formats are simply the template
	// file names without the .tmpl suffix.
	Exporter struct {
		tmpl *template.Template
	}
)

// New returns an exporter using the built-in templates.
func New() (*Exporter, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseFS(builtinTemplates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing built-in templates: %v", err)
	}
	return &Exporter{tmpl: tmpl}, nil
}

// NewFromTemplates returns an exporter using the *.tmpl files in the given
// directory instead of the built-in ones.
func NewFromTemplates(dir string) (*Exporter, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseGlob(filepath.Join(dir, "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf(`parsing templates in %q: %v`, dir, err)
	}
	return &Exporter{tmpl: tmpl}, nil
}

// Formats lists the available output formats.
func (e *Exporter) Formats() []string {
	var ret []string
	for _, t := range e.tmpl.Templates() {
		if name, ok := strings.CutSuffix(t.Name(), ".tmpl"); ok {
			ret = append(ret, name)
		}
	}
	return ret
}

// Export renders the document in the named format.
func (e *Exporter) Export(format string, doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, format+".tmpl", doc); err != nil {
		return nil, fmt.Errorf("rendering %q: %v", format, err)
	}
	return buf.Bytes(), nil
}

// Sample renders the project at fps frames per second from beat from to beat
// to (inclusive) and returns the document with its stats filled in.
func Sample(p *phosphene.Project, from, to, fps float64) (*Document, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps should be > 0, was %v", fps)
	}
	if to < from {
		return nil, fmt.Errorf("sample range end %v before start %v", to, from)
	}
	// one frame is 1/fps seconds, converted to beats at the project tempo
	beatsPerFrame := 1 / (fps * phosphene.SecondsPerBeat(p.BPM))
	doc := &Document{BPM: p.BPM, FPS: fps}
	for time := from; time <= to+1e-9; time += beatsPerFrame {
		objectsPerTrack, errs := p.Render(time)
		frame := Frame{Time: time}
		for i, objects := range objectsPerTrack {
			if errs[i] != nil {
				doc.Errors = append(doc.Errors, errs[i].Error())
				continue
			}
			frame.Objects = append(frame.Objects, objects...)
		}
		doc.Frames = append(doc.Frames, frame)
	}
	doc.Stats = Measure(doc.Frames)
	return doc, nil
}
