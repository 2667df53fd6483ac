package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/velverin/phosphene"
	"github.com/velverin/phosphene/effects"
	"github.com/velverin/phosphene/export"
	"github.com/velverin/phosphene/synths"
	"github.com/velverin/phosphene/version"
)

func main() {
	at := flag.Float64("at", -1, "Render a single frame at this beat instead of a range.")
	from := flag.Float64("from", 0, "First beat of the sampled range.")
	to := flag.Float64("to", 16, "Last beat of the sampled range.")
	fps := flag.Float64("fps", 60, "Frames per second when sampling a range.")
	outPath := flag.String("o", "", "File to write; standard output by default.")
	yamlOut := flag.Bool("y", false, "Write YAML instead of JSON.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	registry := phosphene.NewRegistry(synths.Builders(), effects.Builders())
	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatalf("error reading project: %v", err)
	}
	project, err := phosphene.LoadProject(data, registry)
	if err != nil {
		fatalf("error loading project: %v", err)
	}
	for _, warn := range project.Validate() {
		fmt.Fprintf(os.Stderr, "warning: %v\n", warn)
	}

	var doc *export.Document
	if *at >= 0 {
		doc, err = export.Sample(project, *at, *at, *fps)
	} else {
		doc, err = export.Sample(project, *from, *to, *fps)
	}
	if err != nil {
		fatalf("error sampling project: %v", err)
	}
	for _, e := range doc.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}

	var contents []byte
	if *yamlOut {
		contents, err = yaml.Marshal(doc)
	} else {
		contents, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		fatalf("error marshaling frames: %v", err)
	}
	if *outPath == "" {
		fmt.Print(string(contents))
		return
	}
	if err := os.WriteFile(*outPath, contents, 0644); err != nil {
		fatalf("error writing %v: %v", *outPath, err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Render a phosphene project into sampled visual-object frames.")
	fmt.Fprintln(os.Stderr, "Usage: phosphene-render [flags] project.yml")
	flag.PrintDefaults()
}
