package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/velverin/phosphene"
	"github.com/velverin/phosphene/effects"
	"github.com/velverin/phosphene/midi"
	"github.com/velverin/phosphene/synths"
	"github.com/velverin/phosphene/version"
)

func main() {
	synthType := flag.String("s", "cubes", "Synthesizer type assigned to every imported track.")
	outPath := flag.String("o", "", "Project file to write; by default the input name with a .yml extension.")
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

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatalf("error reading MIDI file: %v", err)
	}
	imported, err := midi.Read(data)
	if err != nil {
		fatalf("error importing MIDI: %v", err)
	}
	registry := phosphene.NewRegistry(synths.Builders(), effects.Builders())
	project, err := imported.Project(registry, *synthType)
	if err != nil {
		fatalf("error building project: %v", err)
	}
	contents, err := phosphene.SaveProject(project)
	if err != nil {
		fatalf("error marshaling project: %v", err)
	}

	path := *outPath
	if path == "" {
		path = strings.TrimSuffix(flag.Arg(0), ".mid")
		path = strings.TrimSuffix(path, ".midi") + ".yml"
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		fatalf("error writing %v: %v", path, err)
	}
	fmt.Printf("imported %v tracks at %v BPM into %v\n", len(project.Tracks), project.BPM, path)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Import a Standard MIDI File into a phosphene project.")
	fmt.Fprintln(os.Stderr, "Usage: phosphene-import [flags] song.mid")
	flag.PrintDefaults()
}
