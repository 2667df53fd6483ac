package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/velverin/phosphene"
	"github.com/velverin/phosphene/effects"
	"github.com/velverin/phosphene/export"
	"github.com/velverin/phosphene/synths"
	"github.com/velverin/phosphene/version"
)

func main() {
	format := flag.String("f", "frames.json", "Output format; one of the template names.")
	tmplDir := flag.String("t", "", "Use the *.tmpl templates in this directory instead of the built-in ones.")
	from := flag.Float64("from", 0, "First beat of the sampled range.")
	to := flag.Float64("to", 16, "Last beat of the sampled range.")
	fps := flag.Float64("fps", 60, "Frames per second.")
	outPath := flag.String("o", "", "File to write; standard output by default.")
	listFormats := flag.Bool("l", false, "List the available formats and exit.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}

	var exporter *export.Exporter
	var err error
	if *tmplDir != "" {
		exporter, err = export.NewFromTemplates(*tmplDir)
	} else {
		exporter, err = export.New()
	}
	if err != nil {
		fatalf("error creating exporter: %v", err)
	}
	if *listFormats {
		fmt.Println(strings.Join(exporter.Formats(), "\n"))
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
	doc, err := export.Sample(project, *from, *to, *fps)
	if err != nil {
		fatalf("error sampling project: %v", err)
	}
	contents, err := exporter.Export(*format, doc)
	if err != nil {
		fatalf("error exporting: %v", err)
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
	fmt.Fprintln(os.Stderr, "Export a phosphene project through the frame templates.")
	fmt.Fprintln(os.Stderr, "Usage: phosphene-export [flags] project.yml")
	flag.PrintDefaults()
}
