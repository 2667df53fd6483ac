package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velverin/phosphene"
	"github.com/velverin/phosphene/effects"
	"github.com/velverin/phosphene/export"
	"github.com/velverin/phosphene/synths"
	"github.com/velverin/phosphene/version"
)

// server wires a loaded project to the HTTP handlers. The project is
// read-only after startup; rendering is a pure function of the query time, so
// concurrent requests need no locking.
type server struct {
	project  *phosphene.Project
	registry *phosphene.Registry
	logger   *slog.Logger
}

func main() {
	port := flag.Int("p", 8080, "Port to listen on.")
	release := flag.Bool("r", false, "Run gin in release mode.")
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

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	registry := phosphene.NewRegistry(synths.Builders(), effects.Builders())
	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Error("reading project", slog.Any("error", err))
		os.Exit(1)
	}
	project, err := phosphene.LoadProject(data, registry)
	if err != nil {
		logger.Error("loading project", slog.Any("error", err))
		os.Exit(1)
	}

	if *release {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &server{project: project, registry: registry, logger: logger}
	r := gin.Default()
	r.Use(corsMiddleware())
	r.GET("/health", s.handleHealth)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/project", s.handleProject)
		v1.GET("/frame", s.handleFrame)
		v1.GET("/frames", s.handleFrames)
		v1.GET("/types", s.handleTypes)
		v1.GET("/presets", s.handlePresets)
	}
	logger.Info("server starting", slog.Int("port", *port), slog.Int("tracks", len(project.Tracks)))
	if err := r.Run(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.VersionOrHash})
}

func (s *server) handleProject(c *gin.Context) {
	c.JSON(http.StatusOK, s.project.Record())
}

// handleFrame renders every track at a single beat. Per-track failures become
// a warnings list, mirroring how the editor keeps the other tracks alive.
func (s *server) handleFrame(c *gin.Context) {
	time, err := strconv.ParseFloat(c.DefaultQuery("time", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time should be a number"})
		return
	}
	objectsPerTrack, errs := s.project.Render(time)
	var objects []phosphene.VisualObject
	var warnings []string
	for i, tracked := range objectsPerTrack {
		if errs[i] != nil {
			warnings = append(warnings, errs[i].Error())
			s.logger.Warn("track render failed", slog.Any("error", errs[i]))
			continue
		}
		objects = append(objects, tracked...)
	}
	c.JSON(http.StatusOK, gin.H{"time": time, "objects": objects, "warnings": warnings})
}

func (s *server) handleFrames(c *gin.Context) {
	from, err1 := strconv.ParseFloat(c.DefaultQuery("from", "0"), 64)
	to, err2 := strconv.ParseFloat(c.DefaultQuery("to", "16"), 64)
	fps, err3 := strconv.ParseFloat(c.DefaultQuery("fps", "60"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from, to and fps should be numbers"})
		return
	}
	doc, err := export.Sample(s.project, from, to, fps)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *server) handleTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"synthesizers": s.registry.SynthesizerTypes(),
		"effects":      s.registry.EffectTypes(),
	})
}

func (s *server) handlePresets(c *gin.Context) {
	names := make([]string, 0)
	for _, p := range phosphene.Presets() {
		names = append(names, p.Name)
	}
	c.JSON(http.StatusOK, gin.H{"presets": names})
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Serve a phosphene project's frames over HTTP for the browser renderer.")
	fmt.Fprintln(os.Stderr, "Usage: phosphene-serve [flags] project.yml")
	flag.PrintDefaults()
}
