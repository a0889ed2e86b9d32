package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/display"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/df07/go-phong-raytracer/pkg/viewer"
)

func main() {
	var headless viewer.HeadlessConfig
	sceneType := flag.String("scene", "default", "Scene to display (see the raytracer -list flag)")
	scenesDir := flag.String("scenes", "scenes", "Directory searched for JSON scenes")
	width := flag.Int("width", 0, "Frame width in pixels, at most 32767 (0 = scene default)")
	scale := flag.Int("scale", 1, "Window scale factor")
	showFPS := flag.Bool("fps", true, "Draw the FPS overlay")
	snapshotDir := flag.String("snapshots", "output/snapshots", "Directory for Space snapshots")
	snapshotFormat := flag.String("snapshot-format", "ppm", "Snapshot format: png, bmp, tiff or ppm")
	useIntensity := flag.Bool("intensity", false, "Scale light colors by their intensity")
	runHeadless := flag.Bool("headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 0, "Frame rate limit in headless mode (0 = unlimited).")
	flag.IntVar(&headless.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	core.SetLogger(logger)

	if _, err := loaders.FormatFromPath("snapshot." + *snapshotFormat); err != nil {
		slog.Error("invalid snapshot format", "error", err)
		os.Exit(1)
	}

	s, err := scene.Load(*sceneType, *scenesDir)
	if err == nil && *width > 0 {
		s.CameraConfig = s.CameraConfig.WithCols(*width)
	}
	if err == nil {
		err = s.Validate()
	}
	if err == nil {
		err = display.CheckSize(s.CameraConfig.Cols, s.CameraConfig.Rows)
	}
	if err != nil {
		slog.Error("failed to load scene", "scene", *sceneType, "error", err)
		os.Exit(1)
	}

	rt := renderer.NewRaytracer(s, integrator.PhongConfig{UseIntensity: *useIntensity})
	session := viewer.NewSession(rt, viewer.Config{
		ShowFPS:        *showFPS,
		SnapshotDir:    *snapshotDir,
		SnapshotFormat: *snapshotFormat,
	})

	if *runHeadless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		frames, err := viewer.RunHeadless(ctx, session, headless)
		slog.Info("headless run finished", "frames", frames)
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runWindow(session, s.Name, *scale); err != nil {
		slog.Error("viewer failed", "error", err)
		os.Exit(1)
	}
}
