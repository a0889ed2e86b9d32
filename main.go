package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name, json:<name> from -scenes, or a path to a .json scene")
	scenesDir := flag.String("scenes", "scenes", "Directory searched for JSON scenes")
	width := flag.Int("width", 0, "Image width in pixels; height follows the viewport aspect ratio (0 = scene default)")
	output := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	format := flag.String("format", "png", "Output format when -output is not set: png, bmp, tiff or ppm")
	useIntensity := flag.Bool("intensity", false, "Scale light colors by their intensity")
	list := flag.Bool("list", false, "List available scenes and exit")
	verbose := flag.Bool("v", false, "Enable debug logging")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	setupLogging(*verbose)

	if *list {
		if err := listScenes(*scenesDir); err != nil {
			slog.Error("failed to list scenes", "error", err)
			os.Exit(1)
		}
		return
	}

	selectedScene, err := createScene(*sceneType, *scenesDir, *width)
	if err != nil {
		slog.Error("failed to create scene", "scene", *sceneType, "error", err)
		os.Exit(1)
	}

	filename := *output
	if filename == "" {
		filename, err = defaultOutputPath(selectedScene.Name, *format)
		if err != nil {
			slog.Error("failed to prepare output", "error", err)
			os.Exit(1)
		}
	}

	raytracer := renderer.NewRaytracer(selectedScene, integrator.PhongConfig{UseIntensity: *useIntensity})
	cols, rows := raytracer.Size()
	slog.Info("rendering", "scene", selectedScene.Name, "width", cols, "height", rows,
		"shapes", selectedScene.GetPrimitiveCount(), "lights", len(selectedScene.Lights))

	img, stats := raytracer.RenderImage()
	slog.Info("render completed", "stats", stats.String())

	if err := loaders.SaveImage(filename, img); err != nil {
		slog.Error("failed to save image", "path", filename, "error", err)
		os.Exit(1)
	}
	slog.Info("render saved", "path", filename)
}

// setupLogging installs a text handler on stderr for both the CLI and the
// library packages
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	core.SetLogger(logger)
}

// createScene loads a scene and validates it, rescaling the pixel grid when
// width is positive
func createScene(sceneType, scenesDir string, width int) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, errors.New("scene name cannot be empty")
	}

	s, err := scene.Load(sceneType, scenesDir)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		s.CameraConfig = s.CameraConfig.WithCols(width)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaultOutputPath(sceneName, format string) (string, error) {
	if _, err := loaders.FormatFromPath("render." + format); err != nil {
		return "", err
	}

	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format)), nil
}

func listScenes(scenesDir string) error {
	response, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, group := range response.Groups {
		fmt.Println(group.Name + ":")
		for _, info := range group.Scenes {
			fmt.Printf("  %-16s %s\n", info.ID, info.Description)
		}
	}
	return nil
}
