package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory containing JSON scene files")
	staticDir := flag.String("static", "static", "Directory of static files served at /")
	consoleSize := flag.Int("console", server.DefaultConsoleSize, "Number of log records kept for /api/console")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	// Log to stderr and keep recent records for the web console
	console := server.NewConsole(*consoleSize)
	stderr := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(server.NewConsoleHandler(console, stderr, slog.LevelInfo))
	slog.SetDefault(logger)
	core.SetLogger(logger)

	webServer := server.NewServer(*port, *scenesDir, *staticDir, console)

	slog.Info("Phong Raytracer Web Server", "port", *port)
	if err := webServer.Start(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
