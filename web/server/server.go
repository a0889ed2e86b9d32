package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
	staticDir string
	console   *Console
}

// NewServer creates a new web server. Scene files are discovered in
// scenesDir and static assets are served from staticDir when it is set.
func NewServer(port int, scenesDir, staticDir string, console *Console) *Server {
	if console == nil {
		console = NewConsole(DefaultConsoleSize)
	}
	return &Server{
		port:      port,
		scenesDir: scenesDir,
		staticDir: staticDir,
		console:   console,
	}
}

// Handler returns the request router
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	if s.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}

	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/console", s.handleConsole)
	mux.HandleFunc("/api/health", s.handleHealth)

	return mux
}

// Start starts the web server and blocks until it fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	core.Logger().Info("starting web server", "url", "http://localhost"+addr)
	return srv.ListenAndServe()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes followed by the scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleConsole returns the most recent log records, oldest first
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.console.Messages())
}

// loadScene resolves a scene id, rescales its pixel grid when width is set
// and validates it. Only built-in ids and "json:<name>" are served; file
// paths are refused.
func (s *Server) loadScene(id string, width int) (*scene.Scene, error) {
	if !scene.IsCatalogID(id) {
		return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, id)
	}
	sceneObj, err := scene.Load(id, s.scenesDir)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		sceneObj.CameraConfig = sceneObj.CameraConfig.WithCols(width)
	}
	if err := sceneObj.Validate(); err != nil {
		return nil, err
	}
	return sceneObj, nil
}

// sceneStatus maps scene loading errors to an HTTP status
func sceneStatus(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		core.Logger().Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	core.Logger().Debug("request failed", "status", status, "error", message)
	writeJSON(w, status, map[string]string{"error": message})
}
