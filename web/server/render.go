package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// Limits on request parameters
const (
	defaultScene = "default"
	minWidth     = 16
	maxWidth     = 2000
)

var contentTypes = map[string]string{
	"png":  "image/png",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"ppm":  "image/x-portable-pixmap",
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene        string // Scene id as listed by /api/scenes
	Width        int    // Image width in pixels, 0 keeps the scene's own
	Format       string // One of loaders.Formats
	UseIntensity bool   // Scale light colors by their intensity
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: defaultScene, Format: "png"}

	if sceneID := query.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	}
	if format := query.Get("format"); format != "" {
		if _, ok := contentTypes[format]; !ok {
			return nil, fmt.Errorf("%w: %s", loaders.ErrUnsupportedFormat, format)
		}
		req.Format = format
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.UseIntensity, err = parseBoolParam(query, "intensity", false); err != nil {
		return nil, err
	}

	return req, nil
}

// handleRender renders one frame of a scene and returns it as an image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.loadScene(req.Scene, req.Width)
	if err != nil {
		writeError(w, sceneStatus(err), err.Error())
		return
	}

	rt := renderer.NewRaytracer(sceneObj, integrator.PhongConfig{UseIntensity: req.UseIntensity})
	img, stats := rt.RenderImage()

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, img, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	core.Logger().Info("render complete",
		"scene", sceneObj.Name,
		"format", req.Format,
		"stats", stats.String())

	w.Header().Set("Content-Type", contentTypes[req.Format])
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Hits", strconv.Itoa(stats.Hits))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		core.Logger().Warn("failed to write image", "error", err)
	}
}
