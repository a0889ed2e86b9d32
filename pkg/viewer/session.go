// Package viewer drives the interactive render loop independently of the
// window system: key actions, per-frame rendering into a framebuffer, the
// FPS overlay and snapshots.
package viewer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/display"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// Step is how far one key press moves the selected shape, in world units
const Step = 0.1

// ErrQuit is returned by Apply when the user asks to leave
var ErrQuit = errors.New("viewer quit")

// Action is a user command
type Action int

const (
	ActionNone Action = iota
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	MoveAway   // -Z, into the screen
	MoveCloser // +Z, toward the observer
	TakeSnapshot
	Quit
)

var moveOffsets = map[Action]core.Vec3{
	MoveLeft:   core.NewVec3(-Step, 0, 0),
	MoveRight:  core.NewVec3(Step, 0, 0),
	MoveUp:     core.NewVec3(0, Step, 0),
	MoveDown:   core.NewVec3(0, -Step, 0),
	MoveAway:   core.NewVec3(0, 0, -Step),
	MoveCloser: core.NewVec3(0, 0, Step),
}

// Config controls a viewer session
type Config struct {
	ShowFPS        bool
	SnapshotDir    string
	SnapshotFormat string // One of loaders.Formats; empty means ppm
}

// Session renders frames of one scene into a framebuffer
type Session struct {
	rt       *renderer.Raytracer
	fb       *display.Framebuffer
	target   *display.Target
	config   Config
	selected int // Index of the shape moved by key actions, -1 for none

	frames    int
	lastTick  time.Time
	fpsLabel  string
	snapshots int
}

// NewSession creates a session that renders rt into a framebuffer sized to
// its camera grid
func NewSession(rt *renderer.Raytracer, config Config) *Session {
	if config.SnapshotFormat == "" {
		config.SnapshotFormat = "ppm"
	}

	cols, rows := rt.Size()
	fb := display.NewFramebuffer(cols, rows)
	s := &Session{
		rt:       rt,
		fb:       fb,
		target:   display.NewTarget(fb),
		config:   config,
		selected: selectShape(rt.Scene().Shapes),
	}
	rt.SetPresenter(s)
	return s
}

// selectShape picks the first sphere, or failing that the first movable
// shape that is not an infinite plane
func selectShape(shapes []geometry.Shape) int {
	for i, shape := range shapes {
		if _, ok := shape.(*geometry.Sphere); ok {
			return i
		}
	}
	for i, shape := range shapes {
		if _, isPlane := shape.(*geometry.Plane); isPlane {
			continue
		}
		if _, ok := shape.(geometry.Translator); ok {
			return i
		}
	}
	return -1
}

// Framebuffer returns the framebuffer frames are presented to
func (s *Session) Framebuffer() *display.Framebuffer {
	return s.fb
}

// Selected returns the shape moved by key actions, or nil
func (s *Session) Selected() geometry.Shape {
	if s.selected < 0 {
		return nil
	}
	return s.rt.Scene().Shapes[s.selected]
}

// Apply performs a user action between frames
func (s *Session) Apply(action Action) error {
	switch action {
	case ActionNone:
		return nil
	case Quit:
		return ErrQuit
	case TakeSnapshot:
		_, err := s.Snapshot()
		return err
	}

	offset, ok := moveOffsets[action]
	if !ok {
		return fmt.Errorf("unknown action %d", action)
	}
	shape, ok := s.Selected().(geometry.Translator)
	if !ok {
		core.Logger().Debug("no shape to move")
		return nil
	}
	shape.Translate(offset)
	return nil
}

// Frame renders one frame and presents it. now drives the FPS counter,
// which is sampled once per second before rendering.
func (s *Session) Frame(now time.Time) (renderer.FrameStats, error) {
	if s.lastTick.IsZero() {
		s.lastTick = now
	}
	if elapsed := now.Sub(s.lastTick); elapsed >= time.Second {
		fps := float64(s.frames) / elapsed.Seconds()
		s.fpsLabel = fmt.Sprintf("FPS %.0f", fps)
		core.Logger().Info("fps", "fps", fps)
		s.frames = 0
		s.lastTick = now
	}

	stats, err := s.rt.RenderFrame(s.target)
	if err != nil {
		return stats, err
	}
	s.frames++
	return stats, nil
}

// Display draws the overlay and presents the framebuffer. It is called by
// the raytracer after every frame.
func (s *Session) Display() error {
	if s.config.ShowFPS && s.fpsLabel != "" {
		display.DrawLabel(s.fb, 2, 2, s.fpsLabel)
	}
	return s.target.Display()
}

// FPSLabel returns the text of the FPS overlay, empty until one second has passed
func (s *Session) FPSLabel() string {
	return s.fpsLabel
}

// Snapshot renders a clean frame without the overlay and saves it to the
// snapshot directory, returning the file name
func (s *Session) Snapshot() (string, error) {
	img, _ := s.rt.RenderImage()

	dir := s.config.SnapshotDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	s.snapshots++
	filename := filepath.Join(dir, fmt.Sprintf("snapshot-%03d.%s", s.snapshots, s.config.SnapshotFormat))
	if err := loaders.SaveImage(filename, img); err != nil {
		return "", err
	}

	core.Logger().Info("snapshot saved", "path", filename)
	return filename, nil
}
