package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-phong-raytracer/pkg/viewer"
)

var keyActions = []struct {
	key    ebiten.Key
	action viewer.Action
}{
	{ebiten.KeyArrowLeft, viewer.MoveLeft},
	{ebiten.KeyArrowRight, viewer.MoveRight},
	{ebiten.KeyArrowUp, viewer.MoveUp},
	{ebiten.KeyArrowDown, viewer.MoveDown},
	{ebiten.KeyW, viewer.MoveAway},
	{ebiten.KeyS, viewer.MoveCloser},
	{ebiten.KeySpace, viewer.TakeSnapshot},
	{ebiten.KeyEscape, viewer.Quit},
}

// runWindow opens a desktop window that shows one freshly rendered frame per
// tick and forwards key presses to the session. It blocks until the window closes.
func runWindow(session *viewer.Session, title string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	w, h := session.Framebuffer().Size()

	ebiten.SetWindowTitle("Phong Raytracer (" + title + ")")
	ebiten.SetWindowSize(int(w)*scale, int(h)*scale)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(&viewerGame{session: session})
	if errors.Is(err, viewer.ErrQuit) {
		return nil
	}
	return err
}

type viewerGame struct {
	session *viewer.Session
	fbImg   *ebiten.Image
}

func (g *viewerGame) Update() error {
	for _, ka := range keyActions {
		if !inpututil.IsKeyJustPressed(ka.key) {
			continue
		}
		err := g.session.Apply(ka.action)
		if errors.Is(err, viewer.ErrQuit) {
			return err
		}
		if err != nil {
			slog.Error("action failed", "action", ka.action, "error", err)
		}
	}
	_, err := g.session.Frame(time.Now())
	return err
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	img := g.session.Framebuffer().Image()
	if g.fbImg == nil {
		b := img.Bounds()
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.session.Framebuffer().Size()
	return int(w), int(h)
}
