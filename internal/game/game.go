// Package game implements the main loop driving the clipmap.
package game

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/vastheim/clipterra/internal/config"
	"github.com/vastheim/clipterra/internal/engine/camera"
	"github.com/vastheim/clipterra/internal/engine/clipmap"
	"github.com/vastheim/clipterra/internal/engine/input"
	"github.com/vastheim/clipterra/internal/engine/renderer"
	"github.com/vastheim/clipterra/internal/engine/scene"
	"github.com/vastheim/clipterra/internal/engine/window"
	"github.com/vastheim/clipterra/internal/logger"
	"github.com/vastheim/clipterra/pkg/math"
)

// Game owns the window, the camera and the clipmap, and runs the
// frame-synchronous loop: input, re-center, render coarse-to-fine, swap.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.FlyCamera

	terrain       *clipmap.Clipmap
	terrainRender *scene.ClipmapRenderer
}

// New creates the window and GL context, then builds the clipmap and its
// renderer. Resource-allocation failures abort startup.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{cfg: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "clipterra",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// Renderer initializes GL; everything GL-dependent comes after.
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	g.terrain = clipmap.New()
	g.terrainRender, err = scene.NewClipmapRenderer(g.terrain)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating clipmap renderer: %w", err)
	}

	g.input = input.New()
	g.camera = camera.New(
		math.Vec3{X: 0, Y: cfg.Camera.StartHeight, Z: 300},
		cfg.Camera.Speed,
	)

	logger.Info("clipmap initialized",
		zap.Int("levels", clipmap.LevelCount),
		zap.Int("grid_size", clipmap.TextureSize),
		zap.Float32("base_spacing", clipmap.BaseSpacing),
	)
	logger.Info("controls: WASD move, Q/E up/down, arrows look, Shift boost, R reset, Esc quit")

	return g, nil
}

// Run starts the main loop and blocks until quit.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Input
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.renderer.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					g.running = false
				case sdl.SCANCODE_R:
					g.camera.Reset()
				}
			}
		}

		// 2. Camera
		g.moveCamera(dt)

		// 3. Re-center every level before anything is drawn: rendering
		// reads the world offsets this writes.
		g.terrain.Recenter(g.camera.XZ())

		// 4. Render, coarsest level first so finer rings composite over
		// the coarser level's empty center.
		g.renderFrame()

		// 5. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.Int("level0_updates", g.terrain.Levels[0].UpdateCount),
				zap.Float32("viewer_x", g.camera.Position.X),
				zap.Float32("viewer_z", g.camera.Position.Z),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// moveCamera samples held keys into movement axes, the original demo's
// WASD/QE/arrow scheme with a Shift boost.
func (g *Game) moveCamera(dt float32) {
	axis := func(pos, neg sdl.Scancode) float32 {
		var v float32
		if g.input.IsKeyHeld(pos) {
			v++
		}
		if g.input.IsKeyHeld(neg) {
			v--
		}
		return v
	}

	boost := float32(1)
	if g.input.IsKeyHeld(sdl.SCANCODE_LSHIFT) {
		boost = 3
	}

	g.camera.Move(
		axis(sdl.SCANCODE_W, sdl.SCANCODE_S),
		axis(sdl.SCANCODE_D, sdl.SCANCODE_A),
		axis(sdl.SCANCODE_Q, sdl.SCANCODE_E),
		dt*boost,
	)
	g.camera.Rotate(
		axis(sdl.SCANCODE_RIGHT, sdl.SCANCODE_LEFT),
		axis(sdl.SCANCODE_UP, sdl.SCANCODE_DOWN),
		dt,
	)
}

func (g *Game) renderFrame() {
	g.renderer.Begin()

	projection := math.Perspective(
		float32(60*gomath.Pi/180),
		g.renderer.Aspect(),
		0.1, 20000,
	)
	view := g.camera.ViewMatrix()
	model := math.Identity()

	for i := clipmap.LevelCount - 1; i >= 0; i-- {
		g.terrainRender.RenderLevel(i, model, view, projection)
	}
}

// Close releases resources after the loop has fully exited, so no
// release races an in-flight draw. Safe to call more than once.
func (g *Game) Close() {
	if g.terrainRender != nil {
		g.terrainRender.Close()
		g.terrainRender = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
