package gui

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/plexus/internal/scene"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type Options struct {
	Width, Height int
	FPS           int
	ShowHUD       bool
}

// App hosts a scene in a resizable raylib window.
type App struct {
	Scene   *scene.Scene
	Surface *Surface
	Running bool
	ShowHUD bool
	Lines   int
}

func initWindow(o Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(o.Width), int32(o.Height), "plexus")
	rl.SetTargetFPS(int32(o.FPS))
	rl.SetExitKey(rl.KeyQ)
}

func NewApp(sc *scene.Scene, o Options) *App {
	return &App{
		Scene:   sc,
		Surface: &Surface{Background: ColBg},
		Running: true,
		ShowHUD: o.ShowHUD,
	}
}

// Run opens the window and blocks until it is closed. The scene is resized
// to the window the OS actually granted.
func Run(sceneOpts scene.Options, o Options) {
	initWindow(o)
	defer rl.CloseWindow()

	sc := scene.New(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()), sceneOpts)
	app := NewApp(sc, o)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update forwards window events to the scene.
func (a *App) Update() {
	if rl.IsWindowResized() {
		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		a.Scene.Resize(float64(w), float64(h))
		log.Printf("resize: %dx%d", w, h)
	}

	if !rl.IsCursorOnScreen() {
		if a.Scene.Pointer().Active {
			a.Scene.PointerLeave()
		}
	} else if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		pos := rl.GetMousePosition()
		a.Scene.PointerMove(float64(pos.X), float64(pos.Y))
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Scene.CreateParticles()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	if a.Running {
		a.Lines = a.Scene.Frame(a.Surface)
	} else {
		// Paused frames redraw without advancing.
		a.Surface.Clear(a.Scene.Width, a.Scene.Height)
		a.Scene.ConnectParticles(a.Surface)
		for _, p := range a.Scene.Particles() {
			p.Draw(a.Surface)
		}
	}
	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	h := int32(rl.GetScreenHeight())
	rl.DrawText(fmt.Sprintf("%d FPS  %d lines", rl.GetFPS(), a.Lines), 20, 20, 16, ColText)
	status := "[SPACE] PAUSE  [R] RESEED  [H] HUD  [Q] QUIT"
	if !a.Running {
		status = "PAUSED  " + status
	}
	rl.DrawText(status, 20, h-30, 14, ColTextDim)
}
