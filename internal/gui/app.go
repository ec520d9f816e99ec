package gui

import (
	"fmt"
	"log/slog"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravsim/internal/audio"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/scene"
	"github.com/san-kum/gravsim/internal/sim"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const telemetryCapacity = 200

type Options struct {
	Name     string
	Viewport scene.Viewport
	Audio    bool
	Logger   *slog.Logger
}

type App struct {
	Sim       *sim.Simulator
	Name      string
	Running   bool
	Contacts  int
	Telemetry []float64 // total energy, newest last
	Font      rl.Font
	Audio     *audio.Processor

	renderer *Renderer
	log      *slog.Logger
}

func initWindow(v scene.Viewport) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(v.Width), int32(v.Height), "gravsim")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when present and falls back to raylib's
// built-in font.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(s *sim.Simulator, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	app := &App{
		Sim:       s,
		Name:      opts.Name,
		Running:   true,
		Telemetry: make([]float64, 0, telemetryCapacity),
		Font:      loadFont(),
		Audio:     audio.NewProcessor(log),
		renderer:  NewRenderer(opts.Viewport),
		log:       log,
	}
	s.AddObserver(app.Audio)
	if opts.Audio {
		app.toggleAudio()
	}
	return app
}

// Run opens a window sized to the viewport and blocks until it is closed.
func Run(s *sim.Simulator, opts Options) {
	initWindow(opts.Viewport)
	defer rl.CloseWindow()

	app := NewApp(s, opts)
	defer app.Audio.Stop()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if quit := a.Update(); quit {
			return
		}
		a.Draw()
	}
}

// Update handles input. It reports whether the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Sim.Reset()
		a.Contacts = 0
		a.Telemetry = a.Telemetry[:0]
	}
	if rl.IsKeyPressed(rl.KeyA) {
		a.toggleAudio()
	}
	if rl.IsWindowResized() {
		a.renderer.Resize(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
	}
	return false
}

func (a *App) toggleAudio() {
	if a.Audio.Active {
		a.Audio.Stop()
		return
	}
	if err := a.Audio.Start(); err != nil {
		a.log.Warn("audio unavailable, continuing without sound", "err", err)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.Running {
		a.Contacts += len(a.Sim.Frame(a.renderer))
		a.record()
	} else {
		a.renderer.Draw(scene.Build(a.Sim.World()))
	}
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) record() {
	p := a.Sim.Params()
	a.Telemetry = append(a.Telemetry, physics.Energy(a.Sim.World(), p.G, p.Softening))
	if len(a.Telemetry) > telemetryCapacity {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) DrawHUD() {
	w, h := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())

	a.drawText("gravsim", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", a.Name), 150, 34, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !a.Running {
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, w-130, 30, 16, col)

	world := a.Sim.World()
	p := a.Sim.Params()
	lines := []string{
		fmt.Sprintf("t        %8.2fs", a.Sim.Time()),
		fmt.Sprintf("energy   %10.3e", physics.Energy(world, p.G, p.Softening)),
		fmt.Sprintf("momentum %10.3e", physics.Momentum(world).Len()),
		fmt.Sprintf("contacts %8d", a.Contacts),
	}
	for i, line := range lines {
		a.drawText(line, 30, 70+i*20, 14, ColText)
	}

	a.DrawTelemetry(30, h-120, 300, 50)

	if a.Audio.Active {
		bass, mid, high := a.Audio.Levels()
		bars := int((bass + mid + high) / 3 * 20)
		if bars > 20 {
			bars = 20
		}
		a.drawText(fmt.Sprintf("AUDIO [%-20s]", strings.Repeat("|", bars)), 30, h-50, 14, ColAccent)
	} else {
		a.drawText("AUDIO [OFF]", 30, h-50, 14, ColTextDim)
	}

	a.drawText("[SPACE] PAUSE  [R] RESET  [A] AUDIO  [Q] QUIT", w-420, h-30, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, h-30, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) DrawTelemetry(rectX, rectY, width, height int) {
	if len(a.Telemetry) < 2 {
		return
	}

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("E: %.2e", a.Telemetry[len(a.Telemetry)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}
