//go:build ebiten

package app

import (
	"fmt"
	"log"

	"eulerflow/internal/core"
	"eulerflow/internal/render"
	"eulerflow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// VisMode selects which field the viewer displays.
type VisMode int

const (
	VisSmoke VisMode = iota
	VisPressure
	VisSpeed
	VisSmokePressure
	VisSmokeSpeed

	numVisModes
)

// String returns the mode name for the status overlay.
func (m VisMode) String() string {
	switch m {
	case VisSmoke:
		return "smoke"
	case VisPressure:
		return "pressure"
	case VisSpeed:
		return "speed"
	case VisSmokePressure:
		return "smoke+pressure"
	case VisSmokeSpeed:
		return "smoke+speed"
	}
	return "unknown"
}

// fieldProvider is the accessor surface the viewer reads each frame.
type fieldProvider interface {
	SpeedField() []float64
	SmokeField() []float64
	PressureField() []float64
	ClassificationField() []float64
}

type obstacleStamper interface {
	StampObstacle(cx, cy int, r float64)
}

type wallPreserver interface {
	ResetExceptWalls()
}

type cellDescriber interface {
	DescribeCell(x, y int) string
}

// Radius in cells of the obstacle stamped under the cursor while dragging.
const brushRadius = 2.5

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	fields  fieldProvider
	painter *render.FieldPainter
	overlay *ui.Overlay

	vis   VisMode
	color render.ColorMode

	scale    int
	paused   bool
	tickOnce bool

	recorder    *render.Recorder
	recordPath  string
	recordEvery int
	frame       uint64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:         sim,
		painter:     render.NewFieldPainter(size.W, size.H),
		overlay:     ui.NewOverlay(),
		vis:         VisSmokePressure,
		scale:       cfg.Scale,
		recordPath:  cfg.RecordPath,
		recordEvery: cfg.RecordEvery,
	}
	if fp, ok := sim.(fieldProvider); ok {
		g.fields = fp
	}
	return g
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.stopRecording()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if wp, ok := g.sim.(wallPreserver); ok {
			wp.ResetExceptWalls()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.vis = (g.vis + numVisModes - 1) % numVisModes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.vis = (g.vis + 1) % numVisModes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.color = g.color.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.color = g.color.Prev()
	}

	g.overlay.Update()
	g.handleMouse()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleMouse() {
	cx, cy := ebiten.CursorPosition()
	gx, gy := cx/g.scale, cy/g.scale

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if st, ok := g.sim.(obstacleStamper); ok {
			st.StampObstacle(gx, gy, brushRadius)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		size := g.sim.Size()
		if gx >= 0 && gx < size.W && gy >= 0 && gy < size.H {
			if d, ok := g.sim.(cellDescriber); ok {
				log.Printf("\n%s", d.DescribeCell(gx, gy))
			}
		}
	}
}

func (g *Game) toggleRecording() {
	if g.recorder != nil {
		g.stopRecording()
		return
	}
	rec, err := render.NewRecorder(g.recordPath)
	if err != nil {
		log.Printf("recording unavailable: %v", err)
		return
	}
	g.recorder = rec
	log.Printf("recording to %s", g.recordPath)
}

func (g *Game) stopRecording() {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.Close(); err != nil {
		log.Printf("close recording: %v", err)
	} else {
		log.Printf("recorded %d frames to %s", g.recorder.Frames(), g.recordPath)
	}
	g.recorder = nil
}

// Draw renders the selected field view and feeds the recorder.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.fields == nil {
		return
	}

	var field []float64
	switch g.vis {
	case VisPressure, VisSmokePressure:
		field = g.fields.PressureField()
	case VisSpeed, VisSmokeSpeed:
		field = g.fields.SpeedField()
	default:
		field = g.fields.SmokeField()
	}

	var mask []float64
	switch g.vis {
	case VisSmokePressure, VisSmokeSpeed:
		mask = g.fields.SmokeField()
	default:
		mask = g.fields.ClassificationField()
	}

	g.painter.Blit(screen, field, mask, g.color, g.scale)

	if g.recorder != nil && g.recordEvery > 0 && g.frame%uint64(g.recordEvery) == 0 {
		w, h := g.painter.Size()
		if err := g.recorder.WriteFrame(w, h, g.painter.Frame()); err != nil {
			log.Printf("record frame: %v", err)
			g.stopRecording()
		}
	}
	g.frame++

	g.overlay.Draw(screen, g.status())
}

func (g *Game) status() string {
	s := fmt.Sprintf("%s | %s", g.vis, g.color)
	if g.paused {
		s += " | paused"
	}
	if g.recorder != nil {
		s += " | REC"
	}
	return s
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sim.Size()
	return size.W * g.scale, size.H * g.scale
}
