package gui

import (
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/card"
	"github.com/san-kum/heartcloud/internal/viz"
)

const (
	windowW = 1280
	windowH = 720
)

// Theme Colors
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(255, 228, 239, 255)
	ColTextDim = rl.NewColor(110, 80, 95, 255)
	ColYes     = rl.NewColor(255, 20, 147, 255)
	ColNo      = rl.NewColor(90, 90, 100, 255)
)

type Options struct {
	FPS            int
	CharsPerSecond float64
	Seed           int64
	Log            zerolog.Logger
}

type App struct {
	Card     *card.Card
	Anim     *animator.Animator
	Camera   rl.Camera3D
	Clock    *animator.WallClock
	Confetti *card.Confetti
	Dodger   *card.Dodger
	Writer   *card.Typewriter
	Log      zerolog.Logger

	cps         float64
	scriptStart float64
	lastT       float64
	last        animator.Transform
	colors      []rl.Color
}

func initWindow(fps int) {
	rl.InitWindow(windowW, windowH, "heartcloud")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

func NewApp(c *card.Card, anim *animator.Animator, opts Options) *App {
	rng := rand.New(rand.NewSource(opts.Seed))
	view := anim.View().Position
	a := &App{
		Card: c,
		Anim: anim,
		Camera: rl.NewCamera3D(
			rl.NewVector3(float32(view.X), float32(view.Y), float32(view.Z)),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			60.0,
			rl.CameraPerspective,
		),
		Clock:    animator.NewWallClock(),
		Confetti: card.NewConfetti(rng),
		Dodger:   card.NewDodger(card.Rect{X: windowW / 2, Y: windowH - 160, W: windowW/2 - 40, H: 120}, 120, 44, rng),
		Writer:   card.NewTypewriter(c.Script(), opts.CharsPerSecond),
		Log:      opts.Log,
		cps:      opts.CharsPerSecond,
	}
	a.refreshColors()
	anim.Attach(a)
	return a
}

// Draw receives the animator transform for the frame.
func (a *App) Draw(tr animator.Transform) {
	a.last = tr
	v := tr.Viewpoint
	a.Camera.Position = rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func (a *App) refreshColors() {
	pts := a.Card.Cloud().Points()
	if cap(a.colors) < len(pts) {
		a.colors = make([]rl.Color, len(pts))
	}
	a.colors = a.colors[:len(pts)]
	for i, p := range pts {
		a.colors[i] = toColor(p.Color, 230)
	}
}

func toColor(c colorful.Color, alpha uint8) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, alpha)
}

func yesRect() rl.Rectangle {
	return rl.NewRectangle(windowW/4-70, windowH-120, 140, 44)
}

func rect(r card.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func (a *App) accept(t float64) {
	if a.Card.Accepted() {
		return
	}
	a.Card.Accept(t)
	a.refreshColors()
	a.Confetti.Burst(0.5, 0.5, 160)
	a.Writer = card.NewTypewriter(a.Card.Script(), a.cps)
	a.scriptStart = t
	a.Log.Info().Float64("t", t).Float64("pulse_speed", a.Card.Params().PulseSpeed()).Msg("card accepted")
}

func (a *App) Update() {
	t := a.Clock.Elapsed()
	dt := t - a.lastT
	a.lastT = t

	mouse := rl.GetMousePosition()
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	ptr := animator.PointerState{
		X: float64(mouse.X)/w*2 - 1,
		Y: -(float64(mouse.Y)/h*2 - 1),
	}

	if !a.Card.Accepted() {
		if a.Dodger.Hover(int(mouse.X), int(mouse.Y)) {
			a.Log.Debug().Int("x", a.Dodger.Button().X).Msg("decline button dodged")
		}
		clicked := rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(mouse, yesRect())
		if clicked || rl.IsKeyPressed(rl.KeyY) || rl.IsKeyPressed(rl.KeyEnter) {
			a.accept(t)
		}
		if rl.IsKeyPressed(rl.KeyN) {
			a.Dodger.Flee()
		}
	}

	a.Anim.Step(t, ptr)
	a.Confetti.Step(dt)
}

func (a *App) drawCloud() {
	rl.BeginMode3D(a.Camera)
	for i, p := range a.Card.Cloud().Points() {
		q := viz.ToView(p.Position, a.last)
		rl.DrawPoint3D(rl.NewVector3(float32(q.X), float32(q.Y), float32(q.Z)), a.colors[i])
	}
	rl.EndMode3D()
}

func (a *App) drawButtons() {
	yes := yesRect()
	rl.DrawRectangleRounded(yes, 0.4, 8, ColYes)
	rl.DrawText("Yes", int32(yes.X)+48, int32(yes.Y)+12, 22, rl.White)

	if a.Card.Accepted() {
		return
	}
	no := rect(a.Dodger.Button())
	rl.DrawRectangleRounded(no, 0.4, 8, ColNo)
	rl.DrawText("No", int32(no.X)+46, int32(no.Y)+12, 22, rl.White)
}

func (a *App) drawConfetti() {
	for _, p := range a.Confetti.Pieces() {
		r, g, b := p.Color.Clamped().RGB255()
		rl.DrawRectangle(int32(p.X*windowW), int32(p.Y*windowH), 6, 10, rl.NewColor(r, g, b, 255))
	}
}

func (a *App) Draw2D() {
	lines, _ := a.Writer.Visible(a.lastT - a.scriptStart)
	for i, l := range lines {
		rl.DrawText(l, 40, 40+int32(i)*36, 30, ColText)
	}
	a.drawButtons()
	a.drawConfetti()
	rl.DrawText(fmt.Sprintf("%d FPS  scale %.3f", rl.GetFPS(), a.last.Scale), 30, windowH-30, 14, ColTextDim)
}

func (a *App) Frame() {
	a.Update()

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	a.drawCloud()
	a.Draw2D()
	rl.EndDrawing()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Frame()
	}
}

// Run opens a window and blocks until it is closed.
func Run(c *card.Card, anim *animator.Animator, opts Options) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	initWindow(opts.FPS)
	defer rl.CloseWindow()
	app := NewApp(c, anim, opts)
	app.RunLoop()
}
