package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/card"
	"github.com/san-kum/heartcloud/internal/metrics"
	"github.com/san-kum/heartcloud/internal/viz"
)

const (
	chromeRows   = 10
	buttonRows   = 3
	minCanvasW   = 20
	minCanvasH   = 8
	yesLabel     = "[ Yes ♥ ]"
	noLabel      = "[ No ]"
	confettiSize = 80
)

type tickMsg time.Time

type Options struct {
	FPS            int
	CharsPerSecond float64
	Seed           int64
	Log            zerolog.Logger
}

// model is the terminal render surface for a card.
type model struct {
	card     *card.Card
	anim     *animator.Animator
	clock    animator.Clock
	surface  *viz.Surface
	recorder *metrics.Recorder
	confetti *card.Confetti
	dodger   *card.Dodger
	writer   *card.Typewriter
	log      zerolog.Logger

	pointer     animator.PointerState
	last        animator.Transform
	lastT       float64
	scriptStart float64
	cps         float64
	frame       time.Duration
	focusNo     bool
	showStats   bool

	width  int
	height int
}

func newModel(c *card.Card, anim *animator.Animator, clock animator.Clock, opts Options) model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	surface := &viz.Surface{Cloud: c.Cloud(), Camera: viz.NewCamera()}
	recorder := metrics.NewRecorder(surface, metrics.DefaultMetrics()...)
	anim.Attach(recorder)

	m := model{
		card:     c,
		anim:     anim,
		clock:    clock,
		surface:  surface,
		recorder: recorder,
		confetti: card.NewConfetti(rng),
		dodger:   card.NewDodger(card.Rect{W: 40, H: buttonRows}, len([]rune(noLabel)), 1, rng),
		writer:   card.NewTypewriter(c.Script(), opts.CharsPerSecond),
		log:      opts.Log,
		cps:      opts.CharsPerSecond,
		frame:    time.Second / time.Duration(fps),
	}
	c.OnAccept(func() {
		m.confetti.Burst(0.5, 0.45, confettiSize)
	})
	return m.resize(80, 24)
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	case tickMsg:
		m.step()
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "y", "Y":
		m.accept()
	case "enter", " ":
		if m.focusNo {
			m.dodger.Flee()
		} else {
			m.accept()
		}
	case "n", "N":
		m.dodger.Flee()
	case "tab", "left", "right", "h", "l":
		m.focusNo = !m.focusNo && !m.card.Accepted()
		if m.focusNo {
			// The decline button never takes focus for long.
			m.dodger.Flee()
		}
	case "t":
		viz.NextTheme()
	case "s":
		m.showStats = !m.showStats
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	m.pointer = m.normalize(msg.X, msg.Y)

	row := msg.Y - m.buttonTop()
	if m.card.Accepted() || row < 0 || row >= buttonRows {
		return m
	}

	if m.dodger.Hover(msg.X, row) {
		m.log.Debug().Int("x", m.dodger.Button().X).Int("y", m.dodger.Button().Y).Msg("decline button dodged")
		return m
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.yesRect().Contains(msg.X, row) {
		m.accept()
	}
	return m
}

// normalize maps a cell position to [-1, 1] with +y up.
func (m model) normalize(x, y int) animator.PointerState {
	w, h := max(m.width-1, 1), max(m.height-1, 1)
	return animator.PointerState{
		X: float64(x)/float64(w)*2 - 1,
		Y: -(float64(y)/float64(h)*2 - 1),
	}.Clamp()
}

func (m *model) accept() {
	if m.card.Accepted() {
		return
	}
	t := m.clock.Elapsed()
	m.card.Accept(t)
	m.focusNo = false
	m.writer = card.NewTypewriter(m.card.Script(), m.cps)
	m.scriptStart = t
	m.log.Info().Float64("t", t).Float64("pulse_speed", m.card.Params().PulseSpeed()).Msg("card accepted")
}

func (m *model) step() {
	t := m.clock.Elapsed()
	dt := t - m.lastT
	m.lastT = t

	m.last = m.anim.Step(t, m.pointer)
	m.confetti.Step(dt)
	m.stampConfetti()
}

func (m *model) stampConfetti() {
	c := m.surface.Canvas
	for _, p := range m.confetti.Pieces() {
		col := int(p.X * float64(c.Width))
		row := int(p.Y * float64(c.Height))
		c.Stamp(col, row, p.Glyph, p.Color)
	}
}

func (m model) resize(w, h int) model {
	m.width, m.height = w, h
	cw := max(w-2, minCanvasW)
	ch := max(h-chromeRows-buttonRows, minCanvasH)
	m.surface.Canvas = viz.NewCanvas(cw, ch)
	m.dodger.Resize(m.noArea())
	return m
}

func (m model) buttonTop() int {
	// title + blank + canvas + separator + text
	return 2 + m.surface.Canvas.Height + 3
}

func (m model) yesRect() card.Rect {
	return card.Rect{X: max(m.width/4-len([]rune(yesLabel))/2, 0), Y: 1, W: len([]rune(yesLabel)), H: 1}
}

// noArea is where the decline button may roam: the button rows right of
// the accept button.
func (m model) noArea() card.Rect {
	y := m.yesRect()
	x := y.X + y.W + 2
	return card.Rect{X: x, Y: 0, W: max(m.width-x, len([]rune(noLabel))), H: buttonRows}
}

func (m model) View() string {
	var b strings.Builder
	theme := viz.CurrentTheme

	b.WriteString(viz.GradientText("  ♥ heartcloud ♥", theme.GradientA, theme.GradientB) + "\n\n")
	b.WriteString(m.surface.Canvas.Render())
	b.WriteString(viz.Separator(m.surface.Canvas.Width) + "\n")

	elapsed := m.lastT - m.scriptStart
	lines, _ := m.writer.Visible(elapsed)
	text := strings.Join(lines, " ")
	b.WriteString(viz.TitleStyle().Render("  "+text) + "\n\n")

	b.WriteString(m.viewButtons())

	if m.showStats {
		b.WriteString(m.viewStats())
	}
	b.WriteString(viz.HintStyle().Render("  y accept · n/tab dodge · t theme · s stats · q quit") + "\n")
	return b.String()
}

func (m model) viewButtons() string {
	rows := make([][]string, buttonRows)
	for i := range rows {
		rows[i] = strings.Split(strings.Repeat(" ", max(m.width, 1)), "")
	}
	theme := viz.CurrentTheme

	put := func(r card.Rect, label string, style lipgloss.Style) {
		if r.Y < 0 || r.Y >= buttonRows || r.X >= len(rows[r.Y]) {
			return
		}
		rows[r.Y][r.X] = style.Render(label)
		for i := 1; i < r.W && r.X+i < len(rows[r.Y]); i++ {
			rows[r.Y][r.X+i] = ""
		}
	}

	if m.card.Accepted() {
		put(m.yesRect(), yesLabel, lipgloss.NewStyle().Bold(true).Foreground(theme.Accent))
	} else {
		put(m.yesRect(), yesLabel, lipgloss.NewStyle().Bold(true).Foreground(theme.Yes).Reverse(!m.focusNo))
		put(m.dodger.Button(), noLabel, lipgloss.NewStyle().Foreground(theme.No).Reverse(m.focusNo))
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strings.Join(r, "") + "\n")
	}
	return b.String()
}

func (m model) viewStats() string {
	p := m.card.Params()
	v := m.recorder.Values()
	return fmt.Sprintf("  %s  scale %.3f  rot %.2f  fps %.0f  mode %s  points %d\n",
		viz.PulseBar(m.last.Scale, p.PulseAmplitude, 20),
		m.last.Scale, m.last.Rotation, v["fps"], m.card.Mode(), m.surface.Drawn)
}

// Run shows the card full screen until the user quits.
func Run(c *card.Card, anim *animator.Animator, opts Options) error {
	m := newModel(c, anim, animator.NewWallClock(), opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
