package viz

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/plexus/internal/scene"
)

const (
	defaultCols    = 80
	defaultRows    = 24
	historyLen     = 120
	defaultGIFPath = "plexus.gif"
)

type Options struct {
	FPS     int
	Scale   float64
	Theme   string
	GIFPath string
}

type TickMsg time.Time

// Model hosts a scene in the terminal. Frames are scheduled with tea.Tick;
// mouse, focus and window-size messages become scene events.
type Model struct {
	scene    *scene.Scene
	surface  *BrailleSurface
	opts     Options
	theme    Theme
	styles   styles
	running  bool
	showHelp bool
	frame    int
	lines    int
	history  []float64
	gif      *GIFRecorder
	message  string
}

func NewModel(sceneOpts scene.Options, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.GIFPath == "" {
		opts.GIFPath = defaultGIFPath
	}
	surf := NewBrailleSurface(NewCanvas(defaultCols-statsWidth, defaultRows), opts.Scale)
	w, h := surf.WorldSize()
	theme := GetTheme(opts.Theme)
	return Model{
		scene:   scene.New(w, h, sceneOpts),
		surface: surf,
		opts:    opts,
		theme:   theme,
		styles:  newStyles(theme),
		running: true,
		history: make([]float64, 0, historyLen),
	}
}

// Scene exposes the hosted scene.
func (m Model) Scene() *scene.Scene { return m.scene }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.gif != nil {
				m.stopRecording()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.scene.CreateParticles()
			m.message = "particles reseeded"
		case "g":
			if m.gif != nil {
				m.stopRecording()
			} else {
				m.gif = NewGIFRecorder(m.theme.Background)
				m.message = "recording"
			}
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.pointer(msg)
	case tea.BlurMsg:
		m.scene.PointerLeave()
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.lines = m.scene.Frame(m.surface)
	m.frame++
	if len(m.history) == historyLen {
		m.history = m.history[1:]
	}
	m.history = append(m.history, float64(m.lines))
	if m.gif != nil {
		m.gif.Capture(m.surface.Canvas)
	}
}

func (m *Model) resize(width, height int) {
	cols, rows := width-statsWidth, height
	m.surface.Canvas = NewCanvas(cols, rows)
	w, h := m.surface.WorldSize()
	m.scene.Resize(w, h)
	log.Printf("resize: %dx%d cells, world %.0fx%.0f", cols, rows, w, h)
}

func (m *Model) pointer(msg tea.MouseMsg) {
	c := m.surface.Canvas
	if msg.X < 0 || msg.Y < 0 || msg.X >= c.Width || msg.Y >= c.Height {
		m.scene.PointerLeave()
		return
	}
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return
	}
	m.scene.PointerMove(m.surface.ToWorld(msg.X, msg.Y))
}

func (m *Model) stopRecording() {
	n := m.gif.Len()
	if err := m.gif.Save(m.opts.GIFPath); err != nil {
		log.Printf("gif: %v", err)
		m.message = "recording failed"
	} else {
		log.Printf("gif: saved %d frames to %s", n, m.opts.GIFPath)
		m.message = fmt.Sprintf("saved %s", m.opts.GIFPath)
	}
	m.gif = nil
}

func (m Model) View() string {
	st := m.styles
	var s strings.Builder
	s.WriteString(st.header.Render("PLEXUS") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(st.status.Render(status))
	if m.gif != nil {
		s.WriteString(" " + st.rec.Render(fmt.Sprintf("REC %d", m.gif.Len())))
	}
	s.WriteString("\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(statsWidth-12), asciigraph.Caption("lines"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	ptr := m.scene.Pointer()
	pointer := "away"
	if ptr.Active {
		pointer = fmt.Sprintf("%.0f, %.0f", ptr.X, ptr.Y)
	}
	rows := [][2]string{
		{"Frame", fmt.Sprintf("%d", m.frame)},
		{"Particles", fmt.Sprintf("%d", len(m.scene.Particles()))},
		{"Lines", fmt.Sprintf("%d", m.lines)},
		{"Pointer", pointer},
		{"World", fmt.Sprintf("%.0fx%.0f", m.scene.Width, m.scene.Height)},
		{"Theme", m.theme.Name},
	}
	for _, r := range rows {
		s.WriteString(st.label.Render(r[0]) + st.value.Render(r[1]) + "\n")
	}
	if m.message != "" {
		s.WriteString("\n" + st.value.Render(m.message) + "\n")
	}

	if m.showHelp {
		s.WriteString(st.help.Render("SPACE pause/resume\nR     reseed particles\nG     toggle GIF recording\nT     cycle theme\nQ     quit\n?     hide help"))
	} else {
		s.WriteString(st.help.Render("SP:Pause R:Reseed G:Record\nT:Theme Q:Quit ?:Help"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.surface.Canvas.Render(), st.stats.Render(s.String()))
}

// Run starts the terminal view and blocks until the user quits.
func Run(sceneOpts scene.Options, opts Options) error {
	p := tea.NewProgram(
		NewModel(sceneOpts, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
