// Package tui drives the globe renderer under Bubble Tea: frame pacing,
// keyboard/mouse orbit controls, terminal resize handling and the status
// line. The render core is called once per tick with a fresh camera
// snapshot; all animation bookkeeping lives here.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/termglobe/internal/canvas"
	"github.com/san-kum/termglobe/internal/config"
	"github.com/san-kum/termglobe/internal/globe"
	"github.com/san-kum/termglobe/internal/orbit"
)

// Mode selects how much input the scene accepts.
type Mode int

const (
	// ModeInteractive enables full keyboard and mouse control.
	ModeInteractive Mode = iota
	// ModeScreensaver exits on any key; only resize is handled.
	ModeScreensaver
	// ModePlaylist steps through a coordinate list, one keypress per stop.
	ModePlaylist
)

type TickMsg time.Time

// Model owns the per-frame animation state around an immutable render core.
type Model struct {
	mode Mode
	cfg  *config.Config
	glb  *globe.Globe
	cv   *canvas.Canvas

	camAlpha  float64
	camBeta   float64
	camZoom   float64
	globeSpin float64
	camSpin   float64

	tracker  *orbit.Tracker
	playlist []orbit.Location
	playIdx  int

	termW, termH int
	dragging     bool
	lastDragX    int
	lastDragY    int
	frameTime    time.Duration
	lastFrame    time.Time
}

// NewModel assembles a scene from a validated config and globe.
func NewModel(cfg *config.Config, g *globe.Globe, mode Mode, playlist []orbit.Location) Model {
	m := Model{
		mode:      mode,
		cfg:       cfg,
		glb:       g,
		camZoom:   cfg.CamZoom,
		globeSpin: cfg.GlobeRotation / 1000,
		camSpin:   cfg.CamRotation / 1000,
		playlist:  playlist,
		termW:     80,
		termH:     24,
	}
	m.camAlpha, m.camBeta = orbit.Focus(orbit.Location(cfg.Location), 0)
	if mode == ModePlaylist && len(playlist) > 0 {
		m.tracker = &orbit.Tracker{Target: playlist[0], Speed: cfg.FocusSpeed}
	}
	m.cv = fitCanvas(m.termW, m.termH)
	m.glb.Camera.Update(m.camZoom, m.camAlpha, m.camBeta)
	return m
}

// fitCanvas sizes a square canvas from the smaller terminal dimension.
func fitCanvas(termW, termH int) *canvas.Canvas {
	side := termH * canvas.DefaultCharPix.Y
	if termW <= termH {
		side = termW * canvas.DefaultCharPix.X
	}
	if side < canvas.DefaultCharPix.X*2 {
		side = canvas.DefaultCharPix.X * 2
	}
	return canvas.New(side, side)
}

func (m Model) tick() tea.Cmd {
	rate := m.cfg.RefreshRate
	if rate <= 0 {
		rate = config.DefaultRefreshRate
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.step()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.mode == ModeInteractive {
			return m.handleMouse(msg), nil
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		m.cv = fitCanvas(m.termW, m.termH)
		return m, nil
	}
	return m, nil
}

// step advances one animation frame and re-renders.
func (m Model) step() (tea.Model, tea.Cmd) {
	start := time.Now()

	m.glb.Angle += m.globeSpin
	m.camAlpha -= m.globeSpin / 2
	m.camAlpha -= m.camSpin

	if m.camZoom < 1 {
		m.camZoom = 1
	}

	if m.tracker != nil {
		if m.tracker.Step(m.glb.Angle/2, &m.camAlpha, &m.camBeta) {
			m.tracker = nil
		}
	}

	m.glb.Camera.Update(m.camZoom, m.camAlpha, m.camBeta)
	m.cv.Clear()
	m.glb.RenderParallel(m.cv, 0)

	m.frameTime = time.Since(start)
	m.lastFrame = start
	return m, m.tick()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeScreensaver:
		return m, tea.Quit
	case ModePlaylist:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "ctrl+d":
			return m, tea.Quit
		}
		m.playIdx++
		if m.playIdx >= len(m.playlist) {
			return m, tea.Quit
		}
		m.tracker = &orbit.Tracker{Target: m.playlist[m.playIdx], Speed: m.cfg.FocusSpeed}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "-":
		m.globeSpin -= 0.005
	case "+", "=":
		m.globeSpin += 0.005
	case ",":
		m.camSpin -= 0.005
	case ".":
		m.camSpin += 0.005
	case "n":
		if m.glb.Texture.Night != nil && len(m.glb.Texture.Palette) > 0 {
			m.glb.DisplayNight = !m.glb.DisplayNight
		}
	case "h", "left":
		m.camAlpha += 0.1
	case "l", "right":
		m.camAlpha -= 0.1
	case "k", "up":
		if m.camBeta < 1.5 {
			m.camBeta += 0.1
		}
	case "j", "down":
		if m.camBeta > -1.5 {
			m.camBeta -= 0.1
		}
	case "pgup":
		m.camZoom += 0.1
	case "pgdown":
		m.camZoom -= 0.1
	case "enter":
		m.camAlpha, m.camBeta = orbit.Focus(orbit.Location(m.cfg.Location), m.glb.Angle/2)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.camZoom -= 0.1
		return m
	case tea.MouseButtonWheelDown:
		m.camZoom += 0.1
		return m
	}

	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft {
		if m.dragging {
			dx := float64(msg.X - m.lastDragX)
			dy := float64(msg.Y - m.lastDragY)
			if dy > 0 && m.camBeta < 1.5 {
				m.camBeta += 0.1
			} else if dy < 0 && m.camBeta > -1.5 {
				m.camBeta -= 0.1
			}
			m.camAlpha += dx * math.Pi / 30
			m.camAlpha += dy * math.Pi / 30
		}
		m.dragging = true
		m.lastDragX, m.lastDragY = msg.X, msg.Y
		return m
	}

	m.dragging = false
	return m
}

func (m Model) View() string {
	if m.cv == nil {
		return ""
	}
	frame := canvasStyle.Render(strings.TrimRight(m.cv.String(), "\n"))
	if m.mode != ModeInteractive {
		return frame
	}
	return lipgloss.JoinVertical(lipgloss.Left, frame, m.statusLine(), m.helpLine())
}

func (m Model) statusLine() string {
	night := "off"
	if m.glb.DisplayNight {
		night = "on"
	}
	parts := []string{
		titleStyle.Render("globe"),
		labelStyle.Render("zoom ") + valueStyle.Render(fmt.Sprintf("%.1f", m.camZoom)),
		labelStyle.Render("spin ") + valueStyle.Render(fmt.Sprintf("%.3f", m.globeSpin)),
		labelStyle.Render("night ") + valueStyle.Render(night),
		labelStyle.Render("frame ") + valueStyle.Render(m.frameTime.Round(time.Microsecond).String()),
	}
	if m.tracker != nil {
		parts = append(parts, activeStyle.Render("focusing"))
	}
	return strings.Join(parts, "  ")
}

func (m Model) helpLine() string {
	return helpStyle.Render("hjkl/arrows orbit · pgup/pgdn zoom · +/- spin · ,/. cam · n night · enter focus · q quit")
}

// RunInteractive starts the full-control TUI.
func RunInteractive(cfg *config.Config, g *globe.Globe) error {
	p := tea.NewProgram(NewModel(cfg, g, ModeInteractive, nil),
		tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// RunScreensaver starts the input-less mode; any key exits.
func RunScreensaver(cfg *config.Config, g *globe.Globe) error {
	p := tea.NewProgram(NewModel(cfg, g, ModeScreensaver, nil), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunPlaylist steps through locations; each keypress eases the camera to
// the next one and the program exits after the last.
func RunPlaylist(cfg *config.Config, g *globe.Globe, locs []orbit.Location) error {
	p := tea.NewProgram(NewModel(cfg, g, ModePlaylist, locs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
