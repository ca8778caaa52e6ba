package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/auviz/internal/audio"
	"github.com/olivier-w/auviz/internal/config"
	"github.com/olivier-w/auviz/internal/dsp"
	"github.com/olivier-w/auviz/internal/mode"
	"github.com/olivier-w/auviz/internal/render"
)

// chromeRows is the screen space reserved above and below the grid.
const chromeRows = 2

// Model is the Bubbletea model for the auviz TUI: a frame loop pulling chunks
// from the audio source and pushing them through the active mode.
type Model struct {
	source   audio.Source
	cfgPath  string
	modes    []mode.Mode
	idx      int
	scheme   render.Scheme
	eq       config.EQMode
	ascii    bool
	backdrop mode.Background
	analyzer *mode.Analyzer
	grid     *render.Grid

	samples    []float64
	silence    []float64
	sampleRate int
	tick       int
	lastAudio  int
	gotAudio   bool

	width    int
	height   int
	picking  bool
	picker   list.Model
	spin     spinner.Model
	quitting bool

	saveMsg     string
	saveMsgTime time.Time
}

// New creates a Model around a started audio source, restoring mode, scheme,
// EQ and glyph settings from cfg. cfgPath is where 's' and quit persist them.
func New(source audio.Source, cfg config.Config, cfgPath string) Model {
	modes := mode.Table()
	names := mode.Names()
	idx := 0
	want := cfg.ResolveMode(names)
	for i, n := range names {
		if n == want {
			idx = i
			break
		}
	}

	eq := cfg.ResolveEQ()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	silence := make([]float64, audio.DefaultChunkSize)
	return Model{
		source:     source,
		cfgPath:    cfgPath,
		modes:      modes,
		idx:        idx,
		scheme:     render.SchemeByName(cfg.ResolveScheme(render.SchemeNames())),
		eq:         eq,
		ascii:      cfg.ASCII,
		analyzer:   mode.NewAnalyzer(eq.Strength()),
		grid:       render.NewGrid(1, 1),
		samples:    silence,
		silence:    silence,
		sampleRate: dsp.DefaultSampleRate,
		spin:       s,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), m.spin.Tick, tea.SetWindowTitle("auviz"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		if isQuit(msg) {
			return m.quit()
		}
		switch msg.String() {
		case " ":
			m.idx = (m.idx + 1) % len(m.modes)
			m.modes[m.idx].Reset()
		case "m":
			m.picking = true
			m.picker = newPicker(mode.Names(), m.idx)
			if m.width > 0 {
				m.picker.SetWidth(m.width)
				m.picker.SetHeight(m.height)
			}
		case "enter":
			m.scheme = m.scheme.Next()
		case "w":
			m.eq = m.eq.Next()
			m.analyzer.SetEQStrength(m.eq.Strength())
		case "g":
			m.backdrop = m.backdrop.Next()
		case "b":
			m.ascii = !m.ascii
		case "s":
			cfg := m.currentConfig()
			path := m.cfgPath
			return m, func() tea.Msg {
				return savedMsg{err: cfg.Save(path)}
			}
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.saveMsg = fmt.Sprintf("Save failed: %v", msg.err)
		} else {
			m.saveMsg = "Settings saved"
		}
		m.saveMsgTime = time.Now()
		return m, nil

	case frameMsg:
		m.tick++
		if chunk, ok := m.source.Next(); ok && len(chunk.Samples) > 0 {
			m.samples = chunk.Samples
			if chunk.SampleRate > 0 {
				m.sampleRate = chunk.SampleRate
			}
			m.lastAudio = m.tick
			m.gotAudio = true
		} else {
			m.samples = m.silence
		}
		m.drawFrame()
		if m.saveMsg != "" && time.Since(m.saveMsgTime) > 3*time.Second {
			m.saveMsg = ""
		}
		return m, frameCmd()

	case spinner.TickMsg:
		if m.gotAudio {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.picking {
			m.picker.SetWidth(msg.Width)
			m.picker.SetHeight(msg.Height)
		}
		gridH := msg.Height - chromeRows
		if m.grid.Resize(msg.Width, gridH) {
			m.modes[m.idx].Reset()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.FilterState() != list.Filtering {
		switch msg.String() {
		case "enter":
			if item, ok := m.picker.SelectedItem().(modeItem); ok {
				for i, md := range m.modes {
					if md.Name() == item.name {
						m.idx = i
						m.modes[m.idx].Reset()
						break
					}
				}
			}
			m.picking = false
			return m, nil
		case "esc", "m", "q":
			m.picking = false
			return m, nil
		case "ctrl+c":
			return m.quit()
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.source.Close()
	// Settings persist across sessions without an explicit save.
	_ = m.currentConfig().Save(m.cfgPath)
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

func (m Model) currentConfig() config.Config {
	return config.Config{
		Mode:   m.modes[m.idx].Name(),
		Scheme: m.scheme.String(),
		EQ:     m.eq.String(),
		ASCII:  m.ascii,
	}
}

func (m *Model) drawFrame() {
	m.grid.Clear()
	f := mode.Frame{
		Samples:    m.samples,
		SampleRate: m.sampleRate,
		Tick:       m.tick,
		Scheme:     m.scheme,
		Glyphs:     render.Glyphs(m.ascii),
		ASCII:      m.ascii,
		Analyzer:   m.analyzer,
	}
	m.modes[m.idx].Draw(m.grid, f)
	mode.DrawBackground(m.grid, m.backdrop, f.Glyphs, m.scheme, m.tick)
}

// active reports whether audio arrived within the last half second of frames.
func (m Model) active() bool {
	return m.gotAudio && m.tick-m.lastAudio < 15
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.picking {
		return m.picker.View()
	}

	return m.headerLine() + "\n" + m.grid.String() + "\n" + m.footerLine()
}

func (m Model) headerLine() string {
	dot := idleStyle.Render("○")
	if m.active() {
		dot = activeStyle.Render("●")
	} else if !m.gotAudio {
		dot = m.spin.View()
	}

	status := fmt.Sprintf("%s · %s", m.modes[m.idx].Name(), m.scheme)
	switch m.eq {
	case config.EQMedium:
		status += " · eq~"
	case config.EQStrong:
		status += " · eq+"
	}
	if m.backdrop != mode.BackgroundNone {
		status += " · " + m.backdrop.String()
	}
	if m.ascii {
		status += " · ascii"
	}

	return " " + headerStyle.Render("auviz") + "  " + dot + " " +
		statusStyle.Render(status) + "  " + idleStyle.Render(m.source.Name())
}

func (m Model) footerLine() string {
	if m.saveMsg != "" {
		return " " + helpStyle.Render(m.saveMsg)
	}
	return " " + helpStyle.Render(helpText())
}
