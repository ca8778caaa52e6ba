package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/auviz/internal/audio"
	"github.com/olivier-w/auviz/internal/config"
)

type stubSource struct {
	chunks []audio.Chunk
	closed bool
}

func (s *stubSource) Start(context.Context) error { return nil }

func (s *stubSource) Next() (audio.Chunk, bool) {
	if len(s.chunks) == 0 {
		return audio.Chunk{}, false
	}
	c := s.chunks[0]
	s.chunks = s.chunks[1:]
	return c, true
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

func testModel(t *testing.T) (Model, *stubSource) {
	t.Helper()
	src := &stubSource{}
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	return New(src, config.Default(), cfgPath), src
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestSpaceCyclesThroughModes(t *testing.T) {
	m, _ := testModel(t)
	first := m.modes[m.idx].Name()
	for range len(m.modes) {
		m, _ = update(t, m, keyMsg(" "))
	}
	if got := m.modes[m.idx].Name(); got != first {
		t.Fatalf("full cycle ended on %q, started on %q", got, first)
	}
}

func TestEnterCyclesColorScheme(t *testing.T) {
	m, _ := testModel(t)
	before := m.scheme
	m, _ = update(t, m, keyMsg("enter"))
	if m.scheme == before {
		t.Fatal("scheme did not advance")
	}
}

func TestEQKeyCyclesAnalyzerStrength(t *testing.T) {
	m, _ := testModel(t)
	if m.eq != config.EQMedium {
		t.Fatalf("default eq mode: %v", m.eq)
	}
	m, _ = update(t, m, keyMsg("w"))
	if m.eq != config.EQStrong {
		t.Fatalf("after w: %v", m.eq)
	}
	if got := m.analyzer.EQStrength(); got != 0.65 {
		t.Fatalf("analyzer strength %v", got)
	}
	m, _ = update(t, m, keyMsg("w"))
	if m.eq != config.EQOff || m.analyzer.EQStrength() != 0 {
		t.Fatal("eq did not cycle to off")
	}
}

func TestWindowSizeReservesChromeRows(t *testing.T) {
	m, _ := testModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.grid.Width() != 80 || m.grid.Height() != 22 {
		t.Fatalf("grid sized %dx%d", m.grid.Width(), m.grid.Height())
	}
}

func TestFrameMsgAdvancesAndReschedules(t *testing.T) {
	m, src := testModel(t)
	src.chunks = []audio.Chunk{{Samples: make([]float64, 1024), SampleRate: 48000}}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	m, cmd := update(t, m, frameMsg(time.Now()))
	if cmd == nil {
		t.Fatal("no follow-up frame command")
	}
	if !m.gotAudio || m.sampleRate != 48000 {
		t.Fatalf("chunk not consumed: gotAudio=%v rate=%d", m.gotAudio, m.sampleRate)
	}

	// No chunk queued: the frame still renders, marked idle.
	m, _ = update(t, m, frameMsg(time.Now()))
	if m.tick != 2 {
		t.Fatalf("tick %d", m.tick)
	}
}

func TestQuitClosesSourceAndPersistsConfig(t *testing.T) {
	m, src := testModel(t)
	m, _ = update(t, m, keyMsg("enter")) // drift from defaults
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !src.closed {
		t.Fatal("source left open")
	}
	if _, err := os.Stat(m.cfgPath); err != nil {
		t.Fatalf("config not persisted: %v", err)
	}
	saved := config.Load(m.cfgPath)
	if saved.Scheme == config.Default().Scheme {
		t.Fatal("persisted config kept the default scheme")
	}
}

func TestPickerSelectsMode(t *testing.T) {
	m, _ := testModel(t)
	m, _ = update(t, m, keyMsg("m"))
	if !m.picking {
		t.Fatal("picker did not open")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, keyMsg("enter"))
	if m.picking {
		t.Fatal("picker did not close")
	}
	if m.modes[m.idx].Name() != "spectrum" {
		t.Fatalf("selected %q", m.modes[m.idx].Name())
	}
}

func TestViewShowsModeAndHelp(t *testing.T) {
	m, _ := testModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 16})
	m, _ = update(t, m, frameMsg(time.Now()))
	view := m.View()
	if !strings.Contains(view, "auviz") {
		t.Fatal("missing app name in view")
	}
	if !strings.Contains(view, "bars") {
		t.Fatal("missing mode name in view")
	}
	if !strings.Contains(view, "q quit") {
		t.Fatal("missing help line in view")
	}
}

func TestAsciiToggleSwitchesGlyphs(t *testing.T) {
	m, _ := testModel(t)
	m, _ = update(t, m, keyMsg("b"))
	if !m.ascii {
		t.Fatal("ascii flag not set")
	}
	m, _ = update(t, m, keyMsg("b"))
	if m.ascii {
		t.Fatal("ascii flag not cleared")
	}
}
