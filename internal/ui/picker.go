package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type modeItem struct {
	name string
	desc string
}

func (i modeItem) Title() string       { return i.name }
func (i modeItem) Description() string { return i.desc }
func (i modeItem) FilterValue() string { return i.name }

var modeDescriptions = map[string]string{
	"bars":     "classic spectrum bars",
	"spectrum": "bars with peak-hold markers",
	"waveform": "oscilloscope trace",
	"mirror":   "spectrum folded about the midline",
	"circular": "waveform-modulated ring",
	"levels":   "lattice of VU meters",
	"radial":   "spoke burst with sparks",
}

func newPicker(names []string, selected int) list.Model {
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = modeItem{name: n, desc: modeDescriptions[n]}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 40, 16)
	l.Title = "auviz — modes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle
	l.Select(selected)
	return l
}
