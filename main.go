package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/auviz/internal/audio"
	"github.com/olivier-w/auviz/internal/config"
	"github.com/olivier-w/auviz/internal/ui"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath(), "path to the config file")
	flag.Usage = usage
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, err := buildSource(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer source.Close()

	if err := source.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load(*cfgPath)
	model := ui.New(source, cfg, *cfgPath)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildSource picks the audio input: a decoded file when one is named, the
// PulseAudio monitor otherwise. A missing parec binary still starts; the
// source reports idle and the display stays up.
func buildSource(path string) (audio.Source, error) {
	if path == "" {
		return audio.NewParec(audio.DefaultCaptureRate, audio.DefaultChunkSize), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if !audio.IsSupportedFile(path) {
		return nil, fmt.Errorf("unsupported format %q (supported: wav, mp3, flac, ogg)", path)
	}
	return audio.NewFile(path)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: auviz [flags] [audio file]\n\n")
	fmt.Fprintf(os.Stderr, "Without an audio file, auviz visualizes desktop audio via the\n")
	fmt.Fprintf(os.Stderr, "PulseAudio monitor source (requires parec and pactl).\n\n")
	flag.PrintDefaults()
}
