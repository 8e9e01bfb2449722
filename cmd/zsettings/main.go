package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zsettings/internal/cli"
	"github.com/zarlcorp/zsettings/internal/config"
	"github.com/zarlcorp/zsettings/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zsettings"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	dataDir := cli.DataDir()
	cfg, err := config.Load(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zsettings: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		runCLI(ctx, cfg, os.Args[1])
		_ = app.Close()
		return
	}

	if err := runTUI(dataDir, cfg); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cfg config.Config, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zsettings %s\n", version)
	case "inspect":
		cli.CmdInspect(cfg, os.Args[2:])
	case "clear":
		cli.CmdClear(cfg, os.Args[2:])
	case "strength":
		cli.CmdStrength(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "zsettings: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI(dataDir string, cfg config.Config) error {
	// the terminal belongs to the TUI while it runs
	closeLog, err := logToFile(dataDir)
	if err != nil {
		return err
	}
	defer closeLog()

	m := tui.New(version, dataDir, cfg, cli.IsFirstRun(dataDir))
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}

func logToFile(dir string) (func(), error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "zsettings.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	return func() {
		slog.SetDefault(prev)
		f.Close()
	}, nil
}
