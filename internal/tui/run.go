package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/session"
	"github.com/meufuturo/futuro/internal/tui/themes"
)

// RunConfig holds the configuration for running the TUI.
type RunConfig struct {
	Client    *api.Client
	ExportDir string
	PageSize  int
}

// Run starts the interactive transaction browser and blocks until the
// user quits.
func Run(ctx context.Context, cfg RunConfig) error {
	if cfg.Client == nil {
		return fmt.Errorf("client is required")
	}

	// Session commits happen on arbitrary goroutines (debounce timers,
	// command goroutines). The program pointer is published after the
	// program exists; commits before that are ignored since the first
	// snapshot is read synchronously.
	var program atomic.Pointer[tea.Program]

	sess := session.New(session.Config{
		Client:   cfg.Client,
		PageSize: cfg.PageSize,
		OnCommit: func() {
			if p := program.Load(); p != nil {
				p.Send(sessionCommittedMsg{})
			}
		},
	})
	defer sess.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	m := NewModel(Config{
		Session:   sess,
		Client:    cfg.Client,
		Theme:     themes.Default,
		ExportDir: cfg.ExportDir,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	program.Store(p)

	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
