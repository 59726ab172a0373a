// Command portfolio-tui browses the portfolio in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/alexmorgan/portfolio/internal/config"
	"github.com/alexmorgan/portfolio/internal/content"
	"github.com/alexmorgan/portfolio/internal/periodic"
	"github.com/alexmorgan/portfolio/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	m, err := tui.New(cfg.RevealThreshold)
	if err != nil {
		return fmt.Errorf("create model: %w", err)
	}
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	pixel, err := periodic.Start(ctx, content.FooterPixelEvery, func(time.Time) {
		p.Send(tui.PixelMsg{})
	})
	if err != nil {
		return fmt.Errorf("start footer pixel: %w", err)
	}
	defer pixel.Stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
