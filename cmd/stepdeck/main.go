// Stepdeck is an interactive terminal deck of stepper dials. It loads a YAML
// deck definition (or falls back to a built-in demo deck), renders one
// stepper control per dial, and synthesizes press-and-hold auto-repeat from
// the keyboard. With -serve it additionally streams every dial's events to
// websocket clients for external monitoring.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/germanamz/stepkit/cmd/stepdeck/internal/config"
	"github.com/germanamz/stepkit/cmd/stepdeck/internal/deck"
	"github.com/germanamz/stepkit/cmd/stepdeck/internal/monitor"
	"github.com/germanamz/stepkit/cmd/stepdeck/internal/wizard"
)

func main() {
	configPath := flag.String("config", "stepdeck.yaml", "path to deck configuration file")
	envPath := flag.String("env", ".env", "path to .env file with environment overrides")
	initDeck := flag.Bool("init", false, "build a deck configuration interactively and exit")
	serveAddr := flag.String("serve", "", "serve the websocket event monitor on this address (e.g. :8700)")
	flag.Parse()

	if err := loadDotEnv(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if *initDeck {
		if err := runInit(*configPath); err != nil {
			fatal(err)
		}
		return
	}

	cfg, err := loadDeck(*configPath)
	if err != nil {
		fatal(err)
	}

	dials := make([]*deck.Dial, 0, len(cfg.Dials))
	for _, dl := range cfg.Dials {
		dials = append(dials, deck.FromConfig(dl.Label, dl.Build))
	}

	var mon *monitor.Server
	if *serveAddr != "" {
		sources := make([]monitor.Source, 0, len(dials))
		for _, d := range dials {
			sources = append(sources, monitor.Source{Label: d.Label, Feed: d.S.Events()})
		}

		mon = monitor.New(*serveAddr, sources)
		if err := mon.Start(); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "monitor listening on ws://%s/events\n", mon.Addr())
	}

	p := tea.NewProgram(deck.New(cfg.Title, dials), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal(fmt.Errorf("stepdeck: %w", err))
	}

	if mon != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := mon.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
}

// loadDeck reads the deck file, falling back to the built-in demo deck when
// the file does not exist.
func loadDeck(path string) (config.Deck, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Deck{}, err
}

// runInit runs the deck wizard and persists its result.
func runInit(path string) error {
	cfg, err := wizard.Run()
	if err != nil {
		return err
	}

	if err := config.Save(cfg, path); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d dials)\n", path, len(cfg.Dials))
	return nil
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "stepdeck: %v\n", err)
	os.Exit(1)
}
