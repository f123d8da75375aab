package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"ceefax/internal/config"
	"ceefax/internal/country"
	"ceefax/internal/fetch"
	"ceefax/internal/log"
	"ceefax/internal/teletext"
	"ceefax/internal/wttr"
	"ceefax/ui/console"
	"ceefax/ui/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ceefax: %v\n", err)
		return 1
	}

	if err := log.Init(log.Options{File: cfg.LogFile, Level: cfg.LogLevel}); err != nil {
		fmt.Fprintf(os.Stderr, "ceefax: failed to open log: %v\n", err)
		return 1
	}
	defer log.Sync()

	dir := cfg.TemplatesDir
	if dir == "" {
		dir = country.DefaultDir()
	}
	loader := country.NewLoader(dir)
	c, err := loader.Load(cfg.Country)
	if err != nil {
		log.Errorw("country load failed", "country", cfg.Country, "error", err)
		fmt.Fprintf(os.Stderr, "ceefax: %v\n", err)
		return 1
	}

	// Use the interface to allow for different weather providers
	var provider wttr.Provider = wttr.NewLiveClient(cfg.ClientOptions())

	tty := isatty.IsTerminal(os.Stdout.Fd())
	if cfg.PrintOnce || !tty {
		data, err := fetch.Collect(context.Background(), provider, c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ceefax: %v\n", err)
			return 1
		}
		console.Print(os.Stdout, data, teletext.Render(c, data.Reports, teletext.DefaultPalette()), tty)
		return 0
	}

	log.Infow("starting tui", "country", c.Name, "templates", dir)
	if err := tui.Start(cfg, provider, loader, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return 1
	}
	return 0
}
