package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"ceefax/internal/config"
	"ceefax/internal/country"
	"ceefax/internal/log"
	"ceefax/internal/mcpserver"
	"ceefax/internal/wttr"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ceefax-mcp: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(log.Options{File: cfg.LogFile, Level: cfg.LogLevel, Name: "ceefax-mcp"}); err != nil {
		fmt.Fprintf(os.Stderr, "ceefax-mcp: failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dir := cfg.TemplatesDir
	if dir == "" {
		dir = country.DefaultDir()
	}

	srv := mcpserver.NewServer(
		mcpserver.Config{ServerName: "ceefax", ServerVersion: version},
		wttr.NewLiveClient(cfg.ClientOptions()),
		country.NewLoader(dir),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorw("mcp server stopped", "error", err)
		fmt.Fprintf(os.Stderr, "ceefax-mcp: %v\n", err)
		stop()
		log.Sync()
		os.Exit(1)
	}
}
