package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/tvguide/internal/config"
	"github.com/javiermolinar/tvguide/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Configuration is loaded once the flags are parsed
	app := ui.NewApp(config.DefaultConfigPath())
	defer func() { _ = app.Close() }()
	return app.Execute()
}
