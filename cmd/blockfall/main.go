//go:build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/blockfall/internal/gui"
	"github.com/appengine-ltd/blockfall/internal/logging"
	"github.com/appengine-ltd/blockfall/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		terminal    bool
		configPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&terminal, "terminal", false, "run the terminal inventory inspector instead of the client")
	flag.StringVar(&configPath, "config", "", "path to config YAML (default: builtin settings)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Blockfall %s (%s) %s\n", version, commit, date)
		return
	}

	logging.Init()

	if terminal {
		app := ui.NewApp(ui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
		})
		if err := app.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	app := gui.NewApp(gui.AppConfig{
		Version:    version,
		Commit:     commit,
		BuildDate:  date,
		ConfigPath: configPath,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
