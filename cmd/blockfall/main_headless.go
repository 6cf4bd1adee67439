//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/blockfall/internal/logging"
	"github.com/appengine-ltd/blockfall/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Without cgo there is no raylib client; the terminal inspector still works
// and is what this build runs.
func main() {
	var showVersion bool

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Blockfall %s (%s) %s\n", version, commit, date)
		return
	}

	logging.Init()

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
