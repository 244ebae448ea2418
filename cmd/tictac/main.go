package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/tictac/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", "", "color theme: auto, classic, neon, mono")
	noColor := flag.Bool("no-color", false, "disable colors and box drawing")
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	os.Exit(cli.Run(flag.Args(), cli.Options{
		ConfigPath: *configPath,
		Theme:      *theme,
		NoColor:    *noColor,
	}))
}
