package main

import (
	"fmt"
	"os"
	"strings"

	"vedic-astro/internal/cli"
	"vedic-astro/internal/config"
	"vedic-astro/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The config directory must be known before cobra parses flags, so the
	// --config value is picked out of the raw arguments here.
	configDir := os.Getenv("ASTRO_CONFIG_DIR")
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			configDir = os.Args[i+1]
		} else if strings.HasPrefix(arg, "--config=") {
			configDir = strings.TrimPrefix(arg, "--config=")
		}
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	logger := logging.NewLogger()
	rootCmd := cli.NewRootCmd(cfg, logger)
	return rootCmd.Execute()
}
