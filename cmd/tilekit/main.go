// tilekit inspects tile stages: it extracts group transitions and runs
// collision queries against the configured formulas.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/younwookim/tilekit/internal/infrastructure/config"
	"github.com/younwookim/tilekit/internal/infrastructure/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries what every command needs
type app struct {
	settings *config.Settings
	loader   *config.Loader
	stdout   io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("tilekit", flag.ContinueOnError)
	flags.SetOutput(stderr)
	dataDir := flags.String("data", "", "Data directory (overrides settings)")
	settingsPath := flags.String("config", "", "Path to settings.yaml")
	debug := flags.Bool("debug", false, "Enable debug logging")
	flags.Usage = func() { printUsage(stderr) }
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() < 1 {
		printUsage(stderr)
		return 2
	}

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	settings.Override(*dataDir, *debug)

	if err := logger.Init(settings.Logging.Level, settings.Logging.LogFile); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()
	logger.Debug("settings loaded",
		zap.String("data", settings.Data.Dir),
		zap.String("level", settings.Logging.Level))

	a := &app{
		settings: settings,
		loader:   config.NewLoader(settings.Data.Dir),
		stdout:   stdout,
	}

	command, rest := flags.Arg(0), flags.Args()[1:]
	switch command {
	case "transitions", "tr":
		err = a.cmdTransitions(ctx, rest)
	case "collide":
		err = a.cmdCollide(rest)
	case "check":
		err = a.cmdCheck(rest)
	case "help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 2
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `tilekit - tile stage transition and collision tool

Usage:
  tilekit [-data dir] [-config settings.yaml] [-debug] <command> [options]

Commands:
  transitions [-format text|yaml] [stage...]            Extract transitions (all stages when none given)
  collide -stage s -category c -from x,y -to x,y        Run one collision query
  check                                                 Validate collisions.yaml and groups.yaml

Examples:
  tilekit transitions demo cave
  tilekit -data ./levels transitions -format yaml
  tilekit collide -stage demo -category feet -from 40,20 -to 40,80`)
}
