package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/blizzard/internal/server"
)

// config is the process configuration gathered from flags and environment.
type config struct {
	Serve      bool
	Addr       string
	Legs       int
	Workers    int
	LogLevel   log.Level
	FrameDelay time.Duration
	Files      []string
}

var errUsage = errors.New("usage error")

// loadConfig parses args (without the program name). PORT sets the default
// listen port and LOG_LEVEL the default log level; flags win over both.
func loadConfig(args []string, getenv func(string) string, usage io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("blizzard", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.Usage = func() {
		fmt.Fprintln(usage, "usage: blizzard [-legs N] [-workers N] [-v] [file ...]")
		fmt.Fprintln(usage, "       blizzard -serve [-addr :8080] [-frame-delay 100ms]")
		fs.PrintDefaults()
	}

	port := getenv("PORT")
	if port == "" {
		port = "8080"
	}
	level := log.InfoLevel
	if raw := getenv("LOG_LEVEL"); raw != "" {
		parsed, err := log.ParseLevel(raw)
		if err != nil {
			return c, fmt.Errorf("%w: LOG_LEVEL: %v", errUsage, err)
		}
		level = parsed
	}

	var verbose bool
	fs.BoolVar(&c.Serve, "serve", false, "run the HTTP server instead of solving files")
	fs.StringVar(&c.Addr, "addr", ":"+port, "listen address for -serve")
	fs.IntVar(&c.Legs, "legs", 1, "number of crossings (start→end, end→start, ...)")
	fs.IntVar(&c.Workers, "workers", runtime.NumCPU(), "basins solved concurrently")
	fs.DurationVar(&c.FrameDelay, "frame-delay", 0, "pause between replay frames for -serve")
	fs.BoolVar(&verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return c, fmt.Errorf("%w: %w", errUsage, err)
	}

	if c.Legs < 1 {
		return c, fmt.Errorf("%w: -legs must be at least 1, got %d", errUsage, c.Legs)
	}
	c.LogLevel = level
	if verbose {
		c.LogLevel = log.DebugLevel
	}
	c.Files = fs.Args()
	return c, nil
}

// serverConfig derives the server settings from the process configuration.
func (c config) serverConfig() server.Config {
	sc := server.DefaultConfig()
	sc.FrameDelay = c.FrameDelay
	return sc
}
