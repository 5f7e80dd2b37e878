// Command blizzard prints the fewest minutes needed to cross blizzard
// basins, or serves the solver over HTTP with -serve.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/blizzard"
	"github.com/katalvlaran/blizzard/internal/server"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Serve {
		err = server.New(cfg.serverConfig(), log.StandardLogger()).ListenAndServe(ctx, cfg.Addr)
	} else {
		err = run(ctx, cfg, os.Stdin, os.Stdout, log.StandardLogger())
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// run solves every input file (stdin for none or "-") and prints one answer
// per line, in input order.
func run(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer, logger log.FieldLogger) error {
	names := cfg.Files
	if len(names) == 0 {
		names = []string{"-"}
	}
	inputs := make([]string, 0, len(names))
	for _, name := range names {
		text, err := readInput(name, stdin)
		if err != nil {
			return err
		}
		inputs = append(inputs, text)
	}

	logger.WithFields(log.Fields{"inputs": len(inputs), "legs": cfg.Legs, "workers": cfg.Workers}).Debug("solving")
	minutes, err := blizzard.SolveBatch(ctx, inputs, cfg.Legs, cfg.Workers, blizzard.WithLogger(logger))
	if err != nil {
		return err
	}
	for _, m := range minutes {
		if _, err := fmt.Fprintln(stdout, m); err != nil {
			return err
		}
	}
	return nil
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
