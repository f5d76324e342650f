// Command gridlab runs the grid path-finding lab from a terminal.
//
// Usage:
//
//	gridlab [-config lab.yaml] [-env .env] <command> [flags]
//
// Commands:
//
//	solve    run one algorithm on a map file or a fresh maze
//	maze     carve a maze and print it
//	compare  run two algorithms on the same board
//	bench    summarize all algorithms over many seeded mazes
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridlab/internal/config"
)

var errUsage = errors.New("usage: gridlab [-config file] [-env file] solve|maze|compare|bench [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "gridlab:", err)
		os.Exit(1)
	}
}

// env bundles what every subcommand needs.
type env struct {
	cfg config.Config
	log *zap.Logger
	out io.Writer
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gridlab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", "", "YAML config file")
	envPath := fs.String("env", "", "dotenv file (default ./.env when present)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	var envFiles []string
	if *envPath != "" {
		envFiles = append(envFiles, *envPath)
	}
	cfg, err := config.Load(*cfgPath, envFiles...)
	if err != nil {
		return err
	}
	log, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	e := &env{cfg: cfg, log: log, out: out}
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "solve":
		return e.solve(rest)
	case "maze":
		return e.maze(rest)
	case "compare":
		return e.compare(rest)
	case "bench":
		return e.bench(ctx, rest)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}
