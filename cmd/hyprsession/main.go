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

	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/config"
)

// errUsage marks a command line mistake; the usage text has been printed.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process globals, so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fs := flag.NewFlagSet("hyprsession", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Logging.Development, "dev", cfg.Logging.Development, "human-readable console logs")
	fs.StringVar(&cfg.Metrics.Addr, "metrics", cfg.Metrics.Addr, "serve Prometheus metrics on this address")
	fs.DurationVar(&cfg.Hypr.Timeout, "timeout", cfg.Hypr.Timeout, "deadline for each compositor command (0 = none)")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	a, err := newApp(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer a.close()

	if err := a.dispatchCommand(ctx, fs.Arg(0), fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		fmt.Fprintf(stderr, "hyprsession: %v\n", err)
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "usage: hyprsession [flags] <save|restore|listen|query|dispatch> [args]")
	fs.PrintDefaults()
}
