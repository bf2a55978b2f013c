// Command jobboard is a terminal job board.
//
// Usage:
//
//	jobboard [flags]
//
// Flags:
//
//	    --config string           Path to the configuration file
//	    --theme string            Colour theme: auto, light or dark (default "auto")
//	    --prefs-file string       Where the theme preference is saved (default "~/.jobboard/prefs.yaml")
//	    --toast-visible duration  How long a toast stays on screen (default 3s)
//	    --toast-fade duration     How long a toast takes to fade out (default 300ms)
//	    --load-delay duration     Simulated latency of loading more jobs (default 1s)
//	    --auth-delay duration     Simulated latency of login and registration (default 1s)
//	    --no-mouse                Disable mouse support
//	    --log-file string         Write logs to this file
//	-v, --verbose                 Verbose output
//	    --debug                   Debug output
//	-h, --help                    Display help information
//
// Every flag can also be set in the config file or through a JOBBOARD_
// environment variable, e.g. JOBBOARD_THEME=dark. Set DEBUG_UI=1 to show the
// debug pane.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/tmc/jobboard/board"
	"github.com/tmc/jobboard/config"
	"github.com/tmc/jobboard/logging"
)

func main() {
	fs, err := initFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "jobboard:", err)
		os.Exit(2)
	}
	if err := run(fs); err != nil {
		fmt.Fprintln(os.Stderr, "jobboard:", err)
		os.Exit(1)
	}
}

func run(fs *flag.FlagSet) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	cfg, err := config.Load("", os.Stderr, fs)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.Open(cfg.LogFile, cfg.Verbose, cfg.Debug)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := board.NewSession(cfg, board.WithLogger(log))
	if err != nil {
		return err
	}
	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorw("board exited", "error", err)
		return err
	}
	return nil
}

// initFlags parses args. It returns flag.ErrHelp after printing usage for -h.
func initFlags(args []string, stderr io.Writer) (*flag.FlagSet, error) {
	fs := flag.NewFlagSet("jobboard", flag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	help := fs.BoolP("help", "h", false, "Display help information")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "jobboard is a terminal job board")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage of jobboard:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr, `
Examples:
	$ jobboard --theme dark
	$ JOBBOARD_LOADDELAY=250ms jobboard --log-file /tmp/jobboard.log --debug`)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *help {
		fs.Usage()
		return nil, flag.ErrHelp
	}
	return fs, nil
}
