package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags are shared by all commands.
type globalFlags struct {
	verbose bool
	debug   bool
	logFile string
	config  string
	dir     string

	log       *slog.Logger
	logCloser io.Closer
}

func (g *globalFlags) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Show informational messages")
	cmd.PersistentFlags().BoolVarP(&g.debug, "debug", "d", false, "Show all debug messages")
	cmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "Also append log messages to this file")
	cmd.PersistentFlags().StringVarP(&g.config, "config", "c", defaultConfigFile, "Path of the configuration file")
	cmd.PersistentFlags().StringVarP(&g.dir, "chdir", "C", "", "Run as if started in this directory")
}

func (g *globalFlags) setup(cmd *cobra.Command, _ []string) error {
	logger, closer, err := initLogger(cmd.ErrOrStderr(), g.logFile, g.verbose, g.debug)
	if err != nil {
		return err
	}
	g.log = logger
	g.logCloser = closer
	return nil
}

func (g *globalFlags) teardown(*cobra.Command, []string) error {
	if g.logCloser == nil {
		return nil
	}
	return g.logCloser.Close()
}

func (g *globalFlags) logger() *slog.Logger {
	if g.log != nil {
		return g.log
	}
	return slog.Default()
}

// initLogger installs a text logger writing to w and, if path is set, to
// the file at path. The level is warn, info with verbose, debug with debug.
func initLogger(w io.Writer, path string, verbose, debug bool) (*slog.Logger, io.Closer, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}

	var closer io.Closer
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(w, f)
		closer = f
	}

	var lv slog.LevelVar
	lv.Set(level)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &lv,
		// Source locations only help when debugging.
		AddSource: debug,
	}))
	slog.SetDefault(logger)
	return logger, closer, nil
}
