// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/config"
	"github.com/katalvlaran/lvtour/ctxlog"
)

// Exit codes.
const (
	exitOK          = 0
	exitInput       = 1
	exitUnreachable = 2
	exitProcessing  = 3
)

// exitError carries a process exit code. Its message has already been
// rendered by the command that returned it.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// app holds the state shared by every sub-command once PersistentPreRunE
// has run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvtour",
		Short: "Round-trip transport cost over a directed network",
		Long: `lvtour computes all-pairs shortest paths over a directed network of
collection points and sums, for every point, the cost of going there
from the depot (point 1) and coming back.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "lvtour.yaml", "configuration file (missing file means defaults)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newSolveCmd(a), newServeCmd(a))

	return root
}

// setup loads the configuration, applies flag overrides and installs the
// logger in the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	logger.Debug("configuration loaded", "path", a.configPath)

	return nil
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(errOut, "Error:", err)

	return exitInput
}
