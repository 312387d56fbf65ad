// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/lvtour/network"
	"github.com/katalvlaran/lvtour/roundtrip"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputBRL  = "brl"
)

type solveFlags struct {
	points      string
	routes      string
	file        string
	networkPath string
	vars        []string
	origin      int
	strict      bool
	output      string
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the round-trip cost of one network",
		Long: `Reads "from,to,cost" lines from --file or stdin (counts from --points and
--routes), or a YAML/HCL network file from --network, and prints the sum
of the cheapest trip from the origin to every point and back.`,
		Example: `  printf '1,2,4\n2,1,4\n1,3,9\n3,1,9\n' | lvtour solve --points 3 --routes 4
  lvtour solve --network depot.hcl --var toll=2.5 --output brl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.points, "points", "p", "", "number of collection points")
	fl.StringVarP(&f.routes, "routes", "r", "", "number of declared routes")
	fl.StringVarP(&f.file, "file", "f", "", `file with one "from,to,cost" line per route (default stdin)`)
	fl.StringVarP(&f.networkPath, "network", "n", "", "YAML (.yaml, .yml) or HCL (.hcl) network file")
	fl.StringArrayVar(&f.vars, "var", nil, "HCL variable as name=value (repeatable)")
	fl.IntVar(&f.origin, "origin", 0, "origin point (default from config, 1)")
	fl.BoolVar(&f.strict, "strict", false, "require --routes to equal the number of route lines")
	fl.StringVarP(&f.output, "output", "o", outputText, "output format: text, json or brl")
	cmd.MarkFlagsMutuallyExclusive("network", "file")
	cmd.MarkFlagsMutuallyExclusive("network", "points")
	cmd.MarkFlagsMutuallyExclusive("network", "routes")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f *solveFlags) error {
	switch f.output {
	case outputText, outputJSON, outputBRL:
	default:
		return fmt.Errorf("unknown output format %q: want text, json or brl", f.output)
	}
	if f.origin < 0 {
		return fmt.Errorf("--origin must be >= 1, got %d", f.origin)
	}

	ctx := cmd.Context()
	opts := []roundtrip.Option{
		roundtrip.WithOrigin(a.cfg.Solver.Origin),
		roundtrip.WithLimits(a.cfg.Limits.MaxPoints, a.cfg.Limits.MaxLines),
	}
	if f.origin > 0 {
		opts = append(opts, roundtrip.WithOrigin(f.origin))
	}
	if f.strict || a.cfg.Solver.StrictRouteCount {
		opts = append(opts, roundtrip.WithStrictRouteCount())
	}

	problem, err := f.problem(cmd.InOrStdin())
	var res roundtrip.Result
	if err == nil {
		res, err = roundtrip.Solve(ctx, problem, opts...)
	}
	if err != nil {
		fail := roundtrip.NewFailure(err)
		a.logger.Debug("solve failed", "kind", fail.ErrorKind, "error", err)
		if rerr := renderFailure(cmd, f.output, fail); rerr != nil {
			return rerr
		}
		return &exitError{code: exitCodeFor(fail.ErrorKind, err), err: err}
	}

	return renderResult(cmd.OutOrStdout(), f.output, res)
}

// problem builds the problem from a network file or from count flags plus
// route lines.
func (f *solveFlags) problem(stdin io.Reader) (roundtrip.Problem, error) {
	if f.networkPath != "" {
		vars, err := parseVars(f.vars)
		if err != nil {
			return roundtrip.Problem{}, err
		}
		n, err := network.Load(f.networkPath, vars)
		if err != nil {
			return roundtrip.Problem{}, err
		}
		return roundtrip.FromNetwork(n)
	}

	src := stdin
	if f.file != "" {
		file, err := os.Open(f.file)
		if err != nil {
			return roundtrip.Problem{}, fmt.Errorf("%w: %w", network.ErrDecode, err)
		}
		defer file.Close()
		src = file
	}
	text, err := io.ReadAll(src)
	if err != nil {
		return roundtrip.Problem{}, fmt.Errorf("%w: %w", network.ErrDecode, err)
	}

	return roundtrip.Parse(roundtrip.Input{
		PointCount: f.points,
		RouteCount: f.routes,
		EdgeLines:  network.SplitLines(string(text)),
	})
}

// parseVars turns name=value pairs into HCL variables.
func parseVars(pairs []string) (map[string]float64, error) {
	vars := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: --var %q: want name=value", network.ErrDecode, pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: --var %q: %w", network.ErrDecode, pair, err)
		}
		vars[name] = v
	}

	return vars, nil
}

// exitCodeFor maps a failure to the process exit code. Unreadable input is
// an input error even though it classifies as ProcessingError.
func exitCodeFor(kind roundtrip.Kind, err error) int {
	switch kind {
	case roundtrip.UnreachablePoint:
		return exitUnreachable
	case roundtrip.ProcessingError:
		if errors.Is(err, network.ErrDecode) {
			return exitInput
		}
		return exitProcessing
	default:
		return exitInput
	}
}

func renderResult(w io.Writer, format string, res roundtrip.Result) error {
	var err error
	switch format {
	case outputJSON:
		err = json.NewEncoder(w).Encode(res)
	case outputBRL:
		_, err = fmt.Fprintln(w, formatBRL(res.TotalCost))
	default:
		_, err = fmt.Fprintf(w, "total cost: %s\n", strconv.FormatFloat(res.TotalCost, 'f', -1, 64))
	}

	return err
}

// renderFailure writes JSON failures to stdout so scripts can parse them;
// text failures go to stderr.
func renderFailure(cmd *cobra.Command, format string, fail roundtrip.Failure) error {
	if format == outputJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(fail)
	}
	_, err := fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %s\n", fail.ErrorKind, fail.Message)

	return err
}

var brl = message.NewPrinter(language.BrazilianPortuguese)

// formatBRL renders v as Brazilian reais, e.g. "R$ 1.234,00".
func formatBRL(v float64) string {
	return "R$ " + brl.Sprintf("%.2f", v)
}
