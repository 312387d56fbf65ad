// SPDX-License-Identifier: MIT

package roundtrip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvtour/apsp"
	"github.com/katalvlaran/lvtour/ctxlog"
	"github.com/katalvlaran/lvtour/network"
)

// Result is the success shape: { "totalCost": n }.
type Result struct {
	TotalCost float64 `json:"totalCost"`
}

// Failure is the error shape: { "errorKind": k, "message": m }.
type Failure struct {
	ErrorKind Kind   `json:"errorKind"`
	Message   string `json:"message"`
}

// NewFailure renders err as a Failure. err must be non-nil.
func NewFailure(err error) Failure {
	re := Wrap(err)
	return Failure{ErrorKind: re.Kind, Message: re.Message}
}

// Run parses in and solves it.
func Run(ctx context.Context, in Input, opts ...Option) (Result, error) {
	p, err := Parse(in)
	if err != nil {
		return Result{}, err
	}

	return Solve(ctx, p, opts...)
}

// Solve runs build → relax → aggregate for one problem.
//
// Every step owns a fresh matrix; nothing survives the call. The context is
// consulted between relaxation passes only.
//
// Errors: always *Error (see Kind), wrapping the cause from network, apsp
// or matrix.
func Solve(ctx context.Context, p Problem, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := ctxlog.FromContext(ctx).With("points", p.Points, "routes", p.Routes, "edges", len(p.Edges))

	if p.Points < 0 {
		return Result{}, newError(InvalidPointCount, fmt.Sprintf("point count must be >= 0, got %d", p.Points), nil)
	}
	if p.Routes < 0 {
		return Result{}, newError(InvalidRouteCount, fmt.Sprintf("route count must be >= 0, got %d", p.Routes), nil)
	}
	if len(p.Edges) == 0 {
		return Result{}, newError(EmptyRouteDetails, "no route details supplied", nil)
	}
	if o.MaxPoints > 0 && p.Points > o.MaxPoints {
		return Result{}, newError(InvalidPointCount,
			fmt.Sprintf("point count %d exceeds limit %d", p.Points, o.MaxPoints), nil)
	}
	if o.MaxEdges > 0 && len(p.Edges) > o.MaxEdges {
		return Result{}, newError(InvalidRouteCount,
			fmt.Sprintf("%d route lines exceed limit %d", len(p.Edges), o.MaxEdges), nil)
	}
	if p.Routes != len(p.Edges) {
		if o.StrictRouteCount {
			return Result{}, newError(InvalidRouteCount,
				fmt.Sprintf("declared %d route(s) but %d supplied", p.Routes, len(p.Edges)), nil)
		}
		logger.Warn("route count mismatch", "declared", p.Routes, "supplied", len(p.Edges))
	}

	start := time.Now()
	d, err := network.Build(p.Points, p.Edges)
	if err != nil {
		logger.Debug("build failed", "error", err)
		return Result{}, Wrap(err)
	}

	if err = apsp.RelaxAllPairsContext(ctx, d); err != nil {
		logger.Debug("relaxation failed", "error", err)
		re := Wrap(err)
		if errors.Is(err, apsp.ErrAborted) {
			re.Message = "calculation aborted: " + context.Cause(ctx).Error()
		}
		return Result{}, re
	}

	total, err := apsp.TotalRoundTripCost(d, o.Origin)
	if err != nil {
		logger.Debug("aggregation failed", "origin", o.Origin, "error", err)
		return Result{}, Wrap(err)
	}

	logger.Debug("round trip computed", "origin", o.Origin, "total", total, "elapsed", time.Since(start))

	return Result{TotalCost: total}, nil
}
