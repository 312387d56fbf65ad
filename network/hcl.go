// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

const methodDecodeHCL = "DecodeHCL"

// hclNetworkFile is the top-level structure of an HCL network file:
//
//	points = 3
//	routes = 2
//
//	route {
//	  from = 1
//	  to   = 2
//	  cost = var.base * 2
//	}
type hclNetworkFile struct {
	Points     int        `hcl:"points"`
	RouteCount *int       `hcl:"routes,optional"`
	Routes     []hclRoute `hcl:"route,block"`
}

type hclRoute struct {
	From int     `hcl:"from"`
	To   int     `hcl:"to"`
	Cost float64 `hcl:"cost"`
}

// DecodeHCL parses and decodes an HCL network file.
//
// vars are exposed to expressions as var.<name>, so costs can be written
// in terms of shared parameters. filename is used for diagnostics only.
//
// Errors:
//   - ErrDecode wrapping hcl.Diagnostics for syntax/type errors.
//   - ErrInvalidPoints / ErrInvalidRoutes for negative counts.
func DecodeHCL(filename string, src []byte, vars map[string]float64) (*Network, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, networkErrorf(methodDecodeHCL, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags))
	}

	var parsed hclNetworkFile
	diags = gohcl.DecodeBody(file.Body, evalContext(vars), &parsed)
	if diags.HasErrors() {
		return nil, networkErrorf(methodDecodeHCL, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags))
	}

	n := &Network{Points: parsed.Points, Routes: parsed.RouteCount}
	if err := n.validate(); err != nil {
		return nil, networkErrorf(methodDecodeHCL, err)
	}
	n.Edges = make([]Edge, 0, len(parsed.Routes))
	for _, r := range parsed.Routes {
		n.Edges = append(n.Edges, Edge{From: r.From, To: r.To, Cost: r.Cost})
	}

	return n, nil
}

// evalContext exposes vars as the object `var`.
func evalContext(vars map[string]float64) *hcl.EvalContext {
	attrs := make(map[string]cty.Value, len(vars))
	for name, v := range vars {
		attrs[name] = cty.NumberFloatVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(attrs),
		},
	}
}
