// SPDX-License-Identifier: MIT

package network

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvtour/matrix"
)

// Network is a decoded network file: a point count, an optional declared
// route count and the edge list.
type Network struct {
	Points int
	// Routes is the declared route count, nil when the file omits it.
	Routes *int
	Edges  []Edge
}

// Matrix builds the initial distance matrix of n.
func (n *Network) Matrix() (*matrix.Distance, error) {
	return Build(n.Points, n.Edges)
}

// RouteCount returns the declared route count or len(Edges) when absent.
func (n *Network) RouteCount() int {
	if n.Routes != nil {
		return *n.Routes
	}

	return len(n.Edges)
}

func (n *Network) validate() error {
	if n.Points < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPoints, n.Points)
	}
	if n.Routes != nil && *n.Routes < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRoutes, *n.Routes)
	}

	return nil
}

// Load reads a network file, choosing the decoder by extension:
// .yaml/.yml → DecodeYAML, .hcl → DecodeHCL (vars become var.<name>).
func Load(path string, vars map[string]float64) (*Network, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(bytes.NewReader(src))
	case ".hcl":
		return DecodeHCL(path, src, vars)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrDecode, filepath.Ext(path))
	}
}
