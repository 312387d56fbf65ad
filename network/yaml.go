// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const methodDecodeYAML = "DecodeYAML"

// yamlNetwork is the on-disk YAML layout. Edges may be given structurally,
// as "from,to,cost" lines, or both; lines are appended after edges.
//
//	points: 3
//	routes: 4
//	edges:
//	  - {from: 1, to: 2, cost: 4}
//	lines:
//	  - "2,1,4"
type yamlNetwork struct {
	Points *int     `yaml:"points"`
	Routes *int     `yaml:"routes"`
	Edges  []Edge   `yaml:"edges"`
	Lines  []string `yaml:"lines"`
}

// DecodeYAML decodes a YAML network document from r. Unknown keys are
// rejected.
//
// Errors:
//   - ErrDecode for syntax errors, unknown keys or an empty document.
//   - ErrInvalidPoints when points is missing or negative.
//   - ErrInvalidRoutes when routes is negative.
//   - *EdgeError for a malformed entry in lines (Index counts within lines).
func DecodeYAML(r io.Reader) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlNetwork
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, networkErrorf(methodDecodeYAML, fmt.Errorf("%w: empty document", ErrDecode))
		}
		return nil, networkErrorf(methodDecodeYAML, fmt.Errorf("%w: %w", ErrDecode, err))
	}
	if doc.Points == nil {
		return nil, networkErrorf(methodDecodeYAML, fmt.Errorf("%w: points is required", ErrInvalidPoints))
	}

	n := &Network{Points: *doc.Points, Routes: doc.Routes}
	if err := n.validate(); err != nil {
		return nil, networkErrorf(methodDecodeYAML, err)
	}

	parsed, err := ParseEdges(doc.Lines)
	if err != nil {
		return nil, networkErrorf(methodDecodeYAML, err)
	}
	n.Edges = make([]Edge, 0, len(doc.Edges)+len(parsed))
	n.Edges = append(n.Edges, doc.Edges...)
	n.Edges = append(n.Edges, parsed...)

	return n, nil
}
