// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
)

// SolveRequest is the body of POST /v1/roundtrip.
//
// Counts are accepted as JSON strings or numbers, mirroring form fields.
// Edges come either as edgeLines or as one routeDetails text block; when
// both are present the lines of routeDetails are appended.
type SolveRequest struct {
	PointCount   CountField `json:"pointCount"`
	RouteCount   CountField `json:"routeCount"`
	EdgeLines    []string   `json:"edgeLines" validate:"omitempty,dive,max=256"`
	RouteDetails string     `json:"routeDetails" validate:"max=16777216"`
}

// CountField is a count as typed by a user: a JSON string or number,
// kept verbatim so validation reports exactly what was sent.
type CountField string

// UnmarshalJSON accepts "3", 3 and null.
func (c *CountField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*c = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = CountField(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*c = CountField(n.String())
		return nil
	}
}

// HealthResponse is the body of GET /v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
