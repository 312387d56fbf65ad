// SPDX-License-Identifier: MIT

package roundtrip

import (
	"errors"

	"github.com/katalvlaran/lvtour/apsp"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/network"
)

// Error is the classified failure of one calculation.
//
// Kind drives the adapter (HTTP status, exit code, UI text), Message is the
// human-readable description and Err the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements error.
func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && target == s
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Classify maps any error to its Kind. A nil error has no kind (0).
// Errors from the lower layers are recognised by their sentinels; anything
// unrecognised is ProcessingError.
func Classify(err error) Kind {
	if err == nil {
		return 0
	}

	var re *Error
	switch {
	case errors.As(err, &re):
		return re.Kind
	case errors.Is(err, network.ErrMalformedEdge):
		return MalformedEdgeError
	case errors.Is(err, apsp.ErrUnreachable):
		return UnreachablePoint
	case errors.Is(err, network.ErrInvalidPoints), errors.Is(err, matrix.ErrNegativePoints),
		errors.Is(err, matrix.ErrTooLarge):
		return InvalidPointCount
	case errors.Is(err, network.ErrInvalidRoutes):
		return InvalidRouteCount
	default:
		return ProcessingError
	}
}

// Wrap converts err into a classified *Error. An *Error anywhere in the
// chain is returned as is; nil stays nil.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return re
	}

	return newError(Classify(err), describe(err), err)
}

// describe picks the most specific message in the chain so adapters do not
// show internal operation tags.
func describe(err error) string {
	var ee *network.EdgeError
	if errors.As(err, &ee) {
		return ee.Error()
	}
	var ue *apsp.UnreachableError
	if errors.As(err, &ue) {
		return ue.Error()
	}

	return err.Error()
}
