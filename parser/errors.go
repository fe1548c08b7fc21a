// SPDX-License-Identifier: MIT
// Package: cld/parser
//
// errors.go — sentinel errors and the positioned LineError.
//
// Error policy:
//   • Sentinels classify the failure; LineError adds position and text.
//   • Callers use errors.Is(err, ErrX) for the class and errors.As for the line.

package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedLine indicates a non-comment line that does not contain
// exactly one arrow.
var ErrMalformedLine = errors.New("parser: each line must contain exactly one arrow")

// ErrEmptyOperand indicates an arrow with nothing usable on one side.
var ErrEmptyOperand = errors.New("parser: empty node reference")

// LineError locates a parse failure. Line is 1-based.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
