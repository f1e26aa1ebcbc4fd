// Package io provides the output collaborators of the ls8 machine.
//
// The PRN instruction hands a single integer to a Sink. Tape formats each
// value as a decimal line on an io.Writer, Capture keeps the values in memory.
package io

import (
	"iter"
)

// Sink receives the values printed by the machine.
type Sink interface {
	// Rewind resets the sink to its initial state.
	Rewind()
	// Emit hands one value to the sink.
	Emit(value int) error
	// Defines returns the assembler defines of the sink.
	Defines() iter.Seq2[string, string]
}
