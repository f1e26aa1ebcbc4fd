package io

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

// Tape writes every emitted value as a decimal line to Output.
type Tape struct {
	Output io.Writer

	Written int // Count of values written since the last Rewind.
}

var _ Sink = (*Tape)(nil)

// Defines returns an iter of defines for the sink.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Rewind is not possible on a tape; only the counter is reset.
func (tc *Tape) Rewind() {
	tc.Written = 0
}

// Emit writes the value followed by a newline.
func (tc *Tape) Emit(value int) (err error) {
	if tc.Output == nil {
		err = ErrSinkClosed
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Written++

	return
}
