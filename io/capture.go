package io

import (
	"fmt"
	"iter"
	"maps"
)

// Capture keeps emitted values in memory, up to Capacity values when
// Capacity is non-zero.
type Capture struct {
	Capacity int
	Values   []int
}

var _ Sink = (*Capture)(nil)

// Defines returns an iter of defines for the sink.
func (cc *Capture) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"CAPTURE_CAPACITY": fmt.Sprintf("%v", cc.Capacity),
	})
}

// Rewind discards all captured values.
func (cc *Capture) Rewind() {
	cc.Values = cc.Values[:0]
}

// Emit appends the value.
func (cc *Capture) Emit(value int) (err error) {
	if cc.Capacity > 0 && len(cc.Values) >= cc.Capacity {
		err = ErrSinkFull
		return
	}

	cc.Values = append(cc.Values, value)

	return
}
