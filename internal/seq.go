// Package internal holds helpers shared by the ls8 packages.
package internal

import (
	"iter"
	"maps"
)

// DefineSeq chains several define tables into one sequence. Later tables
// are yielded after earlier ones; duplicate names are yielded as they occur.
func DefineSeq(tables ...map[string]string) iter.Seq2[string, string] {
	seqs := make([]iter.Seq2[string, string], 0, len(tables))
	for _, table := range tables {
		seqs = append(seqs, maps.All(table))
	}

	return Seq2Chain(seqs...)
}

// Seq2Chain yields every pair of each sequence in turn, stopping as soon as
// the consumer does.
func Seq2Chain[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
