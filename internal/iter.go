package internal

import (
	"iter"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqPad yields every value of seq, then yields pad until the total
// count is a multiple of n.
func IterSeqPad[T any](seq iter.Seq[T], n int, pad T) iter.Seq[T] {
	return func(yield func(T) bool) {
		count := 0
		for val := range seq {
			if !yield(val) {
				return
			}
			count++
		}
		if n <= 0 {
			return
		}
		for ; count%n != 0; count++ {
			if !yield(pad) {
				return
			}
		}
	}
}

// IterSeqChunk groups seq into slices of n values. The final slice may be
// short if the sequence length is not a multiple of n.
func IterSeqChunk[T any](seq iter.Seq[T], n int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if n <= 0 {
			return
		}
		chunk := make([]T, 0, n)
		for val := range seq {
			chunk = append(chunk, val)
			if len(chunk) == n {
				if !yield(slices.Clone(chunk)) {
					return
				}
				chunk = chunk[:0]
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}
