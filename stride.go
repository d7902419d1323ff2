// Package stride provides iterators that visit every step-th element of a
// slice, in either direction, without allocating or moving any data.
//
// # Summary
//
// A strided iterator is what turns one-dimensional contiguous storage into
// views such as a matrix column: given row-major storage, a column is simply
// every width-th element. Both a shared read-only variant (Stride) and an
// exclusive mutable variant (MutStride) are provided, with identical traversal
// semantics: forward and backward stepping, constant time reversal, an always
// exact remaining-element count, indexed access, and deriving a coarser
// iterator from an existing one (striding over a stride).
//
// # Caller obligations
//
// An iterator borrows its slice and must not outlive it. Any number of Stride
// values may traverse overlapping storage at the same time, but while a
// MutStride exists over a region, no other iterator may exist over anything
// that overlaps it. These rules are not enforced at run time; they are the
// contract of correct use.
package stride

import (
	"fmt"
	"iter"
	"strings"
	"unsafe"
)

// Stride is a read-only iterator over every step-th element of a slice.
//
// Stride is a plain value type: copying the value duplicates the traversal
// position, never the underlying data, so a copy taken before consumption
// acts as a restart point.
type Stride[T any] struct {
	xs  []T
	cur cursor
}

// FromSlice creates a Stride that visits every step-th element of xs.
//
// step must be greater than zero, and the element type must have a nonzero
// size; both are programming errors and make FromSlice panic.
// The iterator covers ceil(len(xs)/step) elements, so a short trailing group
// still contributes its first element.
//
//	xs := []int{0, 1, 2, 3, 4, 5}
//	it := stride.FromSlice(xs, 2) // visits 0, 2, 4
func FromSlice[T any](xs []T, step int) Stride[T] {
	assertStep(step)
	assertSized[T]()
	return Stride[T]{xs: xs, cur: cursorOver(len(xs), step)}
}

// FromRange creates a Stride over the inclusive position range [begin, end]
// of xs, stepping by stride.
//
// FromRange is the unchecked low-level entry point behind FromStride, and it
// validates nothing. The caller must guarantee that begin and end are valid
// indices of xs, that end-begin is an exact non-negative multiple of stride,
// and that stride is nonzero with its sign matching the direction from begin
// toward end. Supplying an inconsistent triple corrupts the traversal in ways
// this package will not detect.
//
// The range is always non-empty: begin == end holds exactly one element.
// An exhausted iterator cannot be expressed through FromRange; use Empty.
func FromRange[T any](xs []T, begin, end, stride int) Stride[T] {
	return Stride[T]{xs: xs, cur: cursor{begin: begin, end: end, stride: stride}}
}

// FromStride derives a Stride from an existing one by multiplying its stride
// with step, covering a subset of its remaining elements.
//
// The derived iterator starts where it stands, and keeps only as many
// elements as complete a whole coarsened jump within the remaining span;
// a partial trailing group is dropped. step must be greater than zero.
func FromStride[T any](it Stride[T], step int) Stride[T] {
	assertStep(step)
	return Stride[T]{xs: it.xs, cur: it.cur.coarsen(step)}
}

// Empty returns an already exhausted Stride.
func Empty[T any]() Stride[T] {
	return Stride[T]{cur: cursor{done: true}}
}

// Next yields the first remaining element and steps forward over it.
// It reports false once the iterator is exhausted.
func (it *Stride[T]) Next() (T, bool) {
	pos, ok := it.cur.next()
	if !ok {
		var zero T
		return zero, false
	}
	return it.xs[pos], true
}

// NextBack yields the last remaining element and steps backward over it.
// It reports false once the iterator is exhausted.
//
// Next and NextBack consume the same double-ended sequence:
// the iterator is exhausted the moment the two ends meet.
func (it *Stride[T]) NextBack() (T, bool) {
	pos, ok := it.cur.nextBack()
	if !ok {
		var zero T
		return zero, false
	}
	return it.xs[pos], true
}

// Len reports exactly how many elements remain.
func (it Stride[T]) Len() int {
	return it.cur.length()
}

// IsDone reports whether the iterator is exhausted.
func (it Stride[T]) IsDone() bool {
	return it.cur.done
}

// SwapEnds reverses the iterator in place by exchanging its two endpoints
// and negating its stride. What was the last remaining element becomes the
// first, and forward stepping proceeds in the opposite direction.
// Constant time, no element is moved. No-op when exhausted.
func (it *Stride[T]) SwapEnds() {
	it.cur.swapEnds()
}

// At returns the i-th remaining element in current forward order.
// i must be within [0, Len()), else At panics.
func (it Stride[T]) At(i int) T {
	assertIndex(i, it.Len())
	return it.xs[it.cur.at(i)]
}

// Values ranges over the remaining elements in forward order.
// It iterates a duplicate of the receiver, so the Stride it was taken from
// is left where it stands and the sequence can be ranged over again.
func (it Stride[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		cp := it
		for {
			v, ok := cp.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Backward ranges over the remaining elements in backward order,
// also on a duplicate of the receiver.
func (it Stride[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		cp := it
		for {
			v, ok := cp.NextBack()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the remaining elements as a bracketed, comma separated list.
// Rendering walks a duplicate of the receiver, the iterator position is
// unaffected.
func (it Stride[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	var i int
	for v := range it.Values() {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
		i++
	}
	b.WriteString("]")
	return b.String()
}

func assertStep(step int) {
	if step < 1 {
		panic(fmt.Sprintf("stride: step must be greater than zero, got %d", step))
	}
}

func assertSized[T any]() {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("stride: zero-sized element types are not supported")
	}
}

func assertIndex(i, length int) {
	if i < 0 || length <= i {
		panic(fmt.Sprintf("stride: index %d out of range with %d remaining element(s)", i, length))
	}
}
