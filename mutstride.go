package stride

import "iter"

// MutStride is an exclusive, mutable iterator over every step-th element of
// a slice. Traversal behaves exactly like Stride, but each step yields a
// pointer through which the element may be written.
//
// MutStride must not be duplicated: while one exists over a region of a
// slice, it has to be the only iterator over that region. It is therefore
// only handed out behind a pointer, and go vet's copylocks check flags any
// copy of the value. There is no rendering method on MutStride, as rendering
// would require duplicating the cursor.
type MutStride[T any] struct {
	noCopy noCopy
	xs     []T
	cur    cursor
}

// FromMutSlice creates a MutStride that visits every step-th element of xs.
//
// step must be greater than zero, and the element type must have a nonzero
// size; both are programming errors and make FromMutSlice panic.
// The iterator covers ceil(len(xs)/step) elements.
func FromMutSlice[T any](xs []T, step int) *MutStride[T] {
	assertStep(step)
	assertSized[T]()
	return &MutStride[T]{xs: xs, cur: cursorOver(len(xs), step)}
}

// FromMutRange creates a MutStride over the inclusive position range
// [begin, end] of xs, stepping by stride.
//
// Like FromRange, it validates nothing; the caller preconditions documented
// on FromRange apply here unchanged, including that the range is non-empty.
func FromMutRange[T any](xs []T, begin, end, stride int) *MutStride[T] {
	return &MutStride[T]{xs: xs, cur: cursor{begin: begin, end: end, stride: stride}}
}

// FromMutStride derives a MutStride from an existing one by multiplying its
// stride with step, covering a subset of its remaining elements. The partial
// trailing group that does not complete a whole coarsened jump is dropped.
// step must be greater than zero.
//
// The source iterator is spent by the derivation: it is left exhausted, so
// the derived iterator remains the only live access path to the elements.
func FromMutStride[T any](it *MutStride[T], step int) *MutStride[T] {
	assertStep(step)
	derived := &MutStride[T]{xs: it.xs, cur: it.cur.coarsen(step)}
	it.cur = cursor{done: true}
	return derived
}

// Next yields a pointer to the first remaining element and steps forward
// over it. It reports false once the iterator is exhausted.
func (it *MutStride[T]) Next() (*T, bool) {
	pos, ok := it.cur.next()
	if !ok {
		return nil, false
	}
	return &it.xs[pos], true
}

// NextBack yields a pointer to the last remaining element and steps backward
// over it. It reports false once the iterator is exhausted.
func (it *MutStride[T]) NextBack() (*T, bool) {
	pos, ok := it.cur.nextBack()
	if !ok {
		return nil, false
	}
	return &it.xs[pos], true
}

// Len reports exactly how many elements remain.
func (it *MutStride[T]) Len() int {
	return it.cur.length()
}

// IsDone reports whether the iterator is exhausted.
func (it *MutStride[T]) IsDone() bool {
	return it.cur.done
}

// SwapEnds reverses the iterator in place.
// Constant time, no element is moved. No-op when exhausted.
func (it *MutStride[T]) SwapEnds() {
	it.cur.swapEnds()
}

// At returns a pointer to the i-th remaining element in current forward
// order. i must be within [0, Len()), else At panics.
func (it *MutStride[T]) At(i int) *T {
	assertIndex(i, it.Len())
	return &it.xs[it.cur.at(i)]
}

// Values ranges over pointers to the remaining elements in forward order.
// Unlike Stride.Values, this is a single use sequence: it consumes the
// iterator itself, since a MutStride cannot be duplicated.
func (it *MutStride[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			p, ok := it.Next()
			if !ok {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// noCopy makes go vet's copylocks check flag copies of the embedding type.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
