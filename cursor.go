package stride

// cursor is the traversal state shared by Stride and MutStride.
//
// begin and end are element positions within the borrowed slice,
// and both are inclusive endpoints.
// Keeping end inclusive is what makes strided views over matrix columns
// expressible without ever forming a past-the-end position.
// done is the explicit "no elements remain" state;
// while done is set, begin and end carry no meaning.
//
// Outside of the done state the cursor maintains that
// end-begin is an exact non-negative multiple of stride,
// so begin == end means exactly one element remains.
type cursor struct {
	begin  int
	end    int
	stride int
	done   bool
}

// cursorOver positions a cursor on every step-th element
// of a buffer with the given length.
func cursorOver(length, step int) cursor {
	nelem := length / step
	if length%step != 0 {
		nelem++
	}
	if nelem == 0 {
		return cursor{done: true}
	}
	return cursor{begin: 0, end: (nelem - 1) * step, stride: step}
}

// next yields the position of the first remaining element
// and narrows the cursor from the begin side.
func (c *cursor) next() (int, bool) {
	if c.done {
		return 0, false
	}
	pos := c.begin
	if c.begin == c.end {
		c.done = true
	} else {
		c.begin += c.stride
	}
	return pos, true
}

// nextBack yields the position of the last remaining element
// and narrows the cursor from the end side.
func (c *cursor) nextBack() (int, bool) {
	if c.done {
		return 0, false
	}
	pos := c.end
	if c.begin == c.end {
		c.done = true
	} else {
		c.end -= c.stride
	}
	return pos, true
}

// length reports the exact number of remaining elements.
func (c cursor) length() int {
	if c.done {
		return 0
	}
	return (c.end-c.begin)/c.stride + 1
}

// swapEnds exchanges the two endpoints and negates the stride,
// which reverses the traversal direction in place.
// No-op on an exhausted cursor.
func (c *cursor) swapEnds() {
	if c.done {
		return
	}
	c.begin, c.end = c.end, c.begin
	c.stride = -c.stride
}

// at resolves the position of the i-th remaining element in forward order.
// Bounds are the caller's responsibility.
func (c cursor) at(i int) int {
	return c.begin + c.stride*i
}

// coarsen derives a cursor whose stride is step times the current one.
// Remaining elements that don't complete a whole coarsened jump are dropped,
// so the derived cursor never yields a partial group.
func (c cursor) coarsen(step int) cursor {
	if c.done {
		return cursor{done: true}
	}
	stride := c.stride * step
	// end-begin and stride share their sign here,
	// so the truncating division is a floor.
	n := (c.end - c.begin) / stride
	return cursor{begin: c.begin, end: c.begin + n*stride, stride: stride}
}
