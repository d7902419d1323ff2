// Package stridecontract provides a reusable behavior suite that asserts the
// traversal laws every strided iterator source has to satisfy.
//
// It is meant for code that constructs stride.Stride values through its own
// layers (matrix wrappers, pool views and the like) and wants the iteration
// guarantees verified against its own construction path.
package stridecontract

import (
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/stride"
)

// Make creates a fresh strided iterator,
// together with the forward sequence it is expected to yield.
// It is called once per test case.
type Make[T any] func(tb testing.TB) (stride.Stride[T], []T)

// Strider returns a suite asserting the traversal laws of a strided iterator:
// exact counting, forward/backward symmetry, reversal identity and
// double-ended consumption.
func Strider[T any](mk Make[T]) testcase.Suite {
	s := testcase.NewSpec(nil)

	var (
		iterator = testcase.Let[stride.Stride[T]](s, nil)
		expected = testcase.Let[[]T](s, nil)
	)
	s.Before(func(t *testcase.T) {
		it, exp := mk(t)
		iterator.Set(t, it)
		if exp == nil { // keep slice equality checks free of nil vs empty noise
			exp = []T{}
		}
		expected.Set(t, exp)
	})

	s.Then("forward traversal yields the expected sequence", func(t *testcase.T) {
		it := iterator.Get(t)
		assert.Equal(t, expected.Get(t), collect(&it))
	})

	s.Then("the remaining count is exact and decreases by one per step", func(t *testcase.T) {
		it := iterator.Get(t)
		remaining := len(expected.Get(t))
		assert.Equal(t, remaining, it.Len())
		for {
			_, ok := it.Next()
			if !ok {
				break
			}
			remaining--
			assert.Equal(t, remaining, it.Len())
		}
		assert.Equal(t, 0, remaining)
	})

	s.Then("backward traversal yields the reverse of the forward sequence", func(t *testcase.T) {
		var (
			fw = iterator.Get(t)
			bw = iterator.Get(t)
		)
		backward := make([]T, 0, bw.Len())
		for {
			v, ok := bw.NextBack()
			if !ok {
				break
			}
			backward = append(backward, v)
		}
		slices.Reverse(backward)
		assert.Equal(t, collect(&fw), backward)
	})

	s.Then("the Backward sequence reverses the forward one and leaves the iterator in place", func(t *testcase.T) {
		it := iterator.Get(t)
		exp := slices.Clone(expected.Get(t))
		slices.Reverse(exp)
		total := it.Len()
		backward := make([]T, 0, total)
		for v := range it.Backward() {
			backward = append(backward, v)
		}
		assert.Equal(t, exp, backward)
		assert.Equal(t, total, it.Len())
	})

	s.Then("double reversal is identity", func(t *testcase.T) {
		it := iterator.Get(t)
		it.SwapEnds()
		it.SwapEnds()
		assert.Equal(t, expected.Get(t), collect(&it))
	})

	s.Then("a reversed iterator traverses forward in the opposite direction", func(t *testcase.T) {
		it := iterator.Get(t)
		it.SwapEnds()
		exp := slices.Clone(expected.Get(t))
		slices.Reverse(exp)
		assert.Equal(t, exp, collect(&it))
	})

	s.Then("interleaved forward and backward stepping consumes a double-ended sequence", func(t *testcase.T) {
		var (
			it    = iterator.Get(t)
			exp   = expected.Get(t)
			front = 0
			back  = len(exp) - 1
		)
		for front <= back {
			if t.Random.Bool() {
				v, ok := it.Next()
				assert.True(t, ok)
				assert.Equal(t, exp[front], v)
				front++
			} else {
				v, ok := it.NextBack()
				assert.True(t, ok)
				assert.Equal(t, exp[back], v)
				back--
			}
			assert.Equal(t, back-front+1, it.Len())
		}
		_, ok := it.Next()
		assert.False(t, ok)
		_, ok = it.NextBack()
		assert.False(t, ok)
	})

	s.Then("indexed access agrees with forward stepping", func(t *testcase.T) {
		it := iterator.Get(t)
		for i, exp := range expected.Get(t) {
			assert.Equal(t, exp, it.At(i))
		}
	})

	s.Then("exhaustion is final", func(t *testcase.T) {
		it := iterator.Get(t)
		_ = collect(&it)
		assert.True(t, it.IsDone())
		assert.Equal(t, 0, it.Len())
		_, ok := it.Next()
		assert.False(t, ok)
		_, ok = it.NextBack()
		assert.False(t, ok)
	})

	return s.AsSuite("Strider")
}

// collect drains the iterator through its Next protocol,
// unlike slices.Collect(it.Values()) which walks a duplicate.
func collect[T any](it *stride.Stride[T]) []T {
	vs := make([]T, 0, it.Len())
	for {
		v, ok := it.Next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}
