package stride

import (
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// The cursor keeps end-begin an exact non-negative multiple of the stride
// through every narrowing step, in both directions, and the stride sign keeps
// matching the direction from begin toward end.
func TestCursor_invariants(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	assertAligned := func(t testing.TB, c cursor) {
		t.Helper()
		if c.done {
			return
		}
		span := c.end - c.begin
		assert.Equal(t, 0, span%c.stride)
		assert.True(t, 0 <= span/c.stride)
	}

	for i := 0; i < 100; i++ {
		c := cursorOver(rnd.IntBetween(0, 64), rnd.IntBetween(1, 8))
		if rnd.Bool() {
			c.swapEnds()
		}
		assertAligned(t, c)
		for !c.done {
			if rnd.Bool() {
				c.next()
			} else {
				c.nextBack()
			}
			assertAligned(t, c)
		}
		assert.Equal(t, 0, c.length())
	}
}

func TestCursor_coarsenKeepsAlignment(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	for i := 0; i < 100; i++ {
		c := cursorOver(rnd.IntBetween(0, 64), rnd.IntBetween(1, 8))
		if rnd.Bool() {
			c.swapEnds()
		}
		cc := c.coarsen(rnd.IntBetween(1, 5))
		if cc.done {
			assert.True(t, c.done)
			continue
		}
		assert.Equal(t, c.begin, cc.begin)
		assert.Equal(t, 0, (cc.end-cc.begin)%cc.stride)
		assert.True(t, 0 <= (cc.end-cc.begin)/cc.stride)
		assert.True(t, cc.length() <= c.length())
	}
}
