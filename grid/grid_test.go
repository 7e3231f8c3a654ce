package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarIndexing(t *testing.T) {
	table := []struct {
		nx, ny, x, y, idx int
	}{
		{4, 3, 0, 0, 0},
		{4, 3, 3, 0, 3},
		{4, 3, 0, 1, 4},
		{4, 3, 3, 2, 11},
		{1, 1, 0, 0, 0},
	}

	for i, test := range table {
		s := NewScalar(test.nx, test.ny)
		if s.Idx(test.x, test.y) != test.idx {
			t.Errorf("%d) Expected Idx(%d, %d) = %d, got %d",
				i, test.x, test.y, test.idx, s.Idx(test.x, test.y))
		}
	}
}

func TestScalarGetSet(t *testing.T) {
	s := NewScalar(8, 8)
	s.Set(3, 5, 2.5)
	assert.Equal(t, 2.5, s.Get(3, 5))
	assert.Equal(t, 2.5, s.Vals[5*8+3])

	s.Fill(1.0)
	for i := range s.Vals {
		assert.Equal(t, 1.0, s.Vals[i])
	}
}

func TestWrap(t *testing.T) {
	table := []struct {
		i, n, inc, dec int
	}{
		{0, 8, 1, 7},
		{7, 8, 0, 6},
		{3, 8, 4, 2},
		{0, 1, 0, 0},
	}

	for i, test := range table {
		if WrapInc(test.i, test.n) != test.inc {
			t.Errorf("%d) Expected WrapInc(%d, %d) = %d, got %d",
				i, test.i, test.n, test.inc, WrapInc(test.i, test.n))
		}
		if WrapDec(test.i, test.n) != test.dec {
			t.Errorf("%d) Expected WrapDec(%d, %d) = %d, got %d",
				i, test.i, test.n, test.dec, WrapDec(test.i, test.n))
		}
	}
}

func TestDistributionSwap(t *testing.T) {
	d := NewDistribution(4, 4)

	next := d.Next()
	next[d.Idx(2, 1, 5)] = 3.0
	assert.Equal(t, 0.0, d.Cur()[d.Idx(2, 1, 5)], "write must not be visible before swap")

	d.Swap()
	assert.Equal(t, 3.0, d.Cur()[d.Idx(2, 1, 5)], "write must be visible after swap")
	assert.Equal(t, 0.0, d.Next()[d.Idx(2, 1, 5)], "old generation becomes next")

	d.Swap()
	assert.Equal(t, 0.0, d.Cur()[d.Idx(2, 1, 5)])
}

func TestDistributionIdxContiguous(t *testing.T) {
	d := NewDistribution(5, 5)
	for i := 1; i < 8; i++ {
		if d.Idx(2, 3, i+1) != d.Idx(2, 3, i)+1 {
			t.Errorf("Expected directions at one site to be adjacent")
		}
	}
	assert.Equal(t, d.Idx(2, 3, 8)+1, d.Idx(3, 3, 1))
}
