package lattice

import (
	"math"
	"testing"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for i := 0; i < Q; i++ {
		sum += Weight(i)
	}
	if math.Abs(sum-1.0) > 1e-15 {
		t.Errorf("Expected weights to sum to 1, got %g", sum)
	}
}

func TestWeightGroups(t *testing.T) {
	table := []struct {
		i int
		w float64
	}{
		{0, W0},
		{1, WS}, {2, WS}, {3, WS}, {4, WS},
		{5, WD}, {6, WD}, {7, WD}, {8, WD},
	}

	for _, test := range table {
		if Weight(test.i) != test.w {
			t.Errorf("Expected Weight(%d) = %g, got %g",
				test.i, test.w, Weight(test.i))
		}
	}
}

func TestIsotropyMoments(t *testing.T) {
	// First moment of the weight set must vanish, and the second moment
	// must be (1/3) delta_ab for the standard D2Q9 lattice.
	mx, my := 0.0, 0.0
	mxx, myy, mxy := 0.0, 0.0, 0.0
	for i := 0; i < Q; i++ {
		w := Weight(i)
		cx, cy := float64(Cx[i]), float64(Cy[i])
		mx += w * cx
		my += w * cy
		mxx += w * cx * cx
		myy += w * cy * cy
		mxy += w * cx * cy
	}

	if math.Abs(mx) > 1e-15 || math.Abs(my) > 1e-15 {
		t.Errorf("Expected zero first moment, got (%g, %g)", mx, my)
	}
	if math.Abs(mxx-1.0/3.0) > 1e-15 || math.Abs(myy-1.0/3.0) > 1e-15 {
		t.Errorf("Expected second moment 1/3, got (%g, %g)", mxx, myy)
	}
	if math.Abs(mxy) > 1e-15 {
		t.Errorf("Expected zero cross moment, got %g", mxy)
	}
}

func TestOppositePairs(t *testing.T) {
	for i := 0; i < Q; i++ {
		j := Opposite[i]
		if Cx[j] != -Cx[i] || Cy[j] != -Cy[i] {
			t.Errorf("%d) Opposite[%d] = %d does not negate (%d, %d)",
				i, i, j, Cx[i], Cy[i])
		}
		if Opposite[j] != i {
			t.Errorf("%d) Opposite is not an involution: %d -> %d -> %d",
				i, i, j, Opposite[j])
		}
	}
}

func TestVelocityMagnitudes(t *testing.T) {
	for i := 1; i < 5; i++ {
		if Cx[i]*Cx[i]+Cy[i]*Cy[i] != 1 {
			t.Errorf("Expected axis direction %d to have unit speed", i)
		}
	}
	for i := 5; i < Q; i++ {
		if Cx[i]*Cx[i]+Cy[i]*Cy[i] != 2 {
			t.Errorf("Expected diagonal direction %d to have speed sqrt(2)", i)
		}
	}
}
