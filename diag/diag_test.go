package diag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticekit/bgkflow/grid"
	"github.com/latticekit/bgkflow/taylorgreen"
)

func testSolution() *taylorgreen.Solution {
	return &taylorgreen.Solution{NX: 32, NY: 32, Nu: 0.05, UMax: 0.01, Rho0: 1.0}
}

func TestExactFieldsHaveZeroError(t *testing.T) {
	sol := testSolution()
	d := New(sol)

	rho := grid.NewScalar(sol.NX, sol.NY)
	ux := grid.NewScalar(sol.NX, sol.NY)
	uy := grid.NewScalar(sol.NX, sol.NY)
	sol.Fill(40.0, rho, ux, uy)

	p := d.FlowProperties(40.0, rho, ux, uy)
	assert.InDelta(t, 0.0, p.RhoErr, 1e-12)
	assert.InDelta(t, 0.0, p.UxErr, 1e-12)
	assert.InDelta(t, 0.0, p.UyErr, 1e-12)
}

func TestQuiescentEnergy(t *testing.T) {
	sol := testSolution()
	d := New(sol)

	rho := grid.NewScalar(sol.NX, sol.NY)
	ux := grid.NewScalar(sol.NX, sol.NY)
	uy := grid.NewScalar(sol.NX, sol.NY)
	rho.Fill(1.0)

	p := d.FlowProperties(0, rho, ux, uy)
	assert.Equal(t, 0.0, p.Energy)
}

func TestEnergyOfAnalyticField(t *testing.T) {
	// For the analytic field at t=0 on a square domain the mean square
	// velocity is UMax^2 / 2 per component pair, so E is close to
	// rho0 * UMax^2 / 2 * NX * NY.
	sol := testSolution()
	d := New(sol)

	rho := grid.NewScalar(sol.NX, sol.NY)
	ux := grid.NewScalar(sol.NX, sol.NY)
	uy := grid.NewScalar(sol.NX, sol.NY)
	sol.Fill(0, rho, ux, uy)

	p := d.FlowProperties(0, rho, ux, uy)
	expected := 0.5 * sol.Rho0 * sol.UMax * sol.UMax *
		float64(sol.NX) * float64(sol.NY)
	assert.InDelta(t, expected, p.Energy, 0.01*expected)
}

func TestErrorIsNormalized(t *testing.T) {
	// Scaling the velocity fields by (1 + eps) gives a relative error of
	// exactly eps.
	sol := testSolution()
	d := New(sol)

	rho := grid.NewScalar(sol.NX, sol.NY)
	ux := grid.NewScalar(sol.NX, sol.NY)
	uy := grid.NewScalar(sol.NX, sol.NY)
	sol.Fill(25.0, rho, ux, uy)

	eps := 0.05
	for i := range ux.Vals {
		ux.Vals[i] *= 1 + eps
		uy.Vals[i] *= 1 + eps
	}

	p := d.FlowProperties(25.0, rho, ux, uy)
	assert.InDelta(t, eps, p.UxErr, 1e-12)
	assert.InDelta(t, eps, p.UyErr, 1e-12)
}

func TestErrorGrowsWithPerturbation(t *testing.T) {
	sol := testSolution()
	d := New(sol)

	rho := grid.NewScalar(sol.NX, sol.NY)
	ux := grid.NewScalar(sol.NX, sol.NY)
	uy := grid.NewScalar(sol.NX, sol.NY)
	sol.Fill(0, rho, ux, uy)

	small := math.Abs(d.FlowProperties(0, rho, ux, uy).RhoErr)
	rho.Set(10, 10, rho.Get(10, 10)+1e-4)
	large := d.FlowProperties(0, rho, ux, uy).RhoErr

	if large <= small {
		t.Errorf("Expected perturbed error %g to exceed %g", large, small)
	}
}
