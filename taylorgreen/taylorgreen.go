/*package taylorgreen evaluates the analytic decaying Taylor-Green vortex,
the reference solution the solver is validated against. The flow is
periodic over the lattice domain and decays exponentially with the time
constant returned by DecayTime.
*/
package taylorgreen

import (
	"math"

	"github.com/latticekit/bgkflow/grid"
)

// Solution holds the flow parameters: lattice domain size, kinematic
// viscosity, peak velocity, and reference density.
type Solution struct {
	NX, NY int
	Nu     float64
	UMax   float64
	Rho0   float64
}

// Wavenumbers returns the fundamental wavenumbers of the periodic domain.
func (s *Solution) Wavenumbers() (kx, ky float64) {
	return 2.0 * math.Pi / float64(s.NX), 2.0 * math.Pi / float64(s.NY)
}

// DecayTime returns td = 1/(nu (kx^2 + ky^2)), the time over which the
// velocity field decays by a factor of e.
func (s *Solution) DecayTime() float64 {
	kx, ky := s.Wavenumbers()
	return 1.0 / (s.Nu * (kx*kx + ky*ky))
}

// At returns the analytic density and velocity at time t for the cell
// centered on site (x, y). Lattice sound speed squared is 1/3, so the
// equation of state is rho = rho0 + 3P.
func (s *Solution) At(t float64, x, y int) (rho, ux, uy float64) {
	kx, ky := s.Wavenumbers()
	td := s.DecayTime()

	X := float64(x) + 0.5
	Y := float64(y) + 0.5

	decay := math.Exp(-t / td)
	ux = -s.UMax * math.Sqrt(ky/kx) * math.Cos(kx*X) * math.Sin(ky*Y) * decay
	uy = s.UMax * math.Sqrt(kx/ky) * math.Sin(kx*X) * math.Cos(ky*Y) * decay

	P := -0.25 * s.Rho0 * s.UMax * s.UMax *
		((ky/kx)*math.Cos(2.0*kx*X) + (kx/ky)*math.Cos(2.0*ky*Y)) *
		decay * decay
	rho = s.Rho0 + 3.0*P

	return rho, ux, uy
}

// Fill evaluates the solution at time t over the whole domain into the
// given fields, which must all be NX x NY.
func (s *Solution) Fill(t float64, rho, ux, uy *grid.Scalar) {
	for y := 0; y < s.NY; y++ {
		for x := 0; x < s.NX; x++ {
			i := rho.Idx(x, y)
			rho.Vals[i], ux.Vals[i], uy.Vals[i] = s.At(t, x, y)
		}
	}
}
