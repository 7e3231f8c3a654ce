/*package grid owns the contiguous field storage used by the solver: scalar
fields over the periodic NX x NY domain and the double-buffered directional
population field. All grid indexing in the module goes through this package
so the neighbor-offset arithmetic lives in exactly one place.
*/
package grid

// Scalar is a real-valued field over the grid, stored row-major with site
// index y*NX + x.
type Scalar struct {
	NX, NY int
	Vals   []float64
}

// NewScalar allocates a zeroed NX x NY scalar field.
func NewScalar(nx, ny int) *Scalar {
	return &Scalar{nx, ny, make([]float64, nx*ny)}
}

// Idx returns the flat index of site (x, y).
func (s *Scalar) Idx(x, y int) int { return y*s.NX + x }

// Get returns the value at site (x, y).
func (s *Scalar) Get(x, y int) float64 { return s.Vals[y*s.NX+x] }

// Set stores v at site (x, y).
func (s *Scalar) Set(x, y int, v float64) { s.Vals[y*s.NX+x] = v }

// Fill sets every site to v.
func (s *Scalar) Fill(v float64) {
	for i := range s.Vals {
		s.Vals[i] = v
	}
}

// WrapInc returns i+1 wrapped into [0, n).
func WrapInc(i, n int) int { return (i + 1) % n }

// WrapDec returns i-1 wrapped into [0, n).
func WrapDec(i, n int) int { return (n + i - 1) % n }
