package grid

// NDir is the number of streaming directions stored per site. The rest
// population never streams and is kept in a separate Scalar updated in
// place, so only directions 1 - 8 are double buffered.
const NDir = 8

// Distribution holds the two generations of the directional populations.
// "Current" and "next" are roles, not arrays: Swap flips which generation
// each name refers to without copying data. Slices returned by Cur and
// Next are only valid for the timestep in which they were taken.
type Distribution struct {
	NX, NY int
	gens   [2][]float64
	cur    int
}

// NewDistribution allocates both generations for an NX x NY grid.
func NewDistribution(nx, ny int) *Distribution {
	return &Distribution{
		NX:   nx,
		NY:   ny,
		gens: [2][]float64{
			make([]float64, nx*ny*NDir),
			make([]float64, nx*ny*NDir),
		},
	}
}

// Idx returns the flat index of direction i (1 <= i <= 8) at site (x, y).
// Populations of one site are adjacent so a collision writes a contiguous
// run of eight values.
func (d *Distribution) Idx(x, y, i int) int {
	return (y*d.NX+x)*NDir + (i - 1)
}

// Cur returns the generation being read this timestep.
func (d *Distribution) Cur() []float64 { return d.gens[d.cur] }

// Next returns the generation being written this timestep.
func (d *Distribution) Next() []float64 { return d.gens[d.cur^1] }

// Swap flips the current/next roles. It must only be called between
// sweeps, after every writer has finished the timestep.
func (d *Distribution) Swap() { d.cur ^= 1 }
