/*package io reads the simulation config file and dumps scalar fields for
offline visualization. Dumps are headerless little-endian float64 in
row-major site order, one file per field per save point.
*/
package io

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/latticekit/bgkflow/grid"
)

// All field dumps are little endian.
var end = binary.LittleEndian

// StepDigits returns the number of decimal digits needed to print any
// timestep index up to nsteps.
func StepDigits(nsteps int) int {
	d := 1
	for n := nsteps; n >= 10; n /= 10 {
		d++
	}
	return d
}

// ScalarFileName returns the dump file name for one field at one step,
// e.g. "rho0200.bin" for step 200 of a 2000-step run.
func ScalarFileName(name string, step, nsteps int) string {
	return fmt.Sprintf("%s%0*d.bin", name, StepDigits(nsteps), step)
}

// SaveScalar writes the full field s for timestep step into dir. The
// returned name is the path written to, also on failure so the caller
// can report it.
func SaveScalar(dir, name string, step, nsteps int, s *grid.Scalar) (string, error) {
	fname := filepath.Join(dir, ScalarFileName(name, step, nsteps))

	f, err := os.Create(fname)
	if err != nil {
		return fname, err
	}

	err = binary.Write(f, end, s.Vals)
	cerr := f.Close()
	if err != nil {
		return fname, err
	}
	return fname, cerr
}

// ReadScalar reads a field dump written by SaveScalar back into a new
// nx x ny field. The round trip is bit exact.
func ReadScalar(fname string, nx, ny int) (*grid.Scalar, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := grid.NewScalar(nx, ny)
	if err := binary.Read(f, end, s.Vals); err != nil {
		return nil, err
	}
	return s, nil
}
