/*package lattice defines the D2Q9 velocity set used by the solver: nine
discrete directions, their weights, and the opposite-direction pairing.

Direction numbering:

	6 2 5
	3 0 1
	7 4 8

Direction 0 is the rest direction, 1 - 4 are axis-aligned, and 5 - 8 are
diagonal.
*/
package lattice

// Q is the number of discrete velocity directions.
const Q = 9

// Lattice weights. W0 is the rest weight, WS the shared axis weight, and
// WD the shared diagonal weight. They sum to 1.
const (
	W0 = 4.0 / 9.0
	WS = 1.0 / 9.0
	WD = 1.0 / 36.0
)

var (
	// Cx and Cy give the x and y components of each direction's velocity.
	Cx = [Q]int{0, 1, 0, -1, 0, 1, -1, -1, 1}
	Cy = [Q]int{0, 0, 1, 0, -1, 1, 1, -1, -1}

	// Opposite maps each direction to the direction with negated velocity.
	Opposite = [Q]int{0, 3, 4, 1, 2, 7, 8, 5, 6}
)

// Weight returns the lattice weight of direction i.
func Weight(i int) float64 {
	switch {
	case i == 0:
		return W0
	case i < 5:
		return WS
	default:
		return WD
	}
}
