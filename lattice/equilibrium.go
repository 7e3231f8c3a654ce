package lattice

// Equilibrium computes the nine equilibrium populations for a site with
// density rho and velocity (ux, uy), using the second-order expansion
//
//	feq_i = w_i rho [1 - 3/2 (u.u) + (ci . 3u){ 1 + (1/2) (ci . 3u) }]
//
// Density and momentum are exact moments of the result.
func Equilibrium(rho, ux, uy float64) [Q]float64 {
	omusq := 1.0 - 1.5*(ux*ux+uy*uy)
	tux := 3.0 * ux
	tuy := 3.0 * uy

	var f [Q]float64
	f[0] = W0 * rho * omusq

	for i := 1; i < 5; i++ {
		cidot3u := float64(Cx[i])*tux + float64(Cy[i])*tuy
		f[i] = WS * rho * (omusq + cidot3u*(1.0+0.5*cidot3u))
	}
	for i := 5; i < Q; i++ {
		cidot3u := float64(Cx[i])*tux + float64(Cy[i])*tuy
		f[i] = WD * rho * (omusq + cidot3u*(1.0+0.5*cidot3u))
	}
	return f
}

// Moments projects nine populations back onto density and velocity.
// rho must be nonzero.
func Moments(f *[Q]float64) (rho, ux, uy float64) {
	for i := 0; i < Q; i++ {
		rho += f[i]
	}
	rhoinv := 1.0 / rho
	ux = rhoinv * (f[1] + f[5] + f[8] - (f[3] + f[6] + f[7]))
	uy = rhoinv * (f[2] + f[5] + f[6] - (f[4] + f[7] + f[8]))
	return rho, ux, uy
}
