package device

import "math"

// abulk returns the bulk charge factor. The depletion fraction is shared by
// the length and gate-bias terms, and the body bias enters once through Keta.
func (m *BSIM) abulk(vbseff, phiS, xdep float64) float64 {
	frac := m.leff / (m.leff + 2*math.Sqrt(m.p.Xj*xdep))

	t1 := 1 + (m.k1ox/(2*math.Sqrt(phiS-vbseff)))*
		m.p.A0*frac*(1-m.p.Ags*frac*frac)
	t2 := m.p.B0 / (m.weff + m.p.B1)

	return (t1 + t2) / (1 + m.p.Keta*vbseff)
}
