package device

import (
	"math"

	"github.com/Gueni/bsim-go/internal/consts"
)

// softplus returns ln(1+e^x) without overflowing for large x: above zero it is
// rewritten as x + ln(1+e^-x).
func softplus(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// swingFactor returns the subthreshold swing coefficient n used by the
// overdrive smoothing.
func (m *BSIM) swingFactor(vds, vbseff, phiS, xdep float64) float64 {
	cd := consts.EPSSI / m.xdep0(phiS)
	lt := m.charLength(xdep, m.p.Dvt2, vbseff)
	coupling := math.Exp(-m.p.Dvt1*m.leff/(2*lt)) + 2*math.Exp(-m.p.Dvt1*m.leff/lt)

	return 1 + m.p.Nfactor*cd/m.cox +
		(m.p.Cdsc+m.p.Cdscd*vds+m.p.Cdscb*vbseff)*coupling/m.cox +
		m.p.Cit/m.cox
}

// vgsteff maps the raw overdrive Vgs-Vth onto a single expression that decays
// exponentially below threshold and approaches the overdrive above it, so the
// current needs no branch at Vth.
func (m *BSIM) vgsteff(vgst, n, phiS, temp float64) float64 {
	vt := m.thermalVoltage(temp)
	num := 2 * n * vt * softplus(vgst/(2*n*vt))
	den := 1 + 2*n*m.cox*
		math.Sqrt(2*phiS/(consts.CHARGE*consts.EPSSI*m.p.Nch))*
		expClamped(-(vgst-2*m.p.Voff)/(2*n*vt))
	return num / den
}
