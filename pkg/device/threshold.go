package device

import (
	"math"

	"github.com/Gueni/bsim-go/internal/consts"
)

// maxExpArg bounds exponent magnitudes so intermediate terms stay finite.
const maxExpArg = 700.0

func expClamped(arg float64) float64 {
	if arg > maxExpArg {
		arg = maxExpArg
	}
	return math.Exp(arg)
}

// vbc returns the lower bound the body bias is smoothed toward.
func (m *BSIM) vbc(phiS float64) float64 {
	if m.k2ox == 0 {
		// K2 = 0 removes the quadratic floor entirely; use a deep fixed bound.
		return -30.0
	}
	return 0.9 * (phiS - m.k1ox*m.k1ox/(4*m.k2ox*m.k2ox))
}

// vbseff maps the applied body bias onto the range the square roots downstream
// accept: floored smoothly at Vbc for deep reverse bias, capped below the
// surface potential for forward bias. The radicand uses -4·delta·Vbc so it
// stays positive for the usual negative Vbc.
func (m *BSIM) vbseff(vbs, phiS float64) float64 {
	vbc := m.vbc(phiS)
	t0 := vbs - vbc - m.p.Delta
	v := vbc + 0.5*(t0+math.Sqrt(t0*t0-4*m.p.Delta*vbc))

	const deltaFwd = 0.001
	bound := 0.95 * phiS
	t0 = bound - v - deltaFwd
	return bound - 0.5*(t0+math.Sqrt(t0*t0+4*deltaFwd*bound))
}

// charLength returns the characteristic length sqrt(epsSi·Xdep·Tox/epsOx)
// with an optional body-bias correction factor on the oxide term.
func (m *BSIM) charLength(xdep, biasCoeff, vbseff float64) float64 {
	f := 1 + biasCoeff*vbseff
	if f < 0.1 {
		f = 0.1
	}
	return math.Sqrt(consts.EPSSI * xdep * m.p.Tox / (consts.EPSOX * f))
}

// vth evaluates the threshold voltage as the sum of the long-channel value,
// body effect, lateral doping, narrow width, short channel, DIBL and
// temperature terms.
func (m *BSIM) vth(vds, vbseff, phiS, xdep, temp float64) float64 {
	sqrtPhiS := math.Sqrt(phiS)
	lt0 := m.charLength(xdep, 0, 0)
	lt := m.charLength(xdep, m.p.Dvt2, vbseff)
	ltw := m.charLength(xdep, m.p.Dvt2w, vbseff)

	vth0ox := m.p.Vth0 - m.k1ox*sqrtPhiS
	vbiPhi := m.builtInVoltage(temp) - phiS

	body := vth0ox + m.k1ox*math.Sqrt(phiS-vbseff) - m.k2ox*vbseff
	lateral := m.k1ox * (math.Sqrt(1+m.p.Nlx/m.leff) - 1) * sqrtPhiS
	narrow := (m.p.K3 + m.p.K3b*vbseff) * (m.p.Tox / (m.weff + m.p.W0)) * phiS

	nwe := -m.p.Dvt0w * (math.Exp(-m.p.Dvt1w*m.weff*m.leff/(2*ltw)) +
		2*math.Exp(-m.p.Dvt1w*m.weff*m.leff/ltw)) * vbiPhi
	sce := -m.p.Dvt0 * (math.Exp(-m.p.Dvt1*m.leff/(2*lt)) +
		2*math.Exp(-m.p.Dvt1*m.leff/lt)) * vbiPhi
	dibl := -(math.Exp(-m.p.Dsub*m.leff/(2*lt0)) +
		2*math.Exp(-m.p.Dsub*m.leff/lt0)) * (m.p.Eta0 + m.p.Etab*vbseff) * vds

	thermal := (m.p.Kt1 + m.p.Kt1l/m.leff + m.p.Kt2*vbseff) * (temp/m.p.Tnom - 1)

	return body + lateral + narrow + nwe + sce + dibl + thermal
}
