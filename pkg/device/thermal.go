package device

import (
	"math"

	"github.com/Gueni/bsim-go/internal/consts"
)

// thermalVoltage returns kT/q (V).
func (m *BSIM) thermalVoltage(temp float64) float64 {
	return consts.BOLTZMANN * temp / consts.CHARGE
}

// intrinsicConcentration returns ni(T) by power law against Tnom (1/m³).
func (m *BSIM) intrinsicConcentration(temp float64) float64 {
	return m.p.Ni0 * math.Pow(temp/m.p.Tnom, m.p.Ntex)
}

// surfacePotential returns PhiS = 2·vt·ln(Nch/ni) (V).
func (m *BSIM) surfacePotential(temp float64) float64 {
	return 2 * m.thermalVoltage(temp) * math.Log(m.p.Nch/m.intrinsicConcentration(temp))
}

// builtInVoltage returns Vbi = vt·ln(Nch·Nds/ni²) (V).
func (m *BSIM) builtInVoltage(temp float64) float64 {
	ni := m.intrinsicConcentration(temp)
	return m.thermalVoltage(temp) * math.Log(m.p.Nch*m.p.Nds/(ni*ni))
}

// xdep0 returns the zero-bias depletion width (m).
func (m *BSIM) xdep0(phiS float64) float64 {
	return math.Sqrt(2 * consts.EPSSI * phiS / (consts.CHARGE * m.p.Nch))
}

// xdep returns the body-bias dependent depletion width (m). The Vbseff
// smoothing keeps phiS-vbseff positive, so the root stays real.
func (m *BSIM) xdep(phiS, vbseff float64) float64 {
	return math.Sqrt(2 * consts.EPSSI * (phiS - vbseff) / (consts.CHARGE * m.p.Nch))
}

// u0Temp returns the low-field mobility scaled to temp (m²/V·s).
func (m *BSIM) u0Temp(temp float64) float64 {
	return m.p.U0 * math.Pow(temp/m.p.Tnom, m.p.Ute+m.p.Utl/m.leff)
}

// vsatTemp returns the saturation velocity scaled to temp (m/s).
func (m *BSIM) vsatTemp(temp float64) float64 {
	return m.p.Vsat - m.p.At*(temp/m.p.Tnom-1)
}
