package device

import (
	"fmt"
	"math"
)

// rds returns the bias-dependent source/drain series resistance (Ω).
func (m *BSIM) rds(vgsteff, vbseff, phiS, temp float64) float64 {
	if m.p.Rdsw == 0 {
		return 0
	}
	r := (m.p.Rdsw + m.p.Prwb*(math.Sqrt(phiS-vbseff)-math.Sqrt(phiS))) /
		(1 + m.p.Prwg*vgsteff) /
		math.Pow(m.weff*1e6, m.p.Wr)
	r *= 1 + m.p.Prt*(temp/m.p.Tnom-1)
	if r < 0 {
		return 0
	}
	return r
}

// solveVdsatQuadratic returns the smaller root of a·x² + b·x + c = 0. A
// negative discriminant means the extrinsic saturation voltage has no real
// solution for this parameter set and is reported, never papered over.
func solveVdsatQuadratic(a, b, c float64) (float64, error) {
	if a == 0 {
		return -c / b, nil
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, &NumericalError{
			Stage:  "vdsat",
			Detail: fmt.Sprintf("negative discriminant %g in saturation voltage quadratic", disc),
		}
	}
	return (-b - math.Sqrt(disc)) / (2 * a), nil
}

// vdsat returns the saturation drain voltage. With zero series resistance the
// intrinsic closed form applies; otherwise the extrinsic quadratic is solved.
func (m *BSIM) vdsat(vgsteff, abulk, esat, rds, vsatT, vt float64) (float64, error) {
	vq := vgsteff + 2*vt
	esatL := esat * m.leff

	if rds == 0 {
		return esatL * vq / (abulk*esatL + vq), nil
	}

	lambda := m.p.A1*vgsteff + m.p.A2
	wvcr := m.weff * vsatT * m.cox * rds

	a := abulk*abulk*wvcr + abulk*(1/lambda-1)
	b := -(vq*(2/lambda-1) + abulk*esatL + 3*abulk*vq*wvcr)
	c := vq*esatL + 2*vq*vq*wvcr

	return solveVdsatQuadratic(a, b, c)
}

// vdseff pulls the applied drain voltage smoothly under Vdsat. The smoothing
// is applied once; iterating it would bias the plateau low by a further
// delta-sized step.
func (m *BSIM) vdseff(vds, vdsat float64) float64 {
	t0 := vdsat - vds - m.p.Delta
	return vdsat - 0.5*(t0+math.Sqrt(t0*t0+4*m.p.Delta*vdsat))
}
