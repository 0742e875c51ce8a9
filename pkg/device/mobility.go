package device

// mobility returns the effective channel mobility for the selected MobMod
// (m²/V·s). The vertical field is approximated by (Vgsteff+2·Vth)/Tox, or by
// Vgsteff/Tox alone for the depletion-mode variant.
func (m *BSIM) mobility(vgsteff, vth, vbseff, temp float64) float64 {
	u0t := m.u0Temp(temp)

	var denom float64
	switch m.p.MobMod {
	case 1:
		e := (vgsteff + 2*vth) / m.p.Tox
		denom = 1 + (m.p.Ua+m.p.Uc*vbseff)*e + m.p.Ub*e*e
	case 2:
		e := vgsteff / m.p.Tox
		denom = 1 + (m.p.Ua+m.p.Uc*vbseff)*e + m.p.Ub*e*e
	default:
		e := (vgsteff + 2*vth) / m.p.Tox
		denom = 1 + (m.p.Ua*e+m.p.Ub*e*e)*(1+m.p.Uc*vbseff)
	}
	if denom < 1 {
		// Strong reverse body bias can drive the correction below unity;
		// mobility must not exceed its low-field value.
		denom = 1
	}
	return u0t / denom
}
