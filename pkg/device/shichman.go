package device

import "math"

// ShichmanHodges is the classic square-law model. It serves as a cheap
// companion to BSIM for sanity sweeps and as a reference in tests.
type ShichmanHodges struct {
	VTO    float64 // Threshold voltage (V)
	KP     float64 // Transconductance parameter (A/V²)
	GAMMA  float64 // Body effect parameter (V^0.5)
	PHI    float64 // Surface potential (V)
	LAMBDA float64 // Channel length modulation (1/V)
	L      float64 // Channel length (m)
	W      float64 // Channel width (m)
}

// NewShichmanHodges returns a model with the usual textbook defaults.
func NewShichmanHodges() *ShichmanHodges {
	return &ShichmanHodges{
		VTO:    0.7,
		KP:     2e-5,
		GAMMA:  0.5,
		PHI:    0.6,
		LAMBDA: 0.01,
		L:      10e-6,
		W:      10e-6,
	}
}

func (m *ShichmanHodges) Name() string { return "shichman-hodges" }

// Set overrides parameters by their SPICE card names.
func (m *ShichmanHodges) Set(params map[string]float64) error {
	paramsSet := map[string]*float64{
		"vto":    &m.VTO,
		"kp":     &m.KP,
		"gamma":  &m.GAMMA,
		"phi":    &m.PHI,
		"lambda": &m.LAMBDA,
		"l":      &m.L,
		"w":      &m.W,
	}
	for name, value := range params {
		ptr, ok := paramsSet[name]
		if !ok {
			return &ConfigurationError{Param: name, Detail: "unknown parameter"}
		}
		*ptr = value
	}
	if m.L <= 0 {
		return &ConfigurationError{Param: "l", Detail: "must be positive"}
	}
	if m.W <= 0 {
		return &ConfigurationError{Param: "w", Detail: "must be positive"}
	}
	return nil
}

// Vth returns the threshold voltage with body effect.
func (m *ShichmanHodges) Vth(vbs float64) float64 {
	if m.GAMMA > 0 {
		return m.VTO + m.GAMMA*(math.Sqrt(math.Max(0, m.PHI-vbs))-math.Sqrt(m.PHI))
	}
	return m.VTO
}

// Compute returns the square-law drain current for a bias point.
func (m *ShichmanHodges) Compute(vgs, vds, vbs, temp float64) (float64, error) {
	if temp <= 0 {
		return 0, &DomainError{Quantity: "temperature", Value: temp}
	}
	if vds < 0 {
		return 0, &DomainError{Quantity: "vds", Value: vds}
	}

	vgst := vgs - m.Vth(vbs)
	if vgst <= 0 {
		return 0, nil
	}

	beta := m.KP * m.W / m.L
	if vds < vgst {
		return beta * (vgst*vds - 0.5*vds*vds) * (1 + m.LAMBDA*vds), nil
	}
	return 0.5 * beta * vgst * vgst * (1 + m.LAMBDA*vds), nil
}
