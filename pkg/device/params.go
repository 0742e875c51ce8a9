package device

import (
	"fmt"

	"github.com/Gueni/bsim-go/internal/consts"
)

// Params holds the BSIM model card. Values follow SI units throughout; no
// centimeter conventions survive past the parser.
type Params struct {
	// Geometry parameters
	Ldrawn float64 // Drawn channel length (m)
	Wdrawn float64 // Drawn channel width (m)
	Xl     float64 // Length mask/etch bias (m)
	Xw     float64 // Width mask/etch bias (m)
	Lint   float64 // Length offset per side (m)
	Wint   float64 // Width offset per side (m)
	Xj     float64 // Junction depth (m)
	Tox    float64 // Gate oxide thickness (m)
	Toxm   float64 // Oxide thickness at parameter extraction (m)

	// Process parameters
	Nch  float64 // Channel doping concentration (1/m³)
	Nds  float64 // Source/drain doping concentration (1/m³)
	Ni0  float64 // Intrinsic carrier concentration at Tnom (1/m³)
	Ntex float64 // Intrinsic carrier temperature exponent

	// Threshold voltage parameters
	Vth0  float64 // Long-channel threshold at zero body bias (V)
	K1    float64 // First body effect coefficient (V^0.5)
	K2    float64 // Second body effect coefficient
	K3    float64 // Narrow width coefficient
	K3b   float64 // Body effect on narrow width (1/V)
	W0    float64 // Narrow width reference (m)
	Nlx   float64 // Lateral non-uniform doping length (m)
	Dvt0  float64 // Short channel effect coefficient
	Dvt1  float64 // Short channel effect exponent
	Dvt2  float64 // Short channel body bias coefficient (1/V)
	Dvt0w float64 // Narrow width SCE coefficient
	Dvt1w float64 // Narrow width SCE exponent (1/m)
	Dvt2w float64 // Narrow width SCE body bias coefficient (1/V)
	Dsub  float64 // DIBL exponent
	Eta0  float64 // DIBL coefficient
	Etab  float64 // DIBL body bias coefficient (1/V)

	// Mobility parameters
	MobMod int     // Mobility model selector (1-3)
	U0     float64 // Low-field mobility (m²/V·s)
	Ua     float64 // First-order mobility degradation (m/V)
	Ub     float64 // Second-order mobility degradation (m/V)²
	Uc     float64 // Body bias mobility degradation (m/V² or 1/V by MobMod)

	// Saturation parameters
	Vsat  float64 // Saturation velocity (m/s)
	A0    float64 // Bulk charge length coefficient
	Ags   float64 // Gate bias bulk charge coefficient (1/V)
	A1    float64 // First non-saturation coefficient (1/V)
	A2    float64 // Second non-saturation coefficient
	B0    float64 // Bulk charge width coefficient (m)
	B1    float64 // Bulk charge width offset (m)
	Keta  float64 // Body bias bulk charge coefficient (1/V)
	Delta float64 // Vdseff smoothing parameter (V)

	// Series resistance parameters
	Rdsw float64 // Source/drain resistance per width (Ω·µm^Wr)
	Prwg float64 // Gate bias resistance coefficient (1/V)
	Prwb float64 // Body bias resistance coefficient (V^-0.5)
	Wr   float64 // Width exponent of series resistance

	// Output resistance parameters
	Pclm    float64 // Channel length modulation coefficient
	Pdiblc1 float64 // First DIBL output resistance coefficient
	Pdiblc2 float64 // Second DIBL output resistance coefficient
	Pdiblb  float64 // Body bias DIBL output resistance coefficient (1/V)
	Drout   float64 // DIBL output resistance exponent
	Pvag    float64 // Gate bias Early voltage coefficient
	Pscbe1  float64 // First substrate current body effect coefficient (V/m)
	Pscbe2  float64 // Second substrate current body effect coefficient (m/V)

	// Subthreshold parameters
	Voff    float64 // Subthreshold offset voltage (V)
	Nfactor float64 // Subthreshold swing coefficient
	Cit     float64 // Interface trap capacitance (F/m²)
	Citd    float64 // Drain bias interface trap capacitance (F/m²·V)
	Citb    float64 // Body bias interface trap capacitance (F/m²·V)
	Cdsc    float64 // Drain/source to channel coupling capacitance (F/m²)
	Cdscd   float64 // Drain bias coupling capacitance (F/m²·V)
	Cdscb   float64 // Body bias coupling capacitance (F/m²·V)

	// Temperature parameters
	Tnom float64 // Parameter extraction temperature (K)
	Kt1  float64 // Threshold temperature coefficient (V)
	Kt1l float64 // Length dependence of Kt1 (V·m)
	Kt2  float64 // Body bias threshold temperature coefficient
	Ute  float64 // Mobility temperature exponent
	Utl  float64 // Length dependence of Ute (m)
	At   float64 // Saturation velocity temperature coefficient (m/s)
	Prt  float64 // Series resistance temperature coefficient
}

// BSIM is the drain current evaluator. The parameter set is fixed between
// calls to Set, so a configured model is safe for concurrent Compute calls.
type BSIM struct {
	p Params

	// Derived from the parameter set by refresh.
	cox  float64 // Oxide capacitance per area (F/m²)
	leff float64 // Effective channel length (m)
	weff float64 // Effective channel width (m)
	k1ox float64 // K1 scaled by Tox/Toxm
	k2ox float64 // K2 scaled by Tox/Toxm
}

// New builds an evaluator from a full parameter set.
func New(p Params) (*BSIM, error) {
	m := &BSIM{p: p}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *BSIM) Name() string { return "bsim" }

// Params returns a copy of the active parameter set.
func (m *BSIM) Params() Params { return m.p }

// Set overrides individual parameters by their model-card names and
// revalidates the derived quantities. Unknown names are rejected so a typo in
// a card cannot silently leave a default in place. On any error the model is
// left unchanged.
func (m *BSIM) Set(params map[string]float64) error {
	next := *m
	if mobVal, ok := params["mobmod"]; ok {
		next.p.MobMod = int(mobVal)
	}

	paramsSet := map[string]*float64{
		// Geometry parameters
		"l":    &next.p.Ldrawn,
		"w":    &next.p.Wdrawn,
		"xl":   &next.p.Xl,
		"xw":   &next.p.Xw,
		"lint": &next.p.Lint,
		"wint": &next.p.Wint,
		"xj":   &next.p.Xj,
		"tox":  &next.p.Tox,
		"toxm": &next.p.Toxm,

		// Process parameters
		"nch":  &next.p.Nch,
		"nds":  &next.p.Nds,
		"ni0":  &next.p.Ni0,
		"ntex": &next.p.Ntex,

		// Threshold voltage parameters
		"vth0":  &next.p.Vth0,
		"k1":    &next.p.K1,
		"k2":    &next.p.K2,
		"k3":    &next.p.K3,
		"k3b":   &next.p.K3b,
		"w0":    &next.p.W0,
		"nlx":   &next.p.Nlx,
		"dvt0":  &next.p.Dvt0,
		"dvt1":  &next.p.Dvt1,
		"dvt2":  &next.p.Dvt2,
		"dvt0w": &next.p.Dvt0w,
		"dvt1w": &next.p.Dvt1w,
		"dvt2w": &next.p.Dvt2w,
		"dsub":  &next.p.Dsub,
		"eta0":  &next.p.Eta0,
		"etab":  &next.p.Etab,

		// Mobility parameters
		"u0": &next.p.U0,
		"ua": &next.p.Ua,
		"ub": &next.p.Ub,
		"uc": &next.p.Uc,

		// Saturation parameters
		"vsat":  &next.p.Vsat,
		"a0":    &next.p.A0,
		"ags":   &next.p.Ags,
		"a1":    &next.p.A1,
		"a2":    &next.p.A2,
		"b0":    &next.p.B0,
		"b1":    &next.p.B1,
		"keta":  &next.p.Keta,
		"delta": &next.p.Delta,

		// Series resistance parameters
		"rdsw": &next.p.Rdsw,
		"prwg": &next.p.Prwg,
		"prwb": &next.p.Prwb,
		"wr":   &next.p.Wr,

		// Output resistance parameters
		"pclm":    &next.p.Pclm,
		"pdiblc1": &next.p.Pdiblc1,
		"pdiblc2": &next.p.Pdiblc2,
		"pdiblb":  &next.p.Pdiblb,
		"drout":   &next.p.Drout,
		"pvag":    &next.p.Pvag,
		"pscbe1":  &next.p.Pscbe1,
		"pscbe2":  &next.p.Pscbe2,

		// Subthreshold parameters
		"voff":    &next.p.Voff,
		"nfactor": &next.p.Nfactor,
		"cit":     &next.p.Cit,
		"citd":    &next.p.Citd,
		"citb":    &next.p.Citb,
		"cdsc":    &next.p.Cdsc,
		"cdscd":   &next.p.Cdscd,
		"cdscb":   &next.p.Cdscb,

		// Temperature parameters
		"tnom": &next.p.Tnom,
		"kt1":  &next.p.Kt1,
		"kt1l": &next.p.Kt1l,
		"kt2":  &next.p.Kt2,
		"ute":  &next.p.Ute,
		"utl":  &next.p.Utl,
		"at":   &next.p.At,
		"prt":  &next.p.Prt,
	}

	for name, value := range params {
		if name == "mobmod" {
			continue
		}
		ptr, ok := paramsSet[name]
		if !ok {
			return &ConfigurationError{Param: name, Detail: "unknown parameter"}
		}
		*ptr = value
	}

	if err := next.refresh(); err != nil {
		return err
	}
	*m = next
	return nil
}

// refresh recomputes cached derived quantities and validates the set. It runs
// on construction and after every Set, so evaluation can assume the cache is
// consistent with the parameters.
func (m *BSIM) refresh() error {
	m.leff = m.p.Ldrawn + m.p.Xl - 2*m.p.Lint
	m.weff = m.p.Wdrawn + m.p.Xw - 2*m.p.Wint

	if err := m.validate(); err != nil {
		return err
	}

	m.cox = consts.EPSOX / m.p.Tox
	m.k1ox = m.p.K1 * m.p.Tox / m.p.Toxm
	m.k2ox = m.p.K2 * m.p.Tox / m.p.Toxm
	return nil
}

func (m *BSIM) validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"tox", m.p.Tox},
		{"toxm", m.p.Toxm},
		{"leff", m.leff},
		{"weff", m.weff},
		{"nch", m.p.Nch},
		{"nds", m.p.Nds},
		{"ni0", m.p.Ni0},
		{"u0", m.p.U0},
		{"vsat", m.p.Vsat},
		{"tnom", m.p.Tnom},
		{"delta", m.p.Delta},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return &ConfigurationError{
				Param:  c.name,
				Detail: fmt.Sprintf("must be positive, got %g", c.value),
			}
		}
	}
	if m.p.Nds <= m.p.Ni0 {
		return &ConfigurationError{Param: "nds", Detail: "must exceed intrinsic concentration"}
	}
	if m.p.MobMod < 1 || m.p.MobMod > 3 {
		return &ConfigurationError{
			Param:  "mobmod",
			Detail: fmt.Sprintf("must be 1, 2 or 3, got %d", m.p.MobMod),
		}
	}
	if m.p.A2 <= 0 {
		return &ConfigurationError{Param: "a2", Detail: "must be positive"}
	}
	return nil
}

// Cox returns the oxide capacitance per unit area (F/m²).
func (m *BSIM) Cox() float64 { return m.cox }

// Leff returns the effective channel length (m).
func (m *BSIM) Leff() float64 { return m.leff }

// Weff returns the effective channel width (m).
func (m *BSIM) Weff() float64 { return m.weff }
