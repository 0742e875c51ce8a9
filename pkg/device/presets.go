package device

import (
	"fmt"
	"sort"
)

// DefaultParams returns the generic 180nm card. It is the parameter set used
// when no preset or card is named.
func DefaultParams() Params {
	return Params{
		Ldrawn: 180e-9,
		Wdrawn: 1e-6,
		Xj:     100e-9,
		Tox:    2e-9,
		Toxm:   2e-9,

		Nch:  1e23,
		Nds:  1e26,
		Ni0:  1.45e16,
		Ntex: 1.5,

		Vth0:  0.40,
		K1:    0.5,
		K2:    0.01,
		K3:    80,
		K3b:   0,
		W0:    2.5e-6,
		Nlx:   1.47e-7,
		Dvt0:  2.2,
		Dvt1:  0.53,
		Dvt2:  -0.032,
		Dvt0w: 0,
		Dvt1w: 5.3e6,
		Dvt2w: -0.032,
		Dsub:  0.56,
		Eta0:  0.08,
		Etab:  -0.07,

		MobMod: 3,
		U0:     0.067,
		Ua:     2.25e-9,
		Ub:     5.87e-19,
		Uc:     -0.046,

		Vsat:  8e4,
		A0:    1.0,
		Ags:   0,
		A1:    0,
		A2:    1.0,
		B0:    0,
		B1:    0,
		Keta:  -0.047,
		Delta: 0.01,

		Rdsw: 50,
		Prwg: 0,
		Prwb: 0,
		Wr:   1,

		Pclm:    1.3,
		Pdiblc1: 0.5,
		Pdiblc2: 0.39,
		Pdiblb:  0,
		Drout:   0.56,
		Pvag:    0,
		Pscbe1:  4.24e8,
		Pscbe2:  1e-5,

		Voff:    -0.08,
		Nfactor: 1.0,
		Cdsc:    2.4e-4,

		Tnom: 300.15,
		Kt1:  -0.11,
		Kt2:  0.022,
		Ute:  -1.5,
		At:   3.3e4,
	}
}

// presetTable maps preset names to complete parameter sets. Each entry is
// defined as a delta over DefaultParams so shared physics stays in one place.
var presetTable = map[string]func() Params{
	"bsim3-180nm": DefaultParams,

	"bsim4-45nm": func() Params {
		p := DefaultParams()
		p.Ldrawn = 45e-9
		p.Xj = 15e-9
		p.Tox = 1.2e-9
		p.Toxm = 1.2e-9
		p.Nch = 2e23
		p.Vth0 = 0.35
		p.Dvt0 = 2.5
		p.Dvt1 = 0.6
		p.Dsub = 1.2
		p.Eta0 = 0.15
		p.Etab = -0.12
		p.Pdiblc1 = 0.45
		p.Pdiblc2 = 0.45
		p.Pdiblb = -0.08
		p.Rdsw = 200
		return p
	},

	"bsim6-7nm": func() Params {
		p := DefaultParams()
		p.Ldrawn = 7e-9
		p.Wdrawn = 2e-6
		p.Xj = 10e-9
		p.Tox = 0.8e-9
		p.Toxm = 0.8e-9
		p.Nch = 1e24
		p.Nds = 2e26
		p.Vth0 = 0.35
		p.K1 = 0.6
		p.K2 = 0.02
		p.K3 = 1.5
		p.Nlx = 1.5e-7
		p.Dvt0 = 2.5
		p.Dvt1 = 0.6
		p.Dvt2 = -0.03
		p.Dsub = 1.2
		p.Eta0 = 0.15
		p.Etab = -0.12
		p.U0 = 0.03
		p.Ua = 2e-9
		p.Ub = 5e-19
		p.Uc = -0.05
		p.Vsat = 1e5
		p.At = 3e4
		p.Pclm = 1.2
		p.Pdiblc1 = 0.45
		p.Pdiblc2 = 0.45
		p.Pdiblb = -0.08
		p.Rdsw = 100
		p.Prwb = 0.1
		p.Tnom = 300.0
		p.Kt1 = -0.15
		p.Kt1l = 1e-9
		p.Kt2 = 0.03
		p.Ute = -1.8
		return p
	},

	// Vertical power MOSFET card extracted against a 75V/60mΩ part. Wide
	// device, high threshold, milliohm-class series resistance.
	"aimdq75r060m1h": func() Params {
		p := DefaultParams()
		p.Ldrawn = 50e-9
		p.Wdrawn = 2000e-6
		p.Xj = 0.5e-6
		p.Tox = 1.2e-9
		p.Toxm = 1.2e-9
		p.Vth0 = 2.5
		p.K1 = 1.2
		p.K2 = 0.05
		p.K3 = 10
		p.Nlx = 1.74e-7
		p.Dvt0 = 1.5
		p.Dvt1 = 0.35
		p.Dvt2 = -0.05
		p.Dsub = 1.2
		p.Eta0 = 0.15
		p.Etab = -0.12
		p.U0 = 0.045
		p.Vsat = 1e5
		p.At = 3e4
		p.Pdiblc1 = 0.45
		p.Pdiblc2 = 0.45
		p.Pdiblb = -0.08
		p.Rdsw = 0.3
		p.Delta = 0.005
		p.Voff = -0.1
		p.Nfactor = 0
		p.Cdsc = 0
		p.Tnom = 300.0
		p.Kt1 = -0.3
		p.Kt1l = 1e-9
		p.Kt2 = 0.03
		return p
	},
}

// Presets returns the available preset names sorted for stable listings.
func Presets() []string {
	names := make([]string, 0, len(presetTable))
	for name := range presetTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetParams returns the parameter set registered under name.
func PresetParams(name string) (Params, error) {
	build, ok := presetTable[name]
	if !ok {
		return Params{}, &ConfigurationError{
			Param:  "preset",
			Detail: fmt.Sprintf("unknown preset %q", name),
		}
	}
	return build(), nil
}

// NewFromPreset builds an evaluator from a named preset.
func NewFromPreset(name string) (*BSIM, error) {
	p, err := PresetParams(name)
	if err != nil {
		return nil, err
	}
	return New(p)
}
