package device

import (
	"errors"
	"testing"
)

func TestNewValidatesParameters(t *testing.T) {
	p := DefaultParams()
	p.Tox = 0
	if _, err := New(p); err == nil {
		t.Fatal("expected error for zero oxide thickness")
	}

	p = DefaultParams()
	p.Lint = 1e-6 // drives Leff negative
	_, err := New(p)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cfgErr.Param != "leff" {
		t.Errorf("expected leff to be flagged, got %q", cfgErr.Param)
	}
}

func TestSetUnknownParameter(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	err = m.Set(map[string]float64{"vthh0": 0.5})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for unknown name, got %v", err)
	}
}

func TestSetLeavesModelUnchangedOnError(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	before := m.Params()
	if err := m.Set(map[string]float64{"vth0": 0.7, "tox": -1}); err == nil {
		t.Fatal("expected error for negative oxide thickness")
	}
	if m.Params() != before {
		t.Error("failed Set mutated the model")
	}
}

func TestSetOverridesAndRefreshes(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	coxBefore := m.Cox()
	if err := m.Set(map[string]float64{"tox": 4e-9, "toxm": 4e-9, "mobmod": 2}); err != nil {
		t.Fatal(err)
	}
	if m.Cox() >= coxBefore {
		t.Errorf("doubling Tox must lower Cox: before %g, after %g", coxBefore, m.Cox())
	}
	if m.Params().MobMod != 2 {
		t.Errorf("mobmod override not applied: got %d", m.Params().MobMod)
	}
}

func TestEffectiveGeometry(t *testing.T) {
	p := DefaultParams()
	p.Ldrawn = 200e-9
	p.Xl = 10e-9
	p.Lint = 5e-9
	p.Wdrawn = 2e-6
	p.Wint = 50e-9
	m, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.Leff(), 200e-9; got != want {
		t.Errorf("Leff = %g, want %g", got, want)
	}
	if got, want := m.Weff(), 1.9e-6; got != want {
		t.Errorf("Weff = %g, want %g", got, want)
	}
}

func TestPresets(t *testing.T) {
	names := Presets()
	if len(names) == 0 {
		t.Fatal("no presets registered")
	}
	for _, name := range names {
		if _, err := NewFromPreset(name); err != nil {
			t.Errorf("preset %q does not construct: %v", name, err)
		}
	}

	_, err := NewFromPreset("bsim9-1nm")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for unknown preset, got %v", err)
	}
}

func TestPresetDrawnLengthsMatchNames(t *testing.T) {
	for name, want := range map[string]float64{
		"bsim3-180nm": 180e-9,
		"bsim4-45nm":  45e-9,
		"bsim6-7nm":   7e-9,
	} {
		p, err := PresetParams(name)
		if err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
		if p.Ldrawn != want {
			t.Errorf("preset %q: Ldrawn = %g, want %g", name, p.Ldrawn, want)
		}
	}
}
