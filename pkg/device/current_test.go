package device

import (
	"errors"
	"math"
	"testing"
)

func TestComputeRejectsNonPhysicalInputs(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	var domErr *DomainError
	if _, err := m.Compute(1, 0.1, 0, 0); !errors.As(err, &domErr) {
		t.Errorf("expected DomainError for T=0, got %v", err)
	}
	if _, err := m.Compute(1, 0.1, 0, -300); !errors.As(err, &domErr) {
		t.Errorf("expected DomainError for negative T, got %v", err)
	}
	if _, err := m.Compute(1, -0.1, 0, 300.15); !errors.As(err, &domErr) {
		t.Errorf("expected DomainError for negative Vds, got %v", err)
	}
}

func TestZeroDrainBias(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	for _, vgs := range []float64{0, 0.6, 1.5} {
		id, err := m.Compute(vgs, 0, 0, 300.15)
		if err != nil {
			t.Fatal(err)
		}
		if id != 0 {
			t.Errorf("Id(vgs=%g, vds=0) = %g, want exactly 0", vgs, id)
		}
	}
}

func TestDrainCurrentMonotonicInVgs(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	prev := -1.0
	for vgs := 0.6; vgs <= 1.81; vgs += 0.2 {
		id, err := m.Compute(vgs, 0.05, 0, 300.15)
		if err != nil {
			t.Fatal(err)
		}
		if id <= prev {
			t.Errorf("Id not increasing at vgs=%g: %g <= %g", vgs, id, prev)
		}
		prev = id
	}
}

func TestLinearRegionScenario(t *testing.T) {
	m, err := NewFromPreset("bsim3-180nm")
	if err != nil {
		t.Fatal(err)
	}
	op, err := m.ComputeOp(BiasPoint{Vgs: 1.2, Vds: 0.1, Vbs: 0, Temp: 300.15})
	if err != nil {
		t.Fatal(err)
	}
	if op.Region != Linear {
		t.Fatalf("region = %v, want linear", op.Region)
	}
	// Order-of-magnitude window for a 1 µm / 180 nm device at this bias.
	if op.Id < 1e-5 || op.Id > 1e-3 {
		t.Errorf("Id = %g A outside the expected window", op.Id)
	}
	if op.Vdsat <= op.Vdseff {
		t.Errorf("Vdseff %g must stay under Vdsat %g", op.Vdseff, op.Vdsat)
	}
	if op.Vgsteff <= 0 || op.Vgsteff >= 1.2 {
		t.Errorf("Vgsteff = %g outside (0, Vgs)", op.Vgsteff)
	}
}

func TestSubthresholdCurrentVanishes(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	idAt := func(vgs float64) float64 {
		id, err := m.Compute(vgs, 0.1, 0, 300.15)
		if err != nil {
			t.Fatal(err)
		}
		return id
	}

	id0 := idAt(0)
	idDeep := idAt(-1)
	if id0 < 0 || id0 > 1e-12 {
		t.Errorf("Id(vgs=0) = %g, want a vanishing leakage level", id0)
	}
	if idDeep < 0 || idDeep >= id0 {
		t.Errorf("Id must keep falling below threshold: Id(-1)=%g, Id(0)=%g", idDeep, id0)
	}
}

func TestContinuityAcrossVdsat(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	bp := BiasPoint{Vgs: 1.2, Vbs: 0, Temp: 300.15}

	// Vdsat itself moves with the applied Vds through DIBL, so locate the
	// region boundary as the fixed point Vds = Vdsat(Vds).
	v := 1.0
	for i := 0; i < 30; i++ {
		bp.Vds = v
		op, err := m.ComputeOp(bp)
		if err != nil {
			t.Fatal(err)
		}
		v = op.Vdsat
	}

	bp.Vds = v * (1 - 1e-8)
	below, err := m.ComputeOp(bp)
	if err != nil {
		t.Fatal(err)
	}
	bp.Vds = v * (1 + 1e-8)
	above, err := m.ComputeOp(bp)
	if err != nil {
		t.Fatal(err)
	}

	if below.Region != Linear || above.Region != Saturation {
		t.Fatalf("regions across the boundary = %v/%v, want linear/saturation",
			below.Region, above.Region)
	}
	rel := math.Abs(above.Id-below.Id) / math.Abs(below.Id)
	if rel > 1e-6 {
		t.Errorf("current step across Vdsat: relative difference %g", rel)
	}
}

func TestSaturationCurrentGrowsWithVds(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	op, err := m.ComputeOp(BiasPoint{Vgs: 1.2, Vds: 1.8, Vbs: 0, Temp: 300.15})
	if err != nil {
		t.Fatal(err)
	}
	if op.Region != Saturation {
		t.Fatalf("region = %v, want saturation", op.Region)
	}

	prev := 0.0
	for _, vds := range []float64{0.8, 1.2, 1.8} {
		id, err := m.Compute(1.2, vds, 0, 300.15)
		if err != nil {
			t.Fatal(err)
		}
		if id <= prev {
			t.Errorf("saturation current not increasing at vds=%g: %g <= %g", vds, id, prev)
		}
		prev = id
	}
}

func TestHotterDieDrawsLessOnCurrent(t *testing.T) {
	// Above threshold the mobility loss dominates the Vth drop, so the strong
	// inversion current falls as temperature rises.
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	idCold, err := m.Compute(1.5, 0.1, 0, 300.15)
	if err != nil {
		t.Fatal(err)
	}
	idHot, err := m.Compute(1.5, 0.1, 0, 400)
	if err != nil {
		t.Fatal(err)
	}
	if idHot >= idCold {
		t.Errorf("strong inversion current must fall with temperature: %g >= %g", idHot, idCold)
	}
}
