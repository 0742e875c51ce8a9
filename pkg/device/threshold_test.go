package device

import (
	"math"
	"testing"
)

func TestVbseffSmoothing(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	phiS := m.surfacePotential(300.15)
	vbc := m.vbc(phiS)

	biases := []float64{-40, -5, -2, -1, -0.5, 0, 0.5, 2, 10}
	prev := math.Inf(-1)
	for _, vbs := range biases {
		v := m.vbseff(vbs, phiS)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("vbseff(%g) is not finite: %g", vbs, v)
		}
		if v <= vbc {
			t.Errorf("vbseff(%g) = %g fell below the floor %g", vbs, v, vbc)
		}
		if v >= phiS {
			t.Errorf("vbseff(%g) = %g reached the surface potential %g", vbs, v, phiS)
		}
		if v <= prev {
			t.Errorf("vbseff not increasing at vbs=%g: %g <= %g", vbs, v, prev)
		}
		prev = v
	}

	// At moderate reverse bias the smoothing is nearly the identity.
	if v := m.vbseff(-1, phiS); math.Abs(v-(-1)) > 1e-3 {
		t.Errorf("vbseff(-1) = %g, want about -1", v)
	}
}

func TestVthBodyEffect(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	// Reverse body bias widens the depletion region and raises Vth.
	op0, err := m.ComputeOp(BiasPoint{Vgs: 1, Vds: 0.05, Vbs: 0, Temp: 300.15})
	if err != nil {
		t.Fatal(err)
	}
	opRev, err := m.ComputeOp(BiasPoint{Vgs: 1, Vds: 0.05, Vbs: -1, Temp: 300.15})
	if err != nil {
		t.Fatal(err)
	}
	if opRev.Vth <= op0.Vth {
		t.Errorf("reverse body bias must raise Vth: %g <= %g", opRev.Vth, op0.Vth)
	}
}

func TestVthDIBL(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	opLow, err := m.ComputeOp(BiasPoint{Vgs: 1, Vds: 0.05, Vbs: 0, Temp: 300.15})
	if err != nil {
		t.Fatal(err)
	}
	opHigh, err := m.ComputeOp(BiasPoint{Vgs: 1, Vds: 1.5, Vbs: 0, Temp: 300.15})
	if err != nil {
		t.Fatal(err)
	}
	if opHigh.Vth >= opLow.Vth {
		t.Errorf("drain bias must lower Vth through DIBL: %g >= %g", opHigh.Vth, opLow.Vth)
	}
}

func TestVthTemperatureDirection(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	vthAt := func(temp float64) float64 {
		op, err := m.ComputeOp(BiasPoint{Vgs: 1, Vds: 0.05, Vbs: 0, Temp: temp})
		if err != nil {
			t.Fatal(err)
		}
		return op.Vth
	}

	// Default card carries a negative Kt1, so Vth drops as the die heats.
	if d := vthAt(350) - vthAt(300.15); d >= 0 {
		t.Errorf("Vth shift with Kt1 < 0 must be negative, got %g", d)
	}

	// A dominant positive Kt1 reverses the direction.
	if err := m.Set(map[string]float64{"kt1": 0.5}); err != nil {
		t.Fatal(err)
	}
	if d := vthAt(350) - vthAt(300.15); d <= 0 {
		t.Errorf("Vth shift with Kt1 = 0.5 must be positive, got %g", d)
	}
}
