package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Gueni/bsim-go/pkg/sweep"
)

func TestLoadModelCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	data := `
preset: bsim4-45nm
params:
  vth0: 0.42
  rdsw: 120
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	card, err := loadModelCard(path)
	if err != nil {
		t.Fatal(err)
	}
	if card.Preset != "bsim4-45nm" {
		t.Errorf("preset = %q, want bsim4-45nm", card.Preset)
	}
	if card.Params["vth0"] != 0.42 || card.Params["rdsw"] != 120 {
		t.Errorf("params not parsed: %v", card.Params)
	}

	if _, err := loadModelCard(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing card file")
	}
}

func TestParseAxis(t *testing.T) {
	a, err := parseAxis("0:1.8:37")
	if err != nil {
		t.Fatal(err)
	}
	if a != (sweep.Axis{Start: 0, Stop: 1.8, Points: 37}) {
		t.Errorf("parsed axis = %+v", a)
	}

	a, err = parseAxis("300.15")
	if err != nil {
		t.Fatal(err)
	}
	if a.Points != 1 || a.Start != 300.15 {
		t.Errorf("collapsed axis = %+v", a)
	}

	for _, bad := range []string{"", "1:2", "a:b:c", "0:1:0"} {
		if _, err := parseAxis(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
