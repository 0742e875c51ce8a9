package device

import "fmt"

// Evaluator computes a DC drain current from a bias point. Implementations
// must be safe for concurrent use once configured.
type Evaluator interface {
	Name() string
	Compute(vgs, vds, vbs, temp float64) (float64, error)
}

// BiasPoint is a single operating condition. Temp is absolute (K) and Vds is
// taken drain-positive.
type BiasPoint struct {
	Vgs  float64 `json:"vgs"`
	Vds  float64 `json:"vds"`
	Vbs  float64 `json:"vbs"`
	Temp float64 `json:"temp"`
}

// Region is the conduction region selected for a bias point.
type Region int

const (
	Subthreshold Region = iota
	Linear
	Saturation
)

func (r Region) String() string {
	switch r {
	case Subthreshold:
		return "subthreshold"
	case Linear:
		return "linear"
	case Saturation:
		return "saturation"
	}
	return "unknown"
}

// MarshalJSON encodes the region by name rather than ordinal.
func (r Region) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Region) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"subthreshold"`:
		*r = Subthreshold
	case `"linear"`:
		*r = Linear
	case `"saturation"`:
		*r = Saturation
	default:
		return fmt.Errorf("unknown region %s", data)
	}
	return nil
}

// OpPoint carries the drain current of a bias point together with the
// intermediate quantities that produced it.
type OpPoint struct {
	Region  Region  `json:"region"`
	Vth     float64 `json:"vth"`     // Threshold voltage (V)
	Vbseff  float64 `json:"vbseff"`  // Smoothed body bias (V)
	Xdep    float64 `json:"xdep"`    // Depletion width (m)
	N       float64 `json:"n"`       // Subthreshold swing factor
	Vgsteff float64 `json:"vgsteff"` // Effective gate overdrive (V)
	MobEff  float64 `json:"mobeff"`  // Effective mobility (m²/V·s)
	Abulk   float64 `json:"abulk"`   // Bulk charge factor
	Rds     float64 `json:"rds"`     // Source/drain series resistance (Ω)
	Esat    float64 `json:"esat"`    // Velocity saturation field (V/m)
	Vdsat   float64 `json:"vdsat"`   // Saturation drain voltage (V)
	Vdseff  float64 `json:"vdseff"`  // Smoothed drain voltage (V)
	Id      float64 `json:"id"`      // Drain current (A)
}
