// Package sweep runs an evaluator over a bias grid and serializes the
// resulting characteristics.
package sweep

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Gueni/bsim-go/pkg/device"
)

// Axis is a closed linear range. Points <= 1 collapses it to Start alone.
type Axis struct {
	Start  float64 `json:"start" yaml:"start"`
	Stop   float64 `json:"stop" yaml:"stop"`
	Points int     `json:"points" yaml:"points"`
}

// Values expands the axis into its sample values.
func (a Axis) Values() []float64 {
	if a.Points <= 1 {
		return []float64{a.Start}
	}
	vals := make([]float64, a.Points)
	step := (a.Stop - a.Start) / float64(a.Points-1)
	for i := range vals {
		vals[i] = a.Start + float64(i)*step
	}
	// Land exactly on the endpoint regardless of step rounding.
	vals[a.Points-1] = a.Stop
	return vals
}

// Grid is the cartesian sweep request: temperature outermost, then gate, then
// drain bias, matching the usual I-V characterization order.
type Grid struct {
	Temp Axis `json:"temp" yaml:"temp"`
	Vgs  Axis `json:"vgs" yaml:"vgs"`
	Vds  Axis `json:"vds" yaml:"vds"`

	Vbs float64 `json:"vbs" yaml:"vbs"`

	// Workers > 1 spreads the evaluation across goroutines. The record order
	// in the result is the grid order either way.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// Record is one evaluated grid point. A failed point carries the error text
// and a zero current; it never aborts the rest of the sweep.
type Record struct {
	Temp float64 `json:"temp"`
	Vgs  float64 `json:"vgs"`
	Vds  float64 `json:"vds"`
	Id   float64 `json:"id"`
	Err  string  `json:"err,omitempty"`
}

// Result is a completed sweep.
type Result struct {
	RunID   string   `json:"run_id"`
	Model   string   `json:"model"`
	Vbs     float64  `json:"vbs"`
	Points  int      `json:"points"`
	Failed  int      `json:"failed"`
	Records []Record `json:"records"`
}

// Run evaluates every grid point. Failures are isolated per point so a single
// bad bias cannot void an otherwise useful characterization.
func Run(ev device.Evaluator, g Grid) Result {
	temps := g.Temp.Values()
	vgss := g.Vgs.Values()
	vdss := g.Vds.Values()

	records := make([]Record, 0, len(temps)*len(vgss)*len(vdss))
	for _, temp := range temps {
		for _, vgs := range vgss {
			for _, vds := range vdss {
				records = append(records, Record{Temp: temp, Vgs: vgs, Vds: vds})
			}
		}
	}

	eval := func(r *Record) {
		id, err := ev.Compute(r.Vgs, r.Vds, g.Vbs, r.Temp)
		if err != nil {
			r.Err = err.Error()
			return
		}
		r.Id = id
	}

	if g.Workers > 1 {
		var wg sync.WaitGroup
		idx := make(chan int)
		for w := 0; w < g.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range idx {
					eval(&records[i])
				}
			}()
		}
		for i := range records {
			idx <- i
		}
		close(idx)
		wg.Wait()
	} else {
		for i := range records {
			eval(&records[i])
		}
	}

	res := Result{
		RunID:   uuid.NewString(),
		Model:   ev.Name(),
		Vbs:     g.Vbs,
		Points:  len(records),
		Records: records,
	}
	for i := range records {
		if records[i].Err != "" {
			res.Failed++
		}
	}
	return res
}
