package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Gueni/bsim-go/pkg/sweep"
)

// parseAxis reads a "start:stop:points" range, or a single value for a
// collapsed axis.
func parseAxis(s string) (sweep.Axis, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return sweep.Axis{}, fmt.Errorf("axis %q: %w", s, err)
		}
		return sweep.Axis{Start: v, Stop: v, Points: 1}, nil
	case 3:
		start, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return sweep.Axis{}, fmt.Errorf("axis %q: %w", s, err)
		}
		stop, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return sweep.Axis{}, fmt.Errorf("axis %q: %w", s, err)
		}
		points, err := strconv.Atoi(parts[2])
		if err != nil || points < 1 {
			return sweep.Axis{}, fmt.Errorf("axis %q: bad point count", s)
		}
		return sweep.Axis{Start: start, Stop: stop, Points: points}, nil
	}
	return sweep.Axis{}, fmt.Errorf("axis %q: want value or start:stop:points", s)
}

func sweepCmd() *cli.Command {
	var (
		vgsRange, vdsRange, tempRange string
		vbs                           float64
		workers                       int
		outPath, format               string
	)

	return &cli.Command{
		Name:  "sweep",
		Usage: "Sweep the drain current over a bias grid",
		Flags: append(commonModelFlags(),
			&cli.StringFlag{Name: "vgs", Usage: "gate axis, start:stop:points", Value: "0:1.8:37", Destination: &vgsRange},
			&cli.StringFlag{Name: "vds", Usage: "drain axis, start:stop:points", Value: "0.1", Destination: &vdsRange},
			&cli.StringFlag{Name: "temp", Usage: "temperature axis, start:stop:points", Value: "300.15", Destination: &tempRange},
			&cli.FloatFlag{Name: "vbs", Usage: "bulk-source voltage (V)", Destination: &vbs},
			&cli.IntFlag{Name: "workers", Usage: "parallel evaluation goroutines", Destination: &workers},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default stdout)", Destination: &outPath},
			&cli.StringFlag{Name: "format", Usage: "output format (csv, json)", Value: "csv", Destination: &format},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ev, err := buildFromFlags()
			if err != nil {
				return err
			}

			grid := sweep.Grid{Vbs: vbs, Workers: workers}
			if grid.Vgs, err = parseAxis(vgsRange); err != nil {
				return err
			}
			if grid.Vds, err = parseAxis(vdsRange); err != nil {
				return err
			}
			if grid.Temp, err = parseAxis(tempRange); err != nil {
				return err
			}

			res := sweep.Run(ev, grid)

			var w io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				err = sweep.WriteCSV(w, res)
			case "json":
				err = sweep.WriteJSON(w, res)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			if err != nil {
				return err
			}

			if res.Failed > 0 {
				fmt.Fprintf(os.Stderr, "%d of %d points failed\n", res.Failed, res.Points)
			}
			return nil
		},
	}
}
