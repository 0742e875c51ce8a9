package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Gueni/bsim-go/pkg/device"
	"github.com/Gueni/bsim-go/pkg/util"
)

func evalCmd() *cli.Command {
	var (
		vgs, vds, vbs, temp float64
		showOp              bool
	)

	return &cli.Command{
		Name:  "eval",
		Usage: "Evaluate the drain current at a single bias point",
		Flags: append(commonModelFlags(),
			&cli.FloatFlag{Name: "vgs", Usage: "gate-source voltage (V)", Destination: &vgs},
			&cli.FloatFlag{Name: "vds", Usage: "drain-source voltage (V)", Destination: &vds},
			&cli.FloatFlag{Name: "vbs", Usage: "bulk-source voltage (V)", Destination: &vbs},
			&cli.FloatFlag{Name: "temp", Usage: "temperature (K)", Value: 300.15, Destination: &temp},
			&cli.BoolFlag{Name: "op", Usage: "print the full operating point", Destination: &showOp},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ev, err := buildFromFlags()
			if err != nil {
				return err
			}

			if m, ok := ev.(*device.BSIM); ok && showOp {
				op, err := m.ComputeOp(device.BiasPoint{Vgs: vgs, Vds: vds, Vbs: vbs, Temp: temp})
				if err != nil {
					return err
				}
				fmt.Printf("Region  : %s\n", op.Region)
				fmt.Printf("Vth     : %s\n", util.FormatValueFactor(op.Vth, "V"))
				fmt.Printf("Vbseff  : %s\n", util.FormatValueFactor(op.Vbseff, "V"))
				fmt.Printf("Vgsteff : %s\n", util.FormatValueFactor(op.Vgsteff, "V"))
				fmt.Printf("Vdsat   : %s\n", util.FormatValueFactor(op.Vdsat, "V"))
				fmt.Printf("Vdseff  : %s\n", util.FormatValueFactor(op.Vdseff, "V"))
				fmt.Printf("Abulk   : %s\n", util.FormatMagnitude(op.Abulk))
				fmt.Printf("Rds     : %s\n", util.FormatValueFactor(op.Rds, "Ohm"))
				fmt.Printf("Id      : %s\n", util.FormatValueFactor(op.Id, "A"))
				return nil
			}

			id, err := ev.Compute(vgs, vds, vbs, temp)
			if err != nil {
				return err
			}
			fmt.Printf("Id = %s\n", util.FormatValueFactor(id, "A"))
			return nil
		},
	}
}
