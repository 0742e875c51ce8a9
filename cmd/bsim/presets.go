package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Gueni/bsim-go/pkg/device"
)

func presetsCmd() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List the built-in parameter presets",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range device.Presets() {
				p, err := device.PresetParams(name)
				if err != nil {
					return err
				}
				fmt.Printf("%-16s L=%g m  W=%g m  Vth0=%g V  Tox=%g m\n",
					name, p.Ldrawn, p.Wdrawn, p.Vth0, p.Tox)
			}
			return nil
		},
	}
}
