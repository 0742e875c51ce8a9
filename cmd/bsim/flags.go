package main

import "github.com/urfave/cli/v3"

var (
	modelName  string
	presetName string
	cardPath   string
)

func commonModelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "model",
			Usage:       "device model (bsim, shichman-hodges)",
			Value:       "bsim",
			Destination: &modelName,
		},
		&cli.StringFlag{
			Name:        "preset",
			Aliases:     []string{"p"},
			Usage:       "parameter preset name",
			Destination: &presetName,
		},
		&cli.StringFlag{
			Name:        "card",
			Aliases:     []string{"f"},
			Usage:       "YAML model card applied over the preset",
			Destination: &cardPath,
		},
	}
}
