package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Gueni/bsim-go/internal/api"
	"github.com/Gueni/bsim-go/pkg/device"
)

// ModelCard is the YAML counterpart of a model spec: optional model and
// preset names plus individual parameter overrides.
type ModelCard struct {
	Model  string             `yaml:"model"`
	Preset string             `yaml:"preset"`
	Params map[string]float64 `yaml:"params"`
}

func loadModelCard(path string) (ModelCard, error) {
	var card ModelCard
	data, err := os.ReadFile(path)
	if err != nil {
		return card, fmt.Errorf("read model card: %w", err)
	}
	if err := yaml.Unmarshal(data, &card); err != nil {
		return card, fmt.Errorf("parse model card %s: %w", path, err)
	}
	return card, nil
}

// buildFromFlags resolves the common model flags, with a card file taking
// effect first and command line flags overriding its model and preset.
func buildFromFlags() (device.Evaluator, error) {
	spec := api.ModelSpec{Model: modelName, Preset: presetName}
	if cardPath != "" {
		card, err := loadModelCard(cardPath)
		if err != nil {
			return nil, err
		}
		if modelName == "bsim" && card.Model != "" {
			spec.Model = card.Model
		}
		if spec.Preset == "" {
			spec.Preset = card.Preset
		}
		spec.Params = card.Params
	}
	return api.BuildEvaluator(spec)
}
