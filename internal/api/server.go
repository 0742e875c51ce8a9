// Package api exposes the evaluator over HTTP for parameter-extraction
// tooling that prefers a service to a linked library.
package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/Gueni/bsim-go/pkg/device"
	"github.com/Gueni/bsim-go/pkg/sweep"
)

// ModelSpec selects and configures an evaluator. An empty spec means the BSIM
// model with the default preset.
type ModelSpec struct {
	Model  string             `json:"model,omitempty"`
	Preset string             `json:"preset,omitempty"`
	Params map[string]float64 `json:"params,omitempty"`
}

type EvaluateRequest struct {
	ModelSpec
	Bias device.BiasPoint `json:"bias"`
}

type EvaluateResponse struct {
	Model string          `json:"model"`
	Id    float64         `json:"id"`
	Op    *device.OpPoint `json:"op,omitempty"`
}

type SweepRequest struct {
	ModelSpec
	Grid sweep.Grid `json:"grid"`
}

type Server struct {
	log *slog.Logger
}

func NewServer(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/evaluate", s.handleEvaluate)
	e.POST("/v1/sweep", s.handleSweep)
	e.GET("/v1/presets", s.handlePresets)
}

func (s *Server) handleEvaluate(c *echo.Context) error {
	req, err := decodeJSON[EvaluateRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	ev, err := BuildEvaluator(req.ModelSpec)
	if err != nil {
		return writeModelError(c, err)
	}

	resp := EvaluateResponse{Model: ev.Name()}
	if m, ok := ev.(*device.BSIM); ok {
		op, err := m.ComputeOp(req.Bias)
		if err != nil {
			return writeModelError(c, err)
		}
		resp.Id = op.Id
		resp.Op = &op
	} else {
		id, err := ev.Compute(req.Bias.Vgs, req.Bias.Vds, req.Bias.Vbs, req.Bias.Temp)
		if err != nil {
			return writeModelError(c, err)
		}
		resp.Id = id
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSweep(c *echo.Context) error {
	req, err := decodeJSON[SweepRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	ev, err := BuildEvaluator(req.ModelSpec)
	if err != nil {
		return writeModelError(c, err)
	}

	res := sweep.Run(ev, req.Grid)
	s.log.Info("sweep completed",
		"run_id", res.RunID,
		"model", res.Model,
		"points", res.Points,
		"failed", res.Failed,
	)

	if c.QueryParam("format") == "csv" {
		c.Response().Header().Set(echo.HeaderContentType, "text/csv")
		c.Response().WriteHeader(http.StatusOK)
		return sweep.WriteCSV(c.Response(), res)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handlePresets(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"presets": device.Presets()})
}

// BuildEvaluator resolves a model spec into a configured evaluator.
func BuildEvaluator(spec ModelSpec) (device.Evaluator, error) {
	switch spec.Model {
	case "", "bsim":
		preset := spec.Preset
		if preset == "" {
			preset = "bsim3-180nm"
		}
		m, err := device.NewFromPreset(preset)
		if err != nil {
			return nil, err
		}
		if len(spec.Params) > 0 {
			if err := m.Set(spec.Params); err != nil {
				return nil, err
			}
		}
		return m, nil
	case "shichman-hodges":
		m := device.NewShichmanHodges()
		if len(spec.Params) > 0 {
			if err := m.Set(spec.Params); err != nil {
				return nil, err
			}
		}
		return m, nil
	}
	return nil, &device.ConfigurationError{Param: "model", Detail: "unknown model " + spec.Model}
}
