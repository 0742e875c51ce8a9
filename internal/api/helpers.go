package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/Gueni/bsim-go/pkg/device"
)

type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param,omitempty"`
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg, "")
}

func writeError(c *echo.Context, status int, errType, msg, param string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
			Param:   param,
		},
	})
}

// writeModelError maps the evaluator error taxonomy onto HTTP statuses: bad
// parameter sets are the caller's fault, evaluation failures are unprocessable
// bias points.
func writeModelError(c *echo.Context, err error) error {
	var cfgErr *device.ConfigurationError
	if errors.As(err, &cfgErr) {
		return writeError(c, http.StatusBadRequest, "configuration_error", err.Error(), cfgErr.Param)
	}
	var domErr *device.DomainError
	if errors.As(err, &domErr) {
		return writeError(c, http.StatusUnprocessableEntity, "domain_error", err.Error(), domErr.Quantity)
	}
	var numErr *device.NumericalError
	if errors.As(err, &numErr) {
		return writeError(c, http.StatusUnprocessableEntity, "numerical_error", err.Error(), numErr.Stage)
	}
	return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "")
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var v T
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("decode request: %w", err)
	}
	return v, nil
}
