package device

import "fmt"

// DomainError reports a non-physical evaluation input, such as an absolute
// temperature at or below zero.
type DomainError struct {
	Quantity string
	Value    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s = %g is non-physical", e.Quantity, e.Value)
}

// NumericalError reports a breakdown inside the evaluation itself, such as a
// negative discriminant in the saturation-voltage quadratic. The inputs were
// acceptable but the model could not produce a finite result from them.
type NumericalError struct {
	Stage  string
	Detail string
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("numerical error in %s: %s", e.Stage, e.Detail)
}

// ConfigurationError reports a model parameter set that cannot be evaluated,
// such as a missing oxide thickness or a non-positive channel length.
type ConfigurationError struct {
	Param  string
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Param, e.Detail)
}
