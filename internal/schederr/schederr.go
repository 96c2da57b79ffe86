// Package schederr defines the three fatal error kinds spec.md §7
// distinguishes, translating the teacher's original assert/raise
// boundary-panic style into idiomatic Go errors the inference engine and
// ingestion layer return instead of panicking, so pipeline failures are
// testable and cmd/schedgen's main is the single place that turns one
// into a process exit.
package schederr

import "fmt"

// ConfigError reports an unknown target CPU, unknown SchedWrite type, or
// malformed port name — a problem in how the run was configured rather
// than in the data it's processing.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return "config error: " + e.Message }

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// InvariantViolation reports a pipeline invariant that should always
// hold failing to: pass 2 finding no non-negative candidate, pass 3
// finding a negative residual num_uops, pass 4's recomputation mismatch,
// or a seeded write naming a port outside the CPU's topology.
type InvariantViolation struct {
	Opcode  string
	Message string
}

func (e *InvariantViolation) Error() string {
	if e.Opcode == "" {
		return "invariant violation: " + e.Message
	}
	return fmt.Sprintf("invariant violation: %s: %s", e.Opcode, e.Message)
}

// NewInvariantViolation builds an InvariantViolation naming the
// offending opcode (or write), with a formatted message.
func NewInvariantViolation(opcode, format string, args ...any) *InvariantViolation {
	return &InvariantViolation{Opcode: opcode, Message: fmt.Sprintf(format, args...)}
}

// DataError reports a problem in the input data itself: a port outside
// the CPU's topology, or an instruction whose two incomplete non-aux
// writes leave inference underdetermined.
type DataError struct {
	Opcode  string
	Message string
}

func (e *DataError) Error() string {
	if e.Opcode == "" {
		return "data error: " + e.Message
	}
	return fmt.Sprintf("data error: %s: %s", e.Opcode, e.Message)
}

// NewDataError builds a DataError naming the offending opcode, with a
// formatted message.
func NewDataError(opcode, format string, args ...any) *DataError {
	return &DataError{Opcode: opcode, Message: fmt.Sprintf(format, args...)}
}
