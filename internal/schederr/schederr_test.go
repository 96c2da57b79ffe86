package schederr_test

import (
	"errors"
	"testing"

	"github.com/sarchlab/schedgen/internal/schederr"
)

func TestConfigError(t *testing.T) {
	err := schederr.NewConfigError("unknown target cpu %q", "bogus")
	if err.Error() != `config error: unknown target cpu "bogus"` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestInvariantViolationNamesOpcode(t *testing.T) {
	err := schederr.NewInvariantViolation("ADD32rr", "no non-negative candidate")
	if err.Error() != "invariant violation: ADD32rr: no non-negative candidate" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestDataErrorIsAnError(t *testing.T) {
	var err error = schederr.NewDataError("MOVrr", "two incomplete non-aux writes")
	var target *schederr.DataError
	if !errors.As(err, &target) {
		t.Fatalf("errors.As failed to match *DataError")
	}
	if target.Opcode != "MOVrr" {
		t.Errorf("Opcode = %q, want MOVrr", target.Opcode)
	}
}
