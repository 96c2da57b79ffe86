package ingest

import (
	"fmt"
	"os"

	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/sched"
	"github.com/sarchlab/schedgen/internal/target"
)

// InstructionSource abstracts where the Input JSON and optional
// Verification JSON bytes come from, so Load can be driven by a
// golang/mock-generated fake in this package's tests instead of real
// files on disk (DESIGN.md, teacher's own go:generate mockgen idiom in
// core_suite_test.go). cmd/schedgen always reads through a FileSource.
//
//go:generate mockgen -write_package_comment=false -package=ingest_test -destination=mock_source_test.go github.com/sarchlab/schedgen/internal/ingest InstructionSource
type InstructionSource interface {
	// ReadInput returns the raw Input JSON bytes.
	ReadInput() ([]byte, error)
	// ReadVerification returns the raw Verification JSON bytes, or
	// (nil, nil) if no verification data was configured for this run.
	ReadVerification() ([]byte, error)
}

// FileSource reads the Input and Verification JSON from paths on disk.
// VerificationPath may be empty, meaning no verification data is
// available.
type FileSource struct {
	InputPath        string
	VerificationPath string
}

// ReadInput reads InputPath.
func (s FileSource) ReadInput() ([]byte, error) {
	data, err := os.ReadFile(s.InputPath)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading input json: %w", err)
	}
	return data, nil
}

// ReadVerification reads VerificationPath, or returns (nil, nil) if it is
// unset.
func (s FileSource) ReadVerification() ([]byte, error) {
	if s.VerificationPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(s.VerificationPath)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading verification json: %w", err)
	}
	return data, nil
}

// Load reads and decodes both the Input JSON and (if present)
// Verification JSON from src, returning the registered instructions and
// any measured verification records.
func Load(src InstructionSource, profile *target.Profile, reg *sched.Registry) ([]*instr.Instruction, []*instr.Measured, error) {
	inputRaw, err := src.ReadInput()
	if err != nil {
		return nil, nil, err
	}
	instrs, err := ParseInstructions(inputRaw, profile, reg)
	if err != nil {
		return nil, nil, err
	}

	verifyRaw, err := src.ReadVerification()
	if err != nil {
		return nil, nil, err
	}
	if verifyRaw == nil {
		return instrs, nil, nil
	}
	measured, err := ParseMeasured(verifyRaw, profile)
	if err != nil {
		return nil, nil, err
	}
	return instrs, measured, nil
}
