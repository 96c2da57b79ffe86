// Package infer implements the five-pass inference engine that
// reconciles symbolic SchedWrite classes against measured per-instruction
// micro-op data: stripping wrong hand-seeded contributions, inferring
// per-class resources by majority vote across instructions that share a
// class, synthesizing per-instruction overrides when a class alone can't
// explain a measurement, validating the result, and tagging which
// classes are actually exercised on the target ISA.
//
// Grounded on schedgen/schedgen.py's LLVMSchedGen.
package infer

import (
	"log/slog"

	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/sched"
	"github.com/sarchlab/schedgen/internal/target"
)

// Pipeline owns one inference run over one target CPU's instruction set.
// Like sched.Registry, it is created fresh per run so concurrent per-CPU
// runs never share mutable state (spec.md §5).
type Pipeline struct {
	Registry *sched.Registry
	Profile  *target.Profile
	Instrs   []*instr.Instruction

	log *slog.Logger
}

// New builds a Pipeline. If logger is nil, a discard logger is used.
func New(reg *sched.Registry, profile *target.Profile, instrs []*instr.Instruction, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(discardWriter{}, nil))
	}
	return &Pipeline{Registry: reg, Profile: profile, Instrs: instrs, log: logger}
}

// Run executes the five passes in order, exactly as LLVMSchedGen.__init__
// does: clean wrong writes, infer per-class resources, synthesize
// per-instruction overrides, validate, and tag supportedness.
func (p *Pipeline) Run() error {
	p.cleanWrongWrites()
	if err := p.inferWriteResources(); err != nil {
		return err
	}
	if err := p.inferSchedWriteRes(); err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}
	p.tagSupportedness()
	return nil
}

type discardWriter struct{}

func (discardWriter) Write(b []byte) (int, error) { return len(b), nil }
