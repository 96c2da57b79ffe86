package instr

import "github.com/sarchlab/schedgen/internal/resource"

// Measured is one externally-measured instruction record from the
// Verification JSON (spec.md §6), which cmd/schedgen cross-checks against
// each instruction's final computed latency, numUops, and resources. The
// inference engine's own validation pass does not use it. Grounded on
// lib/llvm_instr.py's
// SMVInstr.
type Measured struct {
	Opcode         string
	Latency        int
	NumUops        int
	Throughput     *float64
	Resources      []resource.PortSet
	ResourceCycles []int
}
