package infer

import (
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/schederr"
)

// validate is pass 4: every measured instruction's own computed
// latency/numUops/resources must now exactly match what was measured.
// Grounded on schedgen.py's LLVMSchedGen.validate_infered_resource.
func (p *Pipeline) validate() error {
	for _, in := range p.Instrs {
		if !in.HasUopsInfo() {
			continue
		}
		info := in.UopsInfo()

		if info.Latency != in.ComputeLatency() {
			return schederr.NewInvariantViolation(in.Opcode, "computed latency %d does not match measured latency %d", in.ComputeLatency(), info.Latency)
		}
		if info.NumUops != in.ComputeNumUops() {
			return schederr.NewInvariantViolation(in.Opcode, "computed numUops %d does not match measured numUops %d", in.ComputeNumUops(), info.NumUops)
		}
		if !resource.CountEq(info.Ports(), in.ComputeResources(), resource.PortSetEq) {
			return schederr.NewInvariantViolation(in.Opcode, "computed resources do not match measured ports")
		}
	}
	return nil
}
