package infer

import (
	"fmt"

	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/schederr"
	"github.com/sarchlab/schedgen/internal/sched"
)

// inferSchedWriteRes is pass 3: for every measured instruction whose
// non-aux schedwrite doesn't exactly already account for the
// measurement, synthesize (or reuse, via interning) a SchedWriteRes
// override and bind it in place of the class. Grounded on
// schedgen.py's LLVMSchedGen.infer_schedwriteres.
func (p *Pipeline) inferSchedWriteRes() error {
	for _, in := range p.Instrs {
		if !in.HasUopsInfo() {
			continue
		}
		info := in.UopsInfo()
		drLatency := info.Latency
		drNumUops := info.NumUops
		drPorts := info.Ports()

		var old *sched.Write
		for _, w := range in.SchedWrites {
			if w.IsAux() {
				if drLatency < w.Latency() {
					return fmt.Errorf("infer: %s: aux write %s latency %d exceeds measured latency %d", in.Opcode, w.Name(), w.Latency(), drLatency)
				}
				drNumUops -= w.NumUops()
				drPorts = resource.Remove(drPorts, w.Resources(), resource.PortSetEq)
			} else {
				if old != nil {
					return fmt.Errorf("infer: %s: more than one non-aux schedwrite", in.Opcode)
				}
				old = w
			}
		}

		if old != nil &&
			old.Latency() == drLatency &&
			old.NumUops() == drNumUops &&
			resource.CountEq(old.Resources(), drPorts, resource.PortSetEq) {
			continue
		}

		if drNumUops < 0 {
			return schederr.NewInvariantViolation(in.Opcode, "negative residual numUops after aux subtraction")
		}
		drPorts = sortPortSets(drPorts)
		cycles := make([]int, len(drPorts))
		for i := range cycles {
			cycles[i] = 1
		}

		res := p.Registry.InternSchedWriteRes(p.Profile.ShortName(), drPorts, cycles, drLatency, drNumUops)
		in.ReplaceOrAddWrite(old, res)
		in.SetUseInstrw(true)
		p.log.Debug("synthesized SchedWriteRes override", "opcode", in.Opcode, "write", res.Name())
	}
	return nil
}
