package infer

import (
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/sched"
)

// cleanWrongWrites is pass 1: strip hand-seeded aux SchedWrites, and
// write-sequences, whose claimed contribution can't fit inside what was
// actually measured for an instruction. Grounded on
// schedgen.py's LLVMSchedGen.clean_wrong_schedwrite.
func (p *Pipeline) cleanWrongWrites() {
	for _, in := range p.Instrs {
		if !in.HasUopsInfo() {
			continue
		}
		info := in.UopsInfo()
		instrLatency := info.Latency
		instrNumUops := info.NumUops
		instrPorts := info.Ports()

		var wrongAux, wrongSeq []*sched.Write
		for _, w := range in.SchedWrites {
			switch {
			case w.IsAux():
				if w.Latency() > instrLatency ||
					w.NumUops() > instrNumUops ||
					!resource.Contains(instrPorts, w.Resources(), resource.PortSetEq) {
					wrongAux = append(wrongAux, w)
				}
			case w.Kind() == sched.KindSequence:
				extLatency, extNumUops := 0, 0
				var extPorts []resource.PortSet
				for _, leaf := range w.Expand() {
					if !leaf.IsComplete() {
						continue
					}
					extLatency += leaf.Latency()
					extNumUops += leaf.NumUops()
					extPorts = append(extPorts, leaf.Resources()...)
				}
				if extLatency > instrLatency ||
					extNumUops > instrNumUops ||
					!resource.Contains(instrPorts, extPorts, resource.PortSetEq) {
					wrongSeq = append(wrongSeq, w)
				}
			}
		}

		if len(wrongAux) > 0 {
			in.SetUseInstrw(true)
			for _, w := range wrongAux {
				in.SchedWrites = removeWriteByIdentity(in.SchedWrites, w)
			}
			p.log.Debug("dropped wrong aux schedwrites", "opcode", in.Opcode, "count", len(wrongAux))
		}
		if len(wrongSeq) > 0 {
			in.SetUseInstrw(true)
			writeZero := p.Registry.Write("WriteZero")
			for _, w := range wrongSeq {
				in.ReplaceOrAddWrite(w, writeZero)
			}
			p.log.Debug("replaced wrong write-sequence with WriteZero", "opcode", in.Opcode, "count", len(wrongSeq))
		}
	}
}

// removeWriteByIdentity removes the first pointer-identical occurrence of
// w from writes, matching Python list.remove's single-element semantics.
func removeWriteByIdentity(writes []*sched.Write, w *sched.Write) []*sched.Write {
	for i, x := range writes {
		if x == w {
			return append(writes[:i], writes[i+1:]...)
		}
	}
	return writes
}
