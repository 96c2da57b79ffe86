package infer

import (
	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/sched"
)

// tagSupportedness is pass 5: a schedwrite class is supported on this
// target iff no instruction exercising it carries an ISA tag this CPU
// doesn't implement. A class nobody references, or referenced only by
// untagged instructions, is trivially supported. Grounded on
// schedgen.py's LLVMSchedGen.tag_unsupported_schedwrite.
func (p *Pipeline) tagSupportedness() {
	sw2instrs := newWriteInstrIndex()
	for _, in := range p.Instrs {
		for _, w := range in.SchedWrites {
			if w.Kind() == sched.KindSequence {
				for _, leaf := range w.Expand() {
					sw2instrs.add(leaf, in)
				}
			} else {
				sw2instrs.add(w, in)
			}
		}
	}

	for _, w := range sw2instrs.order {
		instrs := sw2instrs.m[w]
		supported := isSupported(instrs, p.Profile)
		w.SetSupported(supported)
	}
}

func isSupported(instrs []*instr.Instruction, validator instr.ISAValidator) bool {
	if len(instrs) == 0 {
		return true
	}
	allUntagged := true
	for _, in := range instrs {
		if in.ISASet != "" {
			allUntagged = false
			break
		}
	}
	if allUntagged {
		return true
	}
	for _, in := range instrs {
		if in.ISASet != "" && !in.IsInvalid(validator) {
			return true
		}
	}
	return false
}
