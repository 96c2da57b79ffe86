package instr

import (
	"fmt"

	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/sched"
)

// ISAValidator reports whether an ISA tag is implemented by a target CPU.
// target.Profile satisfies this structurally; instr never imports target,
// keeping the dependency direction leaf-ward (spec.md §2 dependency
// order: Instruction Model depends only on the Resource Algebra and the
// SchedWrite Registry).
type ISAValidator interface {
	IsValidISA(isaSet string) bool
}

// Instruction is one LLVM-style instruction definition: its opcode, its
// symbolic read/write bindings, and (once ingested) its measured uop
// data. Grounded on lib/llvm_instr.py's LLVMInstr.
type Instruction struct {
	Opcode      string
	SchedReads  []*sched.Read
	SchedWrites []*sched.Write
	ISASet      string

	useInstrw bool
	uopsInfo  *UopsInfo
}

// New builds an Instruction with no measured uop data yet.
func New(opcode string, schedReads []*sched.Read, schedWrites []*sched.Write, isaSet string) *Instruction {
	return &Instruction{
		Opcode:      opcode,
		SchedReads:  append([]*sched.Read{}, schedReads...),
		SchedWrites: append([]*sched.Write{}, schedWrites...),
		ISASet:      isaSet,
	}
}

// SetUopsInfo attaches measured micro-op data to the instruction.
func (in *Instruction) SetUopsInfo(info *UopsInfo) { in.uopsInfo = info }

// UopsInfo returns the instruction's measured data, or nil if none was
// ingested.
func (in *Instruction) UopsInfo() *UopsInfo { return in.uopsInfo }

// HasUopsInfo reports whether measured data is attached.
func (in *Instruction) HasUopsInfo() bool { return in.uopsInfo != nil }

// SetUseInstrw marks whether this instruction should be bound to its
// schedwrites via an explicit InstRW entry rather than an inline
// Sched<...> list (spec.md §4.H).
func (in *Instruction) SetUseInstrw(v bool) { in.useInstrw = v }

// UseInstrw reports the InstRW binding preference set by SetUseInstrw.
func (in *Instruction) UseInstrw() bool { return in.useInstrw }

// IsInvalid reports whether this instruction's ISA tag is not implemented
// by the target CPU. An instruction with no ISA tag is never invalid.
func (in *Instruction) IsInvalid(v ISAValidator) bool {
	return in.ISASet != "" && !v.IsValidISA(in.ISASet)
}

// ReplaceOrAddWrite replaces old with replacement in SchedWrites, or
// appends replacement if old is nil. Panics if old is non-nil and not
// found, matching the original's unchecked list.index lookup.
func (in *Instruction) ReplaceOrAddWrite(old, replacement *sched.Write) {
	if old == nil {
		in.SchedWrites = append(in.SchedWrites, replacement)
		return
	}
	for i, w := range in.SchedWrites {
		if w == old {
			in.SchedWrites[i] = replacement
			return
		}
	}
	panic(fmt.Sprintf("instr: %s: write %s not found for replacement", in.Opcode, old.Name()))
}

// ReplaceOrAddRead replaces old with replacement in SchedReads, or
// appends replacement if old is nil.
func (in *Instruction) ReplaceOrAddRead(old, replacement *sched.Read) {
	if old == nil {
		in.SchedReads = append(in.SchedReads, replacement)
		return
	}
	for i, r := range in.SchedReads {
		if r == old {
			in.SchedReads[i] = replacement
			return
		}
	}
	panic(fmt.Sprintf("instr: %s: read %s not found for replacement", in.Opcode, old.Name()))
}

// ComputeLatency returns the instruction's latency: the maximum latency
// among its schedwrites.
func (in *Instruction) ComputeLatency() int {
	max := 0
	for i, w := range in.SchedWrites {
		if i == 0 || w.Latency() > max {
			max = w.Latency()
		}
	}
	return max
}

// ComputeNumUops returns the instruction's total micro-op count: the sum
// across its schedwrites.
func (in *Instruction) ComputeNumUops() int {
	total := 0
	for _, w := range in.SchedWrites {
		total += w.NumUops()
	}
	return total
}

// ComputeResources returns the instruction's execution resources: the
// concatenation across its schedwrites, in schedwrite order.
func (in *Instruction) ComputeResources() []resource.PortSet {
	var out []resource.PortSet
	for _, w := range in.SchedWrites {
		out = append(out, w.Resources()...)
	}
	return out
}
