package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/sched"
	"github.com/sarchlab/schedgen/internal/schederr"
	"github.com/sarchlab/schedgen/internal/target"
)

// ParseInstructions decodes the Input JSON (spec.md §6) into Instructions,
// registering every referenced SchedRead/SchedWrite in reg. Instructions
// whose ISA tag the target CPU doesn't implement are still returned (no
// inference pass removes them; pass 5 reads their ISA tag when tagging
// supportedness), but their measured uop data is never attached, mirroring
// parse_llvm_instr_info's own `not llvm_instr.is_invalid(target_cpu)`
// guard around `set_uops_info`.
//
// Instructions are returned in the order opcodes appear in raw (object key
// order, recovered by the token-streaming decodeOrderedInstrMap below) so
// the pipeline's "source-JSON order" determinism guarantee (spec.md §5)
// holds.
func ParseInstructions(raw []byte, profile *target.Profile, reg *sched.Registry) ([]*instr.Instruction, error) {
	opcodes, descs, err := decodeOrderedInstrMap(raw)
	if err != nil {
		return nil, schederr.NewConfigError("ingest: malformed input json: %s", err)
	}

	instrs := make([]*instr.Instruction, 0, len(opcodes))
	for i, opcode := range opcodes {
		desc := descs[i]

		reads := make([]*sched.Read, 0, len(desc.SchedReads))
		for _, rd := range desc.SchedReads {
			if rd.Type != "SchedRead" {
				return nil, schederr.NewDataError(opcode, "unknown schedread type %q", rd.Type)
			}
			reads = append(reads, reg.Read(rd.Name))
		}

		writes := make([]*sched.Write, 0, len(desc.SchedWrites))
		for _, wd := range desc.SchedWrites {
			w, err := scanSchedWrite(reg, opcode, wd)
			if err != nil {
				return nil, err
			}
			writes = append(writes, w)
		}

		isaSet := ""
		if desc.XedInfo != nil {
			isaSet = desc.XedInfo.IsaSet
		}

		in := instr.New(opcode, reads, writes, isaSet)

		if desc.Port != nil && !in.IsInvalid(profile) {
			uopsInfo, err := buildUopsInfo(opcode, desc, profile)
			if err != nil {
				return nil, err
			}
			in.SetUopsInfo(uopsInfo)
		}

		instrs = append(instrs, in)
	}
	return instrs, nil
}

// scanSchedWrite mirrors parse_llvm_instr_info's nested scan_schedwrite
// closure, recursing into WriteSequence's "Writes" field.
func scanSchedWrite(reg *sched.Registry, opcode string, wd rawWriteDesc) (*sched.Write, error) {
	switch wd.Type {
	case "SchedWrite", "X86FoldableSchedWrite":
		return reg.Write(wd.Name), nil
	case "WriteSequence":
		subs := make([]*sched.Write, 0, len(wd.Writes))
		for _, sub := range wd.Writes {
			w, err := scanSchedWrite(reg, opcode, sub)
			if err != nil {
				return nil, err
			}
			subs = append(subs, w)
		}
		return reg.NewSequence(wd.Name, subs, wd.Repeat), nil
	default:
		return nil, schederr.NewConfigError("ingest: %s: unknown schedwrite type %q", opcode, wd.Type)
	}
}

// buildUopsInfo decodes an instruction's measured micro-op breakdown,
// validating every referenced port against the target CPU's topology
// (spec.md §7 DataError: "input declares a port not in the CPU's port
// set"), matching parse_llvm_instr_info's per-port assert.
func buildUopsInfo(opcode string, desc rawInstrDesc, profile *target.Profile) (*instr.UopsInfo, error) {
	latency := profile.MaxLatency()
	if desc.Latency != nil {
		latency = *desc.Latency
	}

	var uops []instr.Uop
	for _, entry := range desc.Port {
		ports := make([]resource.Port, 0, len(entry.Ports))
		for _, n := range entry.Ports {
			port := resource.Port(n)
			if port != resource.InvalidPort && !profileHasPort(profile, port) {
				return nil, schederr.NewDataError(opcode, "found invalid port %d", n)
			}
			ports = append(ports, port)
		}
		uop := instr.NewUop(ports, nil, nil)
		for i := 0; i < entry.Count; i++ {
			uops = append(uops, uop)
		}
	}

	numUops := len(uops)
	if desc.Uops != nil {
		numUops = *desc.Uops
	}

	return instr.NewUopsInfo(latency, desc.Tp, uops, numUops), nil
}

func profileHasPort(profile *target.Profile, port resource.Port) bool {
	for _, have := range profile.AllPorts() {
		if have == port {
			return true
		}
	}
	return false
}

// decodeOrderedInstrMap decodes the Input JSON's top-level opcode map
// while preserving key order, since Go's map iteration (unlike Python's
// dict) is randomized and the pipeline's determinism guarantee (spec.md
// §5) requires source-JSON order.
func decodeOrderedInstrMap(raw []byte) ([]string, []rawInstrDesc, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected a JSON object at top level")
	}

	var opcodes []string
	var descs []rawInstrDesc
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		opcode, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected string opcode key")
		}
		var desc rawInstrDesc
		if err := dec.Decode(&desc); err != nil {
			return nil, nil, fmt.Errorf("opcode %s: %w", opcode, err)
		}
		opcodes = append(opcodes, opcode)
		descs = append(descs, desc)
	}
	return opcodes, descs, nil
}
