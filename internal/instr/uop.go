// Package instr models one LLVM-style instruction: its opcode, its
// symbolic SchedRead/SchedWrite bindings, and the measured micro-op data
// the inference engine reconciles against those bindings.
package instr

import (
	"sort"

	"github.com/sarchlab/schedgen/internal/resource"
)

// Uop records the port choices, latency, and throughput measured for one
// micro-op of an instruction. Latency and Throughput are pointers because
// a measurement may be silent on either (grounded on
// lib/llvm_instr.py's Uop, whose latency/throughput default to None).
type Uop struct {
	Ports      resource.PortSet
	Latency    *int
	Throughput *float64
}

// NewUop builds a Uop, canonicalizing Ports into sorted order so two Uops
// over the same ports always compare equal regardless of input order. A
// Uop's Ports form exactly one resource.PortSet: the alternative ports
// that single micro-op's measurement showed it could dispatch to.
func NewUop(ports []resource.Port, latency *int, throughput *float64) Uop {
	return Uop{Ports: resource.NewPortSet(ports...), Latency: latency, Throughput: throughput}
}

// Less orders two Uops by ports, then latency, then throughput, matching
// lib/llvm_instr.py's Uop.__lt__ (None sorts first).
func (u Uop) Less(other Uop) bool {
	if c := comparePorts(u.Ports, other.Ports); c != 0 {
		return c < 0
	}
	if !intPtrEq(u.Latency, other.Latency) {
		return intPtrLess(u.Latency, other.Latency)
	}
	if !floatPtrEq(u.Throughput, other.Throughput) {
		return floatPtrLess(u.Throughput, other.Throughput)
	}
	return false
}

func comparePorts(a, b []resource.Port) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// intPtrLess treats nil as smaller than any value, matching
// lib/utils.py's lt_none helper.
func intPtrLess(a, b *int) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return true
	}
	if b == nil {
		return false
	}
	return *a < *b
}

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatPtrLess(a, b *float64) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return true
	}
	if b == nil {
		return false
	}
	return *a < *b
}

// UopsInfo is the measured micro-op breakdown for one instruction:
// overall latency/throughput/num_uops plus the per-uop port data,
// grounded on lib/llvm_instr.py's UopsInfo.
type UopsInfo struct {
	Latency    int
	Throughput *float64
	Uops       []Uop
	NumUops    int
}

// NewUopsInfo builds a UopsInfo, sorting Uops for deterministic ordering.
func NewUopsInfo(latency int, throughput *float64, uops []Uop, numUops int) *UopsInfo {
	sorted := append([]Uop{}, uops...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	return &UopsInfo{Latency: latency, Throughput: throughput, Uops: sorted, NumUops: numUops}
}

// Ports returns each uop's port-set, in Uops order — one resource.PortSet
// per measured micro-op, directly comparable against a SchedWrite's own
// Resources() (lib/llvm_instr.py's UopsInfo.ports property).
func (u *UopsInfo) Ports() []resource.PortSet {
	out := make([]resource.PortSet, len(u.Uops))
	for i, uop := range u.Uops {
		out[i] = uop.Ports
	}
	return out
}
