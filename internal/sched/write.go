// Package sched implements the SchedWrite/SchedRead registry: interned,
// uniquely-named scheduling classes, write-sequences composed of writes,
// and the per-instruction resource-override records the inference engine
// synthesizes when class-level inference alone cannot explain a
// measurement.
package sched

import (
	"fmt"

	"github.com/sarchlab/schedgen/internal/resource"
)

// Kind discriminates the three SchedWrite variants. All three share the
// same "named + supported + aux" identity (spec.md §9), so they are
// modeled as one struct tagged by Kind rather than an interface
// hierarchy — the teacher's own style of tagging a flat struct
// (core.Operation, instr.Inst) rather than building deep interface trees.
type Kind int

const (
	// KindBase is a plain SchedWrite: possibly incomplete, possibly aux.
	KindBase Kind = iota
	// KindSequence is a WriteSequence: an ordered, repeated list of writes.
	KindSequence
	// KindRes is a SchedWriteRes: always complete, supported, non-aux.
	KindRes
)

// Write is a SchedWrite, WriteSequence, or SchedWriteRes, depending on
// Kind. See the package doc and spec.md §3 for the full semantics.
type Write struct {
	name string
	kind Kind

	supported bool
	aux       bool
	complete  bool

	resources      []resource.PortSet
	resourceCycles []int
	latency        int
	numUops        int

	// KindSequence only.
	writes []*Write
	repeat int

	// KindRes only: creation order, used for the <prefix>WriteResGroup<n>
	// name and for deterministic ordering among SchedWriteRes values.
	resIndex int
}

// Name returns the write's unique registry key.
func (w *Write) Name() string { return w.name }

// Kind returns which SchedWrite variant this is.
func (w *Write) Kind() Kind { return w.kind }

// IsSupported reports whether the write is supported on the target CPU.
// A WriteSequence is supported iff every sub-write is. A SchedWriteRes is
// always supported — it was synthesized from an actual measurement, so
// the supportedness tagging pass never has anything meaningful to say
// about it (it still runs SetSupported on every write it sees, but the
// result is ignored here), matching lib/llvm_instr.py's
// SchedWriteRes.is_supported override.
func (w *Write) IsSupported() bool {
	switch w.kind {
	case KindSequence:
		for _, sub := range w.writes {
			if !sub.IsSupported() {
				return false
			}
		}
		return true
	case KindRes:
		return true
	default:
		return w.supported
	}
}

// SetSupported sets the supported flag. Not valid on a WriteSequence,
// whose supportedness is always derived from its sub-writes.
func (w *Write) SetSupported(v bool) {
	if w.kind == KindSequence {
		panic("sched: cannot SetSupported on a WriteSequence")
	}
	w.supported = v
}

// IsAux reports whether the write is an additive, strippable contribution.
// A WriteSequence is aux iff every leaf under Expand() is.
func (w *Write) IsAux() bool {
	if w.kind == KindSequence {
		for _, leaf := range w.Expand() {
			if !leaf.IsAux() {
				return false
			}
		}
		return true
	}
	return w.aux
}

// IsComplete reports whether the write's resource payload is known.
// A WriteSequence is complete iff every leaf under Expand() is.
func (w *Write) IsComplete() bool {
	if w.kind == KindSequence {
		for _, leaf := range w.Expand() {
			if !leaf.IsComplete() {
				return false
			}
		}
		return true
	}
	return w.complete
}

// SetResources sets the write's resource payload. Forbidden on a
// WriteSequence (its resources are always derived from its sub-writes).
func (w *Write) SetResources(resources []resource.PortSet, resourceCycles []int, latency, numUops int, aux bool) {
	if w.kind == KindSequence {
		panic("sched: cannot SetResources on a WriteSequence")
	}
	if len(resources) != len(resourceCycles) {
		panic(fmt.Sprintf("sched: %s: len(resources) != len(resourceCycles)", w.name))
	}
	if numUops < 0 || latency < 0 {
		panic(fmt.Sprintf("sched: %s: negative latency or numUops", w.name))
	}
	w.resources = append([]resource.PortSet{}, resources...)
	w.resourceCycles = append([]int{}, resourceCycles...)
	w.latency = latency
	w.numUops = numUops
	w.aux = aux
	w.complete = true
}

// Latency returns the write's latency: its own for a base write or
// SchedWriteRes, or the sum over Expand() for a WriteSequence.
func (w *Write) Latency() int {
	if w.kind == KindSequence {
		total := 0
		for _, leaf := range w.Expand() {
			total += leaf.latency
		}
		return total
	}
	return w.latency
}

// NumUops returns the write's micro-op count, summed over Expand() for a
// WriteSequence.
func (w *Write) NumUops() int {
	if w.kind == KindSequence {
		total := 0
		for _, leaf := range w.Expand() {
			total += leaf.numUops
		}
		return total
	}
	return w.numUops
}

// Resources returns the write's execution resources, concatenated over
// Expand() for a WriteSequence.
func (w *Write) Resources() []resource.PortSet {
	if w.kind == KindSequence {
		var out []resource.PortSet
		for _, leaf := range w.Expand() {
			out = append(out, leaf.resources...)
		}
		return out
	}
	return append([]resource.PortSet{}, w.resources...)
}

// ResourceCycles returns the per-resource cycle counts, in the same order
// as Resources(). Only meaningful for base writes and SchedWriteRes;
// WriteSequence cycle accounting is not modeled (spec.md §4.E: all
// resource_cycles are set to 1 by the engine, so per-leaf cycles simply
// concatenate the same way Resources() does).
func (w *Write) ResourceCycles() []int {
	if w.kind == KindSequence {
		var out []int
		for _, leaf := range w.Expand() {
			out = append(out, leaf.resourceCycles...)
		}
		return out
	}
	return append([]int{}, w.resourceCycles...)
}

// Writes returns the sub-writes of a WriteSequence, or nil otherwise.
func (w *Write) Writes() []*Write {
	if w.kind != KindSequence {
		return nil
	}
	return w.writes
}

// Repeat returns a WriteSequence's repeat count, or 0 otherwise.
func (w *Write) Repeat() int {
	if w.kind != KindSequence {
		return 0
	}
	return w.repeat
}

// Expand flattens a WriteSequence into its concrete leaf SchedWrites by
// recursively unrolling nested sequences, repeated Repeat times. Returns
// nil for a non-sequence write.
func (w *Write) Expand() []*Write {
	if w.kind != KindSequence {
		return nil
	}
	var leaves []*Write
	for i := 0; i < w.repeat; i++ {
		for _, sub := range w.writes {
			if sub.kind == KindSequence {
				leaves = append(leaves, sub.Expand()...)
			} else {
				leaves = append(leaves, sub)
			}
		}
	}
	return leaves
}

// String implements fmt.Stringer for debugging and log output.
func (w *Write) String() string { return w.name }
