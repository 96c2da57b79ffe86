package sched

import (
	"fmt"
	"strings"

	"github.com/sarchlab/schedgen/internal/resource"
)

// Registry owns every Write and Read for one inference run. It is created
// fresh per target CPU so concurrent per-CPU runs (spec.md §5) never share
// mutable state — the explicit-ownership style the teacher uses for its
// per-simulation builders (core.Builder, config.DeviceBuilder) rather than
// a package-level singleton like original_source's Singleton metaclass.
type Registry struct {
	writes     map[string]*Write
	writeOrder []*Write

	reads     map[string]*Read
	readOrder []*Read

	resIndex int
	resByKey map[string]*Write
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		writes:   make(map[string]*Write),
		reads:    make(map[string]*Read),
		resByKey: make(map[string]*Write),
	}
}

// Write looks up an existing write by name, or creates an incomplete
// KindBase write under that name if none exists yet. Matches
// original_source's lazy "first reference creates the placeholder"
// behavior when an opcode's sched table mentions a class before any
// measurement has populated it.
func (r *Registry) Write(name string) *Write {
	if w, ok := r.writes[name]; ok {
		return w
	}
	w := &Write{name: name, kind: KindBase, supported: true}
	r.writes[name] = w
	r.writeOrder = append(r.writeOrder, w)
	return w
}

// LookupWrite returns the write registered under name, and whether one
// exists, without creating a placeholder.
func (r *Registry) LookupWrite(name string) (*Write, bool) {
	w, ok := r.writes[name]
	return w, ok
}

// Writes returns every registered write in insertion order.
func (r *Registry) Writes() []*Write {
	return append([]*Write{}, r.writeOrder...)
}

// Read looks up an existing read by name, or creates one.
func (r *Registry) Read(name string) *Read {
	if rd, ok := r.reads[name]; ok {
		return rd
	}
	rd := &Read{name: name}
	r.reads[name] = rd
	r.readOrder = append(r.readOrder, rd)
	return rd
}

// Reads returns every registered read in insertion order.
func (r *Registry) Reads() []*Read {
	return append([]*Read{}, r.readOrder...)
}

// NewSequence registers a fresh WriteSequence under name, composed of the
// given sub-writes repeated repeat times. The name must not already be
// registered as a different kind of write.
func (r *Registry) NewSequence(name string, writes []*Write, repeat int) *Write {
	if existing, ok := r.writes[name]; ok {
		if existing.kind != KindSequence {
			panic(fmt.Sprintf("sched: %s already registered as a non-sequence write", name))
		}
		return existing
	}
	w := &Write{
		name:   name,
		kind:   KindSequence,
		writes: append([]*Write{}, writes...),
		repeat: repeat,
	}
	r.writes[name] = w
	r.writeOrder = append(r.writeOrder, w)
	return w
}

// InternSchedWriteRes returns the SchedWriteRes write matching the given
// resource signature, creating and naming one if this is the first time
// the signature has been seen. Interning is by (resources, resourceCycles,
// latency, numUops) exactly as original_source's SchedWriteRes.get_key —
// two instructions whose measurements reduce to the same demand share one
// synthesized override rather than each minting their own.
//
// prefix is the target-specific ISA name prefix (e.g. the empty string, or
// a vendor tag) prepended to the generated "WriteResGroup<n>" name.
func (r *Registry) InternSchedWriteRes(prefix string, resources []resource.PortSet, resourceCycles []int, latency, numUops int) *Write {
	key := resSignature(resources, resourceCycles, latency, numUops)
	if w, ok := r.resByKey[key]; ok {
		return w
	}

	name := fmt.Sprintf("%sWriteResGroup%d", prefix, r.resIndex)
	r.resIndex++

	w := &Write{
		name:           name,
		kind:           KindRes,
		supported:      true,
		complete:       true,
		resources:      append([]resource.PortSet{}, resources...),
		resourceCycles: append([]int{}, resourceCycles...),
		latency:        latency,
		numUops:        numUops,
		resIndex:       r.resIndex - 1,
	}
	r.writes[name] = w
	r.writeOrder = append(r.writeOrder, w)
	r.resByKey[key] = w
	return w
}

func resSignature(resources []resource.PortSet, resourceCycles []int, latency, numUops int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|", latency, numUops)
	for i, ps := range resources {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(ps.Key())
		fmt.Fprintf(&b, ":%d", resourceCycles[i])
	}
	return b.String()
}
