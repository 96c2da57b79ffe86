package target

import (
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/sched"
)

// Builder constructs a Profile through a chain of value-receiver With*
// calls, in the style of the teacher's core.Builder and
// config.DeviceBuilder: each With* returns a modified copy rather than
// mutating shared state, so a builder can be forked to produce sibling
// profiles without aliasing.
type Builder struct {
	p Profile
}

// NewBuilder returns a Builder seeded with the given short name, LLVM
// processor name, and scheduler model class name.
func NewBuilder(shortName, procName, modelName string) Builder {
	return Builder{p: Profile{
		shortName:   shortName,
		procName:    procName,
		modelName:   modelName,
		validISASet: make(map[string]bool),
	}}
}

// WithPorts sets the CPU's full port topology.
func (b Builder) WithPorts(nums ...int) Builder {
	b.p.allPorts = resource.Ports(nums...)
	return b
}

// WithLoadPorts sets the ports a memory load may dispatch to.
func (b Builder) WithLoadPorts(nums ...int) Builder {
	b.p.loadPorts = resource.Ports(nums...)
	return b
}

// WithLoadLatency sets the fixed latency assigned to WriteLoad.
func (b Builder) WithLoadLatency(latency int) Builder {
	b.p.loadLatency = latency
	return b
}

// WithMaxLatency sets the ceiling rendered as a symbolic constant.
func (b Builder) WithMaxLatency(latency int) Builder {
	b.p.maxLatency = latency
	return b
}

// WithISASet adds ISA tags to the CPU's whitelist.
func (b Builder) WithISASet(tags ...string) Builder {
	set := make(map[string]bool, len(b.p.validISASet)+len(tags))
	for t := range b.p.validISASet {
		set[t] = true
	}
	for _, t := range tags {
		set[t] = true
	}
	b.p.validISASet = set
	return b
}

// WithDecodeStyle selects which port-name decoding convention
// DecodePortName uses for this CPU.
func (b Builder) WithDecodeStyle(s decodeStyle) Builder {
	b.p.decode = s
	return b
}

// WithSeed attaches the CPU-specific hand-seeded SchedWrite installer.
func (b Builder) WithSeed(fn func(reg *sched.Registry, p *Profile)) Builder {
	b.p.seedFn = fn
	return b
}

// Build finalizes the Profile.
func (b Builder) Build() *Profile {
	p := b.p
	return &p
}
