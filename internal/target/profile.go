// Package target models the target-CPU profiles the inference engine runs
// against: port topology, load characteristics, ISA whitelist, and the
// small set of SchedWrites each CPU seeds by hand instead of inferring.
package target

import (
	"fmt"

	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/schederr"
	"github.com/sarchlab/schedgen/internal/sched"
)

// decodeStyle distinguishes the two port-name decoding conventions the
// five CPUs use (see EncodePortName/DecodePortName doc comments).
type decodeStyle int

const (
	decodeTwoDigit decodeStyle = iota
	decodeSingleDigit
)

// Profile describes one target CPU: its port topology, load behavior, ISA
// whitelist, and naming conventions. ByName builds a fresh Profile via
// Builder on every call, so concurrent per-CPU runs (spec.md §5) never
// share state. After Build, the only mutation is Apply, which extends the
// ISA whitelist.
type Profile struct {
	shortName string
	procName  string
	modelName string

	allPorts    []resource.Port
	loadPorts   []resource.Port
	loadLatency int
	maxLatency  int

	validISASet map[string]bool

	decode decodeStyle
	seedFn func(reg *sched.Registry, p *Profile)
}

// ShortName is the CPU's naming prefix (e.g. "ADLP", "SKL").
func (p *Profile) ShortName() string { return p.shortName }

// ModelName is the generated scheduler model class name.
func (p *Profile) ModelName() string { return p.modelName }

// AllPorts returns the CPU's full port topology.
func (p *Profile) AllPorts() []resource.Port { return append([]resource.Port{}, p.allPorts...) }

// LoadPorts returns the ports a memory load may dispatch to.
func (p *Profile) LoadPorts() []resource.Port { return append([]resource.Port{}, p.loadPorts...) }

// LoadLatency is the fixed latency assigned to WriteLoad.
func (p *Profile) LoadLatency() int { return p.loadLatency }

// MaxLatency is the ceiling rendered as "<ModelName>.MaxLatency" in
// emitted output rather than as a literal number.
func (p *Profile) MaxLatency() int { return p.maxLatency }

// IsValidISA reports whether isaSet is one this CPU implements. An empty
// isaSet is always valid (spec.md: instructions with no ISA tag are
// unconditionally in scope).
func (p *Profile) IsValidISA(isaSet string) bool {
	if isaSet == "" {
		return true
	}
	return p.validISASet[isaSet]
}

// LatString renders a latency for emission, substituting the symbolic
// "<ModelName>.MaxLatency" constant whenever latency equals MaxLatency.
func (p *Profile) LatString(latency int) string {
	if latency == p.maxLatency {
		return fmt.Sprintf("%s.MaxLatency", p.modelName)
	}
	return fmt.Sprintf("%d", latency)
}

// ByName resolves a target CPU name (as passed to cmd/schedgen's -target
// flag) to a built Profile, mirroring original_source lib/target.py's
// get_target dispatch table.
func ByName(name string) (*Profile, error) {
	switch name {
	case "alderlake-p":
		return NewAlderlakeP(), nil
	case "sapphirerapids":
		return NewSapphireRapids(), nil
	case "skylake":
		return NewSkylake(), nil
	case "skylake-avx512":
		return NewSkylakeServer(), nil
	case "icelake-server":
		return NewIcelakeServer(), nil
	default:
		return nil, schederr.NewConfigError("unknown target cpu %q (valid: alderlake-p, sapphirerapids, skylake, skylake-avx512, icelake-server)", name)
	}
}

// SeedSchedWrites installs the small set of hand-specified SchedWrites
// this CPU defines instead of leaving them to inference (spec.md §4.B
// design note), grounded on lib/target.py's per-CPU
// __set_schedwrite_resource methods.
func (p *Profile) SeedSchedWrites(reg *sched.Registry) {
	if p.seedFn != nil {
		p.seedFn(reg, p)
	}
}
