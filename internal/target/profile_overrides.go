package target

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/schederr"
	"github.com/sarchlab/schedgen/internal/sched"
)

// Overrides is an optional, operator-supplied supplement to a Profile's
// built-in hand-seeded SchedWrites (lib/target.py's
// __set_schedwrite_resource methods cover only AlderlakeP/SapphireRapids;
// this lets any CPU profile be seeded or amended without a code change).
// Grounded on the teacher's YAML configuration loading style
// (core/program.go's LoadProgramFileFromYAML), using the teacher's own
// gopkg.in/yaml.v3 dependency.
type Overrides struct {
	Writes []WriteOverride `yaml:"writes"`
	ISASet []string        `yaml:"isaSet"`
}

// WriteOverride seeds or replaces one SchedWrite's resource payload.
type WriteOverride struct {
	Name    string  `yaml:"name"`
	Aux     bool    `yaml:"aux"`
	Latency int     `yaml:"latency"`
	NumUops int     `yaml:"numUops"`
	Ports   [][]int `yaml:"ports"`
	Cycles  []int   `yaml:"cycles"`
}

// LoadOverrides reads and parses a profile-override YAML file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("target: reading overrides file %s: %w", path, err)
	}
	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("target: parsing overrides file %s: %w", path, err)
	}
	return &ov, nil
}

// Apply installs the overrides into reg and extends p's ISA whitelist.
// Write overrides are applied after Profile.SeedSchedWrites, so an
// override always wins over a built-in seed of the same name.
func (p *Profile) Apply(reg *sched.Registry, ov *Overrides) error {
	if ov == nil {
		return nil
	}
	for _, tag := range ov.ISASet {
		p.validISASet[tag] = true
	}
	for _, wo := range ov.Writes {
		if len(wo.Ports) != len(wo.Cycles) {
			return fmt.Errorf("target: override %q: %d port groups but %d cycle entries", wo.Name, len(wo.Ports), len(wo.Cycles))
		}
		ports := make([]resource.PortSet, len(wo.Ports))
		for i, nums := range wo.Ports {
			for _, n := range nums {
				if port := resource.Port(n); port != resource.InvalidPort && !p.hasPort(port) {
					return schederr.NewInvariantViolation(wo.Name, "seeded port %d is not in the CPU's topology", n)
				}
			}
			ports[i] = resource.NewPortSet(resource.Ports(nums...)...)
		}
		reg.Write(wo.Name).SetResources(ports, wo.Cycles, wo.Latency, wo.NumUops, wo.Aux)
	}
	return nil
}
