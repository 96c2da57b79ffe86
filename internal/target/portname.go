package target

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/schederr"
)

// EncodePortName renders a port set as a TableGen resource name, e.g.
// "ADLPPort01_02". It is the same two-digit, underscore-joined, zero-
// padded convention for every CPU (grounded on lib/target.py's
// TargetCPU.get_ports_name, which none of the five subclasses override),
// even though three of the five CPUs decode names in a different, legacy
// single-digit convention (see DecodePortName).
func (p *Profile) EncodePortName(ports resource.PortSet) string {
	if ports.Empty() {
		return ""
	}
	if portSetEqualsUnordered(ports, p.allPorts) {
		return p.shortName + "PortAny"
	}
	if len(ports) == 1 && ports[0] == resource.InvalidPort {
		return p.shortName + "PortInvalid"
	}

	sorted := append(resource.PortSet{}, ports...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, port := range sorted {
		parts[i] = fmt.Sprintf("%02d", int(port))
	}
	return p.shortName + "Port" + strings.Join(parts, "_")
}

// DecodePortName parses a TableGen resource name back into a port set.
// ADLP and SPR decode the two-digit underscore convention EncodePortName
// produces; SKL, SKX, and ICX instead decode a legacy single-digit
// concatenated convention with special-cased Divider/FPDivider names —
// exactly the asymmetry present in lib/target.py, where only the
// two-digit TargetCPU base parse_ports_name is shared by ADLP/SPR while
// Skylake, SkylakeServer, and IcelakeServer each override it.
func (p *Profile) DecodePortName(name string) (resource.PortSet, error) {
	if name == p.shortName+"PortAny" {
		return resource.NewPortSet(p.allPorts...), nil
	}

	switch p.decode {
	case decodeSingleDigit:
		if name == p.shortName+"Divider" || name == p.shortName+"FPDivider" {
			return resource.NewPortSet(resource.InvalidPort), nil
		}
		prefix := p.shortName + "Port"
		if !strings.HasPrefix(name, prefix) {
			return nil, schederr.NewConfigError("target: %s: port name %q missing prefix %q", p.shortName, name, prefix)
		}
		digits := name[len(prefix):]
		ports := make([]resource.Port, 0, len(digits))
		for _, r := range digits {
			n, err := strconv.Atoi(string(r))
			if err != nil {
				return nil, schederr.NewConfigError("target: %s: port name %q has non-digit port %q", p.shortName, name, string(r))
			}
			if !p.hasPort(resource.Port(n)) {
				return nil, schederr.NewConfigError("target: %s: port name %q names unknown port %d", p.shortName, name, n)
			}
			ports = append(ports, resource.Port(n))
		}
		return resource.NewPortSet(ports...), nil

	default: // decodeTwoDigit
		if name == p.shortName+"PortInvalid" {
			return resource.NewPortSet(resource.InvalidPort), nil
		}
		prefix := p.shortName + "Port"
		if !strings.HasPrefix(name, prefix) {
			return nil, schederr.NewConfigError("target: %s: port name %q missing prefix %q", p.shortName, name, prefix)
		}
		rest := name[len(prefix):]
		ports := make([]resource.Port, 0)
		for _, field := range strings.Split(rest, "_") {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, schederr.NewConfigError("target: %s: port name %q has non-numeric field %q", p.shortName, name, field)
			}
			if !p.hasPort(resource.Port(n)) {
				return nil, schederr.NewConfigError("target: %s: port name %q names unknown port %d", p.shortName, name, n)
			}
			ports = append(ports, resource.Port(n))
		}
		return resource.NewPortSet(ports...), nil
	}
}

func (p *Profile) hasPort(port resource.Port) bool {
	for _, have := range p.allPorts {
		if have == port {
			return true
		}
	}
	return false
}

func portSetEqualsUnordered(a resource.PortSet, b []resource.Port) bool {
	return resource.CountEq([]resource.Port(a), b, resource.PortEq)
}
