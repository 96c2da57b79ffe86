package ingest

import (
	"encoding/json"
	"sort"

	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/schederr"
	"github.com/sarchlab/schedgen/internal/target"
)

// ParseMeasured decodes the Verification JSON (spec.md §6) into Measured
// records, which cmd/schedgen compares (warnings only) against each
// instruction's final computed values after the pipeline has run; the
// inference engine itself never reads them. Grounded on lib/info_parser.py's
// parse_smv_instr_info: each opcode's port-name-keyed WriteRes map is
// parsed into (PortSet, cycles) entries and then run through
// resource.Reduce (the Go port of info_parser.py's infer_res) to strip
// inclusion-dominated entries down to their residual leaf demand.
func ParseMeasured(raw []byte, profile *target.Profile) ([]*instr.Measured, error) {
	var rawMap map[string]rawVerifyDesc
	if err := json.Unmarshal(raw, &rawMap); err != nil {
		return nil, schederr.NewConfigError("ingest: malformed verification json: %s", err)
	}

	opcodes := make([]string, 0, len(rawMap))
	for opcode := range rawMap {
		opcodes = append(opcodes, opcode)
	}
	sort.Strings(opcodes)

	out := make([]*instr.Measured, 0, len(opcodes))
	for _, opcode := range opcodes {
		desc := rawMap[opcode]

		entries := make([]resource.Entry, 0, len(desc.WriteRes))
		names := make([]string, 0, len(desc.WriteRes))
		for name := range desc.WriteRes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ports, err := profile.DecodePortName(name)
			if err != nil {
				return nil, schederr.NewDataError(opcode, "port name %q: %s", name, err)
			}
			entries = append(entries, resource.Entry{Ports: ports, Cycles: desc.WriteRes[name]})
		}

		reduced := resource.Reduce(entries)
		resources := make([]resource.PortSet, len(reduced))
		cycles := make([]int, len(reduced))
		for i, e := range reduced {
			resources[i] = e.Ports
			cycles[i] = e.Cycles
		}

		out = append(out, &instr.Measured{
			Opcode:         opcode,
			Latency:        desc.Latency,
			NumUops:        desc.NumUops,
			Throughput:     floatPtr(desc.RThroughput),
			Resources:      resources,
			ResourceCycles: cycles,
		})
	}
	return out, nil
}

func floatPtr(v float64) *float64 { return &v }
