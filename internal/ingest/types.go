// Package ingest decodes the two external JSON grammars spec.md §6
// defines — the Input JSON that seeds an Instruction's SchedRead/SchedWrite
// bindings and measured uop data, and the Verification JSON an external
// tool produces for cross-checking synthesized overrides — into the
// internal/instr and internal/sched types the inference engine operates
// on. Grounded on lib/info_parser.py's parse_llvm_instr_info and
// parse_smv_instr_info; standard encoding/json only (see DESIGN.md: no
// third-party JSON library appears anywhere in the example pack).
package ingest

import "encoding/json"

// rawWriteDesc is one entry of an Input JSON instruction's "SchedWrites"
// list. Type discriminates a plain SchedWrite from a recursive
// WriteSequence, matching spec.md §6.
type rawWriteDesc struct {
	Type   string         `json:"Type"`
	Name   string         `json:"Name"`
	Writes []rawWriteDesc `json:"Writes,omitempty"`
	Repeat int            `json:"Repeat,omitempty"`
}

// rawReadDesc is one entry of an Input JSON instruction's "SchedReads"
// list.
type rawReadDesc struct {
	Type string `json:"Type"`
	Name string `json:"Name"`
}

// rawXedInfo carries the optional ISA-set tag used to decide whether an
// instruction is in scope for a given target CPU.
type rawXedInfo struct {
	IsaSet string `json:"IsaSet"`
}

// rawPortEntry is one "[count, [port_numbers...]]" pair from the Input
// JSON's "Port" list: count copies of a uop dispatching to any of
// port_numbers.
type rawPortEntry struct {
	Count int
	Ports []int
}

// UnmarshalJSON decodes a rawPortEntry from its two-element tuple form
// "[count, [port_numbers...]]".
func (e *rawPortEntry) UnmarshalJSON(data []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[0], &e.Count); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &e.Ports)
}

// rawInstrDesc is one Input JSON instruction descriptor, keyed by opcode
// in the surrounding map (spec.md §6 "Input JSON").
type rawInstrDesc struct {
	SchedReads  []rawReadDesc   `json:"SchedReads"`
	SchedWrites []rawWriteDesc  `json:"SchedWrites"`
	XedInfo     *rawXedInfo     `json:"XedInfo,omitempty"`
	Port        []rawPortEntry  `json:"Port,omitempty"`
	Latency     *int            `json:"Latency,omitempty"`
	Tp          *float64        `json:"Tp,omitempty"`
	Uops        *int            `json:"Uops,omitempty"`
}

// rawVerifyDesc is one Verification JSON record, keyed by opcode (spec.md
// §6 "Verification JSON").
type rawVerifyDesc struct {
	WriteRes     map[string]int `json:"WriteRes"`
	Latency      int             `json:"Latency"`
	NumUops      int             `json:"NumUops"`
	RThroughput  float64         `json:"RThroughput"`
}
