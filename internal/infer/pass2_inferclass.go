package infer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/schederr"
	"github.com/sarchlab/schedgen/internal/sched"
)

// classCandidate is one instruction's residual demand for a schedwrite
// class, after subtracting every other aux write's contribution. ports
// is kept in canonical (sorted-by-PortSet.Less) order so two candidates
// over the same multiset of resources always compare key-equal.
type classCandidate struct {
	latency int
	numUops int
	ports   []resource.PortSet
}

func (c classCandidate) key() string {
	parts := make([]string, len(c.ports))
	for i, ps := range c.ports {
		parts[i] = ps.Key()
	}
	return fmt.Sprintf("%d|%d|%s", c.latency, c.numUops, strings.Join(parts, ";"))
}

// less implements the tie-break resolution for equally-frequent
// candidates (DESIGN.md "Pass-2 tie-break"): smaller latency first, then
// lexicographically smaller sorted port-set sequence.
func (c classCandidate) less(other classCandidate) bool {
	if c.latency != other.latency {
		return c.latency < other.latency
	}
	for i := 0; i < len(c.ports) && i < len(other.ports); i++ {
		if !c.ports[i].Equal(other.ports[i]) {
			return c.ports[i].Less(other.ports[i])
		}
	}
	return len(c.ports) < len(other.ports)
}

// inferWriteResources is pass 2: infer each incomplete schedwrite class's
// resources from the instructions that reference it, picking the most
// frequent non-negative candidate residual demand across them. Grounded
// on schedgen.py's LLVMSchedGen.infer_schedwrite_resources.
func (p *Pipeline) inferWriteResources() error {
	sw2instrs := newWriteInstrIndex()
	for _, in := range p.Instrs {
		for _, w := range in.SchedWrites {
			sw2instrs.add(w, in)
		}
	}

	for _, w := range sw2instrs.order {
		if w.IsComplete() {
			continue
		}
		instrs := sw2instrs.m[w]

		var candidates []classCandidate
		for _, in := range instrs {
			if !in.HasUopsInfo() {
				continue
			}
			info := in.UopsInfo()
			drLatency := info.Latency
			drNumUops := info.NumUops
			drPorts := info.Ports()

			for _, instrSw := range in.SchedWrites {
				if instrSw == w {
					continue
				}
				if !instrSw.IsComplete() || !instrSw.IsAux() {
					return schederr.NewDataError(in.Opcode, "two incomplete non-aux writes: %s and %s", w.Name(), instrSw.Name())
				}
				drNumUops -= instrSw.NumUops()
				drPorts = resource.Remove(drPorts, instrSw.Resources(), resource.PortSetEq)
			}
			candidates = append(candidates, classCandidate{drLatency, drNumUops, sortPortSets(drPorts)})
		}
		if len(candidates) == 0 {
			continue
		}

		best, err := pickByFrequency(candidates)
		if err != nil {
			return schederr.NewInvariantViolation(w.Name(), "%s", err)
		}

		drLatency, drNumUops, drPorts := best.latency, best.numUops, append([]resource.PortSet{}, best.ports...)

		var target *sched.Write
		if w.Kind() == sched.KindSequence {
			for _, leaf := range w.Expand() {
				if leaf.IsComplete() {
					drLatency -= leaf.Latency()
					drNumUops -= leaf.NumUops()
					drPorts = resource.Remove(drPorts, leaf.Resources(), resource.PortSetEq)
					continue
				}
				if target != nil {
					return fmt.Errorf("infer: write-sequence %s has more than one incomplete leaf", w.Name())
				}
				target = leaf
			}
			drPorts = sortPortSets(drPorts)
		} else {
			target = w
		}

		cycles := make([]int, len(drPorts))
		for i := range cycles {
			cycles[i] = 1
		}
		target.SetResources(drPorts, cycles, drLatency, drNumUops, false)
		p.log.Debug("inferred schedwrite class resources", "write", w.Name(), "latency", drLatency, "numUops", drNumUops)
	}
	return nil
}

// pickByFrequency returns the most frequent candidate among those with
// non-negative latency and numUops; candidates tied on frequency are
// ordered by classCandidate.less.
func pickByFrequency(candidates []classCandidate) (classCandidate, error) {
	type scored struct {
		c     classCandidate
		count int
	}
	counts := make(map[string]int)
	first := make(map[string]classCandidate)
	var order []string
	for _, c := range candidates {
		k := c.key()
		if _, ok := first[k]; !ok {
			first[k] = c
			order = append(order, k)
		}
		counts[k]++
	}

	scoredList := make([]scored, len(order))
	for i, k := range order {
		scoredList[i] = scored{c: first[k], count: counts[k]}
	}
	sort.SliceStable(scoredList, func(i, j int) bool {
		if scoredList[i].count != scoredList[j].count {
			return scoredList[i].count > scoredList[j].count
		}
		return scoredList[i].c.less(scoredList[j].c)
	})

	for _, s := range scoredList {
		if s.c.latency >= 0 && s.c.numUops >= 0 {
			return s.c, nil
		}
	}
	return classCandidate{}, fmt.Errorf("no candidate with non-negative latency and numUops")
}

// writeInstrIndex is an insertion-ordered multimap from schedwrite to the
// instructions that reference it.
type writeInstrIndex struct {
	m     map[*sched.Write][]*instr.Instruction
	order []*sched.Write
}

func newWriteInstrIndex() *writeInstrIndex {
	return &writeInstrIndex{m: make(map[*sched.Write][]*instr.Instruction)}
}

func (idx *writeInstrIndex) add(w *sched.Write, in *instr.Instruction) {
	if _, ok := idx.m[w]; !ok {
		idx.order = append(idx.order, w)
	}
	idx.m[w] = append(idx.m[w], in)
}

func sortPortSets(ports []resource.PortSet) []resource.PortSet {
	sorted := append([]resource.PortSet{}, ports...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	return sorted
}
