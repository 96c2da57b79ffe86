package resource

import "sort"

// Entry pairs a PortSet with its measured cycle count, as found in
// verification data before it has been decomposed into a leaf-only form.
type Entry struct {
	Ports  PortSet
	Cycles int
}

// Reduce strips inclusion-dominated entries from a multiset of
// (PortSet, cycles) pairs that may be redundantly nested — a superset
// entry's cycle count may already include a subset entry's demand. It
// returns only the residual entries with positive cycles, each carrying
// its own incremental demand.
//
// Grounded on original_source lib/info_parser.py's infer_res: for each
// node, find its supersets among the others; process nodes with the most
// supersets first, subtracting each node's cycles from every one of its
// supersets; emit whatever remains positive.
func Reduce(entries []Entry) []Entry {
	type node struct {
		ports      PortSet
		cycles     int
		supersets  []int // indices into nodes
	}

	nodes := make([]node, len(entries))
	for i, e := range entries {
		nodes[i] = node{ports: e.Ports, cycles: e.Cycles}
	}
	for i := range nodes {
		for j := range nodes {
			if i == j {
				continue
			}
			if Contains(asPorts(nodes[j].ports), asPorts(nodes[i].ports), PortEq) {
				nodes[i].supersets = append(nodes[i].supersets, j)
			}
		}
	}

	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(nodes[order[a]].supersets) > len(nodes[order[b]].supersets)
	})

	for _, idx := range order {
		if nodes[idx].cycles <= 0 {
			continue
		}
		for _, sup := range nodes[idx].supersets {
			nodes[sup].cycles -= nodes[idx].cycles
		}
	}

	out := make([]Entry, 0, len(nodes))
	for _, n := range nodes {
		if n.cycles > 0 {
			out = append(out, Entry{Ports: n.ports, Cycles: n.cycles})
		}
	}
	return out
}

func asPorts(ps PortSet) []Port { return []Port(ps) }
