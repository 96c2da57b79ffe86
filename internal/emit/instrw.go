package emit

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/regexreduce"
	"github.com/sarchlab/schedgen/internal/sched"
)

// rwEntry is one element of an instruction's schedreads+schedwrites
// signature — either a Write or a Read, never both.
type rwEntry struct {
	write *sched.Write
	read  *sched.Read
}

func (e rwEntry) name() string {
	if e.write != nil {
		return e.write.Name()
	}
	return e.read.Name()
}

// rank orders signature entries for grouping (spec.md §4.H step 4):
// SchedWriteRes first, then SchedWrite (including WriteSequence), then
// SchedRead.
func (e rwEntry) rank() int {
	if e.write != nil {
		if e.write.Kind() == sched.KindRes {
			return 0
		}
		return 1
	}
	return 2
}

func sortEntries(entries []rwEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].rank() != entries[j].rank() {
			return entries[i].rank() < entries[j].rank()
		}
		return entries[i].name() < entries[j].name()
	})
}

type instrwGroup struct {
	entries []rwEntry
	instrs  []*instr.Instruction
}

// emitInstrwBindings groups every instruction that opted into explicit
// InstRW binding by its schedread/schedwrite signature, then emits, for
// each group, any SchedWriteRes declarations not yet emitted by an earlier
// group (each SchedWriteRes is declared once overall), followed by the
// group's InstRW record.
func (e *Emitter) emitInstrwBindings(w io.Writer) error {
	groups := map[string]*instrwGroup{}
	var order []string

	for _, in := range e.Instrs {
		if !in.UseInstrw() {
			continue
		}
		entries := make([]rwEntry, 0, len(in.SchedReads)+len(in.SchedWrites))
		for _, r := range in.SchedReads {
			entries = append(entries, rwEntry{read: r})
		}
		for _, sw := range in.SchedWrites {
			entries = append(entries, rwEntry{write: sw})
		}
		sortEntries(entries)

		key := signatureKey(entries)
		g, ok := groups[key]
		if !ok {
			g = &instrwGroup{entries: entries}
			groups[key] = g
			order = append(order, key)
		}
		g.instrs = append(g.instrs, in)
	}

	sort.SliceStable(order, func(i, j int) bool {
		gi, gj := groups[order[i]], groups[order[j]]
		return groupLess(gi, gj)
	})

	fmt.Fprint(w, "\n// Infered SchedWriteRes and InstRW definition.\n")
	emitted := map[*sched.Write]bool{}
	for _, key := range order {
		g := groups[key]
		for _, entry := range g.entries {
			if entry.write != nil && entry.write.Kind() == sched.KindRes && !emitted[entry.write] {
				emitted[entry.write] = true
				fmt.Fprint(w, "\n")
				e.emitSchedWriteRes(w, entry.write)
			}
		}
		if err := e.emitInstrw(w, g.entries, g.instrs); err != nil {
			return err
		}
	}
	return nil
}

func signatureKey(entries []rwEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%d:%s", e.rank(), e.name())
	}
	return strings.Join(parts, "|")
}

// groupLess orders instrw groups by their first signature entry, then by
// signature length — a documented simplification of the original's
// object-identity tuple sort (DESIGN.md), which only affects cosmetic
// ordering of emitted groups, not their contents.
func groupLess(a, b *instrwGroup) bool {
	if len(a.entries) == 0 || len(b.entries) == 0 {
		return len(a.entries) < len(b.entries)
	}
	ra, rb := a.entries[0].rank(), b.entries[0].rank()
	if ra != rb {
		return ra < rb
	}
	na, nb := a.entries[0].name(), b.entries[0].name()
	if na != nb {
		return na < nb
	}
	return len(a.entries) < len(b.entries)
}

func isRegexLike(s string) bool {
	return strings.ContainsAny(s, "()|?*")
}

// emitInstrw reduces a group's opcodes to a small set of regexes (limit
// 4), splits them into regex and literal bindings, and emits one
// InstRW record per kind that has members.
func (e *Emitter) emitInstrw(w io.Writer, entries []rwEntry, instrs []*instr.Instruction) error {
	opcodes := make([]string, len(instrs))
	for i, in := range instrs {
		opcodes[i] = in.Opcode
	}

	reduced, err := regexreduce.New(4).Reduce(opcodes)
	if err != nil {
		return fmt.Errorf("emit: reducing instrw opcodes: %w", err)
	}

	var regexes, literals []string
	for _, expr := range reduced {
		if isRegexLike(expr) {
			regexes = append(regexes, expr)
		} else {
			literals = append(literals, expr)
		}
	}

	names := make([]string, len(entries))
	for i, en := range entries {
		names[i] = en.name()
	}
	namesJoined := strings.Join(names, ", ")

	if len(regexes) > 0 {
		header := "def : InstRW<[" + namesJoined + "], (instregex "
		fmt.Fprint(w, header)
		for i, rx := range regexes {
			if i > 0 {
				fmt.Fprint(w, ",\n"+strings.Repeat(" ", len(header)))
			}
			fmt.Fprintf(w, "\"^%s$\"", rx)
		}
		fmt.Fprint(w, ")>;\n")
	}

	if len(literals) > 0 {
		header := "def : InstRW<[" + namesJoined + "], (instrs "
		fmt.Fprint(w, header)
		for i, op := range literals {
			if i > 0 {
				fmt.Fprint(w, ",\n"+strings.Repeat(" ", len(header)))
			}
			fmt.Fprint(w, op)
		}
		fmt.Fprint(w, ")>;\n")
	}

	return nil
}
