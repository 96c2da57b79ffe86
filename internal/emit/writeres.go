package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/sched"
)

// groupResources collapses a write's resources into (unique port set,
// occurrence count) pairs, preserving first-occurrence order — the Go
// equivalent of Python's collections.Counter(...).items() over an
// insertion-ordered dict.
func groupResources(ports []resource.PortSet) ([]resource.PortSet, []int) {
	var uniq []resource.PortSet
	var counts []int
	for _, p := range ports {
		idx := -1
		for i, u := range uniq {
			if u.Equal(p) {
				idx = i
				break
			}
		}
		if idx < 0 {
			uniq = append(uniq, p)
			counts = append(counts, 1)
		} else {
			counts[idx]++
		}
	}
	return uniq, counts
}

func (e *Emitter) exePortsList(ports []resource.PortSet) string {
	names := make([]string, len(ports))
	for i, p := range ports {
		names[i] = e.Profile.EncodePortName(p)
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func intsList(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func allOnes(xs []int) bool {
	for _, x := range xs {
		if x != 1 {
			return false
		}
	}
	return true
}

func (e *Emitter) emitWriteResPairUnsupported(w io.Writer, write *sched.Write) {
	fmt.Fprintf(w, "defm : WriteResPairUnsupported<%s>;\n", write.Name())
}

func (e *Emitter) emitWriteResUnsupported(w io.Writer, write *sched.Write) {
	fmt.Fprintf(w, "defm : WriteResUnsupported<%s>;\n", write.Name())
}

// tryEmitWriteResPair attempts the compact paired declaration for a
// register/memory schedwrite pair: the memory form's only extra demand
// over the register form must be whole load-port uops. Returns false
// (emitting nothing) if the pair doesn't fit that shape, leaving the
// caller to fall back to emitting each half singly.
func (e *Emitter) tryEmitWriteResPair(w io.Writer, writeReg, writeMem *sched.Write) (bool, error) {
	portsDiff := resource.Diff(writeReg.Resources(), writeMem.Resources(), resource.PortSetEq)
	if len(portsDiff) == 0 {
		return false, nil
	}
	loadPorts := resource.NewPortSet(e.Profile.LoadPorts()...)
	for _, p := range portsDiff {
		if !p.Equal(loadPorts) {
			return false, nil
		}
	}

	numLoads := len(portsDiff)
	if writeMem.NumUops()-writeReg.NumUops() != numLoads {
		return false, nil
	}

	shortName := e.Profile.ShortName()
	resDefs, cycles := groupResources(writeReg.Resources())
	exePorts := e.exePortsList(resDefs)
	latStr := e.Profile.LatString(writeReg.Latency())

	loadLat := writeMem.Latency() - writeReg.Latency()
	if loadLat < 0 {
		fmt.Fprint(w, "// Warning: negtive load latency.\n")
	}

	fmt.Fprintf(w, "defm : %sWriteResPair<%s, %s, %s", shortName, writeReg.Name(), exePorts, latStr)

	tailer := ">;\n"
	mustPresent := false
	if numLoads != 1 {
		tailer = fmt.Sprintf(", %d%s", numLoads, tailer)
		mustPresent = true
	}
	if mustPresent || loadLat != e.Profile.LoadLatency() {
		tailer = fmt.Sprintf(", %d%s", loadLat, tailer)
		mustPresent = true
	}
	if mustPresent || writeReg.NumUops() != 1 {
		tailer = fmt.Sprintf(", %d%s", writeReg.NumUops(), tailer)
		mustPresent = true
	}
	if mustPresent || !allOnes(cycles) {
		tailer = fmt.Sprintf(", %s%s", intsList(cycles), tailer)
	}
	fmt.Fprint(w, tailer)
	return true, nil
}

// emitWriteRes emits a single, non-paired write declaration: the full
// X86WriteRes-style form for a multi-uop write, or the shortest WriteRes
// form (eliding default fields) for a single-uop write.
func (e *Emitter) emitWriteRes(w io.Writer, write *sched.Write) {
	numUops := write.NumUops()
	resDefs, cycles := groupResources(write.Resources())
	exePorts := e.exePortsList(resDefs)
	latStr := e.Profile.LatString(write.Latency())

	if numUops != 1 {
		fmt.Fprintf(w, "defm : WriteRes<%s, %s, %s, %s, %d>;\n",
			write.Name(), exePorts, latStr, intsList(cycles), numUops)
		return
	}

	fmt.Fprintf(w, "def : WriteRes<%s, %s>", write.Name(), exePorts)
	var body strings.Builder
	if !allOnes(cycles) {
		fmt.Fprintf(&body, "  let ResourceCycles = %s;\n", intsList(cycles))
	}
	if write.Latency() != 1 {
		fmt.Fprintf(&body, "  let Latency = %s;\n", latStr)
	}
	if body.Len() > 0 {
		fmt.Fprintf(w, " {\n%s}\n", body.String())
	} else {
		fmt.Fprint(w, ";\n")
	}
}

// emitSchedWriteRes emits a SchedWriteRes declaration, the synthesized
// per-instruction override type.
func (e *Emitter) emitSchedWriteRes(w io.Writer, write *sched.Write) {
	resDefs, cycles := groupResources(write.Resources())
	exePorts := e.exePortsList(resDefs)
	latStr := e.Profile.LatString(write.Latency())

	fmt.Fprintf(w, "def %s : SchedWriteRes<%s>", write.Name(), exePorts)
	var body strings.Builder
	if !allOnes(cycles) {
		fmt.Fprintf(&body, "  let ResourceCycles = %s;\n", intsList(cycles))
	}
	if write.Latency() != 1 {
		fmt.Fprintf(&body, "  let Latency = %s;\n", latStr)
	}
	if write.NumUops() != 1 {
		fmt.Fprintf(&body, "  let NumMicroOps = %d;\n", write.NumUops())
	}
	if body.Len() > 0 {
		fmt.Fprintf(w, " {\n%s}\n", body.String())
	} else {
		fmt.Fprint(w, ";\n")
	}
}
