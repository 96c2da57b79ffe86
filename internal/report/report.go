// Package report renders a post-run summary table of the inference
// engine's output: how many SchedWrites ended up live, dead,
// unsupported, or synthesized. Grounded on the teacher's
// core/util.go, which reaches for go-pretty/v6/table for tabular
// diagnostics (waveform/register/buffer dumps); here the same library
// renders scheduler-model stats instead.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/sched"
)

// Stats summarizes one pipeline run for the -stats CLI flag.
type Stats struct {
	TargetCPU           string
	TotalInstructions   int
	InstrwOverrides     int
	LiveWrites          int
	DeadWrites          int
	UnsupportedWrites   int
	SynthesizedWriteRes int
}

// Collect computes Stats from a finished inference run (registry and
// instructions after infer.Pipeline.Run).
func Collect(targetCPU string, reg *sched.Registry, instrs []*instr.Instruction) Stats {
	lived := map[*sched.Write]bool{}
	instrwCount := 0
	for _, in := range instrs {
		if in.UseInstrw() {
			instrwCount++
		}
		for _, sw := range in.SchedWrites {
			if sw.Kind() == sched.KindSequence {
				for _, leaf := range sw.Expand() {
					lived[leaf] = true
				}
			} else {
				lived[sw] = true
			}
		}
	}

	stats := Stats{
		TargetCPU:         targetCPU,
		TotalInstructions: len(instrs),
		InstrwOverrides:   instrwCount,
		LiveWrites:        len(lived),
	}

	for _, w := range reg.Writes() {
		if !lived[w] {
			stats.DeadWrites++
			continue
		}
		if !w.IsSupported() {
			stats.UnsupportedWrites++
		}
		if w.Kind() == sched.KindRes {
			stats.SynthesizedWriteRes++
		}
	}

	return stats
}

// Render writes Stats as a go-pretty table to w.
func Render(w io.Writer, s Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("schedgen stats: %s", s.TargetCPU))
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Instructions", s.TotalInstructions})
	t.AppendRow(table.Row{"InstRW overrides", s.InstrwOverrides})
	t.AppendRow(table.Row{"Live SchedWrites", s.LiveWrites})
	t.AppendRow(table.Row{"Dead SchedWrites", s.DeadWrites})
	t.AppendRow(table.Row{"Unsupported SchedWrites", s.UnsupportedWrites})
	t.AppendRow(table.Row{"Synthesized SchedWriteRes", s.SynthesizedWriteRes})
	t.Render()
}
