package report_test

import (
	"strings"
	"testing"

	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/report"
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/sched"
)

func TestCollect(t *testing.T) {
	reg := sched.NewRegistry()

	live := reg.Write("WriteLive")
	live.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)

	dead := reg.Write("WriteDead")
	dead.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(1)...)}, []int{1}, 1, 1, false)

	unsupported := reg.Write("WriteUnsupported")
	unsupported.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(2)...)}, []int{1}, 1, 1, false)
	unsupported.SetSupported(false)

	res := reg.InternSchedWriteRes("SKL", []resource.PortSet{resource.NewPortSet(resource.Ports(3)...)}, []int{1}, 1, 1)

	in1 := instr.New("ADD32rr", nil, []*sched.Write{live}, "")
	in2 := instr.New("WEIRDrr", nil, []*sched.Write{res, unsupported}, "")
	in2.SetUseInstrw(true)

	stats := report.Collect("skylake", reg, []*instr.Instruction{in1, in2})

	if stats.TotalInstructions != 2 {
		t.Errorf("TotalInstructions = %d, want 2", stats.TotalInstructions)
	}
	if stats.InstrwOverrides != 1 {
		t.Errorf("InstrwOverrides = %d, want 1", stats.InstrwOverrides)
	}
	if stats.LiveWrites != 3 {
		t.Errorf("LiveWrites = %d, want 3", stats.LiveWrites)
	}
	if stats.DeadWrites != 1 {
		t.Errorf("DeadWrites = %d, want 1", stats.DeadWrites)
	}
	if stats.UnsupportedWrites != 1 {
		t.Errorf("UnsupportedWrites = %d, want 1", stats.UnsupportedWrites)
	}
	if stats.SynthesizedWriteRes != 1 {
		t.Errorf("SynthesizedWriteRes = %d, want 1", stats.SynthesizedWriteRes)
	}
}

func TestRenderProducesTable(t *testing.T) {
	stats := report.Stats{
		TargetCPU:         "skylake",
		TotalInstructions: 10,
		LiveWrites:        5,
	}
	var b strings.Builder
	report.Render(&b, stats)

	out := b.String()
	if !strings.Contains(out, "skylake") || !strings.Contains(out, "Instructions") {
		t.Errorf("Render() output missing expected content:\n%s", out)
	}
}
