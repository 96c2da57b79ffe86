package emit_test

import (
	"strings"
	"testing"

	"github.com/sarchlab/schedgen/internal/emit"
	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/sched"
	"github.com/sarchlab/schedgen/internal/target"
)

func TestEmitSingleUopWriteShortForm(t *testing.T) {
	reg := sched.NewRegistry()
	profile := target.NewSkylake()
	w := reg.Write("WriteALU")
	w.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0, 1)...)}, []int{1}, 1, 1, false)

	in := instr.New("ADD32rr", nil, []*sched.Write{w}, "")

	var b strings.Builder
	if err := emit.New(reg, profile, []*instr.Instruction{in}).Emit(&b); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "def : WriteRes<WriteALU, [SKLPort00_01]>;") {
		t.Errorf("expected shortest WriteRes form, got:\n%s", out)
	}
}

func TestEmitMultiUopWriteFullForm(t *testing.T) {
	reg := sched.NewRegistry()
	profile := target.NewSkylake()
	w := reg.Write("WriteComplex")
	w.SetResources([]resource.PortSet{
		resource.NewPortSet(resource.Ports(0)...),
		resource.NewPortSet(resource.Ports(1)...),
	}, []int{1, 1}, 3, 2, false)

	in := instr.New("COMPLEXrr", nil, []*sched.Write{w}, "")

	var b strings.Builder
	if err := emit.New(reg, profile, []*instr.Instruction{in}).Emit(&b); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "defm : WriteRes<WriteComplex, [SKLPort00, SKLPort01], 3, [1, 1], 2>;") {
		t.Errorf("expected full WriteRes form, got:\n%s", out)
	}
}

func TestEmitUnsupportedWrite(t *testing.T) {
	reg := sched.NewRegistry()
	profile := target.NewSkylake()
	w := reg.Write("WriteAVX512")
	w.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)
	w.SetSupported(false)

	in := instr.New("VADDPDZrr", nil, []*sched.Write{w}, "")

	var b strings.Builder
	if err := emit.New(reg, profile, []*instr.Instruction{in}).Emit(&b); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if !strings.Contains(b.String(), "defm : WriteResUnsupported<WriteAVX512>;") {
		t.Errorf("expected unsupported marker, got:\n%s", b.String())
	}
}

func TestEmitIncompleteWriteGetsFixme(t *testing.T) {
	reg := sched.NewRegistry()
	profile := target.NewSkylake()
	w := reg.Write("WriteUnknown")

	in := instr.New("WEIRDrr", nil, []*sched.Write{w}, "")

	var b strings.Builder
	if err := emit.New(reg, profile, []*instr.Instruction{in}).Emit(&b); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "// FIXME: Incompleted schedwrite.") {
		t.Errorf("expected FIXME comment, got:\n%s", out)
	}
	if !strings.Contains(out, "defm : WriteResUnsupported<WriteUnknown>;") {
		t.Errorf("expected unsupported marker after FIXME, got:\n%s", out)
	}
}

func TestEmitDeadWriteAtEnd(t *testing.T) {
	reg := sched.NewRegistry()
	profile := target.NewSkylake()
	live := reg.Write("WriteLive")
	live.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)
	dead := reg.Write("WriteDead")
	dead.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(1)...)}, []int{1}, 1, 1, false)

	in := instr.New("ADD32rr", nil, []*sched.Write{live}, "")

	var b strings.Builder
	if err := emit.New(reg, profile, []*instr.Instruction{in}).Emit(&b); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	out := b.String()
	deadIdx := strings.Index(out, "Dead schedwrites")
	if deadIdx < 0 {
		t.Fatalf("expected dead-schedwrite section, got:\n%s", out)
	}
	if !strings.Contains(out[deadIdx:], "defm : WriteResUnsupported<WriteDead>;") {
		t.Errorf("expected dead write emitted unsupported, got:\n%s", out)
	}
}

func TestEmitInstrwGroupsSharedSignature(t *testing.T) {
	reg := sched.NewRegistry()
	profile := target.NewSkylake()
	w := reg.Write("WriteShared")
	w.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)

	in1 := instr.New("ABS8ri8", nil, []*sched.Write{w}, "")
	in1.SetUseInstrw(true)
	in2 := instr.New("ABS16ri8", nil, []*sched.Write{w}, "")
	in2.SetUseInstrw(true)

	var b strings.Builder
	if err := emit.New(reg, profile, []*instr.Instruction{in1, in2}).Emit(&b); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "InstRW<[WriteShared], (instregex \"^ABS(8|16)ri8$\")>;") {
		t.Errorf("expected merged instregex binding, got:\n%s", out)
	}
}

func TestEmitInstrwLiteralBinding(t *testing.T) {
	reg := sched.NewRegistry()
	profile := target.NewSkylake()
	w := reg.Write("WriteOnlyOne")
	w.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)

	in := instr.New("MOV32rr", nil, []*sched.Write{w}, "")
	in.SetUseInstrw(true)

	var b strings.Builder
	if err := emit.New(reg, profile, []*instr.Instruction{in}).Emit(&b); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if !strings.Contains(b.String(), "InstRW<[WriteOnlyOne], (instrs MOV32rr)>;") {
		t.Errorf("expected literal instrs binding, got:\n%s", b.String())
	}
}

func TestEmitSchedWriteResDeclaration(t *testing.T) {
	reg := sched.NewRegistry()
	profile := target.NewSkylake()
	res := reg.InternSchedWriteRes("SKL", []resource.PortSet{resource.NewPortSet(resource.Ports(2)...)}, []int{1}, 2, 1)

	in := instr.New("WEIRDrr", nil, []*sched.Write{res}, "")
	in.SetUseInstrw(true)

	var b strings.Builder
	if err := emit.New(reg, profile, []*instr.Instruction{in}).Emit(&b); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "def SKLWriteResGroup0 : SchedWriteRes<[SKLPort02]>") {
		t.Errorf("expected SchedWriteRes declaration, got:\n%s", out)
	}
	if !strings.Contains(out, "let Latency = 2;") {
		t.Errorf("expected non-default latency field, got:\n%s", out)
	}
	if strings.Contains(out, "WriteRes<SKLWriteResGroup0,") {
		t.Errorf("SchedWriteRes must not also be emitted as a bare WriteRes, got:\n%s", out)
	}
}

func TestEmitPairedWriteCompactForm(t *testing.T) {
	reg := sched.NewRegistry()
	profile := target.NewSkylake()

	writeReg := reg.Write("WriteFoo")
	writeReg.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)
	writeLd := reg.Write("WriteFooLd")
	loadPorts := resource.NewPortSet(profile.LoadPorts()...)
	writeLd.SetResources([]resource.PortSet{
		resource.NewPortSet(resource.Ports(0)...),
		loadPorts,
	}, []int{1, 1}, 1+profile.LoadLatency(), 2, false)

	in1 := instr.New("FOOrr", nil, []*sched.Write{writeReg}, "")
	in2 := instr.New("FOOrm", nil, []*sched.Write{writeLd}, "")

	var b strings.Builder
	if err := emit.New(reg, profile, []*instr.Instruction{in1, in2}).Emit(&b); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "defm : SKLWriteResPair<WriteFoo, [SKLPort00], 1>;") {
		t.Errorf("expected compact paired form, got:\n%s", out)
	}
}
