package sched

import (
	"testing"

	"github.com/sarchlab/schedgen/internal/resource"
)

func TestRegistryWriteIsLazilyCreatedAndIncomplete(t *testing.T) {
	reg := NewRegistry()
	w := reg.Write("WriteALU")
	if w.Kind() != KindBase {
		t.Fatalf("expected KindBase, got %v", w.Kind())
	}
	if w.IsComplete() {
		t.Fatal("expected a freshly lazily-created write to be incomplete")
	}
	if reg.Write("WriteALU") != w {
		t.Fatal("expected repeated lookups to return the same write")
	}
}

func TestSetResourcesMarksComplete(t *testing.T) {
	reg := NewRegistry()
	w := reg.Write("WriteALU")
	ports := []resource.PortSet{resource.NewPortSet(resource.Ports(0, 1, 5)...)}
	w.SetResources(ports, []int{1}, 1, 1, false)

	if !w.IsComplete() {
		t.Fatal("expected write to be complete after SetResources")
	}
	if w.Latency() != 1 || w.NumUops() != 1 {
		t.Fatalf("got latency=%d numUops=%d, want 1,1", w.Latency(), w.NumUops())
	}
}

func TestSequenceExpandFlattensNestedRepeats(t *testing.T) {
	reg := NewRegistry()
	a := reg.Write("WriteA")
	a.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)
	b := reg.Write("WriteB")
	b.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(1)...)}, []int{1}, 2, 1, false)

	inner := reg.NewSequence("WriteInner", []*Write{a, b}, 2)
	outer := reg.NewSequence("WriteOuter", []*Write{inner, a}, 1)

	leaves := outer.Expand()
	if len(leaves) != 5 {
		t.Fatalf("got %d leaves, want 5 (a,b,a,b,a)", len(leaves))
	}
	wantNames := []string{"WriteA", "WriteB", "WriteA", "WriteB", "WriteA"}
	for i, leaf := range leaves {
		if leaf.Name() != wantNames[i] {
			t.Fatalf("leaf %d: got %s, want %s", i, leaf.Name(), wantNames[i])
		}
	}
	if outer.Latency() != 1+2+1+2+1 {
		t.Fatalf("got sequence latency %d, want 7", outer.Latency())
	}
}

func TestSequenceIsSupportedRequiresAllSubWrites(t *testing.T) {
	reg := NewRegistry()
	a := reg.Write("WriteA")
	a.SetSupported(true)
	b := reg.Write("WriteB")
	b.SetSupported(false)

	seq := reg.NewSequence("WriteSeq", []*Write{a, b}, 1)
	if seq.IsSupported() {
		t.Fatal("expected sequence with one unsupported sub-write to be unsupported")
	}
}

func TestInternSchedWriteResDedupesBySignature(t *testing.T) {
	reg := NewRegistry()
	ports := []resource.PortSet{resource.NewPortSet(resource.Ports(0, 1)...)}

	w1 := reg.InternSchedWriteRes("", ports, []int{1}, 3, 1)
	w2 := reg.InternSchedWriteRes("", ports, []int{1}, 3, 1)
	if w1 != w2 {
		t.Fatalf("expected identical signatures to intern to the same write, got %s and %s", w1.Name(), w2.Name())
	}

	otherPorts := []resource.PortSet{resource.NewPortSet(resource.Ports(2)...)}
	w3 := reg.InternSchedWriteRes("", otherPorts, []int{1}, 3, 1)
	if w3 == w1 {
		t.Fatal("expected a distinct resource signature to mint a new write")
	}
	if w3.Name() == w1.Name() {
		t.Fatal("expected distinct SchedWriteRes writes to get distinct names")
	}
}

func TestInternSchedWriteResNamingUsesPrefix(t *testing.T) {
	reg := NewRegistry()
	ports := []resource.PortSet{resource.NewPortSet(resource.Ports(3)...)}
	w := reg.InternSchedWriteRes("ADLP", ports, []int{1}, 1, 1)
	if w.Name() != "ADLPWriteResGroup0" {
		t.Fatalf("got name %q, want \"ADLPWriteResGroup0\"", w.Name())
	}
}
