package resource

import "testing"

func TestContains(t *testing.T) {
	a := Ports(0, 1, 1, 2)
	b := Ports(1, 2)
	if !Contains(a, b, PortEq) {
		t.Fatal("expected a to contain b")
	}
	if Contains(b, a, PortEq) {
		t.Fatal("expected b not to contain a")
	}
}

func TestRemove(t *testing.T) {
	a := Ports(0, 1, 1, 2)
	b := Ports(1, 2)
	got := Remove(a, b, PortEq)
	want := Ports(0, 1)
	if !CountEq(got, want, PortEq) {
		t.Fatalf("Remove(%v, %v) = %v, want %v", a, b, got, want)
	}
}

func TestDiff(t *testing.T) {
	a := Ports(0, 1, 2)
	b := Ports(1, 2, 3)
	got := Diff(a, b, PortEq)
	want := Ports(0, 3)
	if !CountEq(got, want, PortEq) {
		t.Fatalf("Diff(%v, %v) = %v, want %v", a, b, got, want)
	}
}

func TestCountEqIgnoresOrder(t *testing.T) {
	a := Ports(0, 1, 2)
	b := Ports(2, 0, 1)
	if !CountEq(a, b, PortEq) {
		t.Fatal("expected CountEq to ignore order")
	}
	c := Ports(0, 1, 1)
	if CountEq(a, c, PortEq) {
		t.Fatal("expected CountEq to respect multiplicity")
	}
}
