package resource

import "testing"

func TestNewPortSetCanonicalizes(t *testing.T) {
	a := NewPortSet(Ports(2, 0, 1)...)
	b := NewPortSet(Ports(0, 1, 2)...)
	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v after canonicalization", a, b)
	}
	if a.Key() != b.Key() {
		t.Fatalf("expected equal keys, got %q and %q", a.Key(), b.Key())
	}
}

func TestPortSetEmpty(t *testing.T) {
	if !(PortSet{}).Empty() {
		t.Fatal("expected empty PortSet to report Empty()")
	}
	if NewPortSet(Ports(0)...).Empty() {
		t.Fatal("expected non-empty PortSet to report !Empty()")
	}
}

func TestPortSetKeyHandlesInvalidPort(t *testing.T) {
	ps := NewPortSet(InvalidPort)
	if ps.Key() != "-1" {
		t.Fatalf("expected key \"-1\" for InvalidPort, got %q", ps.Key())
	}
}

func TestPortSetLessOrdersByPrefix(t *testing.T) {
	short := NewPortSet(Ports(0, 1)...)
	long := NewPortSet(Ports(0, 1, 2)...)
	if !short.Less(long) {
		t.Fatal("expected shorter prefix-equal PortSet to sort first")
	}
	if long.Less(short) {
		t.Fatal("expected longer PortSet not to sort before its own prefix")
	}
}
