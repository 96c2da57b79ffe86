package resource

// Contains reports whether multiset a includes every element of multiset
// b, counting multiplicity. Elements are compared with eq; order in a and
// b does not matter, but both are left unmodified.
func Contains[T any](a, b []T, eq func(x, y T) bool) bool {
	remaining := make([]T, len(a))
	copy(remaining, a)
	for _, want := range b {
		idx := -1
		for i, have := range remaining {
			if eq(have, want) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return true
}

// Remove computes the multiset difference a - b. It is undefined (and
// panics) if Contains(a, b) is false, matching the original's unchecked
// listremove semantics under the precondition the engine always upholds.
func Remove[T any](a, b []T, eq func(x, y T) bool) []T {
	remaining := make([]T, len(a))
	copy(remaining, a)
	for _, want := range b {
		idx := -1
		for i, have := range remaining {
			if eq(have, want) {
				idx = i
				break
			}
		}
		if idx < 0 {
			panic("resource: Remove called with b not contained in a")
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return remaining
}

// Diff computes the symmetric multiset difference between a and b:
// elements that remain in a after cancelling common elements, followed by
// elements that remain in b.
func Diff[T any](a, b []T, eq func(x, y T) bool) []T {
	ac := make([]T, len(a))
	copy(ac, a)
	bc := make([]T, len(b))
	copy(bc, b)

	changed := true
	for changed {
		changed = false
		for i, x := range ac {
			idx := -1
			for j, y := range bc {
				if eq(x, y) {
					idx = j
					break
				}
			}
			if idx >= 0 {
				ac = append(ac[:i], ac[i+1:]...)
				bc = append(bc[:idx], bc[idx+1:]...)
				changed = true
				break
			}
		}
	}
	return append(append([]T{}, ac...), bc...)
}

// CountEq reports whether a and b are the same multiset, ignoring order.
func CountEq[T any](a, b []T, eq func(x, y T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	return Contains(a, b, eq) && Contains(b, a, eq)
}

// PortSetEq is the equality predicate for []PortSet multisets, the most
// common instantiation of the generic helpers above.
func PortSetEq(a, b PortSet) bool { return a.Equal(b) }

// PortEq is the equality predicate for []Port multisets.
func PortEq(a, b Port) bool { return a == b }
