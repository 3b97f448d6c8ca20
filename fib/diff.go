package fib

// ChangeKind classifies a forwarding-table difference.
type ChangeKind int

const (
	// Added: the destination became reachable.
	Added ChangeKind = iota
	// Removed: the destination is no longer reachable.
	Removed
	// Changed: next hop or cost differ.
	Changed
)

// String returns the lower-case kind name.
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "changed"
	}
}

// Change is one row-level difference between two tables of the same source.
// Old is zero for Added, New is zero for Removed.
type Change struct {
	Kind ChangeKind
	Old  Entry
	New  Entry
}

// Diff lists what an installer has to do to move the forwarding plane from
// old to next, ordered by destination. Both tables must be sorted, which
// Build guarantees.
// Complexity: O(len(old) + len(next)).
func Diff(old, next Table) []Change {
	var out []Change
	i, j := 0, 0
	for i < len(old.Entries) || j < len(next.Entries) {
		switch {
		case j == len(next.Entries) ||
			(i < len(old.Entries) && old.Entries[i].Destination < next.Entries[j].Destination):
			out = append(out, Change{Kind: Removed, Old: old.Entries[i]})
			i++
		case i == len(old.Entries) ||
			next.Entries[j].Destination < old.Entries[i].Destination:
			out = append(out, Change{Kind: Added, New: next.Entries[j]})
			j++
		default:
			if old.Entries[i] != next.Entries[j] {
				out = append(out, Change{Kind: Changed, Old: old.Entries[i], New: next.Entries[j]})
			}
			i++
			j++
		}
	}

	return out
}

// Destination returns the destination the change applies to.
func (c Change) Destination() string {
	if c.Kind == Added {
		return c.New.Destination
	}

	return c.Old.Destination
}
