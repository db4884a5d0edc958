package schedule

// Set is an ordered collection of non-overlapping intervals representing
// the unbooked time of a single posting. After every mutation the
// intervals are sorted ascending by start and fully merged: for adjacent
// members [L1,R1), [L2,R2) the invariant R1 < L2 holds strictly, because
// touching intervals are coalesced on insert.
//
// A Set is exclusively owned by the posting it describes and is not safe
// for concurrent mutation.
type Set struct {
	intervals []Interval
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{}
}

// Add merge-inserts [s, e) as available time. Zero and negative length
// inputs are dropped. Every existing interval that overlaps or touches
// the new one is replaced by a single interval spanning the union. One
// linear pass; relies on the set already being sorted and merged.
func (st *Set) Add(s, e int) {
	if s >= e {
		return
	}

	newL, newR := s, e
	merged := make([]Interval, 0, len(st.intervals)+1)
	inserted := false

	for _, iv := range st.intervals {
		switch {
		case iv.End < newL:
			// Entirely before the new interval, not even touching.
			merged = append(merged, iv)
		case newR < iv.Start:
			// Entirely after: flush the accumulated interval first.
			if !inserted {
				merged = append(merged, Interval{newL, newR})
				inserted = true
			}
			merged = append(merged, iv)
		default:
			// Overlapping or abutting: grow the accumulator.
			newL = min(newL, iv.Start)
			newR = max(newR, iv.End)
		}
	}
	if !inserted {
		merged = append(merged, Interval{newL, newR})
	}
	st.intervals = merged
}

// Contains reports whether [s, e) is fully covered by a single free
// interval. A request spanning a gap between two disjoint intervals is
// never satisfiable; abutting coverage cannot occur because abutting
// intervals are merged on insert.
func (st *Set) Contains(s, e int) bool {
	if s >= e {
		return false
	}
	for _, iv := range st.intervals {
		if iv.Contains(s, e) {
			return true
		}
		if iv.Start > s {
			break
		}
	}
	return false
}

// Reserve removes [s, e) from the first interval that fully contains it,
// reinserting the left and right remainders when they are non-empty.
// Returns false when the span is invalid or no containing interval
// exists. In a merged set at most one interval can contain a given span.
func (st *Set) Reserve(s, e int) bool {
	if s >= e {
		return false
	}

	next := make([]Interval, 0, len(st.intervals)+1)
	ok := false
	for _, iv := range st.intervals {
		if !ok && iv.Contains(s, e) {
			ok = true
			if iv.Start < s {
				next = append(next, Interval{iv.Start, s})
			}
			if e < iv.End {
				next = append(next, Interval{e, iv.End})
			}
			continue
		}
		next = append(next, iv)
	}
	if !ok {
		return false
	}
	st.intervals = next
	return true
}

// Intervals returns a copy of the underlying intervals in ascending order.
func (st *Set) Intervals() []Interval {
	out := make([]Interval, len(st.intervals))
	copy(out, st.intervals)
	return out
}

func (st *Set) Len() int {
	return len(st.intervals)
}
