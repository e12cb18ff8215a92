package interval

import (
	"fmt"
	"sort"
	"strings"
)

// A Set is a collection of intervals jointly representing a value set.
// Members of a working set may overlap; Merge produces the canonical
// sorted, disjoint form.
type Set []Interval

func (r Set) String() string {
	ss := make([]string, 0, len(r))
	for _, iv := range r {
		ss = append(ss, iv.String())
	}
	return strings.Join(ss, ",")
}

// TotalLength returns the number of values r covers, counting values in
// overlapping members once per member.
func (r Set) TotalLength() uint64 {
	var total uint64
	for _, iv := range r {
		total += iv.Length()
	}
	return total
}

// Min returns the smallest start among the members of r.
func (r Set) Min() (uint64, error) {
	if len(r) == 0 {
		return 0, fmt.Errorf("empty interval set")
	}
	min := r[0].Start
	for _, iv := range r[1:] {
		if iv.Start < min {
			min = iv.Start
		}
	}
	return min, nil
}

// Merge returns the minimum and sorted set of intervals that cover r.
// Always returns a copy, to avoid aliasing slice memory in the caller.
func (r Set) Merge() Set {
	switch len(r) {
	case 0:
		return nil
	case 1:
		return Set{r[0]}
	}

	rr := make(Set, len(r))
	copy(rr, r)
	sort.Slice(rr, func(i, j int) bool { return rr[i].less(rr[j]) })
	out := make(Set, 1, len(rr))
	out[0] = rr[0]
	for _, iv := range rr[1:] {
		prev := &out[len(out)-1]
		switch {
		case prev.End == iv.Start:
			// prev and iv touch, merge them.
			//
			//   prev     iv
			// s------es------e
			prev.End = iv.End
		case prev.End < iv.Start:
			// No overlap and not adjacent (per previous case), no
			// merging possible.
			//
			//   prev       iv
			// s------e  s-----e
			out = append(out, iv)
		case prev.End < iv.End:
			// Partial overlap, update prev
			//
			//   prev
			// s------e
			//     s-----e
			//        iv
			prev.End = iv.End
		default:
			// iv entirely contained in prev, nothing to do.
			//
			//    prev
			// s--------e
			//  s-----e
			//     iv
		}
	}
	return out
}
