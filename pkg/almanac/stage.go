package almanac

import (
	"github.com/seedmap/almanac/pkg/interval"
)

// A Stage is one lookup table of the pipeline. Rules are assumed to
// have pairwise-disjoint source spans; if they do not, the first rule
// in slice order wins and the result is still well-defined.
type Stage struct {
	Name  string
	Rules []Rule
}

// Lookup maps a single value through the stage. Values outside every
// rule's source span pass through unchanged.
func (s Stage) Lookup(x uint64) uint64 {
	for _, r := range s.Rules {
		if mapped, ok := r.Translate(x); ok {
			return mapped
		}
	}
	return x
}

// Apply maps an interval set through the stage and returns the exact
// image of the input value set, coalesced. Input members need not be
// sorted or disjoint; each is mapped independently.
//
// Splits happen only at rule span boundaries, so the size of the result
// is bounded by len(in) * len(s.Rules) regardless of how many values
// the intervals cover.
func (s Stage) Apply(in interval.Set) interval.Set {
	out := make(interval.Set, 0, len(in))
	unmapped := make(interval.Set, len(in))
	copy(unmapped, in)

	for _, r := range s.Rules {
		src := r.Source()
		var rest interval.Set
		for _, iv := range unmapped {
			switch {
			case !iv.Overlaps(src):
				rest = append(rest, iv)
			case iv.CoveredBy(src):
				out = append(out, r.shift(iv))
			case src.InMiddleOf(iv):
				rest = append(rest, interval.Interval{Start: iv.Start, End: src.Start})
				out = append(out, r.shift(src))
				rest = append(rest, interval.Interval{Start: src.End, End: iv.End})
			case src.OverlapsStartOf(iv):
				out = append(out, r.shift(interval.Interval{Start: iv.Start, End: src.End}))
				rest = append(rest, interval.Interval{Start: src.End, End: iv.End})
			case src.OverlapsEndOf(iv):
				rest = append(rest, interval.Interval{Start: iv.Start, End: src.Start})
				out = append(out, r.shift(interval.Interval{Start: src.Start, End: iv.End}))
			}
		}
		unmapped = rest
	}

	// Whatever no rule claimed passes through as identity.
	out = append(out, unmapped...)
	return out.Merge()
}
