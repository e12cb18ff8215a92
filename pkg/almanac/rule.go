package almanac

import (
	"fmt"
	"math"

	"github.com/seedmap/almanac/pkg/interval"
)

// A Rule remaps the half-open source span [Src, Src+Length) to
// [Dst, Dst+Length) by constant offset.
type Rule struct {
	Dst    uint64
	Src    uint64
	Length uint64
}

func (r Rule) Validate() error {
	if r.Length == 0 {
		return fmt.Errorf("%w: zero length (dst %d src %d)", ErrMalformedRule, r.Dst, r.Src)
	}
	if r.Src > math.MaxUint64-r.Length || r.Dst > math.MaxUint64-r.Length {
		return fmt.Errorf("%w: span %d+%d overflows", ErrMalformedRule, max(r.Src, r.Dst), r.Length)
	}
	return nil
}

// Source returns the span of values the rule remaps.
func (r Rule) Source() interval.Interval {
	return interval.Interval{Start: r.Src, End: r.Src + r.Length}
}

// Translate maps x through the rule, reporting whether x falls within
// the rule's source span.
func (r Rule) Translate(x uint64) (uint64, bool) {
	if x < r.Src || x >= r.Src+r.Length {
		return 0, false
	}
	return x - r.Src + r.Dst, true
}

// shift translates a sub-span of the rule's source span. The caller
// guarantees iv is covered by Source().
func (r Rule) shift(iv interval.Interval) interval.Interval {
	return interval.Interval{
		Start: iv.Start - r.Src + r.Dst,
		End:   iv.End - r.Src + r.Dst,
	}
}
