package interval

import (
	"errors"
	"fmt"
	"math"
)

// ErrMalformed indicates an interval or range description that does not
// describe at least one value.
var ErrMalformed = errors.New("malformed interval")

// An Interval is a half-open range [Start, End) of uint64 values.
type Interval struct {
	Start uint64
	End   uint64
}

// Make returns the interval covering length values starting at start.
func Make(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, fmt.Errorf("%w: zero length at start %d", ErrMalformed, start)
	}
	if start > math.MaxUint64-length {
		return Interval{}, fmt.Errorf("%w: start %d length %d overflows", ErrMalformed, start, length)
	}
	return Interval{Start: start, End: start + length}, nil
}

// New returns the interval [start, end).
func New(start, end uint64) (Interval, error) {
	if start >= end {
		return Interval{}, fmt.Errorf("%w: %d-%d", ErrMalformed, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

func (r Interval) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

func (r Interval) IsValid() bool {
	return r.Start < r.End
}

func (r Interval) IsZero() bool {
	return r == Interval{}
}

// Length returns the number of values r covers.
func (r Interval) Length() uint64 {
	return r.End - r.Start
}

// Contains reports whether x falls within r.
func (r Interval) Contains(x uint64) bool {
	return r.Start <= x && x < r.End
}

// Overlaps reports whether r and other share at least one value.
func (r Interval) Overlaps(other Interval) bool {
	return r.Start < other.End && other.Start < r.End
}

// EntirelyBefore reports whether r lies entirely before other in value
// space.
func (r Interval) EntirelyBefore(other Interval) bool {
	return r.End <= other.Start
}

// CoveredBy reports whether r is entirely contained within other.
func (r Interval) CoveredBy(other Interval) bool {
	return other.Start <= r.Start && r.End <= other.End
}

// InMiddleOf reports whether r is inside other, but not touching the
// edges of other.
func (r Interval) InMiddleOf(other Interval) bool {
	return other.Start < r.Start && r.End < other.End
}

// OverlapsStartOf reports whether r entirely overlaps the start of
// other, but not all of other.
func (r Interval) OverlapsStartOf(other Interval) bool {
	return r.Start <= other.Start && r.End < other.End && other.Start < r.End
}

// OverlapsEndOf reports whether r entirely overlaps the end of other,
// but not all of other.
func (r Interval) OverlapsEndOf(other Interval) bool {
	return other.Start < r.Start && other.End <= r.End && r.Start < other.End
}

// Intersect returns the intersection of r and other. If they do not
// overlap, the result has unspecified bounds and Length() == 0.
func (r Interval) Intersect(other Interval) Interval {
	if r.Start < other.Start {
		r.Start = other.Start
	}
	if r.End > other.End {
		r.End = other.End
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

func (r Interval) less(other Interval) bool {
	if r.Start != other.Start {
		return r.Start < other.Start
	}
	return other.End < r.End
}
