package almanac

import (
	"errors"
	"fmt"

	"github.com/seedmap/almanac/pkg/interval"
)

// A SeedRange describes Length seed values starting at Start.
type SeedRange struct {
	Start  uint64
	Length uint64
}

// A Pipeline is an ordered composition of stages. It is immutable once
// built and safe to share across concurrent runs.
type Pipeline struct {
	stages []Stage
}

// Build validates every rule of every stage and returns the pipeline.
// All malformed rules are reported, not only the first. Zero stages is
// legal and yields the identity pipeline.
func Build(stages []Stage) (*Pipeline, error) {
	var errm error
	for i, s := range stages {
		for _, r := range s.Rules {
			if err := r.Validate(); err != nil {
				errm = errors.Join(errm, fmt.Errorf("stage %d %q: %w", i, s.Name, err))
			}
		}
	}
	if errm != nil {
		return nil, errm
	}
	p := &Pipeline{stages: make([]Stage, len(stages))}
	copy(p.stages, stages)
	return p, nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Run maps every value of every seed range through all stages and
// returns the minimum mapped value.
func (p *Pipeline) Run(seeds []SeedRange) (uint64, error) {
	if len(seeds) == 0 {
		return 0, fmt.Errorf("%w: no seed ranges", ErrEmptyInput)
	}
	set := make(interval.Set, 0, len(seeds))
	for _, sr := range seeds {
		iv, err := interval.Make(sr.Start, sr.Length)
		if err != nil {
			return 0, fmt.Errorf("seed range: %w", err)
		}
		set = append(set, iv)
	}
	for _, s := range p.stages {
		set = s.Apply(set)
	}
	return set.Min()
}

// RunValues is Run over single-value seed ranges. It returns the same
// minimum as folding Lookup over each value individually.
func (p *Pipeline) RunValues(values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no seed values", ErrEmptyInput)
	}
	seeds := make([]SeedRange, 0, len(values))
	for _, v := range values {
		seeds = append(seeds, SeedRange{Start: v, Length: 1})
	}
	return p.Run(seeds)
}

// Lookup maps a single value through all stages in order.
func (p *Pipeline) Lookup(x uint64) uint64 {
	for _, s := range p.stages {
		x = s.Lookup(x)
	}
	return x
}
