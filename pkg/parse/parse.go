// Package parse reads the textual almanac format: a "seeds:" line
// followed by blank-line-separated map blocks, each a header and a run
// of "dst src len" rows.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seedmap/almanac/pkg/almanac"
)

const seedsPrefix = "seeds: "

// Headers is the canonical block order of the almanac format.
var Headers = []string{
	"seed-to-soil map:",
	"soil-to-fertilizer map:",
	"fertilizer-to-water map:",
	"water-to-light map:",
	"light-to-temperature map:",
	"temperature-to-humidity map:",
	"humidity-to-location map:",
}

// An Almanac is the parsed form of one input: the raw seeds line plus
// the ordered stage tables.
type Almanac struct {
	Seeds  []uint64
	Stages []almanac.Stage
}

// Read parses an almanac with the canonical seven map blocks.
func Read(r io.Reader) (*Almanac, error) {
	return ReadStages(r, Headers)
}

// ReadStages parses an almanac whose map blocks carry the given
// headers, in order. Each header must appear exactly as declared.
func ReadStages(r io.Reader, headers []string) (*Almanac, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("invalid almanac: missing seeds line")
	}
	line := scanner.Text()
	rest, ok := strings.CutPrefix(line, seedsPrefix)
	if !ok {
		return nil, fmt.Errorf("invalid almanac: expected seeds line, got %q", line)
	}
	seeds, err := parseValues(rest)
	if err != nil {
		return nil, fmt.Errorf("invalid almanac: seeds line: %w", err)
	}

	if !scanner.Scan() || scanner.Text() != "" {
		return nil, fmt.Errorf("invalid almanac: expected blank line after seeds")
	}

	stages := make([]almanac.Stage, 0, len(headers))
	for _, header := range headers {
		if !scanner.Scan() || scanner.Text() != header {
			return nil, fmt.Errorf("invalid almanac: expected header %q, got %q", header, scanner.Text())
		}
		stage := almanac.Stage{Name: strings.TrimSuffix(header, " map:")}
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				break
			}
			rule, err := parseRule(line)
			if err != nil {
				return nil, fmt.Errorf("invalid almanac: %s: %w", stage.Name, err)
			}
			stage.Rules = append(stage.Rules, rule)
		}
		stages = append(stages, stage)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Almanac{Seeds: seeds, Stages: stages}, nil
}

// SeedRanges pairs the seeds line into (start, length) ranges.
func (a *Almanac) SeedRanges() ([]almanac.SeedRange, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("invalid almanac: %d seed values cannot pair into ranges", len(a.Seeds))
	}
	ranges := make([]almanac.SeedRange, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ranges = append(ranges, almanac.SeedRange{Start: a.Seeds[i], Length: a.Seeds[i+1]})
	}
	return ranges, nil
}

// Pipeline builds the validated stage pipeline.
func (a *Almanac) Pipeline() (*almanac.Pipeline, error) {
	return almanac.Build(a.Stages)
}

func parseValues(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no values")
	}
	values := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}

func parseRule(line string) (almanac.Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return almanac.Rule{}, fmt.Errorf("expected 3 fields in rule row %q", line)
	}
	var vals [3]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return almanac.Rule{}, fmt.Errorf("invalid value %q in rule row %q", f, line)
		}
		vals[i] = v
	}
	return almanac.Rule{Dst: vals[0], Src: vals[1], Length: vals[2]}, nil
}
