package parse

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/seedmap/almanac/pkg/almanac"
)

const example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestRead(t *testing.T) {
	a, err := Read(strings.NewReader(example))
	assert.NoError(t, err)

	if diff := cmp.Diff([]uint64{79, 14, 55, 13}, a.Seeds); diff != "" {
		t.Errorf("seeds: -want, +got:\n%s", diff)
	}

	assert.Equal(t, len(Headers), len(a.Stages))
	expectedRules := []int{2, 3, 4, 2, 3, 2, 2}
	for i, s := range a.Stages {
		assert.Equal(t, expectedRules[i], len(s.Rules), s.Name)
	}

	assert.Equal(t, "seed-to-soil", a.Stages[0].Name)
	expected := []almanac.Rule{
		{Dst: 50, Src: 98, Length: 2},
		{Dst: 52, Src: 50, Length: 48},
	}
	if diff := cmp.Diff(expected, a.Stages[0].Rules); diff != "" {
		t.Errorf("seed-to-soil rules: -want, +got:\n%s", diff)
	}
}

func TestReadErrors(t *testing.T) {
	cases := map[string]struct {
		in string
	}{
		"Empty": {
			in: "",
		},
		"NoSeedsPrefix": {
			in: "seed: 1 2\n",
		},
		"EmptySeeds": {
			in: "seeds: \n",
		},
		"BadSeedValue": {
			in: "seeds: 1 x\n",
		},
		"NegativeSeedValue": {
			in: "seeds: -1 2\n",
		},
		"MissingBlankAfterSeeds": {
			in: "seeds: 1 2\nseed-to-soil map:\n",
		},
		"WrongHeader": {
			in: "seeds: 1 2\n\nsoil-to-seed map:\n1 2 3\n",
		},
		"OutOfOrderHeaders": {
			in: "seeds: 1 2\n\nsoil-to-fertilizer map:\n1 2 3\n\nseed-to-soil map:\n1 2 3\n",
		},
		"ShortRuleRow": {
			in: "seeds: 1 2\n\nseed-to-soil map:\n1 2\n",
		},
		"BadRuleValue": {
			in: "seeds: 1 2\n\nseed-to-soil map:\n1 2 x\n",
		},
		"MissingLaterBlocks": {
			in: "seeds: 1 2\n\nseed-to-soil map:\n1 2 3\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.in))
			assert.Error(t, err, name)
		})
	}
}

func TestReadStagesShortPipeline(t *testing.T) {
	in := "seeds: 5\n\na-to-b map:\n10 5 3\n"
	a, err := ReadStages(strings.NewReader(in), []string{"a-to-b map:"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(a.Stages))
	assert.Equal(t, "a-to-b", a.Stages[0].Name)
}

func TestSeedRanges(t *testing.T) {
	cases := map[string]struct {
		seeds       []uint64
		expected    []almanac.SeedRange
		expectedErr bool
	}{
		"Normal": {
			seeds: []uint64{79, 14, 55, 13},
			expected: []almanac.SeedRange{
				{Start: 79, Length: 14},
				{Start: 55, Length: 13},
			},
		},
		"None": {
			seeds:    nil,
			expected: []almanac.SeedRange{},
		},
		"OddCount": {
			seeds:       []uint64{79, 14, 55},
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			a := &Almanac{Seeds: tc.seeds}
			got, err := a.SeedRanges()
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	a, err := Read(strings.NewReader(example))
	assert.NoError(t, err)

	p, err := a.Pipeline()
	assert.NoError(t, err)

	part1, err := p.RunValues(a.Seeds)
	assert.NoError(t, err)
	assert.Equal(t, uint64(35), part1)

	ranges, err := a.SeedRanges()
	assert.NoError(t, err)
	part2, err := p.Run(ranges)
	assert.NoError(t, err)
	assert.Equal(t, uint64(46), part2)
}
