package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/seedmap/almanac/pkg/parse"
)

// Config is the optional YAML config file surface. Flags and positional
// arguments win over config values.
type Config struct {
	Input string `yaml:"input"`
	Parts string `yaml:"parts"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	var cfg Config
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			return err
		}
	}

	input := cfg.Input
	if len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		return fmt.Errorf("no input file: pass a path or set input in the config")
	}

	want := parts
	if !cmd.Flags().Changed("parts") && cfg.Parts != "" {
		want = cfg.Parts
	}
	if want != "1" && want != "2" && want != "both" {
		return fmt.Errorf("invalid --parts %q: must be 1, 2 or both", want)
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	alm, err := parse.Read(f)
	if err != nil {
		return err
	}
	pipe, err := alm.Pipeline()
	if err != nil {
		return err
	}

	// The pipeline is read-only, so both parts can run concurrently
	// with no coordination.
	var part1, part2 uint64
	g := new(errgroup.Group)
	if want != "2" {
		g.Go(func() error {
			var err error
			part1, err = pipe.RunValues(alm.Seeds)
			return err
		})
	}
	if want != "1" {
		ranges, err := alm.SeedRanges()
		if err != nil {
			return err
		}
		g.Go(func() error {
			var err error
			part2, err = pipe.Run(ranges)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if want != "2" {
		fmt.Fprintf(cmd.OutOrStdout(), "Part 1: %d\n", part1)
	}
	if want != "1" {
		fmt.Fprintf(cmd.OutOrStdout(), "Part 2: %d\n", part2)
	}
	return nil
}
