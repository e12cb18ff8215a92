package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	parts      string

	rootCmd = &cobra.Command{
		Use:           "almanac",
		Short:         "Map seed values through chained almanac lookup tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [input-file]",
		Short: "Compute the lowest location for the seeds (and seed ranges) of an almanac",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve, // Defined in cmd_solve.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the almanac version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
)

func init() {
	solveCmd.Flags().StringVar(&parts, "parts", "both", "which parts to solve: 1, 2 or both")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
	rootCmd.AddCommand(solveCmd, versionCmd)
}
