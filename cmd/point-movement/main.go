// Package main provides the entry point for the point-movement CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gisportsmouth/point-movement/cmd/point-movement/commands"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "point-movement",
		Short: "Point movement over time - compare repeated surveys of identified points",
		Long: `point-movement monitors change over time for uniquely identified points.

Given a headerless CSV of repeated measurements (survey, point_id, x, y, z),
it computes distance, azimuth and height change between every consecutive
pair of surveys for each point, and the total movement between each point's
first and last survey.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "point-movement %s\n", Version)
		},
	}
}
