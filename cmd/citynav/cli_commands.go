package main

import (
	"github.com/lintang-b-s/citynav/pkg"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	networkFile  string
	canvasHeight float64
	noTravelTime bool
	verbose      bool
	workers      int
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "citynav",
		Short: "Shortest routes over a small city road network",
		Long: `citynav loads a road network (the embedded one by default), and answers
shortest route queries between cities by name.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.networkFile, "network", "", "yaml road network file, the embedded network when empty")
	rootCmd.PersistentFlags().Float64Var(&opts.canvasHeight, "canvas-height", pkg.DEFAULT_CANVAS_HEIGHT, "height of the canvas the cities are projected on")
	rootCmd.PersistentFlags().BoolVar(&opts.noTravelTime, "no-travel-time", false, "do not estimate travel times")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log engine construction")

	citiesCmd := &cobra.Command{
		Use:   "cities",
		Short: "Lists the cities of the network with their canvas positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCities(cmd, opts)
		},
	}

	routeCmd := &cobra.Command{
		Use:   "route [start] [end]",
		Short: "Prints the shortest route between two cities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, opts, args[0], args[1])
		},
	}

	allPairsCmd := &cobra.Command{
		Use:   "allpairs",
		Short: "Routes every ordered pair of cities and reports reachability and asymmetric pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAllPairs(cmd, opts)
		},
	}
	allPairsCmd.Flags().IntVarP(&opts.workers, "workers", "w", 4, "number of concurrent route queries")

	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(allPairsCmd)
	return rootCmd
}
