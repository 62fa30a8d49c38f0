package main

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/citynav/pkg"
	"github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/engine"
	"github.com/lintang-b-s/citynav/pkg/engine/routing"
	"github.com/lintang-b-s/citynav/pkg/geo"
	"github.com/lintang-b-s/citynav/pkg/logger"
	met "github.com/lintang-b-s/citynav/pkg/metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func buildEngine(opts *cliOptions) (*engine.Engine, error) {
	log := zap.NewNop()
	if opts.verbose {
		var err error
		log, err = logger.New()
		if err != nil {
			return nil, err
		}
	}

	return engine.NewEngine(engine.Config{
		NetworkFilePath:    opts.networkFile,
		CanvasHeight:       opts.canvasHeight,
		EstimateTravelTime: !opts.noTravelTime,
	}, log)
}

func runCities(cmd *cobra.Command, opts *cliOptions) error {
	e, err := buildEngine(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	graph := e.GetRoutingEngine().GetGraph()
	graph.ForCities(func(c *datastructure.City) {
		line := fmt.Sprintf("%-16s x=%8.2f y=%8.2f roads=%d", c.GetName(), c.GetX(), c.GetY(), c.GetOutDegree())
		if coord, ok := c.GetCoordinate(); ok {
			line += fmt.Sprintf(" lat=%.4f lon=%.4f", coord.Lat, coord.Lon)
		}
		fmt.Fprintln(out, line)
	})
	return nil
}

func runRoute(cmd *cobra.Command, opts *cliOptions, start, end string) error {
	e, err := buildEngine(opts)
	if err != nil {
		return err
	}

	res := e.GetRoutingEngine().FindRoute(start, end)
	out := cmd.OutOrStdout()

	switch res.GetStatus() {
	case pkg.INVALID_CITY:
		return fmt.Errorf("unknown city: %s", strings.Join(res.GetInvalidCities(), ", "))
	case pkg.NO_ROUTE:
		fmt.Fprintf(out, "No route from %s to %s\n", start, end)
		return nil
	}

	fmt.Fprintln(out, strings.Join(res.GetPathNames(), " -> "))
	path := res.GetPath()
	for i := 0; i+1 < len(path); i++ {
		fmt.Fprintf(out, "  %s -> %s%s\n", path[i].Name, path[i+1].Name, legHeading(path[i], path[i+1]))
	}

	summary := fmt.Sprintf("Distance: %s km", met.FormatDistance(res.GetDistance()))
	if tt := res.GetTravelTime(); tt != nil {
		summary += ", Time: " + tt.String()
	}
	fmt.Fprintln(out, summary)
	fmt.Fprintf(out, "Road distance: %s km\n", met.FormatDistance(res.GetRoadDistance()))
	return nil
}

func legHeading(from, to routing.RouteCity) string {
	if from.Coordinate == nil || to.Coordinate == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", geo.CompassDirection(geo.BearingTo(*from.Coordinate, *to.Coordinate)))
}

func runAllPairs(cmd *cobra.Command, opts *cliOptions) error {
	e, err := buildEngine(opts)
	if err != nil {
		return err
	}

	re := e.GetRoutingEngine()
	results, err := re.AllPairs(cmd.Context(), opts.workers)
	if err != nil {
		return err
	}

	graph := re.GetGraph()
	n := graph.NumberOfCities()
	found, noRoute := 0, 0
	for _, pr := range results {
		if pr.Result.Found() {
			found++
		} else {
			noRoute++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cities: %d, roads: %d, strongly connected components: %d\n",
		n, graph.NumberOfRoads(), graph.NumberOfSCCs())
	fmt.Fprintf(out, "pairs: %d, found: %d, no route: %d\n", len(results), found, noRoute)

	// results are ordered by (origin, destination), so pair (s, t) is at s*n+t
	asymmetric := 0
	for s := 0; s < n; s++ {
		for t := s + 1; t < n; t++ {
			st, ts := results[s*n+t].Result, results[t*n+s].Result
			if st.GetStatus() != ts.GetStatus() || !datastructure.Eq(st.GetRoadDistance(), ts.GetRoadDistance()) {
				asymmetric++
				fmt.Fprintf(out, "asymmetric: %s <-> %s (%s / %s)\n", graph.GetCityName(datastructure.Index(s)),
					graph.GetCityName(datastructure.Index(t)), met.FormatDistance(st.GetRoadDistance()),
					met.FormatDistance(ts.GetRoadDistance()))
			}
		}
	}
	fmt.Fprintf(out, "asymmetric pairs: %d\n", asymmetric)
	return nil
}
