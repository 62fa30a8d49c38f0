package metrics

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/citynav/pkg"
	"github.com/lintang-b-s/citynav/pkg/costfunction"
	da "github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/util"
)

// TravelTime. whole hours plus remaining minutes rounded down
type TravelTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func NewTravelTime(hours float64) TravelTime {
	if hours <= 0 || math.IsNaN(hours) {
		return TravelTime{}
	}
	wholeHours := math.Floor(hours)
	minutes := math.Floor((hours - wholeHours) * pkg.MINUTES_PER_HOUR)
	return TravelTime{
		Hours:   int(wholeHours),
		Minutes: int(minutes),
	}
}

func (tt TravelTime) String() string {
	return fmt.Sprintf("%d H %d M", tt.Hours, tt.Minutes)
}

// FormatDistance. distance with a fixed number of decimals for display
func FormatDistance(dist float64) string {
	return util.FormatFloat(dist, pkg.DISTANCE_PRECISION)
}

type PathMetrics struct {
	Distance        float64     // sum of straight-line segment lengths between city positions
	RoadDistance    float64     // sum of Road.Distance along the path (search cost)
	TravelTimeHours float64     // 0 when travel time estimation is disabled
	TravelTime      *TravelTime // nil when travel time estimation is disabled
}

type Metric struct {
	graph              *da.Graph
	timeFunction       *costfunction.TimeFunction
	estimateTravelTime bool
}

func NewMetric(graph *da.Graph, estimateTravelTime bool) *Metric {
	return &Metric{
		graph:              graph,
		timeFunction:       costfunction.NewTimeCostFunction(),
		estimateTravelTime: estimateTravelTime,
	}
}

func (met *Metric) EstimatesTravelTime() bool {
	return met.estimateTravelTime
}

// Compute. metrics of path. paths shorter than 2 cities have zero distance (and zero time).
func (met *Metric) Compute(path []da.Index) PathMetrics {
	pm := PathMetrics{
		Distance:     met.PathDistance(path),
		RoadDistance: met.PathRoadDistance(path),
	}
	if met.estimateTravelTime {
		pm.TravelTimeHours = met.PathTravelTime(path)
		tt := NewTravelTime(pm.TravelTimeHours)
		pm.TravelTime = &tt
	}
	return pm
}

func (met *Metric) segmentLength(u, v da.Index) float64 {
	return met.graph.GetCity(u).GetPosition().DistanceTo(met.graph.GetCity(v).GetPosition())
}

// PathDistance. planar length of the path. this is not the Road.Distance sum used by the search.
func (met *Metric) PathDistance(path []da.Index) float64 {
	if len(path) < 2 {
		return 0
	}
	totalDistance := 0.0
	for i := 0; i < len(path)-1; i++ {
		totalDistance += met.segmentLength(path[i], path[i+1])
	}
	return totalDistance
}

// PathRoadDistance. sum of Road.Distance of consecutive cities, segments without a road add nothing.
func (met *Metric) PathRoadDistance(path []da.Index) float64 {
	if len(path) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		road, ok := met.graph.GetRoad(path[i], path[i+1])
		if !ok {
			continue
		}
		total += road.GetDistance()
	}
	return total
}

// PathTravelTime. hours to drive the path, each segment's planar length divided by its road's max speed.
// segments without a road are skipped.
func (met *Metric) PathTravelTime(path []da.Index) float64 {
	if len(path) < 2 {
		return 0
	}
	totalTime := 0.0
	for i := 0; i < len(path)-1; i++ {
		road, ok := met.graph.GetRoad(path[i], path[i+1])
		if !ok {
			continue
		}
		totalTime += met.timeFunction.GetTravelTime(met.segmentLength(path[i], path[i+1]), road.GetMaxSpeed())
	}
	return totalTime
}
