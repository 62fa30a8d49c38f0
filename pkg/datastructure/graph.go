package datastructure

import (
	"math"
	"strings"

	"github.com/lintang-b-s/citynav/pkg/geo"
	"github.com/lintang-b-s/citynav/pkg/util"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = math.MaxUint32
)

type City struct {
	name       string
	position   *Point
	coordinate *geo.Coordinate // lat/lon, nil when the city was built from planar coordinates only
	roads      []Road
	id         Index
}

func newCity(id Index, name string, x, y float64, coordinate *geo.Coordinate) *City {
	return &City{
		id:         id,
		name:       name,
		position:   NewPoint(x, y),
		coordinate: coordinate,
		roads:      make([]Road, 0),
	}
}

func (c *City) GetID() Index {
	return c.id
}

func (c *City) GetName() string {
	return c.name
}

func (c *City) GetX() float64 {
	return c.position.GetX()
}

func (c *City) GetY() float64 {
	return c.position.GetY()
}

func (c *City) GetPosition() *Point {
	return c.position
}

func (c *City) GetCoordinate() (geo.Coordinate, bool) {
	if c.coordinate == nil {
		return geo.Coordinate{}, false
	}
	return *c.coordinate, true
}

func (c *City) GetOutDegree() int {
	return len(c.roads)
}

// Road. directed edge from its owner city to head
type Road struct {
	head     Index
	distance float64 // km, search cost
	maxSpeed float64 // km/h, only used for travel time
}

func NewRoad(head Index, distance, maxSpeed float64) Road {
	return Road{
		head:     head,
		distance: distance,
		maxSpeed: maxSpeed,
	}
}

func (r *Road) GetHead() Index {
	return r.head
}

func (r *Road) GetDistance() float64 {
	return r.distance
}

func (r *Road) GetMaxSpeed() float64 {
	return r.maxSpeed
}

// CitySpec. construction input for one city, X/Y are already projected planar coordinates.
type CitySpec struct {
	Name       string
	X, Y       float64
	Coordinate *geo.Coordinate
}

// RoadSpec. construction input for one directed road, origin & destination are city names.
type RoadSpec struct {
	Origin      string
	Destination string
	Distance    float64
	MaxSpeed    float64
}

// SkippedRoad. a road tuple that was not added because a city name could not be resolved.
type SkippedRoad struct {
	Road               RoadSpec
	MissingOrigin      bool
	MissingDestination bool
}

type Graph struct {
	cities        []*City
	nameToId      map[string]Index
	numberOfRoads int
	sccs          []Index
	numberOfSCCs  int
}

/*
NewGraph. builds an immutable road network.

duplicate/empty city names and non-positive max speeds are construction errors.
roads whose origin or destination is not a known city are dropped and returned as skipped.
road distances must be non-negative, this is not checked.
*/
func NewGraph(citySpecs []CitySpec, roadSpecs []RoadSpec) (*Graph, []SkippedRoad, error) {
	g := &Graph{
		cities:   make([]*City, 0, len(citySpecs)),
		nameToId: make(map[string]Index, len(citySpecs)),
	}

	for _, cs := range citySpecs {
		if strings.TrimSpace(cs.Name) == "" {
			return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput, "city #%d has an empty name", len(g.cities))
		}
		if _, ok := g.nameToId[cs.Name]; ok {
			return nil, nil, util.WrapErrorf(nil, util.ErrConflict, "duplicate city name: %s", cs.Name)
		}
		if math.IsNaN(cs.X) || math.IsNaN(cs.Y) {
			return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput, "city %s has an invalid position", cs.Name)
		}

		id := Index(len(g.cities))
		g.cities = append(g.cities, newCity(id, cs.Name, cs.X, cs.Y, cs.Coordinate))
		g.nameToId[cs.Name] = id
	}

	skipped := make([]SkippedRoad, 0)
	for _, rs := range roadSpecs {
		from, okFrom := g.nameToId[rs.Origin]
		to, okTo := g.nameToId[rs.Destination]
		if !okFrom || !okTo {
			skipped = append(skipped, SkippedRoad{
				Road:               rs,
				MissingOrigin:      !okFrom,
				MissingDestination: !okTo,
			})
			continue
		}

		if !(rs.MaxSpeed > 0) || math.IsInf(rs.MaxSpeed, 0) {
			return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput, "road %s -> %s has invalid max speed %v",
				rs.Origin, rs.Destination, rs.MaxSpeed)
		}

		g.cities[from].roads = append(g.cities[from].roads, NewRoad(to, rs.Distance, rs.MaxSpeed))
		g.numberOfRoads++
	}

	g.RunKosaraju()

	return g, skipped, nil
}

func (g *Graph) NumberOfCities() int {
	return len(g.cities)
}

func (g *Graph) NumberOfRoads() int {
	return g.numberOfRoads
}

func (g *Graph) GetCity(u Index) *City {
	return g.cities[u]
}

func (g *Graph) GetCityByName(name string) (Index, bool) {
	id, ok := g.nameToId[name]
	return id, ok
}

func (g *Graph) GetCityName(u Index) string {
	return g.cities[u].name
}

func (g *Graph) GetCityPosition(u Index) (float64, float64) {
	return g.cities[u].GetX(), g.cities[u].GetY()
}

// CityNames. city names in construction order
func (g *Graph) CityNames() []string {
	names := make([]string, 0, len(g.cities))
	for _, c := range g.cities {
		names = append(names, c.name)
	}
	return names
}

func (g *Graph) ForCities(handle func(c *City)) {
	for _, c := range g.cities {
		handle(c)
	}
}

func (g *Graph) ForOutRoadsOf(u Index, handle func(r *Road)) {
	roads := g.cities[u].roads
	for i := range roads {
		handle(&roads[i])
	}
}

// GetRoad. first road u -> v in u's road order
func (g *Graph) GetRoad(u, v Index) (*Road, bool) {
	roads := g.cities[u].roads
	for i := range roads {
		if roads[i].head == v {
			return &roads[i], true
		}
	}
	return nil, false
}

func (g *Graph) GetSCCOfACity(u Index) Index {
	return g.sccs[u]
}

func (g *Graph) NumberOfSCCs() int {
	return g.numberOfSCCs
}

func (g *Graph) setSCCs(sccs []Index, n int) {
	g.sccs = sccs
	g.numberOfSCCs = n
}
