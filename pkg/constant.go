package pkg

const (
	INF_WEIGHT float64 = 1e15
)

// lat/lon to canvas projection of the map view
const (
	CENTER_LATITUDE  = 42.7
	CENTER_LONGITUDE = 23.32
	SCALE_FACTOR     = 120.0
)

const (
	DEFAULT_CANVAS_HEIGHT = 600.0
	DISTANCE_PRECISION    = 2
	MINUTES_PER_HOUR      = 60
)

type RouteStatus uint8

const (
	ROUTE_FOUND RouteStatus = iota
	NO_ROUTE
	INVALID_CITY
)

func (s RouteStatus) String() string {
	switch s {
	case ROUTE_FOUND:
		return "found"
	case NO_ROUTE:
		return "no_route"
	case INVALID_CITY:
		return "invalid_city"
	default:
		return "unknown"
	}
}
