package routing

import (
	"github.com/lintang-b-s/citynav/pkg/costfunction"
	da "github.com/lintang-b-s/citynav/pkg/datastructure"
)

type CostFunction interface {
	GetWeight(e costfunction.EdgeAttributes) float64
}

type SpatialIndex interface {
	Nearest(x, y float64) (da.Index, bool)
}
