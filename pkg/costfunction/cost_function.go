package costfunction

type EdgeAttributes interface {
	GetDistance() float64
	GetMaxSpeed() float64
}

type CostFunction interface {
	GetWeight(e EdgeAttributes) float64
}
