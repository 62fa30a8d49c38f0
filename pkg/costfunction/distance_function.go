package costfunction

// DistanceFunction. road length in km is the search cost
type DistanceFunction struct {
}

func NewDistanceCostFunction() *DistanceFunction {
	return &DistanceFunction{}
}

func (df *DistanceFunction) GetWeight(e EdgeAttributes) float64 {
	return e.GetDistance()
}
