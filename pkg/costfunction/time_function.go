package costfunction

type TimeFunction struct {
}

func NewTimeCostFunction() *TimeFunction {
	return &TimeFunction{}
}

// GetWeight. hours needed to drive the road at its max speed
func (tf *TimeFunction) GetWeight(e EdgeAttributes) float64 {
	return tf.GetTravelTime(e.GetDistance(), e.GetMaxSpeed())
}

// GetTravelTime. hours needed to drive length at speed. zero or negative speed yields 0.
func (tf *TimeFunction) GetTravelTime(length, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return length / speed
}
