package datastructure

import (
	"math"
)

const (
	EPS = 1e-6
)

// Point. planar (canvas) position
type Point struct {
	x, y float64
}

func NewPoint(x, y float64) *Point {
	return &Point{x, y}
}

func (p *Point) GetX() float64 {
	return p.x
}

func (p *Point) GetY() float64 {
	return p.y
}

// DistanceTo. straight-line distance on the canvas
func (p *Point) DistanceTo(q *Point) float64 {
	return math.Hypot(p.x-q.x, p.y-q.y)
}

// Eq. a and b differ by at most EPS
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}

// Lt. a is smaller than b by more than EPS
func Lt(a, b float64) bool {
	return a+EPS < b
}
