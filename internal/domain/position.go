package domain

import "math"

// Position - координаты тайла в зоне
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Directions - четыре ортогональных направления в фиксированном порядке
var Directions = []Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// DistanceTo возвращает точное расстояние до другой точки (float)
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// ManhattanTo - расстояние в ортогональных шагах
func (p Position) ManhattanTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// IsAdjacent возвращает true, если цель в соседней ортогональной клетке
func (p Position) IsAdjacent(other Position) bool {
	return p.ManhattanTo(other) == 1
}

// Shift возвращает новую позицию со смещением
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
