package spatial

import "github.com/Peritract/meld/internal/domain"

// Line - клетки отрезка от a к b по Брезенхэму, без стартовой.
// Только целочисленная арифметика.
func Line(a, b domain.Position) []domain.Position {
	if a == b {
		return nil
	}

	x0, y0 := a.X, a.Y
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx - dy

	var out []domain.Position
	for x0 != b.X || y0 != b.Y {
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
		out = append(out, domain.Position{X: x0, Y: y0})
	}
	return out
}

// HasLineOfSight проверяет, что между точками нет стен (концы не считаются)
func HasLineOfSight(g *Grid, a, b domain.Position) bool {
	for _, p := range Line(a, b) {
		if p == b {
			return true
		}
		if g.IsWall(p) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
