package spatial

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/Peritract/meld/internal/domain"
)

// occupiedCost - штраф за клетку, занятую другим существом.
// Маршрут обходит толпу, если обход не слишком длинный.
const occupiedCost = 5

// router реализует paths.Astar поверх Grid
type router struct {
	grid     *Grid
	occupied func(domain.Position) bool
	nbs      paths.Neighbors
}

func (r *router) Neighbors(p gruid.Point) []gruid.Point {
	return r.nbs.Cardinal(p, func(q gruid.Point) bool {
		return !r.grid.IsWall(fromPoint(q))
	})
}

func (r *router) Cost(p, q gruid.Point) int {
	if r.occupied != nil && r.occupied(fromPoint(q)) {
		return 1 + occupiedCost
	}
	return 1
}

func (r *router) Estimation(p, q gruid.Point) int {
	return paths.DistanceManhattan(p, q)
}

// Pathfinder ищет маршруты A* на одной карте. PathRange переиспользуется между запросами.
type Pathfinder struct {
	grid *Grid
	pr   *paths.PathRange
}

func NewPathfinder(g *Grid) *Pathfinder {
	return &Pathfinder{
		grid: g,
		pr:   paths.NewPathRange(gruid.NewRange(0, 0, g.Width, g.Height)),
	}
}

// FindPath возвращает путь без стартовой клетки или nil.
// occupied может быть nil: тогда учитываются только стены.
func (pf *Pathfinder) FindPath(from, to domain.Position, occupied func(domain.Position) bool) []domain.Position {
	if from == to || pf.grid.IsWall(to) || !pf.grid.InBounds(from) {
		return nil
	}

	r := &router{grid: pf.grid, occupied: occupied}
	raw := pf.pr.AstarPath(r, toPoint(from), toPoint(to))
	if len(raw) < 2 {
		return nil
	}

	out := make([]domain.Position, 0, len(raw)-1)
	for _, p := range raw[1:] {
		out = append(out, fromPoint(p))
	}
	return out
}

func toPoint(p domain.Position) gruid.Point {
	return gruid.Point{X: p.X, Y: p.Y}
}

func fromPoint(p gruid.Point) domain.Position {
	return domain.Position{X: p.X, Y: p.Y}
}
