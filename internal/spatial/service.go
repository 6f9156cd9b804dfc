package spatial

import (
	"math"

	"github.com/Peritract/meld/internal/domain"
)

// Population - кто сейчас находится в зоне
type Population interface {
	Entities() []*domain.Entity
}

// Service - реализация domain.Spatial для сеточной зоны
type Service struct {
	grid       *Grid
	population Population
	pathfinder *Pathfinder
}

func NewService(g *Grid, pop Population) *Service {
	return &Service{grid: g, population: pop, pathfinder: NewPathfinder(g)}
}

func (s *Service) Grid() *Grid {
	return s.grid
}

func (s *Service) CalculateFOV(e *domain.Entity) domain.Visibility {
	return ComputeFOV(s.grid, e.Pos, e.Body.ViewRadius())
}

// PathTo прокладывает маршрут, считая чужие тела дорогими, но проходимыми.
// Сама цель и идущий не штрафуются.
func (s *Service) PathTo(e *domain.Entity, target domain.Position) []domain.Position {
	occupied := func(p domain.Position) bool {
		if p == target {
			return false
		}
		b := s.BlockerAt(p)
		return b != nil && b != e
	}
	return s.pathfinder.FindPath(e.Pos, target, occupied)
}

func (s *Service) DirectPath(a, b domain.Position) []domain.Position {
	return Line(a, b)
}

func (s *Service) TilesInRange(center domain.Position, radius int) []domain.Position {
	var out []domain.Position
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			p := domain.Position{X: x, Y: y}
			if s.grid.InBounds(p) && center.DistanceSquaredTo(p) <= radius*radius {
				out = append(out, p)
			}
		}
	}
	return out
}

// Distance - евклидово расстояние, округленное до клеток
func (s *Service) Distance(a, b domain.Position) int {
	return int(math.Round(a.DistanceTo(b)))
}

func (s *Service) IsPassable(p domain.Position) bool {
	return !s.grid.IsWall(p)
}

// BlockerAt возвращает первое живое существо на клетке
func (s *Service) BlockerAt(p domain.Position) *domain.Entity {
	if s.population == nil {
		return nil
	}
	for _, e := range s.population.Entities() {
		if e.Pos == p && e.Alive() {
			return e
		}
	}
	return nil
}
