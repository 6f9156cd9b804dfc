package domain

// Visibility - множество видимых клеток
type Visibility map[Position]bool

// Contains проверяет, видна ли клетка
func (v Visibility) Contains(p Position) bool {
	return v[p]
}

// Spatial - внешний сервис пространственных запросов.
// Ядро не считает FOV и пути само, а только спрашивает.
type Spatial interface {
	CalculateFOV(e *Entity) Visibility
	// PathTo возвращает путь без стартовой клетки или nil, если пути нет
	PathTo(e *Entity, target Position) []Position
	// DirectPath - линия видимости от a к b без стартовой клетки
	DirectPath(a, b Position) []Position
	TilesInRange(center Position, radius int) []Position
	Distance(a, b Position) int
	IsPassable(p Position) bool
	BlockerAt(p Position) *Entity
}
