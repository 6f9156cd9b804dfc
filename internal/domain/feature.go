package domain

// Feature - неодушевленный объект мира: лужа кислоты, мутагенный источник.
// Подобрать нельзя, но может действовать каждый ход.
type Feature interface {
	ID() EntityID
	Name() string
	Position() Position
	Interactable() bool
	Interact(e *Entity, area Area) error
	Update(area Area)
	Expired() bool
}

// Projectile - то, что производит способность с боеприпасом
type Projectile interface {
	Land(at Position, area Area)
}

// Trajectory возвращает клетку, где остановится брошенный объект.
// Полет прерывается перед стеной или на первом существе.
func Trajectory(s Spatial, from, to Position, maxRange int) Position {
	landing := from
	for i, p := range s.DirectPath(from, to) {
		if i >= maxRange || !s.IsPassable(p) {
			break
		}
		landing = p
		if s.BlockerAt(p) != nil {
			break
		}
	}
	return landing
}
