package systems

import (
	"github.com/Peritract/meld/internal/domain"
)

// InterpretSurge превращает направленный порыв в действие:
// существо в клетке - атака, свободная проходимая клетка - шаг.
// Иначе попытка не засчитывается.
func InterpretSurge(e *domain.Entity, s domain.Surge, area domain.Area) (domain.Action, error) {
	if !validDelta(s.Dx, s.Dy) {
		return nil, domain.Impossible("That is not a direction.")
	}

	target := e.Pos.Shift(s.Dx, s.Dy)
	if blocker := area.BlockerAt(target); blocker != nil && blocker != e {
		return domain.Attack{Target: blocker.ID}, nil
	}
	if domain.IsFree(area, target) {
		return domain.Move{Dx: s.Dx, Dy: s.Dy}, nil
	}
	return nil, domain.Impossible("There is no path that way.")
}

// ApplyMove перемещает сущность на соседнюю клетку. Не атакует.
func ApplyMove(e *domain.Entity, dx, dy int, area domain.Area) error {
	if !validDelta(dx, dy) {
		return domain.Impossible("That is not a direction.")
	}
	target := e.Pos.Shift(dx, dy)
	if !domain.IsFree(area, target) {
		return domain.Impossible("There is no path that way.")
	}
	e.Pos = target
	return nil
}

// Только ортогональные шаги на одну клетку
func validDelta(dx, dy int) bool {
	return (dx == 0) != (dy == 0) && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}
