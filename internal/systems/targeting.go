package systems

import (
	"github.com/Peritract/meld/internal/domain"
)

// ValidateTarget проверяет клетку для прицельного действия:
// в пределах дальности (через пространственный сервис) и в прямой видимости.
func ValidateTarget(actor *domain.Entity, target domain.Position, rangeLimit int, area domain.Area) error {
	// 1. Клетка на карте
	if !area.InBounds(target) {
		return domain.Impossible("You cannot target that.")
	}

	// 2. Дальность
	inRange := false
	for _, p := range area.TilesInRange(actor.Pos, rangeLimit) {
		if p == target {
			inRange = true
			break
		}
	}
	if !inRange {
		return domain.Impossible("That is out of range.")
	}

	// 3. Видимость: линия не проходит сквозь стены до самой цели
	path := area.DirectPath(actor.Pos, target)
	for i, p := range path {
		if i == len(path)-1 {
			break
		}
		if !area.IsPassable(p) {
			return domain.Impossible("You cannot see a way there.")
		}
	}
	return nil
}
