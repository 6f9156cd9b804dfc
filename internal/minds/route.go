package minds

import "github.com/Peritract/meld/internal/domain"

// stepToward делает первый шаг маршрута к goal.
// Если шаг приходится на клетку attackable - это атака.
// Занятая клетка или отсутствие пути означают ожидание.
func stepToward(self *domain.Entity, area domain.Area, goal domain.Position, attackable *domain.Entity) domain.Action {
	path := area.PathTo(self, goal)
	if len(path) == 0 {
		return domain.Wait{}
	}
	next := path[0]

	if attackable != nil && next == attackable.Pos {
		return domain.Attack{Target: attackable.ID}
	}
	if area.BlockerAt(next) == nil && area.IsPassable(next) {
		return domain.Move{Dx: next.X - self.Pos.X, Dy: next.Y - self.Pos.Y}
	}
	return domain.Wait{}
}
