package domain

import "context"

// Mind - стратегия принятия решений.
// Только разум игрока может блокироваться (на ожидании ввода).
type Mind interface {
	MakeDecision(ctx context.Context, self *Entity, area Area) (Action, error)
}

// Condition - временный эффект на сущности.
type Condition interface {
	Name() string
	Target() *Entity
	Remaining() int
	// Attach привязывает состояние; может сразу иметь побочный эффект
	Attach(target *Entity, area Area)
	// Update: эффект, отсчет, снятие на нуле
	Update(area Area)
	// Remove отвязывает состояние и обнуляет Target
	Remove(area Area)
}
