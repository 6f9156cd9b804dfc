package handlers

import (
	"github.com/Peritract/meld/internal/domain"
)

// Context передает хендлеру зону и того, кто действует.
// Хендлер меняет состояние мира напрямую; сообщения уходят в Area.
type Context struct {
	Area  domain.Area
	Actor *domain.Entity
}

// HandlerFunc - это контракт для любого финального действия (MOVE, ATTACK, etc).
// *domain.ActionError означает, что попытка не засчитана.
type HandlerFunc func(ctx Context, action domain.Action) error

// Registry - хендлеры по типу действия
type Registry map[domain.ActionType]HandlerFunc

// Handle находит хендлер и выполняет действие
func (r Registry) Handle(ctx Context, action domain.Action) error {
	h, ok := r[action.Type()]
	if !ok {
		return domain.Impossible("You cannot do that here.")
	}
	return h(ctx, action)
}
