package engine

import (
	"github.com/Peritract/meld/internal/domain"
)

// Mode - запрос на переключение интерфейса. Ход при этом не тратится.
type Mode struct {
	Action domain.ActionType
	Items  []*domain.Item
	Target *domain.Position
}

// ModeListener получает нефинальные действия игрока (меню, инвентарь, осмотр)
type ModeListener interface {
	EnterMode(actor *domain.Entity, mode Mode)
}

// ModeFunc - адаптер функции к ModeListener
type ModeFunc func(actor *domain.Entity, mode Mode)

func (f ModeFunc) EnterMode(actor *domain.Entity, mode Mode) { f(actor, mode) }
