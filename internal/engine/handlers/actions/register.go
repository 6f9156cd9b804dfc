package actions

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine/handlers"
)

// Register подключает хендлеры всех финальных действий
func Register(r handlers.Registry) {
	// Общие
	r[domain.ActionMove] = handlers.Typed(HandleMove)
	r[domain.ActionAttack] = handlers.Typed(HandleAttack)
	r[domain.ActionWait] = handlers.Empty(HandleWait)
	r[domain.ActionInteract] = handlers.Typed(HandleInteract)

	// Инвентарь
	r[domain.ActionPickUp] = handlers.Typed(HandlePickup)
	r[domain.ActionDrop] = handlers.Typed(HandleDrop)
	r[domain.ActionUse] = handlers.Typed(HandleUse)
	r[domain.ActionEquip] = handlers.Typed(HandleEquip)
	r[domain.ActionUnequip] = handlers.Typed(HandleUnequip)
	r[domain.ActionThrow] = handlers.Typed(HandleThrow)

	// Способности
	r[domain.ActionFire] = handlers.Typed(HandleFire)
	r[domain.ActionEvoke] = handlers.Typed(HandleEvoke)
	r[domain.ActionActivate] = handlers.Typed(HandleActivate)
}

// NewRegistry - готовый набор хендлеров
func NewRegistry() handlers.Registry {
	r := make(handlers.Registry)
	Register(r)
	return r
}
