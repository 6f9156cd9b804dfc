package actions

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine/handlers"
	"github.com/Peritract/meld/internal/systems"
)

// --- PICKUP ---

func HandlePickup(ctx handlers.Context, a domain.PickUp) error {
	return systems.TryPickup(ctx.Actor, a.Item, ctx.Area)
}

// --- DROP ---

func HandleDrop(ctx handlers.Context, a domain.Drop) error {
	return systems.TryDrop(ctx.Actor, a.Item, ctx.Area)
}

// --- USE ---

func HandleUse(ctx handlers.Context, a domain.Use) error {
	return systems.TryUse(ctx.Actor, a.Item, ctx.Area)
}

// --- EQUIP / UNEQUIP ---

func HandleEquip(ctx handlers.Context, a domain.Equip) error {
	return systems.TryEquip(ctx.Actor, a.Item, ctx.Area)
}

func HandleUnequip(ctx handlers.Context, a domain.Unequip) error {
	return systems.TryUnequip(ctx.Actor, a.Item, ctx.Area)
}

// --- THROW ---

func HandleThrow(ctx handlers.Context, a domain.Throw) error {
	return systems.TryThrow(ctx.Actor, a.Item, a.Target, ctx.Area)
}
