package actions

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine/handlers"
	"github.com/Peritract/meld/internal/systems"
)

func HandleAttack(ctx handlers.Context, a domain.Attack) error {
	target := ctx.Area.EntityByID(a.Target)
	if target == nil {
		return domain.Impossible("There is nothing there to attack.")
	}
	return systems.ApplyAttack(ctx.Actor, target, ctx.Area)
}
