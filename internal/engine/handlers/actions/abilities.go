package actions

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine/handlers"
	"github.com/Peritract/meld/internal/systems"
)

// HandleFire - способность с боеприпасом (плевок)
func HandleFire(ctx handlers.Context, a domain.Fire) error {
	return systems.UseAbility(ctx.Actor, a.Ability, domain.AbilityFire, a.Target, ctx.Area)
}

// HandleEvoke - заклинание на клетку
func HandleEvoke(ctx handlers.Context, a domain.Evoke) error {
	return systems.UseAbility(ctx.Actor, a.Ability, domain.AbilityEvoke, a.Target, ctx.Area)
}

// HandleActivate - способность на себя
func HandleActivate(ctx handlers.Context, a domain.Activate) error {
	return systems.UseAbility(ctx.Actor, a.Ability, domain.AbilitySelf, ctx.Actor.Pos, ctx.Area)
}
