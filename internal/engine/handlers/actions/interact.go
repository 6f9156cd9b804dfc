package actions

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine/handlers"
	"github.com/Peritract/meld/internal/systems"
)

func HandleInteract(ctx handlers.Context, a domain.Interact) error {
	return systems.TryInteract(ctx.Actor, a.Target, ctx.Area)
}
