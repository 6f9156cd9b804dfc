package actions

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine/handlers"
	"github.com/Peritract/meld/internal/systems"
)

func HandleMove(ctx handlers.Context, a domain.Move) error {
	return systems.ApplyMove(ctx.Actor, a.Dx, a.Dy, ctx.Area)
}
