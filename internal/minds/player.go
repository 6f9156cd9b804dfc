package minds

import (
	"context"
	"fmt"

	"github.com/Peritract/meld/internal/domain"
)

// Player - ручное управление. Ждет ввод зоны; сам ничего не решает.
type Player struct{}

func NewPlayer() *Player {
	return &Player{}
}

func (p *Player) MakeDecision(ctx context.Context, self *domain.Entity, area domain.Area) (domain.Action, error) {
	action, err := area.AwaitInput(ctx)
	if err != nil {
		return nil, fmt.Errorf("await input for %s: %w", self.ID, err)
	}
	return action, nil
}
