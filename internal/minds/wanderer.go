package minds

import (
	"context"

	"github.com/Peritract/meld/internal/domain"
)

// Wanderer бродит без цели: в половине ходов шагает в случайную свободную
// ортогональную клетку, иначе ждет. Памяти между ходами нет.
type Wanderer struct{}

func NewWanderer() *Wanderer {
	return &Wanderer{}
}

func (w *Wanderer) MakeDecision(ctx context.Context, self *domain.Entity, area domain.Area) (domain.Action, error) {
	rng := area.Rand()
	if rng.Intn(2) == 0 {
		return domain.Wait{}, nil
	}

	var options []domain.Position
	for _, d := range domain.Directions {
		if domain.IsFree(area, self.Pos.Shift(d.X, d.Y)) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		return domain.Wait{}, nil
	}

	d := options[rng.Intn(len(options))]
	return domain.Move{Dx: d.X, Dy: d.Y}, nil
}
