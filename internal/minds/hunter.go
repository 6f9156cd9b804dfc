package minds

import (
	"context"

	"github.com/Peritract/meld/internal/domain"
)

// Hunter (brawler) преследует видимых существ фракции игрока и нападает вплотную.
// target сбрасывается каждый ход, LastKnownTarget переживает ходы.
type Hunter struct {
	LastKnownTarget *domain.Position `json:"lastKnownTarget,omitempty"`

	target *domain.Entity
}

func NewHunter() *Hunter {
	return &Hunter{}
}

// Target - цель, выбранная на последнем ходу
func (h *Hunter) Target() *domain.Entity {
	return h.target
}

func (h *Hunter) MakeDecision(ctx context.Context, self *domain.Entity, area domain.Area) (domain.Action, error) {
	// 1. Сброс цели; пришли на последнюю известную точку - забываем ее
	h.target = nil
	if h.LastKnownTarget != nil && *h.LastKnownTarget == self.Pos {
		h.LastKnownTarget = nil
	}

	// 2. Скан поля зрения. Выигрывает последний видимый в порядке обхода.
	visible := area.CalculateFOV(self)
	for _, e := range area.Entities() {
		if e == self || !e.Alive() || e.Faction != domain.FactionPlayer {
			continue
		}
		if visible.Contains(e.Pos) {
			h.target = e
			pos := e.Pos
			h.LastKnownTarget = &pos
		}
	}

	// 3. Никого не знаем
	if h.target == nil && h.LastKnownTarget == nil {
		return domain.Wait{}, nil
	}

	// 4-5. Маршрут и первый шаг
	goal := *h.LastKnownTarget
	if h.target != nil {
		goal = h.target.Pos
	}
	return stepToward(self, area, goal, h.target), nil
}
