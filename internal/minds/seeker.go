package minds

import (
	"context"

	"github.com/Peritract/meld/internal/domain"
)

// Seeker идет к фиксированной цели: сущности (GoalID) или клетке (GoalPos).
// Если цель не видна - ждет. Не атакует.
type Seeker struct {
	GoalID  domain.EntityID  `json:"goalId,omitempty"`
	GoalPos *domain.Position `json:"goalPos,omitempty"`
}

// NewSeeker - искатель, привязанный к сущности
func NewSeeker(goal domain.EntityID) *Seeker {
	return &Seeker{GoalID: goal}
}

// NewTileSeeker - искатель, привязанный к клетке
func NewTileSeeker(goal domain.Position) *Seeker {
	return &Seeker{GoalPos: &goal}
}

func (s *Seeker) goal(area domain.Area) (domain.Position, bool) {
	if s.GoalID != 0 {
		target := area.EntityByID(s.GoalID)
		if target == nil {
			return domain.Position{}, false
		}
		return target.Pos, true
	}
	if s.GoalPos != nil {
		return *s.GoalPos, true
	}
	return domain.Position{}, false
}

func (s *Seeker) MakeDecision(ctx context.Context, self *domain.Entity, area domain.Area) (domain.Action, error) {
	goal, ok := s.goal(area)
	if !ok || !area.CalculateFOV(self).Contains(goal) {
		return domain.Wait{}, nil
	}
	return stepToward(self, area, goal, nil), nil
}
