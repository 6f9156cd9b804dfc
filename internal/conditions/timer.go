package conditions

import "github.com/Peritract/meld/internal/domain"

// timer - общая часть всех состояний: цель и обратный отсчет.
// Снятие выполняет сам владелец таймера, чтобы отработали его побочные эффекты.
type timer struct {
	Duration int `json:"duration"`

	target *domain.Entity
}

func (t *timer) Target() *domain.Entity { return t.target }
func (t *timer) Remaining() int         { return t.Duration }

// tick отнимает ход; true - время вышло
func (t *timer) tick() bool {
	t.Duration--
	return t.Duration <= 0
}

// detach отвязывает состояние c от цели
func (t *timer) detach(c domain.Condition) {
	if t.target == nil {
		return
	}
	t.target.DetachCondition(c)
	t.target = nil
}
