package conditions

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/minds"
)

// Lure подменяет разум цели искателем, который идет к Goal.
// По истечении срока возвращает прежний разум.
type Lure struct {
	timer
	Goal domain.EntityID `json:"goal"`

	seeker *minds.Seeker
}

func NewLure(duration int, goal domain.EntityID) *Lure {
	return &Lure{timer: timer{Duration: duration}, Goal: goal}
}

func (l *Lure) Name() string { return "lure" }

// Seeker - установленный на цель разум; nil, пока состояние не привязано
func (l *Lure) Seeker() *minds.Seeker { return l.seeker }

func (l *Lure) Attach(target *domain.Entity, area domain.Area) {
	l.target = target
	if l.seeker == nil {
		l.seeker = minds.NewSeeker(l.Goal)
	}
	l.install()
	area.Post(domain.NewMessage(domain.CategoryAlert, "%s %s entranced!", target.Phrase(), target.Be()))
}

// Rebind восстанавливает связи после загрузки снимка, без сообщений.
// Разум-искатель уже лежит в стеке цели.
func (l *Lure) Rebind(target *domain.Entity, seeker *minds.Seeker) {
	l.target = target
	l.seeker = seeker
}

func (l *Lure) install() {
	// У безмозглой цели искатель становится базой стека
	if l.target.Mind() == nil {
		l.target.SetMind(l.seeker)
		return
	}
	l.target.PushMind(l.seeker)
}

func (l *Lure) Update(area domain.Area) {
	if l.target == nil {
		return
	}
	if l.tick() {
		l.Remove(area)
	}
}

func (l *Lure) Remove(area domain.Area) {
	target := l.target
	if target == nil {
		return
	}
	if !target.ReleaseMind(l.seeker) && target.Mind() == domain.Mind(l.seeker) {
		target.SetMind(nil)
	}
	area.Post(domain.NewMessage(domain.CategoryAlert, "%s %s off the enchantment.",
		target.Phrase(), target.Conjugate("shake")))
	l.detach(l)
}
