package conditions

import "github.com/Peritract/meld/internal/domain"

// Poison отнимает фиксированный урон каждый ход
type Poison struct {
	timer
	Damage int `json:"damage"`
}

func NewPoison(duration, damage int) *Poison {
	return &Poison{timer: timer{Duration: duration}, Damage: damage}
}

func (p *Poison) Name() string { return "poison" }

func (p *Poison) Attach(target *domain.Entity, area domain.Area) {
	p.target = target
}

func (p *Poison) Update(area domain.Area) {
	if p.target == nil {
		return
	}
	p.apply(area)
	if p.tick() {
		p.Remove(area)
	}
}

func (p *Poison) apply(area domain.Area) {
	area.Post(domain.NewMessage(domain.CategoryAlert, "%s %s damaged by poison.",
		p.target.Phrase(), p.target.Be()))
	p.target.Body.TakeDamage(p.Damage)
}

func (p *Poison) Remove(area domain.Area) {
	p.detach(p)
}

// Rebind восстанавливает цель после загрузки снимка
func (p *Poison) Rebind(target *domain.Entity) {
	p.target = target
}
