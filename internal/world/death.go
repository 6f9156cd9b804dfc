package world

import (
	"fmt"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Reap убирает погибших: инвентарь падает на пол, на месте тела остается труп.
// Возвращает убранных в порядке обхода.
func (l *Level) Reap() []*domain.Entity {
	var dead []*domain.Entity
	for _, e := range l.entities {
		if !e.Alive() {
			dead = append(dead, e)
		}
	}

	for _, e := range dead {
		l.RemoveEntity(e)

		for _, it := range e.Items() {
			e.RemoveItem(it)
			l.PlaceItem(it, e.Pos)
		}
		l.PlaceItem(NewCorpse(l.NewID(domain.KindItem), e), e.Pos)

		if e.IsPlayer() {
			l.Post(domain.NewMessage(domain.CategoryDeath, "you die in agony."))
		} else {
			l.Post(domain.NewMessage(domain.CategoryDeath, "the %s dies.", e.Name))
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "reaper",
			"area":      l.ID,
			"entity_id": e.ID,
			"name":      e.Name,
		}).Info("Entity died")
	}
	return dead
}

// NewCorpse - останки сущности. Теги сродства берутся из частей тела.
func NewCorpse(id domain.EntityID, e *domain.Entity) *domain.Item {
	tags := make([]string, 0, len(e.Body.Parts))
	for _, pid := range e.Body.Parts {
		tags = append(tags, domain.Catalog.Part(pid).Creature)
	}
	return &domain.Item{
		ID:          id,
		Name:        e.Name + " corpse",
		Description: fmt.Sprintf("A dead %s.", e.Name),
		Symbol:      "%",
		Color:       "#888888",
		Kind:        domain.ItemCorpse,
		Uses:        1,
		Tags:        tags,
	}
}
