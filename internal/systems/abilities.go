package systems

import (
	"fmt"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

// UseAbility - общий путь для Fire, Evoke и Activate.
// Способность должна быть нужного вида; прицельные проверяют цель заранее.
func UseAbility(actor *domain.Entity, key string, kind domain.AbilityKind, target domain.Position, area domain.Area) error {
	ab := actor.Ability(key)
	if ab == nil {
		return domain.Impossible("You do not know how to do that.")
	}
	if ab.Kind != kind {
		return domain.Impossible(fmt.Sprintf("The %s cannot be used like that.", ab.Name))
	}
	if !ab.Ready() {
		return domain.Impossible(fmt.Sprintf("The %s is not ready.", ab.Name))
	}

	if kind == domain.AbilitySelf {
		target = actor.Pos
	} else if err := ValidateTarget(actor, target, ab.Range, area); err != nil {
		return err
	}

	if err := ab.Activate(actor, target, area); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "ability_system",
		"actor_id":  actor.ID,
		"ability":   key,
		"target":    target,
		"cooldown":  ab.Delay,
	}).Debug("Ability activated")
	return nil
}

// TryInteract - взаимодействие с объектом на своей или соседней клетке
func TryInteract(actor *domain.Entity, target domain.Position, area domain.Area) error {
	if target != actor.Pos && !actor.Pos.IsAdjacent(target) {
		return domain.Impossible("That is too far away.")
	}
	for _, f := range area.FeaturesAt(target) {
		if f.Interactable() {
			return f.Interact(actor, area)
		}
	}
	return domain.Impossible("There is nothing to interact with.")
}
