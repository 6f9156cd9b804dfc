package systems

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ApplyAttack - ближний бой. Надетое оружие перехватывает удар,
// иначе бьет тело (глагол манипуляторов, контакт покровов).
func ApplyAttack(attacker, target *domain.Entity, area domain.Area) error {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	// --- Проверка граничных условий ---

	if target == attacker {
		return domain.Impossible("You cannot attack yourself.")
	}
	if !target.Alive() {
		combatLogger.Debug("Attack ineffective: target is already dead.")
		return domain.Impossible("There is nothing left to attack.")
	}
	if !attacker.Pos.IsAdjacent(target.Pos) {
		return domain.Impossible("That is too far away.")
	}

	hpBefore := target.Body.Health

	if w := attacker.Weapon; w != nil {
		area.Post(domain.NewMessage(domain.CategoryCombat, "%s %s %s with %s %s!",
			attacker.Phrase(), attacker.Conjugate(w.Verb), target.Phrase(), attacker.Possessive(), w.Name))
		target.Body.TakeDamage(domain.Mitigate(w.Damage, target.Defence()))
	} else {
		attacker.Body.Attack(attacker, target, area)
	}

	combatLogger.WithFields(logrus.Fields{
		"armed":       attacker.Weapon != nil,
		"hp_before":   hpBefore,
		"hp_after":    target.Body.Health,
		"target_died": target.Body.Dead(),
	}).Info("Attack resolved.")

	return nil
}
