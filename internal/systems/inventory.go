package systems

import (
	"fmt"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	CorpseInstability = 25
	CorpseHealing     = 2
)

// ChoiceError - под ногами несколько предметов, нужно выбрать.
// Ход не тратится; клиент переводится в режим выбора.
type ChoiceError struct {
	Items []*domain.Item
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("choose one of %d items", len(e.Items))
}

func inventoryLogger(actor *domain.Entity, op string) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actor.ID,
		"op":        op,
	})
}

// --- PICKUP ---

// TryPickup подбирает предмет с клетки актора. itemID == 0 - "что лежит".
func TryPickup(actor *domain.Entity, itemID domain.EntityID, area domain.Area) error {
	here := area.ItemsAt(actor.Pos)
	if len(here) == 0 {
		return domain.Impossible("Nothing to pick up.")
	}

	var item *domain.Item
	if itemID == 0 {
		if len(here) > 1 {
			return &ChoiceError{Items: here}
		}
		item = here[0]
	} else {
		for _, it := range here {
			if it.ID == itemID {
				item = it
			}
		}
		if item == nil {
			return domain.Impossible("That is not here.")
		}
	}

	if err := actor.AddItem(item); err != nil {
		return err
	}
	area.RemoveItem(item)

	area.Post(domain.NewMessage(domain.CategoryItem, "%s %s up the %s.",
		actor.Phrase(), actor.Conjugate("pick"), item.Name))
	inventoryLogger(actor, "pickup").WithField("item_id", item.ID).Debug("Item picked up")
	return nil
}

// --- DROP ---

func TryDrop(actor *domain.Entity, itemID domain.EntityID, area domain.Area) error {
	item, err := carried(actor, itemID)
	if err != nil {
		return err
	}

	actor.RemoveItem(item)
	area.PlaceItem(item, actor.Pos)

	area.Post(domain.NewMessage(domain.CategoryItem, "%s %s the %s.",
		actor.Phrase(), actor.Conjugate("drop"), item.Name))
	return nil
}

// --- EQUIP ---

func TryEquip(actor *domain.Entity, itemID domain.EntityID, area domain.Area) error {
	item, err := carried(actor, itemID)
	if err != nil {
		return err
	}

	switch item.Kind {
	case domain.ItemWeapon:
		if !actor.Body.CanEquipWeapons() {
			return domain.Impossible(fmt.Sprintf("%s cannot grip the %s.", domain.Capitalize(actor.Phrase()), item.Name))
		}
		if actor.Weapon == item {
			return domain.Impossible("You are already wielding that.")
		}
		actor.Weapon = item
	case domain.ItemArmour:
		if actor.Armour == item {
			return domain.Impossible("You are already wearing that.")
		}
		actor.Armour = item
	default:
		return domain.Impossible(fmt.Sprintf("The %s cannot be equipped.", item.Name))
	}

	area.Post(domain.NewMessage(domain.CategoryItem, "%s %s the %s.",
		actor.Phrase(), actor.Conjugate("equip"), item.Name))
	return nil
}

// --- UNEQUIP ---

func TryUnequip(actor *domain.Entity, itemID domain.EntityID, area domain.Area) error {
	var item *domain.Item
	switch {
	case actor.Weapon != nil && actor.Weapon.ID == itemID:
		item, actor.Weapon = actor.Weapon, nil
	case actor.Armour != nil && actor.Armour.ID == itemID:
		item, actor.Armour = actor.Armour, nil
	default:
		return domain.Impossible("You are not using that.")
	}

	area.Post(domain.NewMessage(domain.CategoryItem, "%s %s the %s.",
		actor.Phrase(), actor.Conjugate("remove"), item.Name))
	return nil
}

// --- USE ---

// TryUse применяет расходник или съедает останки
func TryUse(actor *domain.Entity, itemID domain.EntityID, area domain.Area) error {
	item, err := carried(actor, itemID)
	if err != nil {
		return err
	}

	switch {
	case item.Kind == domain.ItemCorpse:
		eatCorpse(actor, item, area)
	case item.Kind == domain.ItemConsumable && item.Effect == domain.EffectHeal:
		if actor.Body.Health >= actor.Body.MaxHealth() {
			return domain.Impossible("You are already at full health.")
		}
		actor.Body.Heal(item.Power)
		area.Post(domain.NewMessage(domain.CategoryItem, "%s %s the %s and %s better.",
			actor.Phrase(), actor.Conjugate("use"), item.Name, actor.Conjugate("feel")))
	case item.Kind == domain.ItemConsumable && item.Effect == domain.EffectMutagen:
		actor.Body.Instability += item.Power
		area.Post(domain.NewMessage(domain.CategoryItem, "%s %s the %s. %s flesh crawls.",
			actor.Phrase(), actor.Conjugate("drink"), item.Name, domain.Capitalize(actor.Possessive())))
	default:
		return domain.Impossible(fmt.Sprintf("The %s cannot be used.", item.Name))
	}

	item.Uses--
	if item.Uses <= 0 {
		actor.RemoveItem(item)
	}
	inventoryLogger(actor, "use").WithFields(logrus.Fields{
		"item_id":   item.ID,
		"uses_left": item.Uses,
	}).Debug("Item used")
	return nil
}

// Поедание останков: сродство к существу, нестабильность, немного здоровья
func eatCorpse(actor *domain.Entity, corpse *domain.Item, area domain.Area) {
	actor.Body.IncreaseAffinities(corpse.Tags...)
	actor.Body.Instability += CorpseInstability
	actor.Body.Heal(CorpseHealing)
	area.Post(domain.NewMessage(domain.CategoryItem, "%s %s the %s.",
		actor.Phrase(), actor.Conjugate("devour"), corpse.Name))
}

// --- THROW ---

// TryThrow бросает предмет по прямой не дальше ThrowRange.
// Полет обрывается перед стеной или на первом существе.
func TryThrow(actor *domain.Entity, itemID domain.EntityID, target domain.Position, area domain.Area) error {
	item, err := carried(actor, itemID)
	if err != nil {
		return err
	}
	if target == actor.Pos {
		return domain.Impossible("You need to throw it somewhere.")
	}

	landing := domain.Trajectory(area, actor.Pos, target, actor.Body.ThrowRange())
	actor.RemoveItem(item)
	area.PlaceItem(item, landing)

	area.Post(domain.NewMessage(domain.CategoryItem, "%s %s the %s.",
		actor.Phrase(), actor.Conjugate("throw"), item.Name))
	item.Impact(area)
	return nil
}

// --- INVENTORY ---

// CheckInventory - можно ли открыть инвентарь
func CheckInventory(actor *domain.Entity) error {
	if actor.InventorySize() == 0 {
		return domain.Impossible("You are not carrying anything.")
	}
	return nil
}

func carried(actor *domain.Entity, itemID domain.EntityID) (*domain.Item, error) {
	item := actor.FindItem(itemID)
	if item == nil {
		return nil, domain.Impossible("You are not carrying that.")
	}
	return item, nil
}
