package abilities

import (
	"sort"

	"github.com/Peritract/meld/internal/conditions"
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/features"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	VenomDuration = 3
	VenomDamage   = 1
	LureDuration  = 5
)

type factory func() *domain.Ability

var registry = map[string]factory{
	domain.AbilityAcidSpit:  acidSpit,
	domain.AbilityVenomSpit: venomSpit,
	domain.AbilitySirenCall: sirenCall,
}

// New создает свежую способность по ключу; nil для неизвестного ключа
func New(key string) *domain.Ability {
	f, ok := registry[key]
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "abilities",
			"key":       key,
		}).Warn("Unknown ability requested")
		return nil
	}
	return f()
}

// Keys - все известные ключи, по алфавиту
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func acidSpit() *domain.Ability {
	return &domain.Ability{
		Key:      domain.AbilityAcidSpit,
		Name:     "acid spit",
		Kind:     domain.AbilityFire,
		Cooldown: 5,
		Range:    5,
		Ammunition: func() domain.Projectile {
			return acidShot{}
		},
	}
}

func venomSpit() *domain.Ability {
	return &domain.Ability{
		Key:      domain.AbilityVenomSpit,
		Name:     "venom spit",
		Kind:     domain.AbilityFire,
		Cooldown: 4,
		Range:    4,
		Ammunition: func() domain.Projectile {
			return venomDart{}
		},
	}
}

func sirenCall() *domain.Ability {
	return &domain.Ability{
		Key:      domain.AbilitySirenCall,
		Name:     "siren call",
		Kind:     domain.AbilityEvoke,
		Cooldown: 10,
		Range:    6,
		Apply:    lure,
	}
}

// acidShot получает ID в момент падения, когда уже известна зона
type acidShot struct{}

func (acidShot) Land(at domain.Position, area domain.Area) {
	blob := features.NewAcidBlob(area.NewID(domain.KindFeature), features.AcidDamage, features.AcidDuration)
	blob.Land(at, area)
}

type venomDart struct{}

func (venomDart) Land(at domain.Position, area domain.Area) {
	victim := area.BlockerAt(at)
	if victim == nil {
		area.Post(domain.NewMessage(domain.CategoryCombat, "The venom splashes harmlessly."))
		return
	}
	area.Post(domain.NewMessage(domain.CategoryCombat, "The venom hits %s!", victim.Phrase()))
	victim.Afflict(conditions.NewPoison(VenomDuration, VenomDamage), area)
}

func lure(caster *domain.Entity, target domain.Position, area domain.Area) error {
	victim := area.BlockerAt(target)
	if victim == nil || victim == caster {
		return domain.Impossible("There is no one there to enchant.")
	}
	area.Post(domain.NewMessage(domain.CategoryWorld, "%s %s an eerie song.", caster.Phrase(), caster.Conjugate("sing")))
	victim.Afflict(conditions.NewLure(LureDuration, caster.ID), area)
	return nil
}
