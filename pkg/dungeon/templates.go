package dungeon

import (
	"sort"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/minds"
	"github.com/Peritract/meld/internal/world"
)

// CreatureTemplate определяет шаблон для создания существа
type CreatureTemplate struct {
	Name        string
	Description string
	Symbol      string
	Color       string
	Faction     string
	BaseHealth  int
	Strength    int
	Parts       []domain.PartID
	// Mind создает базовый разум; nil - существо без разума
	Mind func() domain.Mind
}

// Spawn создает существо из шаблона, добавляет его в зону и выдает
// способности, которые дают его части тела.
func (t CreatureTemplate) Spawn(level *world.Level, pos domain.Position) *domain.Entity {
	var mind domain.Mind
	if t.Mind != nil {
		mind = t.Mind()
	}

	body := domain.NewBody(t.BaseHealth, t.Strength, t.Parts...)
	e := domain.NewEntity(level.NewID(domain.KindCreature), t.Name, t.Faction, body, mind)
	e.Description = t.Description
	e.Symbol = t.Symbol
	e.Color = t.Color
	e.Pos = pos

	grantPartAbilities(level, e)
	level.AddEntity(e)
	return e
}

func grantPartAbilities(level *world.Level, e *domain.Entity) {
	for _, key := range e.Body.PartAbilityKeys() {
		e.GrantAbility(level.NewAbility(key))
	}
}

// --- СУЩЕСТВА ---

var Snail = CreatureTemplate{
	Name:        "snail",
	Description: "A glistening snail the size of a dog.",
	Symbol:      "s",
	Color:       "#A3E635",
	Faction:     "wild",
	BaseHealth:  8,
	Strength:    2,
	Parts:       []domain.PartID{domain.PartEyestalks, domain.PartShell, domain.PartSnailFoot, domain.PartAcidGland},
	Mind:        func() domain.Mind { return minds.NewWanderer() },
}

var Crab = CreatureTemplate{
	Name:        "crab",
	Description: "A crab with one oversized claw.",
	Symbol:      "c",
	Color:       "#F97316",
	Faction:     "wild",
	BaseHealth:  12,
	Strength:    3,
	Parts:       []domain.PartID{domain.PartPincers, domain.PartCarapace, domain.PartCrabLegs},
	Mind:        func() domain.Mind { return minds.NewHunter() },
}

var Frog = CreatureTemplate{
	Name:        "frog",
	Description: "A bloated frog with a throat that hums.",
	Symbol:      "f",
	Color:       "#22C55E",
	Faction:     "wild",
	BaseHealth:  10,
	Strength:    3,
	Parts:       []domain.PartID{domain.PartSlime, domain.PartFrogLegs, domain.PartSirenThroat},
	Mind:        func() domain.Mind { return minds.NewHunter() },
}

var Spider = CreatureTemplate{
	Name:        "spider",
	Description: "A pale spider, quick and patient.",
	Symbol:      "x",
	Color:       "#E5E7EB",
	Faction:     "wild",
	BaseHealth:  9,
	Strength:    4,
	Parts:       []domain.PartID{domain.PartCompoundEyes, domain.PartFangs},
	Mind:        func() domain.Mind { return minds.NewWanderer() },
}

var CreatureTemplates = map[string]CreatureTemplate{
	"snail":  Snail,
	"crab":   Crab,
	"frog":   Frog,
	"spider": Spider,
}

// ItemTemplate определяет шаблон для создания предмета
type ItemTemplate struct {
	Name        string
	Description string
	Symbol      string
	Color       string
	Kind        domain.ItemKind
	Damage      int
	Verb        string
	Defence     int
	Uses        int
	Effect      domain.ItemEffect
	Power       int
}

// Spawn создает предмет с новым ID зоны. Позицию задает тот, кто его кладет.
func (t ItemTemplate) Spawn(level *world.Level) *domain.Item {
	return &domain.Item{
		ID:          level.NewID(domain.KindItem),
		Name:        t.Name,
		Description: t.Description,
		Symbol:      t.Symbol,
		Color:       t.Color,
		Kind:        t.Kind,
		Damage:      t.Damage,
		Verb:        t.Verb,
		Defence:     t.Defence,
		Uses:        t.Uses,
		Effect:      t.Effect,
		Power:       t.Power,
	}
}

// --- ОРУЖИЕ ---

var Sword = ItemTemplate{
	Name:        "sword",
	Description: "A notched but serviceable sword.",
	Symbol:      "/",
	Color:       "#CBD5E1",
	Kind:        domain.ItemWeapon,
	Damage:      5,
	Verb:        "slash",
}

var Dagger = ItemTemplate{
	Name:        "dagger",
	Description: "A short blade, balanced for throwing.",
	Symbol:      "-",
	Color:       "#94A3B8",
	Kind:        domain.ItemWeapon,
	Damage:      3,
	Verb:        "stab",
}

// --- БРОНЯ ---

var LeatherArmour = ItemTemplate{
	Name:        "leather armour",
	Description: "Stiff boiled leather.",
	Symbol:      "[",
	Color:       "#92400E",
	Kind:        domain.ItemArmour,
	Defence:     1,
}

var ChainMail = ItemTemplate{
	Name:        "chain mail",
	Description: "Heavy rings of rusted iron.",
	Symbol:      "[",
	Color:       "#9CA3AF",
	Kind:        domain.ItemArmour,
	Defence:     2,
}

// --- РАСХОДНИКИ ---

var Bandage = ItemTemplate{
	Name:        "bandage",
	Description: "A roll of mostly clean linen.",
	Symbol:      "!",
	Color:       "#F8FAFC",
	Kind:        domain.ItemConsumable,
	Uses:        1,
	Effect:      domain.EffectHeal,
	Power:       3,
}

var MutagenVial = ItemTemplate{
	Name:        "mutagen vial",
	Description: "Something green moves inside the glass.",
	Symbol:      "!",
	Color:       "#84CC16",
	Kind:        domain.ItemConsumable,
	Uses:        1,
	Effect:      domain.EffectMutagen,
	Power:       40,
}

var ItemTemplates = map[string]ItemTemplate{
	"sword":          Sword,
	"dagger":         Dagger,
	"leather_armour": LeatherArmour,
	"chain_mail":     ChainMail,
	"bandage":        Bandage,
	"mutagen_vial":   MutagenVial,
}

// LootTable - ключи предметов в стабильном порядке для случайного выбора
var LootTable []string

func init() {
	for key := range ItemTemplates {
		LootTable = append(LootTable, key)
	}
	sort.Strings(LootTable)
}
