package domain

import "strings"

// ItemKind - категория предмета
type ItemKind uint8

const (
	ItemMisc ItemKind = iota
	ItemWeapon
	ItemArmour
	ItemConsumable
	ItemCorpse
)

var itemKindNames = map[ItemKind]string{
	ItemMisc:       "misc",
	ItemWeapon:     "weapon",
	ItemArmour:     "armour",
	ItemConsumable: "consumable",
	ItemCorpse:     "corpse",
}

func (k ItemKind) String() string {
	if s, ok := itemKindNames[k]; ok {
		return s
	}
	return "misc"
}

// ItemEffect - что делает расходуемый предмет
type ItemEffect uint8

const (
	EffectNone ItemEffect = iota
	EffectHeal
	EffectMutagen
)

// Item - физический предмет: лежит на полу или в инвентаре
type Item struct {
	ID          EntityID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Symbol      string   `json:"symbol"`
	Color       string   `json:"color"`
	Kind        ItemKind `json:"kind"`
	Pos         Position `json:"pos"`

	// Оружие
	Damage int    `json:"damage,omitempty"`
	Verb   string `json:"verb,omitempty"`
	// Броня
	Defence int `json:"defence,omitempty"`
	// Расходники
	Uses   int        `json:"uses,omitempty"`
	Effect ItemEffect `json:"effect,omitempty"`
	Power  int        `json:"power,omitempty"`
	// Останки: теги существа для сродства
	Tags []string `json:"tags,omitempty"`
}

// Equippable - можно ли надеть предмет
func (it *Item) Equippable() bool {
	return it.Kind == ItemWeapon || it.Kind == ItemArmour
}

// Impact - предмет приземлился после броска.
// Оружие ранит того, кто стоит в клетке падения.
func (it *Item) Impact(area Area) {
	if it.Kind != ItemWeapon {
		return
	}
	victim := area.BlockerAt(it.Pos)
	if victim == nil || victim.Body == nil {
		return
	}
	area.Post(NewMessage(CategoryCombat, "the %s %s %s.", it.Name, ThirdPerson(it.Verb), victim.Phrase()))
	victim.Body.TakeDamage(Mitigate(it.Damage, victim.Defence()))
}

// ThirdPerson спрягает глагол для третьего лица
func ThirdPerson(verb string) string {
	switch {
	case verb == "":
		return verb
	case strings.HasSuffix(verb, "sh"), strings.HasSuffix(verb, "ch"),
		strings.HasSuffix(verb, "s"), strings.HasSuffix(verb, "x"):
		return verb + "es"
	default:
		return verb + "s"
	}
}
