package domain

import (
	"math/rand"

	"github.com/Peritract/meld/pkg/utils"
)

// Базовые параметры тела
const (
	DefaultBaseHealth = 20
	DefaultStrength   = 5

	AffinityStep = 10
)

// Body - физическое состояние сущности: здоровье, части тела, сродства и нестабильность.
type Body struct {
	Health       int               `json:"health"`
	BaseHealth   int               `json:"baseHealth"`
	BonusHealth  int               `json:"bonusHealth"`
	BaseStrength int               `json:"baseStrength"`
	Parts        [slotCount]PartID `json:"parts"`
	Affinities   map[string]int    `json:"affinities"`
	Instability  int               `json:"instability"`
}

// NewBody собирает тело из человеческих частей и заменяет их переданными
func NewBody(baseHealth, strength int, parts ...PartID) *Body {
	b := &Body{
		BaseHealth:   baseHealth,
		BaseStrength: strength,
		Parts: [slotCount]PartID{
			PartHumanEyes, PartHumanHands, PartHumanLegs, PartHumanSkin, PartHumanMouth,
		},
		Affinities: make(map[string]int),
	}
	for _, id := range parts {
		p := Catalog.Part(id)
		b.Parts[p.Slot] = id
	}
	b.Health = b.MaxHealth()
	return b
}

// DefaultBody - обычное человеческое тело
func DefaultBody() *Body {
	return NewBody(DefaultBaseHealth, DefaultStrength)
}

// Part возвращает активную часть слота
func (b *Body) Part(slot Slot) PartDescriptor {
	return Catalog.Part(b.Parts[slot])
}

// --- Производные характеристики ---

func (b *Body) MaxHealth() int {
	return b.BaseHealth + b.BonusHealth + b.Part(SlotExterior).MaxHealth
}

func (b *Body) Strength() int {
	return b.BaseStrength + b.Part(SlotManipulators).Strength
}

func (b *Body) Defence() int {
	return b.Part(SlotExterior).Defence
}

func (b *Body) Speed() int {
	return b.Part(SlotPropulsors).Speed
}

func (b *Body) ViewRadius() int {
	return b.Part(SlotEyes).ViewRadius
}

func (b *Body) CanEquipWeapons() bool {
	return b.Part(SlotManipulators).CanEquip
}

func (b *Body) CarryCapacity() int {
	return 2 + b.Strength()/2
}

func (b *Body) ThrowRange() int {
	return b.Strength() + 2
}

func (b *Body) Dead() bool {
	return b.Health <= 0
}

// TakeDamage уменьшает здоровье, не опуская его ниже нуля
func (b *Body) TakeDamage(amount int) {
	if amount < 0 {
		return
	}
	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
}

// Heal восстанавливает здоровье, не выше максимума
func (b *Body) Heal(amount int) {
	if amount < 0 {
		return
	}
	b.Health += amount
	if limit := b.MaxHealth(); b.Health > limit {
		b.Health = limit
	}
}

// IncreaseAffinities добавляет сродство за каждый тег (дубликаты считаются)
func (b *Body) IncreaseAffinities(tags ...string) {
	if b.Affinities == nil {
		b.Affinities = make(map[string]int)
	}
	for _, tag := range tags {
		b.Affinities[tag] += AffinityStep
	}
}

// SetPart ставит часть в ее слот и подрезает здоровье под новый максимум
func (b *Body) SetPart(id PartID) PartDescriptor {
	p := Catalog.Part(id)
	old := b.Part(p.Slot)
	b.Parts[p.Slot] = id
	if limit := b.MaxHealth(); b.Health > limit {
		b.Health = limit
	}
	return old
}

// --- Бой ---

// Mitigate - урон оружия после защиты, но не меньше единицы.
// Безоружный удар защиту не учитывает.
func Mitigate(damage, defence int) int {
	if d := damage - defence; d > 1 {
		return d
	}
	return 1
}

// Attack - безоружная атака: сообщение, контакт кожи с обеих сторон, затем урон
func (b *Body) Attack(self, other *Entity, sink MessageSink) {
	manip := b.Part(SlotManipulators)
	sink.Post(NewMessage(CategoryCombat, "%s %s at %s!",
		self.Phrase(), self.Conjugate(manip.Verb), other.Phrase()))

	b.OnContact(self, other, sink)
	other.Body.OnContact(other, self, sink)

	other.Body.TakeDamage(manip.Damage)
}

// OnContact - эффект соприкосновения с внешним покровом self
func (b *Body) OnContact(self, other *Entity, sink MessageSink) {
	ext := b.Part(SlotExterior)
	if ext.ContactDamage <= 0 {
		return
	}
	sink.Post(NewMessage(CategoryCombat, "%s %s %s %s %s.",
		other.Phrase(), other.Be(), ext.ContactVerb, self.Possessive(), ext.Name))
	other.Body.TakeDamage(ext.ContactDamage)
}

// --- Мутация ---

// Mutation - результат одной замены части тела
type Mutation struct {
	Slot Slot
	Old  PartDescriptor
	New  PartDescriptor
}

// MutationCandidates - все части каталога, кроме уже стоящих в своих слотах
func (b *Body) MutationCandidates() []PartDescriptor {
	var out []PartDescriptor
	for _, p := range Catalog {
		if b.Parts[p.Slot] != p.ID {
			out = append(out, p)
		}
	}
	return out
}

// Mutate делит нестабильность пополам и меняет одну часть тела.
// При weighted шанс кандидата растет со сродством к его существу.
func (b *Body) Mutate(rng *rand.Rand, weighted bool) (Mutation, bool) {
	b.Instability /= 2

	candidates := b.MutationCandidates()
	if len(candidates) == 0 {
		return Mutation{}, false
	}

	var idx int
	if weighted {
		weights := make([]int, len(candidates))
		for i, c := range candidates {
			weights[i] = max(1, 1+b.Affinities[c.Creature])
		}
		idx = utils.WeightedIndex(rng, weights)
	} else {
		idx = rng.Intn(len(candidates))
	}

	chosen := candidates[idx]
	old := b.SetPart(chosen.ID)
	return Mutation{Slot: chosen.Slot, Old: old, New: chosen}, true
}

// PartAbilityKeys - ключи способностей, которые дают текущие части тела
func (b *Body) PartAbilityKeys() []string {
	var keys []string
	for _, id := range b.Parts {
		if k := Catalog.Part(id).Ability; k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
