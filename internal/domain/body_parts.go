package domain

// Slot - место части тела. На каждом слоте ровно одна активная часть.
type Slot uint8

const (
	SlotEyes Slot = iota
	SlotManipulators
	SlotPropulsors
	SlotExterior
	SlotMouth

	slotCount
)

var slotNames = [slotCount]string{"eyes", "manipulators", "propulsors", "exterior", "mouth"}

func (s Slot) String() string {
	if s < slotCount {
		return slotNames[s]
	}
	return "unknown"
}

// PartID - индекс дескриптора в каталоге
type PartID uint16

// PartDescriptor - неизменяемое описание части тела.
// Используются только поля, относящиеся к ее слоту.
type PartDescriptor struct {
	ID          PartID
	Slot        Slot
	Name        string
	Description string
	Creature    string // тег сродства
	Plural      bool   // "eyes transform", "mouth transforms"

	// eyes
	ViewRadius int
	// manipulators
	Verb     string
	Damage   int
	Strength int
	CanEquip bool
	// propulsors
	Speed int
	// exterior
	MaxHealth     int
	Defence       int
	ContactDamage int
	ContactVerb   string
	// mouth и прочие: ключ выдаваемой способности
	Ability string
}

// Agree спрягает глагол под число части: "eyes transform", "mouth transforms"
func (p PartDescriptor) Agree(verb string) string {
	if p.Plural {
		return verb
	}
	return ThirdPerson(verb)
}

// PartCatalog - реестр всех возможных частей, адресуемый по PartID
type PartCatalog []PartDescriptor

// Part возвращает дескриптор; ID вне каталога дает пустое описание
func (c PartCatalog) Part(id PartID) PartDescriptor {
	if int(id) < len(c) {
		return c[id]
	}
	return PartDescriptor{}
}

// BySlot - все части для слота в порядке каталога
func (c PartCatalog) BySlot(slot Slot) []PartDescriptor {
	var out []PartDescriptor
	for _, p := range c {
		if p.Slot == slot {
			out = append(out, p)
		}
	}
	return out
}

// Lookup ищет часть по имени
func (c PartCatalog) Lookup(name string) (PartDescriptor, bool) {
	for _, p := range c {
		if p.Name == name {
			return p, true
		}
	}
	return PartDescriptor{}, false
}

// Ключи части каталога, на которые ссылаются шаблоны существ
const (
	PartHumanEyes PartID = iota
	PartEyestalks
	PartCompoundEyes
	PartHumanHands
	PartPincers
	PartTentacles
	PartHumanLegs
	PartSnailFoot
	PartCrabLegs
	PartFrogLegs
	PartHumanSkin
	PartShell
	PartCarapace
	PartSlime
	PartSpines
	PartHumanMouth
	PartAcidGland
	PartFangs
	PartSirenThroat
)

// Ключи способностей, которые выдают части
const (
	AbilityAcidSpit  = "acid_spit"
	AbilityVenomSpit = "venom_spit"
	AbilitySirenCall = "siren_call"
)

// Catalog - фиксированный каталог кандидатов для мутации
var Catalog = PartCatalog{
	{ID: PartHumanEyes, Slot: SlotEyes, Name: "eyes", Description: "normal human eyes", Creature: "human", Plural: true, ViewRadius: 5},
	{ID: PartEyestalks, Slot: SlotEyes, Name: "eyestalks", Description: "soft eye-tipped tentacles", Creature: "snail", Plural: true, ViewRadius: 3},
	{ID: PartCompoundEyes, Slot: SlotEyes, Name: "compound eyes", Description: "bulging compound eyes", Creature: "fly", Plural: true, ViewRadius: 7},

	{ID: PartHumanHands, Slot: SlotManipulators, Name: "hands", Description: "ordinary human hands", Creature: "human", Plural: true, Verb: "punch", Damage: 2, CanEquip: true},
	{ID: PartPincers, Slot: SlotManipulators, Name: "pincers", Description: "heavy serrated pincers", Creature: "crab", Plural: true, Verb: "pinch", Damage: 4, Strength: 2},
	{ID: PartTentacles, Slot: SlotManipulators, Name: "tentacles", Description: "writhing suckered tentacles", Creature: "octopus", Plural: true, Verb: "lash", Damage: 3, Strength: 1, CanEquip: true},

	{ID: PartHumanLegs, Slot: SlotPropulsors, Name: "legs", Description: "two sturdy human legs", Creature: "human", Plural: true, Speed: 10},
	{ID: PartSnailFoot, Slot: SlotPropulsors, Name: "foot", Description: "a single muscular slime-foot", Creature: "snail", Speed: 5},
	{ID: PartCrabLegs, Slot: SlotPropulsors, Name: "crab legs", Description: "a skittering fan of jointed legs", Creature: "crab", Plural: true, Speed: 12},
	{ID: PartFrogLegs, Slot: SlotPropulsors, Name: "frog legs", Description: "long springy frog legs", Creature: "frog", Plural: true, Speed: 14},

	{ID: PartHumanSkin, Slot: SlotExterior, Name: "skin", Description: "soft human skin", Creature: "human"},
	{ID: PartShell, Slot: SlotExterior, Name: "shell", Description: "a spiral calcified shell", Creature: "snail", MaxHealth: 10, Defence: 2},
	{ID: PartCarapace, Slot: SlotExterior, Name: "carapace", Description: "a plated chitin carapace", Creature: "crab", MaxHealth: 5, Defence: 3},
	{ID: PartSlime, Slot: SlotExterior, Name: "slime", Description: "a coat of caustic slime", Creature: "frog", ContactDamage: 1, ContactVerb: "burned by"},
	{ID: PartSpines, Slot: SlotExterior, Name: "spines", Description: "a hide of brittle spines", Creature: "urchin", Plural: true, ContactDamage: 2, ContactVerb: "pricked by"},

	{ID: PartHumanMouth, Slot: SlotMouth, Name: "mouth", Description: "an unremarkable human mouth", Creature: "human"},
	{ID: PartAcidGland, Slot: SlotMouth, Name: "acid gland", Description: "a dribbling acid gland", Creature: "snail", Ability: AbilityAcidSpit},
	{ID: PartFangs, Slot: SlotMouth, Name: "fangs", Description: "hollow venomous fangs", Creature: "spider", Plural: true, Ability: AbilityVenomSpit},
	{ID: PartSirenThroat, Slot: SlotMouth, Name: "siren throat", Description: "a throbbing siren throat", Creature: "frog", Ability: AbilitySirenCall},
}
