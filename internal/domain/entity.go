package domain

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// FactionPlayer - фракция, на которую охотятся враждебные разумы
const FactionPlayer = "player"

// Entity - действующее лицо: разум + тело + инвентарь + состояния + способности.
// Владеет телом и стеком разумов единолично.
type Entity struct {
	ID          EntityID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Symbol      string   `json:"symbol"`
	Color       string   `json:"color"`
	Pos         Position `json:"pos"`
	Faction     string   `json:"faction"`

	Body   *Body `json:"body"`
	Weapon *Item `json:"-"`
	Armour *Item `json:"-"`

	// Верх стека - активный разум. Состояния кладут сюда временные стратегии.
	minds      []Mind
	inventory  *mapset.Set[*Item]
	conditions []Condition
	abilities  []*Ability
}

// NewEntity создает сущность с базовым разумом
func NewEntity(id EntityID, name, faction string, body *Body, mind Mind) *Entity {
	e := &Entity{
		ID:        id,
		Name:      name,
		Faction:   faction,
		Body:      body,
		inventory: newInventory(),
	}
	if body == nil {
		e.Body = DefaultBody()
	}
	if mind != nil {
		e.minds = []Mind{mind}
	}
	return e
}

func (e *Entity) IsPlayer() bool {
	return e.Faction == FactionPlayer
}

// Alive - есть тело и оно не мертво
func (e *Entity) Alive() bool {
	return e.Body != nil && !e.Body.Dead()
}

// Defence - защита тела плюс надетая броня
func (e *Entity) Defence() int {
	d := e.Body.Defence()
	if e.Armour != nil {
		d += e.Armour.Defence
	}
	return d
}

// --- Грамматика для сообщений ---

// Phrase - как сущность называется в тексте
func (e *Entity) Phrase() string {
	if e.IsPlayer() {
		return "you"
	}
	return "the " + e.Name
}

func (e *Entity) Possessive() string {
	if e.IsPlayer() {
		return "your"
	}
	return "the " + e.Name + "'s"
}

// Conjugate спрягает глагол под сущность: "you punch", "the crab pinches"
func (e *Entity) Conjugate(verb string) string {
	if e.IsPlayer() {
		return verb
	}
	return ThirdPerson(verb)
}

func (e *Entity) Be() string {
	if e.IsPlayer() {
		return "are"
	}
	return "is"
}

// --- Разум ---

// Mind возвращает активную стратегию
func (e *Entity) Mind() Mind {
	if len(e.minds) == 0 {
		return nil
	}
	return e.minds[len(e.minds)-1]
}

// SetMind заменяет базовую стратегию, не трогая временные
func (e *Entity) SetMind(m Mind) {
	if len(e.minds) == 0 {
		e.minds = []Mind{m}
		return
	}
	e.minds[0] = m
}

// PushMind ставит временную стратегию поверх текущей
func (e *Entity) PushMind(m Mind) {
	e.minds = append(e.minds, m)
}

// ReleaseMind снимает ровно эту временную стратегию, где бы она ни лежала в стеке.
// Базовую снять нельзя.
func (e *Entity) ReleaseMind(m Mind) bool {
	for i := len(e.minds) - 1; i > 0; i-- {
		if e.minds[i] == m {
			e.minds = append(e.minds[:i], e.minds[i+1:]...)
			return true
		}
	}
	return false
}

// Minds - копия стека снизу вверх
func (e *Entity) Minds() []Mind {
	out := make([]Mind, len(e.minds))
	copy(out, e.minds)
	return out
}

// --- Инвентарь ---

func newInventory() *mapset.Set[*Item] {
	s := mapset.New[*Item]()
	return &s
}

// ensureInventory нужен для сущностей, собранных без NewEntity
func (e *Entity) ensureInventory() {
	if e.inventory == nil {
		e.inventory = newInventory()
	}
}

// InventorySize - сколько предметов несет сущность
func (e *Entity) InventorySize() int {
	e.ensureInventory()
	return e.inventory.Size()
}

// InventoryFull - больше не унести
func (e *Entity) InventoryFull() bool {
	return e.InventorySize() >= e.Body.CarryCapacity()
}

// AddItem кладет предмет в инвентарь, если хватает грузоподъемности
func (e *Entity) AddItem(it *Item) error {
	e.ensureInventory()
	if e.inventory.Has(it) {
		return nil
	}
	if e.InventoryFull() {
		return InventoryFull("You are carrying too much.")
	}
	e.inventory.Put(it)
	return nil
}

// RestoreItem кладет предмет без проверки грузоподъемности (загрузка сохранения)
func (e *Entity) RestoreItem(it *Item) {
	e.ensureInventory()
	e.inventory.Put(it)
}

// RemoveItem убирает предмет из инвентаря и снимает его, если он надет
func (e *Entity) RemoveItem(it *Item) bool {
	e.ensureInventory()
	if !e.inventory.Has(it) {
		return false
	}
	e.inventory.Remove(it)
	if e.Weapon == it {
		e.Weapon = nil
	}
	if e.Armour == it {
		e.Armour = nil
	}
	return true
}

func (e *Entity) HasItem(it *Item) bool {
	e.ensureInventory()
	return e.inventory.Has(it)
}

// Items возвращает предметы в порядке ID, чтобы вывод был стабильным
func (e *Entity) Items() []*Item {
	e.ensureInventory()
	out := make([]*Item, 0, e.inventory.Size())
	e.inventory.Each(func(it *Item) {
		out = append(out, it)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FindItem ищет предмет в инвентаре по ID
func (e *Entity) FindItem(id EntityID) *Item {
	var found *Item
	e.ensureInventory()
	e.inventory.Each(func(it *Item) {
		if it.ID == id {
			found = it
		}
	})
	return found
}

// --- Состояния ---

// Afflict добавляет состояние и привязывает его
func (e *Entity) Afflict(c Condition, area Area) {
	for _, existing := range e.conditions {
		if existing == c {
			return
		}
	}
	e.conditions = append(e.conditions, c)
	c.Attach(e, area)
}

// RestoreCondition возвращает состояние из снимка: без Attach и его побочных эффектов
func (e *Entity) RestoreCondition(c Condition) {
	if !e.HasCondition(c) {
		e.conditions = append(e.conditions, c)
	}
}

// DetachCondition убирает состояние из набора. Вызывается из Condition.Remove.
func (e *Entity) DetachCondition(c Condition) bool {
	for i, existing := range e.conditions {
		if existing == c {
			e.conditions = append(e.conditions[:i], e.conditions[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Entity) HasCondition(c Condition) bool {
	for _, existing := range e.conditions {
		if existing == c {
			return true
		}
	}
	return false
}

// Conditions - копия набора; безопасно обходить, пока состояния снимаются
func (e *Entity) Conditions() []Condition {
	out := make([]Condition, len(e.conditions))
	copy(out, e.conditions)
	return out
}

// --- Способности ---

// GrantAbility добавляет способность; повтор по ключу игнорируется
func (e *Entity) GrantAbility(a *Ability) bool {
	if a == nil || e.Ability(a.Key) != nil {
		return false
	}
	e.abilities = append(e.abilities, a)
	return true
}

func (e *Entity) RevokeAbility(key string) bool {
	for i, a := range e.abilities {
		if a.Key == key {
			e.abilities = append(e.abilities[:i], e.abilities[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Entity) Ability(key string) *Ability {
	for _, a := range e.abilities {
		if a.Key == key {
			return a
		}
	}
	return nil
}

func (e *Entity) Abilities() []*Ability {
	out := make([]*Ability, len(e.abilities))
	copy(out, e.abilities)
	return out
}

// --- Ход ---

// Update - проход раз в раунд: состояния, перезарядка, мутация
func (e *Entity) Update(area Area) {
	for _, c := range e.Conditions() {
		if !e.HasCondition(c) {
			continue
		}
		c.Update(area)
		if !e.Alive() {
			return
		}
	}

	for _, a := range e.abilities {
		a.Update()
	}

	rules := area.MutationRules()
	threshold := rules.Threshold
	if threshold <= 0 {
		threshold = DefaultMutationThreshold
	}
	if e.Body.Instability >= threshold {
		e.Mutate(area, rules.AffinityWeighted)
	}
}

// Mutate меняет одну часть тела и синхронизирует выданные частями способности
func (e *Entity) Mutate(area Area, weighted bool) (Mutation, bool) {
	m, ok := e.Body.Mutate(area.Rand(), weighted)
	if !ok {
		return m, false
	}

	area.Post(NewMessage(CategoryAlert, "%s form shifts!", e.Possessive()))
	area.Post(NewMessage(CategoryWorld, "%s %s %s into %s.",
		e.Possessive(), m.Old.Name, m.Old.Agree("transform"), m.New.Description))

	if m.Old.Ability != "" && !e.partGrants(m.Old.Ability) {
		e.RevokeAbility(m.Old.Ability)
	}
	if m.New.Ability != "" {
		e.GrantAbility(area.NewAbility(m.New.Ability))
	}
	return m, true
}

func (e *Entity) partGrants(key string) bool {
	for _, id := range e.Body.Parts {
		if Catalog.Part(id).Ability == key {
			return true
		}
	}
	return false
}
