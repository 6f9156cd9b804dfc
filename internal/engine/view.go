package engine

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/world"
	"github.com/Peritract/meld/pkg/api"
)

// Memory - исследованные клетки одного наблюдателя (туман войны)
type Memory map[domain.Position]bool

// BuildStateFor создает персональный "снимок" мира для конкретной сущности-наблюдателя.
// Память наблюдателя пополняется текущим полем зрения.
func BuildStateFor(level *world.Level, observer *domain.Entity, memory Memory, round int, logs []domain.Message) *api.ServerResponse {
	grid := level.Grid()

	// 1. Поле зрения. Мертвый наблюдатель видит только память.
	var visible domain.Visibility
	if observer.Alive() {
		visible = level.CalculateFOV(observer)
	}
	for p := range visible {
		memory[p] = true
	}

	// 2. Карта
	var tiles []api.TileView
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := domain.Position{X: x, Y: y}
			if !memory[p] {
				continue
			}
			t := api.TileView{
				X: x, Y: y,
				IsWall:     grid.IsWall(p),
				IsVisible:  visible.Contains(p),
				IsExplored: true,
				Symbol:     ".", Color: "#333333",
			}
			if t.IsWall {
				t.Symbol = "#"
				t.Color = "#666666"
			}
			tiles = append(tiles, t)
		}
	}

	// 3. Существа: себя видим всегда, остальных - в поле зрения
	var entities []api.EntityView
	for _, e := range level.Entities() {
		if e != observer && !visible.Contains(e.Pos) {
			continue
		}
		entities = append(entities, toEntityView(e, observer))
	}

	var items []api.ItemView
	for _, it := range level.Items() {
		if visible.Contains(it.Pos) {
			v := toItemView(it)
			v.Pos = &api.PosView{X: it.Pos.X, Y: it.Pos.Y}
			items = append(items, v)
		}
	}

	var features []api.FeatureView
	for _, f := range level.Features() {
		p := f.Position()
		if visible.Contains(p) {
			features = append(features, api.FeatureView{
				ID:           f.ID().Key(),
				Name:         f.Name(),
				Pos:          api.PosView{X: p.X, Y: p.Y},
				Interactable: f.Interactable(),
			})
		}
	}

	return &api.ServerResponse{
		Type:       api.ResponseUpdate,
		Round:      round,
		MyEntityID: observer.ID.Key(),
		Grid:       &api.GridMeta{Width: grid.Width, Height: grid.Height},
		Map:        tiles,
		Entities:   entities,
		Items:      items,
		Features:   features,
		Player:     toPlayerView(observer),
		Logs:       ToLogEntries(logs),
	}
}

// BuildModeFor - ответ MODE: клиент открывает выбор, ход не потрачен
func BuildModeFor(level *world.Level, observer *domain.Entity, m Mode, round int) *api.ServerResponse {
	view := &api.ModeView{Action: m.Action.String()}
	for _, it := range m.Items {
		view.Items = append(view.Items, toItemView(it))
	}
	if m.Target != nil {
		view.Target = &api.PosView{X: m.Target.X, Y: m.Target.Y}
	}
	if m.Action == domain.ActionViewLog {
		view.History = ToLogEntries(level.Log().Messages())
	}
	return &api.ServerResponse{
		Type:       api.ResponseMode,
		Round:      round,
		MyEntityID: observer.ID.Key(),
		Mode:       view,
	}
}

// ToLogEntries конвертирует сообщения журнала в DTO
func ToLogEntries(msgs []domain.Message) []api.LogEntry {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]api.LogEntry, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, api.LogEntry{Text: m.Text, Type: m.Category.String(), Count: m.Count})
	}
	return out
}

// toEntityView конвертирует доменную сущность в DTO для отправки клиенту.
func toEntityView(target, observer *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:      target.ID.Key(),
		Name:    target.Name,
		Faction: target.Faction,
		Symbol:  target.Symbol,
		Color:   target.Color,
		Pos:     api.PosView{X: target.Pos.X, Y: target.Pos.Y},
	}
	if view.Symbol == "" {
		view.Symbol = "?"
		view.Color = "#fff"
	}

	b := target.Body
	if b == nil {
		return view
	}
	// Чужаки видят минимум
	view.Stats = &api.StatsView{HP: b.Health, MaxHP: b.MaxHealth(), IsDead: b.Dead()}
	if target == observer {
		view.Stats.Strength = b.Strength()
		view.Stats.Defence = target.Defence()
		view.Stats.Speed = b.Speed()
		view.Stats.Instability = b.Instability
	}
	return view
}

func toPlayerView(e *domain.Entity) *api.PlayerView {
	if e.Body == nil {
		return nil
	}
	pv := &api.PlayerView{Affinities: e.Body.Affinities}
	for slot := domain.SlotEyes; slot <= domain.SlotMouth; slot++ {
		p := e.Body.Part(slot)
		pv.Parts = append(pv.Parts, api.PartView{Slot: slot.String(), Name: p.Name, Description: p.Description})
	}
	for _, a := range e.Abilities() {
		pv.Abilities = append(pv.Abilities, api.AbilityView{
			Key: a.Key, Name: a.Name, Kind: a.Kind.String(), Range: a.Range, Delay: a.Delay,
		})
	}
	for _, c := range e.Conditions() {
		pv.Conditions = append(pv.Conditions, api.ConditionView{Name: c.Name(), Remaining: c.Remaining()})
	}

	inv := &api.InventoryView{Items: []api.ItemView{}, MaxSlots: e.Body.CarryCapacity()}
	for _, it := range e.Items() {
		inv.Items = append(inv.Items, toItemView(it))
	}
	pv.Inventory = inv

	if e.Weapon != nil || e.Armour != nil {
		eq := &api.EquipmentView{}
		if e.Weapon != nil {
			w := toItemView(e.Weapon)
			eq.Weapon = &w
		}
		if e.Armour != nil {
			a := toItemView(e.Armour)
			eq.Armour = &a
		}
		pv.Equipment = eq
	}
	return pv
}

func toItemView(it *domain.Item) api.ItemView {
	return api.ItemView{
		ID:          it.ID.Key(),
		Name:        it.Name,
		Description: it.Description,
		Symbol:      it.Symbol,
		Color:       it.Color,
		Category:    it.Kind.String(),
		Damage:      it.Damage,
		Defence:     it.Defence,
		Uses:        it.Uses,
	}
}
