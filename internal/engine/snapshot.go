package engine

import (
	"encoding/json"
	"fmt"

	"github.com/Peritract/meld/internal/abilities"
	"github.com/Peritract/meld/internal/conditions"
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/features"
	"github.com/Peritract/meld/internal/minds"
	"github.com/Peritract/meld/internal/spatial"
	"github.com/Peritract/meld/internal/world"
)

const SnapshotVersion = 1

// Виды разумов, состояний и объектов в снимке
const (
	MindNone     = "none"
	MindPlayer   = "player"
	MindWanderer = "wanderer"
	MindHunter   = "hunter"
	MindSeeker   = "seeker"

	ConditionPoison = "poison"
	ConditionLure   = "lure"

	FeatureAcid    = "acid_blob"
	FeatureMutagen = "mutagen_pool"
)

// Snapshot - полный граф зоны. Ссылки между объектами хранятся как ID
// и индексы, при загрузке связи восстанавливаются.
type Snapshot struct {
	Version int          `json:"version"`
	Round   int          `json:"round"`
	Area    AreaSnapshot `json:"area"`
}

type AreaSnapshot struct {
	ID           uint16             `json:"id"`
	Name         string             `json:"name"`
	Grid         *spatial.Grid      `json:"grid"`
	Seed         int64              `json:"seed"`
	RandPosition int64              `json:"randPosition"`
	IDs          domain.IDAllocator `json:"ids"`
	Entities     []EntitySnapshot   `json:"entities"`
	Items        []*domain.Item     `json:"items"`
	Features     []FeatureSnapshot  `json:"features"`
	Messages     []domain.Message   `json:"messages"`
}

type EntitySnapshot struct {
	ID          domain.EntityID     `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Symbol      string              `json:"symbol"`
	Color       string              `json:"color"`
	Pos         domain.Position     `json:"pos"`
	Faction     string              `json:"faction"`
	Body        *domain.Body        `json:"body"`
	Inventory   []*domain.Item      `json:"inventory,omitempty"`
	Weapon      domain.EntityID     `json:"weapon,omitempty"`
	Armour      domain.EntityID     `json:"armour,omitempty"`
	Minds       []MindSnapshot      `json:"minds"`
	Conditions  []ConditionSnapshot `json:"conditions,omitempty"`
	Abilities   []AbilitySnapshot   `json:"abilities,omitempty"`
}

type MindSnapshot struct {
	Kind      string           `json:"kind"`
	GoalID    domain.EntityID  `json:"goalId,omitempty"`
	GoalPos   *domain.Position `json:"goalPos,omitempty"`
	LastKnown *domain.Position `json:"lastKnown,omitempty"`
}

type ConditionSnapshot struct {
	Kind     string          `json:"kind"`
	Duration int             `json:"duration"`
	Damage   int             `json:"damage,omitempty"`
	Goal     domain.EntityID `json:"goal,omitempty"`
	// MindIndex - позиция искателя Lure в стеке разумов цели
	MindIndex int `json:"mindIndex,omitempty"`
}

type AbilitySnapshot struct {
	Key   string `json:"key"`
	Delay int    `json:"delay"`
}

type FeatureSnapshot struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// --- Capture ---

// Capture снимает состояние зоны вместе с номером раунда
func Capture(level *world.Level, round int) (*Snapshot, error) {
	area := AreaSnapshot{
		ID:           level.ID,
		Name:         level.Name,
		Grid:         level.Grid(),
		Seed:         level.Seed(),
		RandPosition: level.RandPosition(),
		IDs:          level.IDs(),
		Items:        level.Items(),
		Messages:     level.Log().Messages(),
	}

	for _, e := range level.Entities() {
		es, err := captureEntity(e)
		if err != nil {
			return nil, fmt.Errorf("capture %s: %w", e.ID, err)
		}
		area.Entities = append(area.Entities, es)
	}

	for _, f := range level.Features() {
		fs, err := captureFeature(f)
		if err != nil {
			return nil, err
		}
		area.Features = append(area.Features, fs)
	}

	return &Snapshot{Version: SnapshotVersion, Round: round, Area: area}, nil
}

func captureEntity(e *domain.Entity) (EntitySnapshot, error) {
	es := EntitySnapshot{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Symbol:      e.Symbol,
		Color:       e.Color,
		Pos:         e.Pos,
		Faction:     e.Faction,
		Body:        e.Body,
		Inventory:   e.Items(),
	}
	if e.Weapon != nil {
		es.Weapon = e.Weapon.ID
	}
	if e.Armour != nil {
		es.Armour = e.Armour.ID
	}

	stack := e.Minds()
	for _, m := range stack {
		ms, err := captureMind(m)
		if err != nil {
			return es, err
		}
		es.Minds = append(es.Minds, ms)
	}

	for _, c := range e.Conditions() {
		cs := ConditionSnapshot{Kind: c.Name(), Duration: c.Remaining()}
		switch cond := c.(type) {
		case *conditions.Poison:
			cs.Damage = cond.Damage
		case *conditions.Lure:
			cs.Goal = cond.Goal
			cs.MindIndex = -1
			for i, m := range stack {
				if m == domain.Mind(cond.Seeker()) {
					cs.MindIndex = i
				}
			}
		default:
			return es, fmt.Errorf("unknown condition %T", c)
		}
		es.Conditions = append(es.Conditions, cs)
	}

	for _, a := range e.Abilities() {
		es.Abilities = append(es.Abilities, AbilitySnapshot{Key: a.Key, Delay: a.Delay})
	}
	return es, nil
}

func captureMind(m domain.Mind) (MindSnapshot, error) {
	switch mind := m.(type) {
	case nil:
		return MindSnapshot{Kind: MindNone}, nil
	case *minds.Player:
		return MindSnapshot{Kind: MindPlayer}, nil
	case *minds.Wanderer:
		return MindSnapshot{Kind: MindWanderer}, nil
	case *minds.Hunter:
		return MindSnapshot{Kind: MindHunter, LastKnown: mind.LastKnownTarget}, nil
	case *minds.Seeker:
		return MindSnapshot{Kind: MindSeeker, GoalID: mind.GoalID, GoalPos: mind.GoalPos}, nil
	}
	return MindSnapshot{}, fmt.Errorf("unknown mind %T", m)
}

func captureFeature(f domain.Feature) (FeatureSnapshot, error) {
	var kind string
	switch f.(type) {
	case *features.AcidBlob:
		kind = FeatureAcid
	case *features.MutagenPool:
		kind = FeatureMutagen
	default:
		return FeatureSnapshot{}, fmt.Errorf("unknown feature %T", f)
	}
	data, err := json.Marshal(f)
	if err != nil {
		return FeatureSnapshot{}, fmt.Errorf("marshal %s: %w", kind, err)
	}
	return FeatureSnapshot{Kind: kind, Data: data}, nil
}

// --- Restore ---

// Restore собирает зону из снимка. Способности создаются заново по ключам.
func Restore(s *Snapshot) (*world.Level, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	a := s.Area
	if a.Grid == nil {
		return nil, fmt.Errorf("snapshot has no grid")
	}

	level := world.NewLevel(a.ID, a.Name, a.Grid, a.Seed)
	level.RestoreRandom(a.Seed, a.RandPosition, a.IDs)
	level.SetAbilityFactory(abilities.New)

	for _, es := range a.Entities {
		e, err := restoreEntity(es, level)
		if err != nil {
			return nil, fmt.Errorf("restore %s: %w", es.ID, err)
		}
		level.AddEntity(e)
	}

	for _, it := range a.Items {
		level.PlaceItem(it, it.Pos)
	}

	for _, fs := range a.Features {
		f, err := restoreFeature(fs)
		if err != nil {
			return nil, err
		}
		level.AddFeature(f)
	}

	level.Log().Load(a.Messages)
	return level, nil
}

func restoreEntity(es EntitySnapshot, level *world.Level) (*domain.Entity, error) {
	stack := make([]domain.Mind, 0, len(es.Minds))
	for _, ms := range es.Minds {
		m, err := restoreMind(ms)
		if err != nil {
			return nil, err
		}
		stack = append(stack, m)
	}

	var base domain.Mind
	if len(stack) > 0 {
		base = stack[0]
	}
	e := domain.NewEntity(es.ID, es.Name, es.Faction, es.Body, base)
	e.Description = es.Description
	e.Symbol = es.Symbol
	e.Color = es.Color
	e.Pos = es.Pos
	if len(stack) > 0 && base == nil {
		e.SetMind(nil)
	}
	for _, m := range stack[min(1, len(stack)):] {
		e.PushMind(m)
	}

	for _, it := range es.Inventory {
		e.RestoreItem(it)
		switch it.ID {
		case es.Weapon:
			e.Weapon = it
		case es.Armour:
			e.Armour = it
		}
	}

	for _, cs := range es.Conditions {
		switch cs.Kind {
		case ConditionPoison:
			p := conditions.NewPoison(cs.Duration, cs.Damage)
			p.Rebind(e)
			e.RestoreCondition(p)
		case ConditionLure:
			if cs.MindIndex < 0 || cs.MindIndex >= len(stack) {
				return nil, fmt.Errorf("lure points at mind %d of %d", cs.MindIndex, len(stack))
			}
			seeker, ok := stack[cs.MindIndex].(*minds.Seeker)
			if !ok {
				return nil, fmt.Errorf("lure mind %d is %T", cs.MindIndex, stack[cs.MindIndex])
			}
			l := conditions.NewLure(cs.Duration, cs.Goal)
			l.Rebind(e, seeker)
			e.RestoreCondition(l)
		default:
			return nil, fmt.Errorf("unknown condition %q", cs.Kind)
		}
	}

	for _, as := range es.Abilities {
		ab := level.NewAbility(as.Key)
		if ab == nil {
			return nil, fmt.Errorf("unknown ability %q", as.Key)
		}
		ab.Delay = as.Delay
		e.GrantAbility(ab)
	}
	return e, nil
}

func restoreMind(ms MindSnapshot) (domain.Mind, error) {
	switch ms.Kind {
	case MindNone:
		return nil, nil
	case MindPlayer:
		return minds.NewPlayer(), nil
	case MindWanderer:
		return minds.NewWanderer(), nil
	case MindHunter:
		h := minds.NewHunter()
		h.LastKnownTarget = ms.LastKnown
		return h, nil
	case MindSeeker:
		return &minds.Seeker{GoalID: ms.GoalID, GoalPos: ms.GoalPos}, nil
	}
	return nil, fmt.Errorf("unknown mind %q", ms.Kind)
}

func restoreFeature(fs FeatureSnapshot) (domain.Feature, error) {
	var f domain.Feature
	switch fs.Kind {
	case FeatureAcid:
		f = &features.AcidBlob{}
	case FeatureMutagen:
		f = &features.MutagenPool{}
	default:
		return nil, fmt.Errorf("unknown feature %q", fs.Kind)
	}
	if err := json.Unmarshal(fs.Data, f); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", fs.Kind, err)
	}
	return f, nil
}
