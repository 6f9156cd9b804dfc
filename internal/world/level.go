package world

import (
	"context"
	"errors"
	"math/rand"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/spatial"
	"github.com/Peritract/meld/pkg/utils"
)

// ErrNoInput - у зоны нет источника ввода для разума игрока
var ErrNoInput = errors.New("no input source attached")

// AbilityFactory создает способность по ключу
type AbilityFactory func(key string) *domain.Ability

// Level - одна игровая зона: карта, население, предметы, объекты и журнал.
// Реализует domain.Area.
type Level struct {
	*spatial.Service

	ID   uint16
	Name string

	grid     *spatial.Grid
	entities []*domain.Entity
	items    []*domain.Item
	features []domain.Feature

	rng *rand.Rand
	src *utils.TrackedSource
	ids domain.IDAllocator

	log       *MessageLog
	input     domain.InputSource
	abilities AbilityFactory
	rules     domain.MutationRules
}

// NewLevel создает зону над картой с детерминированным генератором
func NewLevel(id uint16, name string, grid *spatial.Grid, seed int64) *Level {
	rng, src := utils.NewTrackedRand(seed)
	l := &Level{
		ID:    id,
		Name:  name,
		grid:  grid,
		rng:   rng,
		src:   src,
		ids:   domain.IDAllocator{Area: id},
		log:   NewMessageLog(id, DefaultLogLimit),
		rules: domain.MutationRules{Threshold: domain.DefaultMutationThreshold},
	}
	l.Service = spatial.NewService(grid, l)
	return l
}

// --- Настройка ---

func (l *Level) SetInput(in domain.InputSource)          { l.input = in }
func (l *Level) SetAbilityFactory(f AbilityFactory)      { l.abilities = f }
func (l *Level) SetMutationRules(r domain.MutationRules) { l.rules = r }

func (l *Level) Grid() *spatial.Grid     { return l.grid }
func (l *Level) Log() *MessageLog        { return l.log }
func (l *Level) Seed() int64             { return l.src.SeedValue() }
func (l *Level) RandPosition() int64     { return l.src.Position() }
func (l *Level) IDs() domain.IDAllocator { return l.ids }

// RestoreRandom возвращает генератор и счетчик ID в сохраненное состояние
func (l *Level) RestoreRandom(seed, position int64, ids domain.IDAllocator) {
	l.rng, l.src = utils.RestoreTrackedRand(seed, position)
	l.ids = ids
}

// --- domain.Area ---

func (l *Level) Post(msg domain.Message)                      { l.log.Post(msg) }
func (l *Level) Rand() *rand.Rand                             { return l.rng }
func (l *Level) InBounds(p domain.Position) bool              { return l.grid.InBounds(p) }
func (l *Level) NewID(kind domain.ObjectKind) domain.EntityID { return l.ids.Allocate(kind) }
func (l *Level) MutationRules() domain.MutationRules          { return l.rules }

// Entities возвращает население в порядке добавления.
// Срез общий: вызывающий не должен его менять.
func (l *Level) Entities() []*domain.Entity {
	return l.entities
}

func (l *Level) EntityByID(id domain.EntityID) *domain.Entity {
	for _, e := range l.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (l *Level) AwaitInput(ctx context.Context) (domain.Action, error) {
	if l.input == nil {
		return nil, ErrNoInput
	}
	return l.input.NextAction(ctx)
}

func (l *Level) NewAbility(key string) *domain.Ability {
	if l.abilities == nil {
		return nil
	}
	return l.abilities(key)
}

// --- Население ---

// AddEntity добавляет сущность в конец порядка ходов
func (l *Level) AddEntity(e *domain.Entity) {
	l.entities = append(l.entities, e)
}

// RemoveEntity убирает сущность, сохраняя порядок остальных
func (l *Level) RemoveEntity(e *domain.Entity) bool {
	for i, existing := range l.entities {
		if existing == e {
			next := make([]*domain.Entity, 0, len(l.entities)-1)
			next = append(next, l.entities[:i]...)
			next = append(next, l.entities[i+1:]...)
			l.entities = next
			return true
		}
	}
	return false
}

// Contains - сущность все еще в зоне
func (l *Level) Contains(e *domain.Entity) bool {
	for _, existing := range l.entities {
		if existing == e {
			return true
		}
	}
	return false
}

// Player возвращает первую сущность фракции игрока
func (l *Level) Player() *domain.Entity {
	for _, e := range l.entities {
		if e.IsPlayer() {
			return e
		}
	}
	return nil
}

// --- Предметы ---

func (l *Level) PlaceItem(it *domain.Item, p domain.Position) {
	it.Pos = p
	for _, existing := range l.items {
		if existing == it {
			return
		}
	}
	l.items = append(l.items, it)
}

func (l *Level) RemoveItem(it *domain.Item) bool {
	for i, existing := range l.items {
		if existing == it {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Level) ItemsAt(p domain.Position) []*domain.Item {
	var out []*domain.Item
	for _, it := range l.items {
		if it.Pos == p {
			out = append(out, it)
		}
	}
	return out
}

func (l *Level) Items() []*domain.Item {
	out := make([]*domain.Item, len(l.items))
	copy(out, l.items)
	return out
}

// --- Объекты ---

func (l *Level) AddFeature(f domain.Feature) {
	l.features = append(l.features, f)
}

func (l *Level) FeaturesAt(p domain.Position) []domain.Feature {
	var out []domain.Feature
	for _, f := range l.features {
		if f.Position() == p && !f.Expired() {
			out = append(out, f)
		}
	}
	return out
}

func (l *Level) Features() []domain.Feature {
	out := make([]domain.Feature, len(l.features))
	copy(out, l.features)
	return out
}

// UpdateFeatures - проход по объектам с таймерами; истекшие убираются
func (l *Level) UpdateFeatures() {
	for _, f := range l.Features() {
		if !f.Expired() {
			f.Update(l)
		}
	}
	alive := l.features[:0]
	for _, f := range l.features {
		if !f.Expired() {
			alive = append(alive, f)
		}
	}
	l.features = alive
}
