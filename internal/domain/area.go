package domain

import (
	"context"
	"math/rand"
)

// InputSource - источник уже переведенных в Action команд игрока
type InputSource interface {
	NextAction(ctx context.Context) (Action, error)
}

// MutationRules - настройки мутации, которые задает зона
type MutationRules struct {
	Threshold        int  `yaml:"threshold" json:"threshold"`
	AffinityWeighted bool `yaml:"affinity_weighted" json:"affinityWeighted"`
}

// DefaultMutationThreshold - порог нестабильности
const DefaultMutationThreshold = 100

// Area - контекст мира, который видят разумы, состояния и способности.
type Area interface {
	Spatial
	MessageSink

	Rand() *rand.Rand
	InBounds(p Position) bool
	NewID(kind ObjectKind) EntityID

	Entities() []*Entity
	EntityByID(id EntityID) *Entity

	ItemsAt(p Position) []*Item
	PlaceItem(it *Item, p Position)
	RemoveItem(it *Item) bool

	AddFeature(f Feature)
	FeaturesAt(p Position) []Feature

	// AwaitInput - единственная точка ожидания во всем цикле
	AwaitInput(ctx context.Context) (Action, error)
	NewAbility(key string) *Ability
	MutationRules() MutationRules
}

// IsFree - клетка проходима и никем не занята
func IsFree(s Spatial, p Position) bool {
	return s.IsPassable(p) && s.BlockerAt(p) == nil
}
