package domain

import (
	"context"
	"math/rand"
)

// stubArea - минимальная зона для тестов пакета: пустая карта без стен
type stubArea struct {
	rng       *rand.Rand
	messages  []Message
	rules     MutationRules
	abilities map[string]func() *Ability
	blockers  map[Position]*Entity
	ids       IDAllocator
}

func newStubArea() *stubArea {
	return &stubArea{
		rng:       rand.New(rand.NewSource(1)),
		rules:     MutationRules{Threshold: DefaultMutationThreshold},
		abilities: map[string]func() *Ability{},
		blockers:  map[Position]*Entity{},
	}
}

func (a *stubArea) CalculateFOV(e *Entity) Visibility { return Visibility{} }
func (a *stubArea) PathTo(e *Entity, target Position) []Position {
	return nil
}
func (a *stubArea) DirectPath(from, to Position) []Position {
	var out []Position
	for p := from; p != to; {
		if p.X < to.X {
			p.X++
		} else if p.X > to.X {
			p.X--
		} else if p.Y < to.Y {
			p.Y++
		} else {
			p.Y--
		}
		out = append(out, p)
	}
	return out
}
func (a *stubArea) TilesInRange(c Position, r int) []Position { return nil }
func (a *stubArea) Distance(x, y Position) int                { return x.ManhattanTo(y) }
func (a *stubArea) IsPassable(p Position) bool                { return true }
func (a *stubArea) BlockerAt(p Position) *Entity              { return a.blockers[p] }
func (a *stubArea) Post(msg Message)                          { a.messages = append(a.messages, msg) }
func (a *stubArea) Rand() *rand.Rand                          { return a.rng }
func (a *stubArea) InBounds(p Position) bool                  { return true }
func (a *stubArea) NewID(kind ObjectKind) EntityID            { return a.ids.Allocate(kind) }
func (a *stubArea) Entities() []*Entity                       { return nil }
func (a *stubArea) EntityByID(id EntityID) *Entity            { return nil }
func (a *stubArea) ItemsAt(p Position) []*Item                { return nil }
func (a *stubArea) PlaceItem(it *Item, p Position)            { it.Pos = p }
func (a *stubArea) RemoveItem(it *Item) bool                  { return false }
func (a *stubArea) AddFeature(f Feature)                       {}
func (a *stubArea) FeaturesAt(p Position) []Feature { return nil }
func (a *stubArea) MutationRules() MutationRules    { return a.rules }
func (a *stubArea) AwaitInput(ctx context.Context) (Action, error) {
	return Wait{}, nil
}
func (a *stubArea) NewAbility(key string) *Ability {
	if f, ok := a.abilities[key]; ok {
		return f()
	}
	return nil
}

func (a *stubArea) texts() []string {
	out := make([]string, len(a.messages))
	for i, m := range a.messages {
		out[i] = m.Text
	}
	return out
}
