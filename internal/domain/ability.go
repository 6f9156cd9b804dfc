package domain

import "fmt"

// AbilityKind - способ применения способности
type AbilityKind uint8

const (
	AbilitySelf AbilityKind = iota
	AbilityFire
	AbilityEvoke
)

func (k AbilityKind) String() string {
	switch k {
	case AbilityFire:
		return "fire"
	case AbilityEvoke:
		return "evoke"
	}
	return "self"
}

// Ability - именованный эффект с перезарядкой.
// Delay == 0 означает готовность.
type Ability struct {
	Key      string      `json:"key"`
	Name     string      `json:"name"`
	Kind     AbilityKind `json:"kind"`
	Cooldown int         `json:"cooldown"`
	Delay    int         `json:"delay"`
	Range    int         `json:"range,omitempty"`

	Ammunition func() Projectile                                  `json:"-"`
	Apply      func(caster *Entity, target Position, area Area) error `json:"-"`
}

func (a *Ability) Ready() bool {
	return a.Delay == 0
}

// Activate запускает эффект и уходит на перезарядку.
// Цель должна быть заранее проверена вызывающим.
func (a *Ability) Activate(caster *Entity, target Position, area Area) error {
	if !a.Ready() {
		return Impossible(fmt.Sprintf("The %s is not ready.", a.Name))
	}

	switch {
	case a.Ammunition != nil:
		landing := Trajectory(area, caster.Pos, target, a.Range)
		a.Ammunition().Land(landing, area)
	case a.Apply != nil:
		if err := a.Apply(caster, target, area); err != nil {
			return err
		}
	default:
		return Impossible(fmt.Sprintf("The %s does nothing.", a.Name))
	}

	a.Delay = a.Cooldown
	return nil
}

// Update вызывается раз в ход для каждой способности, даже неиспользованной
func (a *Ability) Update() {
	if a.Delay > 0 {
		a.Delay--
	}
}
