package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markerShot struct{ landed *Position }

func (m *markerShot) Land(at Position, area Area) { *m.landed = at }

func TestAbility_CooldownRoundTrip(t *testing.T) {
	for _, cooldown := range []int{1, 3, 5} {
		area := newStubArea()
		caster := NewEntity(1, "hero", FactionPlayer, nil, nil)
		a := &Ability{Key: "k", Name: "trick", Cooldown: cooldown,
			Apply: func(*Entity, Position, Area) error { return nil }}

		require.True(t, a.Ready())
		require.NoError(t, a.Activate(caster, Position{}, area))
		assert.False(t, a.Ready())

		for i := 0; i < cooldown-1; i++ {
			a.Update()
			assert.False(t, a.Ready(), "cooldown %d after %d updates", cooldown, i+1)
		}
		a.Update()
		assert.True(t, a.Ready())
	}
}

func TestAbility_NotReadyIsImpossible(t *testing.T) {
	area := newStubArea()
	caster := NewEntity(1, "hero", FactionPlayer, nil, nil)
	applied := 0
	a := &Ability{Key: "k", Name: "acid spit", Cooldown: 3, Delay: 1,
		Apply: func(*Entity, Position, Area) error { applied++; return nil }}

	err := a.Activate(caster, Position{}, area)

	ae, ok := AsActionError(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindImpossible, ae.Kind)
	assert.Equal(t, "The acid spit is not ready.", ae.Msg)
	assert.Zero(t, applied)
	assert.Equal(t, 1, a.Delay)
}

func TestAbility_WithoutEffectIsImpossible(t *testing.T) {
	area := newStubArea()
	caster := NewEntity(1, "hero", FactionPlayer, nil, nil)
	a := &Ability{Key: "k", Name: "dud", Cooldown: 4}

	err := a.Activate(caster, Position{}, area)

	ae, ok := AsActionError(err)
	require.True(t, ok)
	assert.Equal(t, "The dud does nothing.", ae.Msg)
	assert.True(t, a.Ready(), "no cooldown without an effect")
}

func TestAbility_AmmunitionStopsAtBlocker(t *testing.T) {
	area := newStubArea()
	caster := NewEntity(1, "hero", FactionPlayer, nil, nil)
	victim := NewEntity(2, "snail", "wild", nil, nil)
	victim.Pos = Position{X: 2}
	area.blockers[victim.Pos] = victim

	var landed Position
	a := &Ability{Key: "k", Name: "spit", Cooldown: 2, Range: 5,
		Ammunition: func() Projectile { return &markerShot{landed: &landed} }}

	require.NoError(t, a.Activate(caster, Position{X: 4}, area))
	assert.Equal(t, Position{X: 2}, landed)
	assert.Equal(t, 2, a.Delay)
}

func TestTrajectory_LimitedByRange(t *testing.T) {
	area := newStubArea()

	got := Trajectory(area, Position{}, Position{X: 10}, 3)

	assert.Equal(t, Position{X: 3}, got)
}
