package systems

import (
	"errors"
	"testing"

	"github.com/Peritract/meld/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actionMsg(t *testing.T, err error) string {
	t.Helper()
	ae, ok := domain.AsActionError(err)
	require.True(t, ok, "expected action error, got %v", err)
	return ae.Msg
}

func TestTryPickup(t *testing.T) {
	t.Run("nothing here", func(t *testing.T) {
		l := newLevel(t)
		hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
		assert.Equal(t, "Nothing to pick up.", actionMsg(t, TryPickup(hero, 0, l)))
	})

	t.Run("single item", func(t *testing.T) {
		l := newLevel(t)
		hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
		rock := newItem(l, "rock", domain.ItemMisc)
		l.PlaceItem(rock, hero.Pos)

		require.NoError(t, TryPickup(hero, 0, l))
		assert.True(t, hero.HasItem(rock))
		assert.Empty(t, l.ItemsAt(hero.Pos))
		assert.Equal(t, []string{"You pick up the rock."}, texts(l))
	})

	t.Run("several items ask for a choice", func(t *testing.T) {
		l := newLevel(t)
		hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
		l.PlaceItem(newItem(l, "rock", domain.ItemMisc), hero.Pos)
		l.PlaceItem(newItem(l, "stick", domain.ItemMisc), hero.Pos)

		err := TryPickup(hero, 0, l)
		var choice *ChoiceError
		require.True(t, errors.As(err, &choice))
		assert.Len(t, choice.Items, 2)
		assert.Zero(t, hero.InventorySize())
	})

	t.Run("full inventory", func(t *testing.T) {
		l := newLevel(t)
		hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
		for i := 0; i < hero.Body.CarryCapacity(); i++ {
			require.NoError(t, hero.AddItem(newItem(l, "pebble", domain.ItemMisc)))
		}
		rock := newItem(l, "rock", domain.ItemMisc)
		l.PlaceItem(rock, hero.Pos)

		err := TryPickup(hero, rock.ID, l)

		assert.True(t, domain.IsInventoryFull(err))
		assert.Equal(t, "You are carrying too much.", actionMsg(t, err))
		assert.Len(t, l.ItemsAt(hero.Pos), 1, "the item stays on the floor")
	})
}

func TestTryDrop(t *testing.T) {
	l := newLevel(t)
	hero := spawn(l, "hero", domain.FactionPlayer, 3, 1)
	rock := newItem(l, "rock", domain.ItemMisc)
	require.NoError(t, hero.AddItem(rock))

	require.NoError(t, TryDrop(hero, rock.ID, l))

	assert.False(t, hero.HasItem(rock))
	assert.Equal(t, []*domain.Item{rock}, l.ItemsAt(domain.Position{X: 3, Y: 1}))
	assert.Equal(t, "You are not carrying that.", actionMsg(t, TryDrop(hero, rock.ID, l)))
}

func TestTryEquip(t *testing.T) {
	l := newLevel(t)
	hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
	crab := spawn(l, "crab", "wild", 2, 1)
	crab.Body.SetPart(domain.PartPincers)

	club := newItem(l, "club", domain.ItemWeapon)
	rock := newItem(l, "rock", domain.ItemMisc)
	require.NoError(t, hero.AddItem(club))
	require.NoError(t, hero.AddItem(rock))

	require.NoError(t, TryEquip(hero, club.ID, l))
	assert.Same(t, club, hero.Weapon)
	assert.Equal(t, "You are already wielding that.", actionMsg(t, TryEquip(hero, club.ID, l)))
	assert.Equal(t, "The rock cannot be equipped.", actionMsg(t, TryEquip(hero, rock.ID, l)))

	require.NoError(t, TryUnequip(hero, club.ID, l))
	assert.Nil(t, hero.Weapon)
	assert.True(t, hero.HasItem(club))
	assert.Error(t, TryUnequip(hero, club.ID, l))

	// Клешни не держат оружие
	crabClub := newItem(l, "club", domain.ItemWeapon)
	require.NoError(t, crab.AddItem(crabClub))
	assert.Equal(t, "The crab cannot grip the club.", actionMsg(t, TryEquip(crab, crabClub.ID, l)))
}

func TestTryUse(t *testing.T) {
	t.Run("bandage at full health", func(t *testing.T) {
		l := newLevel(t)
		hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
		bandage := newItem(l, "bandage", domain.ItemConsumable)
		bandage.Effect, bandage.Power = domain.EffectHeal, 3
		require.NoError(t, hero.AddItem(bandage))

		assert.Equal(t, "You are already at full health.", actionMsg(t, TryUse(hero, bandage.ID, l)))
		assert.True(t, hero.HasItem(bandage))
	})

	t.Run("bandage heals and is used up", func(t *testing.T) {
		l := newLevel(t)
		hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
		hero.Body.TakeDamage(10)
		bandage := newItem(l, "bandage", domain.ItemConsumable)
		bandage.Effect, bandage.Power = domain.EffectHeal, 3
		require.NoError(t, hero.AddItem(bandage))

		require.NoError(t, TryUse(hero, bandage.ID, l))

		assert.Equal(t, hero.Body.MaxHealth()-7, hero.Body.Health)
		assert.False(t, hero.HasItem(bandage))
	})

	t.Run("mutagen", func(t *testing.T) {
		l := newLevel(t)
		hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
		vial := newItem(l, "mutagen", domain.ItemConsumable)
		vial.Effect, vial.Power, vial.Uses = domain.EffectMutagen, 30, 2
		require.NoError(t, hero.AddItem(vial))

		require.NoError(t, TryUse(hero, vial.ID, l))

		assert.Equal(t, 30, hero.Body.Instability)
		assert.True(t, hero.HasItem(vial), "one use left")
	})

	t.Run("corpse", func(t *testing.T) {
		l := newLevel(t)
		hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
		hero.Body.TakeDamage(5)
		corpse := newItem(l, "snail corpse", domain.ItemCorpse)
		corpse.Tags = []string{"snail", "snail", "human"}
		require.NoError(t, hero.AddItem(corpse))

		require.NoError(t, TryUse(hero, corpse.ID, l))

		assert.Equal(t, 20, hero.Body.Affinities["snail"])
		assert.Equal(t, 10, hero.Body.Affinities["human"])
		assert.Equal(t, CorpseInstability, hero.Body.Instability)
		assert.Equal(t, hero.Body.MaxHealth()-3, hero.Body.Health)
		assert.False(t, hero.HasItem(corpse))
	})

	t.Run("misc item", func(t *testing.T) {
		l := newLevel(t)
		hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
		rock := newItem(l, "rock", domain.ItemMisc)
		require.NoError(t, hero.AddItem(rock))

		assert.Equal(t, "The rock cannot be used.", actionMsg(t, TryUse(hero, rock.ID, l)))
	})
}

func TestTryThrow(t *testing.T) {
	l := newLevel(t,
		"..........",
		".......#..",
	)
	hero := spawn(l, "hero", domain.FactionPlayer, 0, 0)
	crab := spawn(l, "crab", "wild", 3, 0)

	spear := newItem(l, "spear", domain.ItemWeapon)
	spear.Damage, spear.Verb = 4, "pierce"
	rock := newItem(l, "rock", domain.ItemMisc)
	require.NoError(t, hero.AddItem(spear))
	require.NoError(t, hero.AddItem(rock))

	// Копье останавливается на краба и ранит его
	require.NoError(t, TryThrow(hero, spear.ID, domain.Position{X: 9, Y: 0}, l))
	assert.Equal(t, domain.Position{X: 3, Y: 0}, spear.Pos)
	assert.Equal(t, crab.Body.MaxHealth()-4, crab.Body.Health)
	assert.Contains(t, texts(l), "The spear pierces the crab.")

	// Камень падает перед стеной
	hero.Pos = domain.Position{X: 4, Y: 1}
	require.NoError(t, TryThrow(hero, rock.ID, domain.Position{X: 9, Y: 1}, l))
	assert.Equal(t, domain.Position{X: 6, Y: 1}, rock.Pos)
	assert.Zero(t, hero.InventorySize())
}

func TestCheckInventory(t *testing.T) {
	l := newLevel(t)
	hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
	assert.Equal(t, "You are not carrying anything.", actionMsg(t, CheckInventory(hero)))

	require.NoError(t, hero.AddItem(newItem(l, "rock", domain.ItemMisc)))
	assert.NoError(t, CheckInventory(hero))
}
