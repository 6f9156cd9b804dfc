package engine

import (
	"context"
	"testing"

	"github.com/Peritract/meld/internal/conditions"
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/minds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderMind записывает имя в общий список
type orderMind struct {
	seen *[]string
}

func (m orderMind) MakeDecision(ctx context.Context, self *domain.Entity, area domain.Area) (domain.Action, error) {
	*m.seen = append(*m.seen, self.Name)
	return domain.Wait{}, nil
}

func TestPlayRound_SurgeIntoWallAsksAgain(t *testing.T) {
	l := newLevel(t)
	_, in := spawnPlayer(l, 1, 1, domain.Surge{Dx: -1}, domain.Wait{})
	crab := &countingMind{}
	spawn(l, "crab", "wild", 5, 2, crab)

	r := NewResolver(l, NewConfig())
	require.NoError(t, r.PlayRound(context.Background()))

	assert.Equal(t, 0, in.Remaining())
	assert.Equal(t, 1, crab.calls, "a rejected surge must not give monsters an extra turn")
	assert.Equal(t, 1, r.Round())
	assert.Contains(t, texts(l), "There is no path that way.")
}

func TestPlayRound_SurgeMovesAndAttacks(t *testing.T) {
	l := newLevel(t)
	player, _ := spawnPlayer(l, 1, 1, domain.Surge{Dx: 1}, domain.Surge{Dx: 1})
	crab := spawn(l, "crab", "wild", 3, 1, nil)
	full := crab.Body.Health

	r := NewResolver(l, NewConfig())
	require.NoError(t, r.PlayRound(context.Background()))
	assert.Equal(t, domain.Position{X: 2, Y: 1}, player.Pos)

	require.NoError(t, r.PlayRound(context.Background()))
	assert.Equal(t, domain.Position{X: 2, Y: 1}, player.Pos)
	assert.Less(t, crab.Body.Health, full)
}

func TestPlayRound_PanicDoesNotStopRound(t *testing.T) {
	l := newLevel(t)
	spawnPlayer(l, 1, 1, domain.Wait{})
	spawn(l, "gremlin", "wild", 3, 1, panicMind{})
	after := &countingMind{}
	spawn(l, "snail", "wild", 5, 1, after)

	r := NewResolver(l, NewConfig())
	require.NoError(t, r.PlayRound(context.Background()))

	assert.Equal(t, 1, after.calls)
	assert.Equal(t, 1, r.Round())
}

func TestPlayRound_DeadEntitiesAreNotVisited(t *testing.T) {
	l := newLevel(t)
	spawnPlayer(l, 1, 1, domain.Wait{})
	victimMind := &countingMind{}
	victim := domain.NewEntity(l.NewID(domain.KindCreature), "snail", "wild", nil, victimMind)
	victim.Pos = domain.Position{X: 5, Y: 2}

	spawn(l, "crab", "wild", 3, 1, &killerMind{victim: victim})
	l.AddEntity(victim)

	r := NewResolver(l, NewConfig())
	require.NoError(t, r.PlayRound(context.Background()))

	assert.Zero(t, victimMind.calls)
	assert.False(t, l.Contains(victim))
	assert.Contains(t, texts(l), "The snail dies.")
}

func TestPlayRound_PlayerDeath(t *testing.T) {
	l := newLevel(t)
	player, _ := spawnPlayer(l, 1, 1, domain.Wait{})
	spawn(l, "crab", "wild", 3, 1, &killerMind{victim: player})

	r := NewResolver(l, NewConfig())
	err := r.PlayRound(context.Background())

	assert.ErrorIs(t, err, ErrPlayerDead)
	assert.True(t, r.PlayerDead())
	assert.ErrorIs(t, r.PlayRound(context.Background()), ErrPlayerDead)
}

func TestPlayRound_InputExhausted(t *testing.T) {
	l := newLevel(t)
	spawnPlayer(l, 1, 1)

	r := NewResolver(l, NewConfig())
	err := r.PlayRound(context.Background())

	assert.ErrorIs(t, err, ErrInputExhausted)
	assert.Zero(t, r.Round())
}

func TestPlayRound_InventoryModeDoesNotSpendTurn(t *testing.T) {
	l := newLevel(t)
	player, in := spawnPlayer(l, 1, 1, domain.OpenInventory{}, domain.Wait{})
	modes := &modeRecorder{}

	r := NewResolver(l, NewConfig())
	r.SetModeListener(modes)

	// Пустой инвентарь: отказ без режима
	require.NoError(t, r.PlayRound(context.Background()))
	assert.Contains(t, texts(l), "You are not carrying anything.")
	assert.Empty(t, modes.modes)

	stone := &domain.Item{ID: l.NewID(domain.KindItem), Name: "stone"}
	require.NoError(t, player.AddItem(stone))
	in.actions = append(in.actions, domain.OpenInventory{}, domain.Wait{})

	require.NoError(t, r.PlayRound(context.Background()))
	require.Len(t, modes.modes, 1)
	assert.Equal(t, domain.ActionOpenInventory, modes.modes[0].Action)
	assert.Equal(t, []*domain.Item{stone}, modes.modes[0].Items)
	assert.Equal(t, 2, r.Round())
}

func TestPlayRound_SeveralItemsAskForChoice(t *testing.T) {
	l := newLevel(t)
	a := &domain.Item{ID: l.NewID(domain.KindItem), Name: "stone"}
	b := &domain.Item{ID: l.NewID(domain.KindItem), Name: "bone"}
	l.PlaceItem(a, domain.Position{X: 1, Y: 1})
	l.PlaceItem(b, domain.Position{X: 1, Y: 1})

	player, _ := spawnPlayer(l, 1, 1, domain.PickUp{}, domain.PickUp{Item: a.ID})
	modes := &modeRecorder{}

	r := NewResolver(l, NewConfig())
	r.SetModeListener(modes)
	require.NoError(t, r.PlayRound(context.Background()))

	require.Len(t, modes.modes, 1)
	assert.Equal(t, domain.ActionPickUp, modes.modes[0].Action)
	assert.Len(t, modes.modes[0].Items, 2)
	assert.True(t, player.HasItem(a))
	assert.False(t, player.HasItem(b))
}

func TestPlayRound_LuredPlayerActsOnce(t *testing.T) {
	l := newLevel(t)
	player, in := spawnPlayer(l, 1, 1, domain.Wait{})
	frog := spawn(l, "frog", "wild", 5, 1, &countingMind{})
	player.Afflict(conditions.NewLure(3, frog.ID), l)

	r := NewResolver(l, NewConfig())
	require.NoError(t, r.PlayRound(context.Background()))

	assert.Equal(t, 1, in.Remaining(), "input must not be consumed while entranced")
	assert.Equal(t, domain.Position{X: 2, Y: 1}, player.Pos)
}

func TestPlayRound_LureWearsOff(t *testing.T) {
	l := newLevel(t)
	spawnPlayer(l, 1, 1, domain.Wait{}, domain.Wait{}, domain.Wait{})
	wanderer := minds.NewWanderer()
	crab := spawn(l, "crab", "wild", 6, 1, wanderer)
	player := l.Player()
	crab.Afflict(conditions.NewLure(2, player.ID), l)

	r := NewResolver(l, NewConfig())
	ctx := context.Background()

	require.NoError(t, r.PlayRound(ctx))
	assert.IsType(t, &minds.Seeker{}, crab.Mind())
	assert.Equal(t, 5, crab.Pos.X)

	require.NoError(t, r.PlayRound(ctx))
	assert.Same(t, wanderer, crab.Mind())
	assert.Empty(t, crab.Conditions())
	assert.Contains(t, texts(l), "The crab shakes off the enchantment.")
}

func TestPlayRound_SpeedOrder(t *testing.T) {
	l := newLevel(t)
	spawnPlayer(l, 1, 1, domain.Wait{}, domain.Wait{})

	var seen []string
	snail := domain.NewEntity(l.NewID(domain.KindCreature), "snail", "wild",
		domain.NewBody(domain.DefaultBaseHealth, domain.DefaultStrength, domain.PartSnailFoot), orderMind{&seen})
	snail.Pos = domain.Position{X: 3, Y: 1}
	frog := domain.NewEntity(l.NewID(domain.KindCreature), "frog", "wild",
		domain.NewBody(domain.DefaultBaseHealth, domain.DefaultStrength, domain.PartFrogLegs), orderMind{&seen})
	frog.Pos = domain.Position{X: 5, Y: 1}
	l.AddEntity(snail)
	l.AddEntity(frog)

	cfg := NewConfig()
	r := NewResolver(l, cfg)
	require.NoError(t, r.PlayRound(context.Background()))
	assert.Equal(t, []string{"snail", "frog"}, seen)

	seen = nil
	cfg.TurnOrder = TurnOrderSpeed
	r = NewResolver(l, cfg)
	require.NoError(t, r.PlayRound(context.Background()))
	assert.Equal(t, []string{"frog", "snail"}, seen)
}
