package engine

import (
	"context"
	"testing"
	"time"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/minds"
	"github.com/Peritract/meld/internal/world"
	"github.com/Peritract/meld/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHub struct {
	ch chan api.ServerResponse
}

func newFakeHub() *fakeHub {
	return &fakeHub{ch: make(chan api.ServerResponse, 64)}
}

func (h *fakeHub) SendTo(id domain.EntityID, msg api.ServerResponse) {
	h.ch <- msg
}

func (h *fakeHub) drain() []api.ServerResponse {
	var out []api.ServerResponse
	for {
		select {
		case msg := <-h.ch:
			out = append(out, msg)
		default:
			return out
		}
	}
}

func types(msgs []api.ServerResponse) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Type)
	}
	return out
}

func doomed(t *testing.T) *world.Level {
	t.Helper()
	l := newLevel(t)
	player := spawn(l, "you", domain.FactionPlayer, 1, 1, minds.NewPlayer())
	spawn(l, "crab", "wild", 4, 1, &killerMind{victim: player})
	return l
}

func TestNewGame_RequiresPlayer(t *testing.T) {
	_, err := NewGame(newLevel(t), NewConfig(), nil)
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestGame_RunsUntilPlayerDies(t *testing.T) {
	hub := newFakeHub()
	g, err := NewGame(doomed(t), NewConfig(), hub)
	require.NoError(t, err)

	require.NoError(t, g.Submit(api.ClientCommand{Action: "OPEN_MENU"}))
	require.NoError(t, g.Submit(api.ClientCommand{Action: "WAIT"}))

	require.NoError(t, g.Run(context.Background()))

	msgs := hub.drain()
	assert.Equal(t, []string{api.ResponseUpdate, api.ResponseMode, api.ResponseUpdate, api.ResponseGameOver}, types(msgs))
	assert.Equal(t, "OPEN_MENU", msgs[1].Mode.Action)
	assert.Equal(t, g.Player().ID.Key(), msgs[0].MyEntityID)

	assert.Equal(t, 1, msgs[3].Round)
	assert.Contains(t, msgs[2].Logs, api.LogEntry{Text: "You die in agony.", Type: "DEATH", Count: 1})

	replay := g.Replay()
	require.Len(t, replay.Actions, 2)
	assert.Equal(t, domain.ActionOpenMenu, replay.Actions[0].Action)
	assert.Equal(t, domain.ActionWait, replay.Actions[1].Action)
}

func TestGame_WaitingForInputDoesNotHoldLock(t *testing.T) {
	hub := newFakeHub()
	l := newLevel(t)
	spawn(l, "you", domain.FactionPlayer, 1, 1, minds.NewPlayer())
	g, err := NewGame(l, NewConfig(), hub)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	select {
	case msg := <-hub.ch:
		assert.Equal(t, api.ResponseUpdate, msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial update")
	}

	// Игра ждет ввода: сводка и снимок доступны
	assert.Equal(t, 0, g.Summary().Round)
	snap, err := g.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Area.Entities, 1)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("game did not stop")
	}
}

type entityState struct {
	pos    domain.Position
	health int
}

func worldState(t *testing.T, g *Game) (int, int64, map[domain.EntityID]entityState) {
	t.Helper()
	snap, err := g.Snapshot()
	require.NoError(t, err)
	out := make(map[domain.EntityID]entityState, len(snap.Area.Entities))
	for _, es := range snap.Area.Entities {
		out[es.ID] = entityState{pos: es.Pos, health: es.Body.Health}
	}
	return snap.Round, snap.Area.RandPosition, out
}

func TestGame_MidRoundSnapshotMatchesRoundStart(t *testing.T) {
	hub := newFakeHub()
	l := newLevel(t)
	spawn(l, "you", domain.FactionPlayer, 1, 1, minds.NewPlayer())
	spawn(l, "snail", "wild", 5, 2, minds.NewWanderer())
	g, err := NewGame(l, NewConfig(), hub)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	select {
	case <-hub.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no initial update")
	}
	round, rng, before := worldState(t, g)

	// Нефинальное действие: игрока спрашивают снова в том же раунде
	require.NoError(t, g.Submit(api.ClientCommand{Action: "OPEN_MENU"}))
	select {
	case msg := <-hub.ch:
		require.Equal(t, api.ResponseMode, msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no mode response")
	}

	midRound, midRng, during := worldState(t, g)
	assert.Equal(t, round, midRound)
	assert.Equal(t, rng, midRng, "nobody drew from the generator yet")
	assert.Equal(t, before, during)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("game did not stop")
	}
}

func TestGame_Submit(t *testing.T) {
	g, err := NewGame(doomed(t), NewConfig(), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Submit(api.ClientCommand{Action: "DANCE"}), ErrUnknownAction)
	assert.Error(t, g.Submit(api.ClientCommand{Action: "SURGE"}))

	for i := 0; i < inputBuffer; i++ {
		require.NoError(t, g.Submit(api.ClientCommand{Action: "WAIT"}))
	}
	assert.ErrorIs(t, g.Submit(api.ClientCommand{Action: "WAIT"}), ErrInputFull)
}

func TestGame_ScriptedInput(t *testing.T) {
	hub := newFakeHub()
	g, err := NewGame(doomed(t), NewConfig(), hub, WithInput(NewScriptInput(domain.Wait{})), WithRound(5))
	require.NoError(t, err)

	assert.ErrorIs(t, g.Submit(api.ClientCommand{Action: "WAIT"}), ErrNotInteractive)
	require.NoError(t, g.Run(context.Background()))

	msgs := hub.drain()
	require.NotEmpty(t, msgs)
	assert.Equal(t, api.ResponseGameOver, msgs[len(msgs)-1].Type)
	assert.Equal(t, 6, msgs[len(msgs)-1].Round)
}
