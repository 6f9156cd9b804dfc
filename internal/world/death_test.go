package world

import (
	"testing"

	"github.com/Peritract/meld/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_ReapLeavesCorpseAndLoot(t *testing.T) {
	l := newTestLevel(t, ".....")
	snail := domain.NewEntity(l.NewID(domain.KindCreature), "snail", "wild",
		domain.NewBody(10, 3, domain.PartEyestalks, domain.PartShell), nil)
	snail.Pos = domain.Position{X: 3}
	shell := &domain.Item{ID: l.NewID(domain.KindItem), Name: "pebble"}
	require.NoError(t, snail.AddItem(shell))
	l.AddEntity(snail)

	snail.Body.TakeDamage(100)
	dead := l.Reap()

	require.Equal(t, []*domain.Entity{snail}, dead)
	assert.Empty(t, l.Entities())

	floor := l.ItemsAt(domain.Position{X: 3})
	require.Len(t, floor, 2)
	assert.Same(t, shell, floor[0])
	corpse := floor[1]
	assert.Equal(t, domain.ItemCorpse, corpse.Kind)
	assert.Equal(t, "A dead snail.", corpse.Description)
	assert.Equal(t, []string{"snail", "human", "human", "snail", "human"}, corpse.Tags)

	msgs := l.Log().Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "The snail dies.", msgs[len(msgs)-1].Text)
	assert.Equal(t, domain.CategoryDeath, msgs[len(msgs)-1].Category)
}

func TestLevel_ReapIgnoresLiving(t *testing.T) {
	l := newTestLevel(t, "..")
	l.AddEntity(domain.NewEntity(l.NewID(domain.KindCreature), "crab", "wild", nil, nil))

	assert.Empty(t, l.Reap())
	assert.Len(t, l.Entities(), 1)
}
