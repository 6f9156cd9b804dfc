package minds

import (
	"context"
	"testing"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queueInput []domain.Action

func (q *queueInput) NextAction(ctx context.Context) (domain.Action, error) {
	a := (*q)[0]
	*q = (*q)[1:]
	return a, nil
}

func TestPlayer_ReturnsInputUnchanged(t *testing.T) {
	l := newLevel(t, 1, "...")
	hero := spawn(l, "hero", domain.FactionPlayer, 1, 0, NewPlayer())
	l.SetInput(&queueInput{domain.Surge{Dx: 1}})

	a := decide(t, hero, l)

	assert.Equal(t, domain.Surge{Dx: 1}, a)
}

func TestPlayer_NoInputIsError(t *testing.T) {
	l := newLevel(t, 1, "...")
	hero := spawn(l, "hero", domain.FactionPlayer, 1, 0, NewPlayer())

	_, err := hero.Mind().MakeDecision(context.Background(), hero, l)

	require.Error(t, err)
	assert.ErrorIs(t, err, world.ErrNoInput)
}
