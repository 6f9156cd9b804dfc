package conditions

import (
	"testing"

	"github.com/Peritract/meld/internal/minds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoison_LastsExactlyDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		updates  int
		attached bool
	}{
		{"one short", 3, 2, true},
		{"exact", 3, 3, false},
		{"single turn", 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLevel(t)
			crab := spawn(l, "crab", "wild", 1, minds.NewWanderer())
			p := NewPoison(tt.duration, 1)
			crab.Afflict(p, l)

			for i := 0; i < tt.updates; i++ {
				p.Update(l)
			}

			assert.Equal(t, tt.attached, crab.HasCondition(p))
			if tt.attached {
				assert.Same(t, crab, p.Target())
			} else {
				assert.Nil(t, p.Target())
			}
		})
	}
}

func TestPoison_DamagesEveryTurn(t *testing.T) {
	l := newLevel(t)
	crab := spawn(l, "crab", "wild", 1, nil)
	start := crab.Body.Health
	crab.Afflict(NewPoison(3, 2), l)

	for i := 0; i < 5; i++ {
		crab.Update(l)
	}

	assert.Equal(t, start-6, crab.Body.Health)
	assert.Empty(t, crab.Conditions())
	assert.Equal(t, []string{"The crab is damaged by poison. (x3)"}, fullTexts(l))
}

func TestPoison_PlayerGrammar(t *testing.T) {
	l := newLevel(t)
	hero := spawn(l, "hero", "player", 1, nil)
	p := NewPoison(1, 1)
	hero.Afflict(p, l)

	p.Update(l)

	require.Len(t, texts(l), 1)
	assert.Equal(t, "You are damaged by poison.", texts(l)[0])
}

func TestPoison_RemoveTwiceIsHarmless(t *testing.T) {
	l := newLevel(t)
	crab := spawn(l, "crab", "wild", 1, nil)
	p := NewPoison(5, 1)
	crab.Afflict(p, l)

	p.Remove(l)
	p.Remove(l)
	p.Update(l)

	assert.False(t, crab.HasCondition(p))
	assert.Equal(t, crab.Body.MaxHealth(), crab.Body.Health)
}
