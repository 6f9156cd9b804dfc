package systems

import (
	"testing"

	"github.com/Peritract/meld/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretSurge(t *testing.T) {
	l := newLevel(t,
		"#....",
		".....",
	)
	hero := spawn(l, "hero", domain.FactionPlayer, 1, 0)
	crab := spawn(l, "crab", "wild", 2, 0)

	tests := []struct {
		name    string
		surge   domain.Surge
		want    domain.Action
		wantErr string
	}{
		{"occupied tile becomes attack", domain.Surge{Dx: 1}, domain.Attack{Target: crab.ID}, ""},
		{"free tile becomes move", domain.Surge{Dy: 1}, domain.Move{Dy: 1}, ""},
		{"wall fails", domain.Surge{Dx: -1}, nil, "There is no path that way."},
		{"map edge fails", domain.Surge{Dy: -1}, nil, "There is no path that way."},
		{"diagonal is not a direction", domain.Surge{Dx: 1, Dy: 1}, nil, "That is not a direction."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InterpretSurge(hero, tt.surge, l)
			if tt.wantErr != "" {
				ae, ok := domain.AsActionError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantErr, ae.Msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyMove(t *testing.T) {
	l := newLevel(t)
	hero := spawn(l, "hero", domain.FactionPlayer, 1, 1)
	spawn(l, "crab", "wild", 2, 1)

	require.NoError(t, ApplyMove(hero, 0, 1, l))
	assert.Equal(t, domain.Position{X: 1, Y: 2}, hero.Pos)

	err := ApplyMove(hero, 1, -1, l)
	assert.Error(t, err)

	hero.Pos = domain.Position{X: 1, Y: 1}
	err = ApplyMove(hero, 1, 0, l)
	assert.Error(t, err, "moving into a creature is not an attack")
	assert.Equal(t, domain.Position{X: 1, Y: 1}, hero.Pos)
}
