package spatial

import (
	"testing"

	"github.com/Peritract/meld/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHasLineOfSight(t *testing.T) {
	// (2,1), (1,2), (2,2), (3,2), (2,3) - стены
	g := mustGrid(t,
		".....",
		"..#..",
		".###.",
		"..#..",
		".....",
	)

	tests := []struct {
		name string
		p1   domain.Position
		p2   domain.Position
		want bool
	}{
		{"Clear horizontal", domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 0}, true},
		{"Blocked horizontal", domain.Position{X: 0, Y: 2}, domain.Position{X: 4, Y: 2}, false},
		{"Clear diagonal", domain.Position{X: 0, Y: 0}, domain.Position{X: 1, Y: 1}, true},
		{"Blocked diagonal", domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 4}, false},
		{"Adjacent wall", domain.Position{X: 2, Y: 1}, domain.Position{X: 2, Y: 2}, true},
		{"Behind wall", domain.Position{X: 2, Y: 1}, domain.Position{X: 2, Y: 3}, false},
		{"Same point", domain.Position{X: 3, Y: 3}, domain.Position{X: 3, Y: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasLineOfSight(g, tt.p1, tt.p2))
		})
	}
}

func TestLine_ExcludesStart(t *testing.T) {
	line := Line(domain.Position{X: 0, Y: 0}, domain.Position{X: 3, Y: 0})

	assert.Equal(t, []domain.Position{{X: 1}, {X: 2}, {X: 3}}, line)
	assert.Nil(t, Line(domain.Position{X: 1, Y: 1}, domain.Position{X: 1, Y: 1}))
}
