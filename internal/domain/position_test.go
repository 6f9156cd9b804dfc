package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_IsAdjacent(t *testing.T) {
	origin := Position{X: 5, Y: 5}

	tests := []struct {
		name  string
		other Position
		want  bool
	}{
		{"north", Position{X: 5, Y: 4}, true},
		{"east", Position{X: 6, Y: 5}, true},
		{"diagonal", Position{X: 6, Y: 6}, false},
		{"same tile", origin, false},
		{"two away", Position{X: 7, Y: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, origin.IsAdjacent(tt.other))
		})
	}
}

func TestPosition_Distances(t *testing.T) {
	a := Position{X: 0, Y: 0}
	b := Position{X: 3, Y: 4}

	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 25, a.DistanceSquaredTo(b))
	assert.Equal(t, 7, a.ManhattanTo(b))
	assert.Equal(t, Position{X: 2, Y: 3}, a.Shift(2, 3))
}
