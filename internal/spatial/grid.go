package spatial

import (
	"fmt"

	"github.com/Peritract/meld/internal/domain"
)

// Grid - карта проходимости зоны. Стены блокируют и движение, и взгляд.
type Grid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Walls  []bool `json:"walls"`
}

// NewGrid создает пустую карту без стен
func NewGrid(w, h int) *Grid {
	return &Grid{Width: w, Height: h, Walls: make([]bool, w*h)}
}

// ParseGrid строит карту из строк: '#' - стена, остальное - пол
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), g.Width)
		}
		for x, ch := range row {
			if ch == '#' {
				g.Walls[g.Index(x, y)] = true
			}
		}
	}
	return g, nil
}

func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

func (g *Grid) InBounds(p domain.Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// IsWall: выход за границы тоже считается стеной
func (g *Grid) IsWall(p domain.Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.Walls[g.Index(p.X, p.Y)]
}

func (g *Grid) SetWall(p domain.Position, wall bool) {
	if g.InBounds(p) {
		g.Walls[g.Index(p.X, p.Y)] = wall
	}
}
