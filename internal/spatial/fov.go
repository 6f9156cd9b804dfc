package spatial

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeFOV возвращает множество видимых клеток (рекурсивный shadowcasting).
func ComputeFOV(g *Grid, origin domain.Position, radius int) domain.Visibility {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov",
		"observer_pos": origin,
		"radius":       radius,
	})

	visible := make(domain.Visibility)
	if radius <= 0 {
		fovLogger.Debug("FOV skipped for blind observer")
		return visible
	}

	// Центр всегда виден
	visible[origin] = true

	for i := 0; i < 8; i++ {
		castLight(g, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	fovLogger.WithField("visible_tiles", len(visible)).Debug("FOV calculation complete")
	return visible
}

func castLight(g *Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible domain.Visibility) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			p := domain.Position{X: cx + dx*xx + dy*xy, Y: cy + dx*yx + dy*yy}

			if g.InBounds(p) && float64(dx*dx+dy*dy) <= radiusSq {
				visible[p] = true
			}

			if blocked {
				if g.IsWall(p) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if g.IsWall(p) && j < radius {
				blocked = true
				castLight(g, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
