package dungeon

import (
	"fmt"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/spatial"
	"github.com/Peritract/meld/internal/world"
)

// ArenaID - зона-арена. Остальные ID - глубины подземелья.
const ArenaID uint16 = 0

// Арена: одна комната с колоннами, используется для демо и автопилота
var arenaRows = []string{
	"####################",
	"#..................#",
	"#..................#",
	"#....##......##....#",
	"#..................#",
	"#..................#",
	"#....##......##....#",
	"#..................#",
	"#..................#",
	"####################",
}

// Arena собирает арену: игрок слева, обитатели справа
func Arena(seed int64) (*world.Level, error) {
	grid, err := spatial.ParseGrid(arenaRows)
	if err != nil {
		return nil, err
	}
	room := Rect{X: 0, Y: 0, W: grid.Width - 1, H: grid.Height - 1}

	b := NewLevelBuilder(ArenaID, "arena", seed).WithGrid(grid, room)
	if _, err := b.Build(); err != nil {
		return nil, err
	}
	level := b.level

	CreatePlayer(level, domain.Position{X: 2, Y: 4})
	Crab.Spawn(level, domain.Position{X: 16, Y: 2})
	Snail.Spawn(level, domain.Position{X: 15, Y: 7})
	Frog.Spawn(level, domain.Position{X: 17, Y: 5})

	level.PlaceItem(Dagger.Spawn(level), domain.Position{X: 4, Y: 1})
	level.PlaceItem(Bandage.Spawn(level), domain.Position{X: 4, Y: 8})
	b.PlaceMutagenPools(1)

	return b.Build()
}

// Standard - обычная глубина: комнаты, существа, добыча и мутаген
func Standard(id uint16, seed int64) (*world.Level, error) {
	return NewLevelBuilder(id, fmt.Sprintf("depth %d", id), seed).
		WithRooms(MaxRooms).
		SpawnPlayer().
		SpawnCreature("snail", 2).
		SpawnCreature("crab", 1+int(id)/2).
		SpawnCreature("frog", 1).
		SpawnCreature("spider", int(id)/3).
		SpawnLoot(4).
		PlaceMutagenPools(2).
		Build()
}

// ForArea собирает зону по ID и сиду. Один и тот же вход дает ту же зону,
// на этом держится повтор партии.
func ForArea(id uint16, seed int64) (*world.Level, error) {
	if id == ArenaID {
		return Arena(seed)
	}
	return Standard(id, seed)
}
