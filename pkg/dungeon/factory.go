package dungeon

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/minds"
	"github.com/Peritract/meld/internal/world"
)

// CreatePlayer создает игрока со стартовым снаряжением и добавляет его в зону
func CreatePlayer(level *world.Level, pos domain.Position) *domain.Entity {
	p := domain.NewEntity(level.NewID(domain.KindCreature), "you", domain.FactionPlayer, domain.DefaultBody(), minds.NewPlayer())
	p.Description = "Still mostly human."
	p.Symbol = "@"
	p.Color = "#22D3EE"
	p.Pos = pos

	// Даем стартовое снаряжение
	sword := Sword.Spawn(level)
	p.RestoreItem(sword)
	p.Weapon = sword
	p.RestoreItem(Bandage.Spawn(level))

	level.AddEntity(p)
	return p
}
