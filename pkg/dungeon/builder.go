package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Peritract/meld/internal/abilities"
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/features"
	"github.com/Peritract/meld/internal/spatial"
	"github.com/Peritract/meld/internal/world"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Сколько раз ищем свободную клетку в комнате
const placeAttempts = 20

var (
	ErrNoRooms      = errors.New("level has no rooms")
	ErrNoFreeTile   = errors.New("no free tile")
	ErrUnknownThing = errors.New("unknown template")
)

// LevelBuilder предоставляет fluent API для создания уровней.
// Генерация использует свой rng от сида зоны, поток зоны не тратится.
type LevelBuilder struct {
	id     uint16
	name   string
	seed   int64
	width  int
	height int

	rng    *rand.Rand
	rooms  []Rect
	level  *world.Level
	player *domain.Entity
	err    error
}

// NewLevelBuilder создает builder для зоны с данным сидом
func NewLevelBuilder(id uint16, name string, seed int64) *LevelBuilder {
	return &LevelBuilder{
		id:     id,
		name:   name,
		seed:   seed,
		width:  MapWidth,
		height: MapHeight,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRooms генерирует комнаты и коридоры и создает зону
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	if b.level != nil {
		return b
	}
	grid, rooms := Generate(b.rng, b.width, b.height, maxRooms)
	if len(rooms) == 0 {
		b.fail(ErrNoRooms)
	}
	return b.WithGrid(grid, rooms...)
}

// WithGrid создает зону над готовой картой. Комнаты задают места спавна.
func (b *LevelBuilder) WithGrid(grid *spatial.Grid, rooms ...Rect) *LevelBuilder {
	if b.level != nil {
		return b
	}
	b.rooms = rooms
	b.level = world.NewLevel(b.id, b.name, grid, b.seed)
	b.level.SetAbilityFactory(abilities.New)
	return b
}

// SpawnPlayer ставит игрока в центр первой комнаты
func (b *LevelBuilder) SpawnPlayer() *LevelBuilder {
	if !b.ready() || b.player != nil {
		return b
	}
	pos := b.StartPos()
	if !domain.IsFree(b.level, pos) {
		var err error
		if pos, err = b.freeTileIn(b.rooms[0]); err != nil {
			b.fail(fmt.Errorf("player: %w", err))
			return b
		}
	}
	b.player = CreatePlayer(b.level, pos)
	return b
}

// SpawnCreature спавнит существ из шаблона (не в комнате игрока)
func (b *LevelBuilder) SpawnCreature(templateName string, count int) *LevelBuilder {
	template, ok := CreatureTemplates[templateName]
	if !ok {
		b.fail(fmt.Errorf("%w: creature %q", ErrUnknownThing, templateName))
		return b
	}
	if !b.ready() {
		return b
	}

	for i := 0; i < count; i++ {
		room := b.rooms[0]
		if len(b.rooms) > 1 {
			room = b.rooms[b.rng.Intn(len(b.rooms)-1)+1] // Не в первой комнате
		}
		pos, err := b.freeTileIn(room)
		if err != nil {
			b.skip("creature", templateName, err)
			continue
		}
		template.Spawn(b.level, pos)
	}
	return b
}

// SpawnItem спавнит предметы из шаблона в случайных комнатах
func (b *LevelBuilder) SpawnItem(templateName string, count int) *LevelBuilder {
	template, ok := ItemTemplates[templateName]
	if !ok {
		b.fail(fmt.Errorf("%w: item %q", ErrUnknownThing, templateName))
		return b
	}
	if !b.ready() {
		return b
	}

	for i := 0; i < count; i++ {
		pos, err := b.floorTileIn(b.rooms[b.rng.Intn(len(b.rooms))])
		if err != nil {
			b.skip("item", templateName, err)
			continue
		}
		b.level.PlaceItem(template.Spawn(b.level), pos)
	}
	return b
}

// SpawnLoot раскладывает случайные предметы из LootTable
func (b *LevelBuilder) SpawnLoot(count int) *LevelBuilder {
	for i := 0; i < count && b.err == nil; i++ {
		b.SpawnItem(LootTable[b.rng.Intn(len(LootTable))], 1)
	}
	return b
}

// PlaceMutagenPools ставит лужи мутагена в случайные комнаты
func (b *LevelBuilder) PlaceMutagenPools(count int) *LevelBuilder {
	if !b.ready() {
		return b
	}
	for i := 0; i < count; i++ {
		pos, err := b.floorTileIn(b.rooms[b.rng.Intn(len(b.rooms))])
		if err != nil || len(b.level.FeaturesAt(pos)) > 0 {
			b.skip("feature", "mutagen_pool", err)
			continue
		}
		b.level.AddFeature(features.NewMutagenPool(b.level.NewID(domain.KindFeature), pos))
	}
	return b
}

// StartPos возвращает стартовую позицию (центр первой комнаты)
func (b *LevelBuilder) StartPos() domain.Position {
	if len(b.rooms) > 0 {
		cx, cy := b.rooms[0].Center()
		return domain.Position{X: cx, Y: cy}
	}
	return domain.Position{X: b.width / 2, Y: b.height / 2}
}

// Rooms - комнаты сгенерированной карты
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

// Build возвращает готовую зону или первую ошибку сборки
func (b *LevelBuilder) Build() (*world.Level, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.level == nil {
		return nil, ErrNoRooms
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"area":      b.id,
		"seed":      b.seed,
		"rooms":     len(b.rooms),
		"entities":  len(b.level.Entities()),
		"items":     len(b.level.Items()),
	}).Debug("Level built")
	return b.level, nil
}

// --- Helper functions ---

func (b *LevelBuilder) ready() bool {
	if b.err != nil {
		return false
	}
	if b.level == nil || len(b.rooms) == 0 {
		b.fail(ErrNoRooms)
		return false
	}
	return true
}

func (b *LevelBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *LevelBuilder) skip(kind, name string, err error) {
	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"area":      b.id,
		"kind":      kind,
		"template":  name,
	}).WithError(err).Debug("Spawn skipped")
}

// freeTileIn ищет пол без существ
func (b *LevelBuilder) freeTileIn(room Rect) (domain.Position, error) {
	return b.pickTile(room, func(p domain.Position) bool { return domain.IsFree(b.level, p) })
}

// floorTileIn ищет просто проходимый пол
func (b *LevelBuilder) floorTileIn(room Rect) (domain.Position, error) {
	return b.pickTile(room, func(p domain.Position) bool { return !b.level.Grid().IsWall(p) })
}

func (b *LevelBuilder) pickTile(room Rect, ok func(domain.Position) bool) (domain.Position, error) {
	if room.W < 2 || room.H < 2 {
		return domain.Position{}, ErrNoFreeTile
	}
	for attempt := 0; attempt < placeAttempts; attempt++ {
		p := domain.Position{
			X: room.X + 1 + b.rng.Intn(room.W-1),
			Y: room.Y + 1 + b.rng.Intn(room.H-1),
		}
		if ok(p) {
			return p, nil
		}
	}
	return domain.Position{}, ErrNoFreeTile
}
