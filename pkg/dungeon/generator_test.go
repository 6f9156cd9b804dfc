package dungeon

import (
	"math/rand"
	"os"
	"testing"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/minds"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestGenerate(t *testing.T) {
	grid, rooms := Generate(rand.New(rand.NewSource(1)), MapWidth, MapHeight, MaxRooms)

	// 1. Проверка размеров мира
	assert.Equal(t, MapWidth, grid.Width)
	assert.Equal(t, MapHeight, grid.Height)
	require.NotEmpty(t, rooms)

	// 2. Края карты остаются стенами
	for x := 0; x < MapWidth; x++ {
		assert.True(t, grid.IsWall(domain.Position{X: x, Y: 0}))
		assert.True(t, grid.IsWall(domain.Position{X: x, Y: MapHeight - 1}))
	}

	// 3. Центры комнат - пол
	for _, r := range rooms {
		cx, cy := r.Center()
		assert.False(t, grid.IsWall(domain.Position{X: cx, Y: cy}), "room %+v", r)
	}
}

func TestGenerate_SameSeedSameMap(t *testing.T) {
	a, roomsA := Generate(rand.New(rand.NewSource(77)), MapWidth, MapHeight, MaxRooms)
	b, roomsB := Generate(rand.New(rand.NewSource(77)), MapWidth, MapHeight, MaxRooms)

	assert.Equal(t, a.Walls, b.Walls)
	assert.Equal(t, roomsA, roomsB)
}

// Тест вспомогательной функции пересечения комнат
func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // Пересекается
	r3 := Rect{20, 20, 5, 5} // Не пересекается

	assert.True(t, r1.Intersects(r2))
	assert.False(t, r1.Intersects(r3))
}

func TestRect_Contains(t *testing.T) {
	r := Rect{2, 2, 4, 4}

	assert.True(t, r.Contains(domain.Position{X: 3, Y: 3}))
	assert.True(t, r.Contains(domain.Position{X: 5, Y: 5}))
	assert.False(t, r.Contains(domain.Position{X: 2, Y: 3}), "стена комнаты")
	assert.False(t, r.Contains(domain.Position{X: 6, Y: 3}))
}

func TestStandard(t *testing.T) {
	level, err := Standard(1, 5)
	require.NoError(t, err)

	player := level.Player()
	require.NotNil(t, player)
	assert.IsType(t, &minds.Player{}, player.Mind())
	require.NotNil(t, player.Weapon)
	assert.Equal(t, "sword", player.Weapon.Name)
	assert.Equal(t, 2, player.InventorySize())

	// Никто не стоит в стене и не делит клетку с другим
	seen := map[domain.Position]bool{}
	for _, e := range level.Entities() {
		assert.False(t, level.Grid().IsWall(e.Pos), "%s in wall", e.Name)
		assert.False(t, seen[e.Pos], "%s shares a tile", e.Name)
		seen[e.Pos] = true
	}
	assert.Greater(t, len(level.Entities()), 1)

	for _, it := range level.Items() {
		assert.False(t, level.Grid().IsWall(it.Pos), "%s in wall", it.Name)
	}
}

func TestStandard_Deterministic(t *testing.T) {
	a, err := Standard(2, 1234)
	require.NoError(t, err)
	b, err := Standard(2, 1234)
	require.NoError(t, err)

	require.Len(t, b.Entities(), len(a.Entities()))
	for i, e := range a.Entities() {
		assert.Equal(t, e.ID, b.Entities()[i].ID)
		assert.Equal(t, e.Name, b.Entities()[i].Name)
		assert.Equal(t, e.Pos, b.Entities()[i].Pos)
	}
	assert.Equal(t, a.Grid().Walls, b.Grid().Walls)
	assert.Equal(t, a.IDs(), b.IDs())
	// Генерация не трогает поток случайных чисел зоны
	assert.Zero(t, a.RandPosition())
}

func TestCreatureTemplate_GrantsPartAbilities(t *testing.T) {
	level, err := Arena(3)
	require.NoError(t, err)

	tests := []struct {
		name    string
		ability string
	}{
		{"snail", domain.AbilityAcidSpit},
		{"frog", domain.AbilitySirenCall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var found *domain.Entity
			for _, e := range level.Entities() {
				if e.Name == tt.name {
					found = e
				}
			}
			require.NotNil(t, found)
			assert.NotNil(t, found.Ability(tt.ability))
		})
	}
}

func TestArena(t *testing.T) {
	level, err := Arena(9)
	require.NoError(t, err)

	assert.Equal(t, ArenaID, level.ID)
	assert.Len(t, level.Entities(), 4)
	assert.Len(t, level.Items(), 2)
	assert.Len(t, level.Features(), 1)
	assert.Equal(t, domain.Position{X: 2, Y: 4}, level.Player().Pos)
}

func TestBuilder_Errors(t *testing.T) {
	_, err := NewLevelBuilder(1, "x", 1).WithRooms(MaxRooms).SpawnCreature("dragon", 1).Build()
	assert.ErrorIs(t, err, ErrUnknownThing)

	_, err = NewLevelBuilder(1, "x", 1).SpawnPlayer().Build()
	assert.ErrorIs(t, err, ErrNoRooms)
}

func TestForArea(t *testing.T) {
	arena, err := ForArea(ArenaID, 1)
	require.NoError(t, err)
	assert.Equal(t, "arena", arena.Name)

	depth, err := ForArea(3, 1)
	require.NoError(t, err)
	assert.Equal(t, "depth 3", depth.Name)
}
