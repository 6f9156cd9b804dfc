package dungeon

import (
	"math/rand"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/spatial"
)

// Константы генерации
const (
	MapWidth  = 40
	MapHeight = 25
	MaxRooms  = 8
	MinSize   = 4
	MaxSize   = 10
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Contains - клетка внутри пола комнаты (без стен по краю)
func (r Rect) Contains(p domain.Position) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Generate вырезает комнаты и коридоры в сплошной скале.
// Результат зависит только от rng: один сид - одна карта.
func Generate(rng *rand.Rand, width, height, maxRooms int) (*spatial.Grid, []Rect) {
	// 1. Заполняем стенами
	grid := spatial.NewGrid(width, height)
	for i := range grid.Walls {
		grid.Walls[i] = true
	}

	// 2. Генерируем комнаты
	rooms := make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := randRange(rng, MinSize, MaxSize)
		h := randRange(rng, MinSize, MaxSize)
		if w >= width-1 || h >= height-1 {
			continue
		}
		x := randRange(rng, 1, width-w-1)
		y := randRange(rng, 1, height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		failed := false
		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(grid, newRoom)

		// 3. Соединяем с предыдущей комнатой
		if len(rooms) > 0 {
			prevX, prevY := rooms[len(rooms)-1].Center()
			currX, currY := newRoom.Center()

			if rng.Intn(2) == 0 {
				createHCorridor(grid, prevX, currX, prevY)
				createVCorridor(grid, prevY, currY, currX)
			} else {
				createVCorridor(grid, prevY, currY, prevX)
				createHCorridor(grid, prevX, currX, currY)
			}
		}
		rooms = append(rooms, newRoom)
	}

	return grid, rooms
}

// --- Вспомогательные функции ---

func createRoom(grid *spatial.Grid, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			grid.SetWall(domain.Position{X: x, Y: y}, false)
		}
	}
}

func createHCorridor(grid *spatial.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		grid.SetWall(domain.Position{X: x, Y: y}, false)
	}
}

func createVCorridor(grid *spatial.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		grid.SetWall(domain.Position{X: x, Y: y}, false)
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	if max < min {
		return min
	}
	return rng.Intn(max-min+1) + min
}
