package agent

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/internal/world"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

// После стольких одинаковых попыток подряд бот сдается и ждет
const maxRepeats = 3

// Bot - "Игрок-компьютер" (headless agent). Подключается к партии как
// источник ввода вместо WebSocket-клиента: engine.WithInput(bot).
//
// Жизненный цикл:
//  1. NewBot -> привязка к зоне и сущности игрока.
//  2. Разум игрока ждет ввода -> движок вызывает NextAction.
//  3. NextAction смотрит на зону глазами игрока и выбирает действие.
//  4. После limit действий бот возвращает engine.ErrInputExhausted.
//
// Бот читает зону без блокировок: пока разум игрока ждет ввода, раунд стоит.
type Bot struct {
	level *world.Level
	self  *domain.Entity
	rng   *rand.Rand

	limit int
	acted int

	last    string
	repeats int
}

// NewBot создает бота; limit <= 0 - без ограничения
func NewBot(level *world.Level, self *domain.Entity, seed int64, limit int) *Bot {
	logger.Log.WithFields(logrus.Fields{
		"component": "agent",
		"entity_id": self.ID,
		"limit":     limit,
	}).Info("Creating autopilot")
	return &Bot{
		level: level,
		self:  self,
		rng:   rand.New(rand.NewSource(seed)),
		limit: limit,
	}
}

// Acted - сколько действий бот уже отдал
func (b *Bot) Acted() int { return b.acted }

func (b *Bot) NextAction(ctx context.Context) (domain.Action, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.limit > 0 && b.acted >= b.limit {
		return nil, engine.ErrInputExhausted
	}

	action, target := b.decide()

	// Защита от зацикливания: резолвер переспрашивает игрока после Impossible
	key := b.fingerprint(action, target)
	if key == b.last {
		b.repeats++
	} else {
		b.last, b.repeats = key, 0
	}
	if b.repeats >= maxRepeats {
		logger.Log.WithFields(logrus.Fields{
			"component": "agent",
			"action":    action.Type().String(),
		}).Debug("Autopilot stuck, waiting")
		action = domain.Wait{}
	}

	b.acted++
	return action, nil
}

// decide - мозг бота. Порядок важен: лечение, добыча, снаряжение, бой, разведка.
func (b *Bot) decide() (domain.Action, *domain.Entity) {
	self := b.self

	// 1. Раны: используем лечащий расходник
	if self.Body.Health*2 < self.Body.MaxHealth() {
		if it := b.carried(func(it *domain.Item) bool {
			return it.Kind == domain.ItemConsumable && it.Effect == domain.EffectHeal
		}); it != nil {
			return domain.Use{Item: it.ID}, nil
		}
	}

	// 2. Под ногами что-то лежит
	if items := b.level.ItemsAt(self.Pos); len(items) > 0 && !self.InventoryFull() {
		return domain.PickUp{Item: items[0].ID}, nil
	}

	// 3. Оружие в сумке, а руки пустые
	if self.Weapon == nil && self.Body.CanEquipWeapons() {
		if it := b.carried(func(it *domain.Item) bool { return it.Kind == domain.ItemWeapon }); it != nil {
			return domain.Equip{Item: it.ID}, nil
		}
	}
	if self.Armour == nil {
		if it := b.carried(func(it *domain.Item) bool { return it.Kind == domain.ItemArmour }); it != nil {
			return domain.Equip{Item: it.ID}, nil
		}
	}

	visible := b.level.CalculateFOV(self)

	// 4. Ближайший видимый враг: шаг к нему, вплотную шаг становится атакой
	if enemy := b.nearestEnemy(visible); enemy != nil {
		if a := b.surgeToward(enemy.Pos); a != nil {
			return a, enemy
		}
	}

	// 5. Видимая добыча
	if !self.InventoryFull() {
		if it := b.nearestItem(visible); it != nil {
			if a := b.surgeToward(it.Pos); a != nil {
				return a, nil
			}
		}
	}

	// 6. Бродим
	return b.wander(), nil
}

func (b *Bot) carried(match func(*domain.Item) bool) *domain.Item {
	for _, it := range b.self.Items() {
		if match(it) {
			return it
		}
	}
	return nil
}

func (b *Bot) nearestEnemy(visible domain.Visibility) *domain.Entity {
	var best *domain.Entity
	bestDist := 0
	for _, e := range b.level.Entities() {
		if e == b.self || !e.Alive() || e.Faction == b.self.Faction || !visible.Contains(e.Pos) {
			continue
		}
		d := b.level.Distance(b.self.Pos, e.Pos)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func (b *Bot) nearestItem(visible domain.Visibility) *domain.Item {
	var best *domain.Item
	bestDist := 0
	for _, it := range b.level.Items() {
		if !visible.Contains(it.Pos) {
			continue
		}
		d := b.level.Distance(b.self.Pos, it.Pos)
		if best == nil || d < bestDist {
			best, bestDist = it, d
		}
	}
	return best
}

// surgeToward - первый шаг маршрута как Surge; nil, если пути нет
func (b *Bot) surgeToward(goal domain.Position) domain.Action {
	path := b.level.PathTo(b.self, goal)
	if len(path) == 0 {
		return nil
	}
	next := path[0]
	return domain.Surge{Dx: next.X - b.self.Pos.X, Dy: next.Y - b.self.Pos.Y}
}

func (b *Bot) wander() domain.Action {
	var options []domain.Surge
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := domain.Position{X: b.self.Pos.X + dx, Y: b.self.Pos.Y + dy}
			if domain.IsFree(b.level, p) {
				options = append(options, domain.Surge{Dx: dx, Dy: dy})
			}
		}
	}
	if len(options) == 0 {
		return domain.Wait{}
	}
	return options[b.rng.Intn(len(options))]
}

func (b *Bot) fingerprint(a domain.Action, target *domain.Entity) string {
	targetHealth := -1
	if target != nil {
		targetHealth = target.Body.Health
	}
	return fmt.Sprintf("%T%+v@%v/%d/%d/%d", a, a, b.self.Pos, b.self.Body.Health, b.self.InventorySize(), targetHealth)
}
