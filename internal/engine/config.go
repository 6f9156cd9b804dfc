package engine

import (
	"fmt"
	"time"

	"github.com/Peritract/meld/internal/domain"
)

// Порядок ходов существ внутри раунда
const (
	TurnOrderFixed = "fixed" // порядок добавления в зону
	TurnOrderSpeed = "speed" // быстрые раньше, при равенстве - порядок добавления
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят генерация и весь ход партии.
	Seed int64 `yaml:"seed"`

	// TurnOrder - fixed или speed
	TurnOrder string `yaml:"turn_order"`

	// Mutation - порог и режим выбора части тела
	Mutation domain.MutationRules `yaml:"mutation"`

	// LogLimit - сколько сообщений хранит журнал зоны
	LogLimit int `yaml:"log_limit"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:      time.Now().UnixNano(),
		TurnOrder: TurnOrderFixed,
		Mutation:  domain.MutationRules{Threshold: domain.DefaultMutationThreshold},
	}
}

// Validate проверяет значения, пришедшие из файла
func (c Config) Validate() error {
	switch c.TurnOrder {
	case "", TurnOrderFixed, TurnOrderSpeed:
	default:
		return fmt.Errorf("unknown turn_order %q", c.TurnOrder)
	}
	if c.Mutation.Threshold < 0 {
		return fmt.Errorf("mutation threshold must not be negative: %d", c.Mutation.Threshold)
	}
	if c.LogLimit < 0 {
		return fmt.Errorf("log_limit must not be negative: %d", c.LogLimit)
	}
	return nil
}
