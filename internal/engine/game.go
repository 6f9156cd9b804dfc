package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/world"
	"github.com/Peritract/meld/pkg/api"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

const inputBuffer = 16

var (
	ErrInputFull      = errors.New("input queue is full")
	ErrNotInteractive = errors.New("game is not driven by a client")
	ErrNoPlayer       = errors.New("level has no player")
)

// Publisher доставляет ответы подписчикам (network.Broadcaster)
type Publisher interface {
	SendTo(id domain.EntityID, msg api.ServerResponse)
}

// Game - одна партия: зона, раунды, ввод игрока и рассылка состояния.
// Все обращения к зоне идут под mu. Пока разум игрока ждет ввода, mu отпущен.
type Game struct {
	mu       sync.Mutex
	resolver *Resolver
	level    *world.Level
	player   *domain.Entity
	memory   Memory

	channel  *ChannelInput
	recorder *Recorder
	hub      Publisher

	started time.Time
}

type GameOption func(*Game)

// WithInput подменяет ввод клиента (автопилот, повтор)
func WithInput(src domain.InputSource) GameOption {
	return func(g *Game) {
		g.channel = nil
		g.recorder = NewRecorder(src, g.player.ID.Key(), g.resolver.Round)
	}
}

// WithRound продолжает счет раундов после загрузки сохранения
func WithRound(n int) GameOption {
	return func(g *Game) { g.resolver.SetRound(n) }
}

func NewGame(level *world.Level, cfg Config, hub Publisher, opts ...GameOption) (*Game, error) {
	player := level.Player()
	if player == nil {
		return nil, ErrNoPlayer
	}

	g := &Game{
		resolver: NewResolver(level, cfg),
		level:    level,
		player:   player,
		memory:   make(Memory),
		channel:  NewChannelInput(inputBuffer),
		hub:      hub,
		started:  time.Now(),
	}
	g.recorder = NewRecorder(g.channel, player.ID.Key(), g.resolver.Round)
	for _, opt := range opts {
		opt(g)
	}

	level.SetInput(inputFunc(g.awaitInput))
	g.resolver.SetModeListener(ModeFunc(g.enterMode))
	return g, nil
}

type inputFunc func(ctx context.Context) (domain.Action, error)

func (f inputFunc) NextAction(ctx context.Context) (domain.Action, error) { return f(ctx) }

// awaitInput вызывается из раунда под mu. Замок отпускается посреди раунда:
// Snapshot и Inspect видят зону, пока игрок выбирает действие. Это безопасно,
// пока до финального действия игрока раунд ничего не меняет в мире.
// Шаг перед ходом игрока (например, обновление состояний) сломает это.
func (g *Game) awaitInput(ctx context.Context) (domain.Action, error) {
	g.mu.Unlock()
	defer g.mu.Lock()
	return g.recorder.NextAction(ctx)
}

func (g *Game) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"area":      g.level.ID,
	})
}

func (g *Game) Player() *domain.Entity { return g.player }

// Submit декодирует команду клиента и ставит ее в очередь ввода
func (g *Game) Submit(cmd api.ClientCommand) error {
	if g.channel == nil {
		return ErrNotInteractive
	}
	action, err := DecodeCommand(cmd)
	if err != nil {
		return err
	}
	if !g.channel.Submit(action) {
		return ErrInputFull
	}
	return nil
}

// Run играет раунды до смерти игрока или отмены контекста.
// Смерть игрока - нормальный конец партии.
func (g *Game) Run(ctx context.Context) error {
	g.mu.Lock()
	g.publishUpdate()
	g.mu.Unlock()

	g.log().WithField("seed", g.level.Seed()).Info("Game started")

	for {
		g.mu.Lock()
		err := g.resolver.PlayRound(ctx)
		g.publishUpdate()
		g.mu.Unlock()

		switch {
		case err == nil:
			continue
		case errors.Is(err, ErrPlayerDead):
			g.mu.Lock()
			g.publishGameOver()
			g.mu.Unlock()
			g.log().WithField("round", g.resolver.Round()).Info("Player died")
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			return fmt.Errorf("round %d: %w", g.resolver.Round(), err)
		}
	}
}

// Resync заново отправляет текущее состояние (после переподключения)
func (g *Game) Resync() {
	g.mu.Lock()
	defer g.mu.Unlock()
	resp := BuildStateFor(g.level, g.player, g.memory, g.resolver.Round(), nil)
	g.send(resp)
}

func (g *Game) publishUpdate() {
	resp := BuildStateFor(g.level, g.player, g.memory, g.resolver.Round(), g.level.Log().Drain())
	g.send(resp)
}

func (g *Game) publishGameOver() {
	resp := BuildStateFor(g.level, g.player, g.memory, g.resolver.Round(), g.level.Log().Drain())
	resp.Type = api.ResponseGameOver
	g.send(resp)
}

// enterMode вызывается резолвером посреди хода игрока, mu уже взят
func (g *Game) enterMode(actor *domain.Entity, m Mode) {
	resp := BuildModeFor(g.level, actor, m, g.resolver.Round())
	resp.Logs = ToLogEntries(g.level.Log().Drain())
	g.send(resp)
}

func (g *Game) send(resp *api.ServerResponse) {
	if g.hub != nil {
		g.hub.SendTo(g.player.ID, *resp)
	}
}

// Snapshot снимает состояние между ходами
func (g *Game) Snapshot() (*Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Capture(g.level, g.resolver.Round())
}

// Replay - записанный ввод игрока с сидом зоны
func (g *Game) Replay() *Replay {
	return g.recorder.Replay(g.level.Seed(), g.level.ID, g.started.Unix())
}

// Summary - сводка для debug-эндпоинтов
type Summary struct {
	AreaID   uint16 `json:"area_id"`
	Name     string `json:"name"`
	Round    int    `json:"round"`
	Seed     int64  `json:"seed"`
	Entities int    `json:"entities"`
	Items    int    `json:"items"`
	Features int    `json:"features"`
	Recorded int    `json:"recorded"`
	Dead     bool   `json:"player_dead"`
}

func (g *Game) Summary() Summary {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Summary{
		AreaID:   g.level.ID,
		Name:     g.level.Name,
		Round:    g.resolver.Round(),
		Seed:     g.level.Seed(),
		Entities: len(g.level.Entities()),
		Items:    len(g.level.Items()),
		Features: len(g.level.Features()),
		Recorded: g.recorder.Len(),
		Dead:     g.resolver.PlayerDead(),
	}
}

// Inspect дает доступ к зоне под блокировкой (debug)
func (g *Game) Inspect(fn func(level *world.Level, round int)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.level, g.resolver.Round())
}
