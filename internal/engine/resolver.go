package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine/handlers"
	"github.com/Peritract/meld/internal/engine/handlers/actions"
	"github.com/Peritract/meld/internal/minds"
	"github.com/Peritract/meld/internal/systems"
	"github.com/Peritract/meld/internal/world"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

var (
	// ErrPlayerDead - игрок погиб, партия окончена
	ErrPlayerDead = errors.New("player is dead")
	// ErrPanic - паника внутри хода одной сущности
	ErrPanic = errors.New("panic during turn")
)

// Resolver проводит раунды в одной зоне.
// Раунд: финальное действие игрока, по одному решению каждого живого существа,
// обновление всех, кто остался, затем объекты мира.
type Resolver struct {
	level    *world.Level
	handlers handlers.Registry
	modes    ModeListener
	order    string
	round    int

	player *domain.Entity
}

func NewResolver(level *world.Level, cfg Config) *Resolver {
	level.SetMutationRules(cfg.Mutation)
	if cfg.LogLimit > 0 {
		level.Log().SetLimit(cfg.LogLimit)
	}
	return &Resolver{
		level:    level,
		handlers: actions.NewRegistry(),
		order:    cfg.TurnOrder,
		player:   level.Player(),
	}
}

func (r *Resolver) SetModeListener(m ModeListener) { r.modes = m }
func (r *Resolver) SetRound(n int)                 { r.round = n }
func (r *Resolver) Round() int                     { return r.round }
func (r *Resolver) Level() *world.Level            { return r.level }
func (r *Resolver) Player() *domain.Entity         { return r.player }

// PlayerDead - игрок был в зоне и погиб
func (r *Resolver) PlayerDead() bool {
	return r.player != nil && (!r.player.Alive() || !r.level.Contains(r.player))
}

func (r *Resolver) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "resolver",
		"area":      r.level.ID,
		"round":     r.round,
	})
}

// PlayRound проводит один раунд. Ошибка возвращается только если раунд
// не может продолжаться: ввод игрока оборвался или игрок мертв.
func (r *Resolver) PlayRound(ctx context.Context) error {
	if r.PlayerDead() {
		return ErrPlayerDead
	}

	// 1. Игрок
	if r.player != nil {
		if err := r.playerTurn(ctx, r.player); err != nil {
			return err
		}
		r.reap()
	}

	// 2. Остальные, по одному решению
	for _, e := range r.turnOrder() {
		if !r.level.Contains(e) || !e.Alive() {
			continue
		}
		r.aiTurn(ctx, e)
		r.reap()
	}

	// 3. Состояния, перезарядка, мутации - только у тех, кто остался
	for _, e := range append([]*domain.Entity(nil), r.level.Entities()...) {
		if !r.level.Contains(e) {
			continue
		}
		if err := r.safely(func() error { e.Update(r.level); return nil }); err != nil {
			r.log().WithError(err).WithField("entity_id", e.ID).Error("Entity update failed")
		}
	}
	r.reap()

	// 4. Объекты мира
	if err := r.safely(func() error { r.level.UpdateFeatures(); return nil }); err != nil {
		r.log().WithError(err).Error("Feature update failed")
	}
	r.reap()

	r.round++
	if r.PlayerDead() {
		return ErrPlayerDead
	}
	return nil
}

func (r *Resolver) turnOrder() []*domain.Entity {
	others := make([]*domain.Entity, 0, len(r.level.Entities()))
	for _, e := range r.level.Entities() {
		if e != r.player {
			others = append(others, e)
		}
	}
	if r.order == TurnOrderSpeed {
		return SpeedOrder(others)
	}
	return others
}

// playerTurn спрашивает разум игрока, пока не получит финальное действие,
// которое удалось выполнить. Отказы (Impossible) ход не тратят.
func (r *Resolver) playerTurn(ctx context.Context, player *domain.Entity) error {
	for {
		mind := player.Mind()
		if mind == nil {
			return nil
		}
		// Зачарованный игрок ходит как ИИ: одна попытка
		if _, manual := mind.(*minds.Player); !manual {
			r.aiTurn(ctx, player)
			return nil
		}

		action, err := mind.MakeDecision(ctx, player, r.level)
		if err != nil {
			return fmt.Errorf("player decision: %w", err)
		}
		if action == nil {
			action = domain.Wait{}
		}

		if !action.Final() {
			resolved, err := r.resolveNonFinal(player, action)
			if err != nil {
				r.reject(player, err)
				continue
			}
			if resolved == nil {
				continue
			}
			action = resolved
		}

		err = r.execute(player, action)
		if err == nil {
			return nil
		}

		var choice *systems.ChoiceError
		switch {
		case errors.As(err, &choice):
			r.enterMode(player, Mode{Action: action.Type(), Items: choice.Items})
		case isRecoverable(err):
			r.reject(player, err)
		default:
			r.log().WithError(err).WithField("action", action.Type().String()).Error("Player action failed")
			return nil
		}
	}
}

// resolveNonFinal: Surge превращается в Move/Attack, остальное - смена режима (nil)
func (r *Resolver) resolveNonFinal(actor *domain.Entity, action domain.Action) (domain.Action, error) {
	switch a := action.(type) {
	case domain.Surge:
		return systems.InterpretSurge(actor, a, r.level)
	case domain.OpenInventory:
		if err := systems.CheckInventory(actor); err != nil {
			return nil, err
		}
		r.enterMode(actor, Mode{Action: a.Type(), Items: actor.Items()})
	case domain.Look:
		target := a.Target
		r.enterMode(actor, Mode{Action: a.Type(), Target: &target})
	default:
		r.enterMode(actor, Mode{Action: action.Type()})
	}
	return nil, nil
}

func (r *Resolver) enterMode(actor *domain.Entity, m Mode) {
	if r.modes != nil {
		r.modes.EnterMode(actor, m)
	}
}

// aiTurn - одно решение одного существа. Любая ошибка теряет попытку,
// но не останавливает раунд.
func (r *Resolver) aiTurn(ctx context.Context, e *domain.Entity) {
	entLog := r.log().WithFields(logrus.Fields{"entity_id": e.ID, "name": e.Name})

	mind := e.Mind()
	if mind == nil {
		return
	}

	var action domain.Action
	err := r.safely(func() error {
		var derr error
		action, derr = mind.MakeDecision(ctx, e, r.level)
		return derr
	})
	if err != nil {
		entLog.WithError(err).Warn("Decision failed")
		return
	}
	if action == nil {
		return
	}

	if !action.Final() {
		s, ok := action.(domain.Surge)
		if !ok {
			return
		}
		if action, err = systems.InterpretSurge(e, s, r.level); err != nil {
			entLog.WithError(err).Debug("Surge rejected")
			return
		}
	}

	if err := r.execute(e, action); err != nil {
		if isRecoverable(err) {
			entLog.WithError(err).Debug("Attempt lost")
			return
		}
		entLog.WithError(err).WithField("action", action.Type().String()).Error("Action failed")
	}
}

func (r *Resolver) execute(e *domain.Entity, action domain.Action) error {
	return r.safely(func() error {
		return r.handlers.Handle(handlers.Context{Area: r.level, Actor: e}, action)
	})
}

// safely превращает панику в ошибку
func (r *Resolver) safely(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()
	return fn()
}

func (r *Resolver) reject(actor *domain.Entity, err error) {
	if ae, ok := domain.AsActionError(err); ok {
		r.level.Post(domain.NewMessage(domain.CategorySystem, "%s", ae.Msg))
		return
	}
	r.log().WithError(err).WithField("entity_id", actor.ID).Warn("Rejected action")
}

func (r *Resolver) reap() {
	r.level.Reap()
}

func isRecoverable(err error) bool {
	_, ok := domain.AsActionError(err)
	return ok
}
