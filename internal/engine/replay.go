package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ReplayAction - одно действие игрока, как его прислал клиент
type ReplayAction struct {
	Round   int
	Token   string
	Action  domain.ActionType
	Payload json.RawMessage
}

// Replay - сид зоны и поток действий игрока. Зона, собранная с тем же сидом,
// под этим потоком повторяет партию.
type Replay struct {
	Seed      int64
	Timestamp int64
	LevelID   uint16
	Actions   []ReplayAction
}

// Script декодирует действия обратно в источник ввода
func (r *Replay) Script() (*ScriptInput, error) {
	actions := make([]domain.Action, 0, len(r.Actions))
	for i, ra := range r.Actions {
		a, err := DecodeAction(ra.Action, ra.Payload)
		if err != nil {
			return nil, fmt.Errorf("replay action %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	return NewScriptInput(actions...), nil
}

// Recorder - источник ввода, который записывает все, что отдал.
// Записываются и нефинальные действия: без них повтор разойдется.
type Recorder struct {
	src   domain.InputSource
	round func() int
	token string

	mu      sync.Mutex
	actions []ReplayAction
}

func NewRecorder(src domain.InputSource, token string, round func() int) *Recorder {
	return &Recorder{src: src, token: token, round: round}
}

func (r *Recorder) NextAction(ctx context.Context) (domain.Action, error) {
	a, err := r.src.NextAction(ctx)
	if err != nil {
		return nil, err
	}

	t, payload, err := EncodeAction(a)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "recorder",
			"action":    fmt.Sprintf("%T", a),
		}).WithError(err).Warn("Action not recorded")
		return a, nil
	}

	r.mu.Lock()
	r.actions = append(r.actions, ReplayAction{Round: r.round(), Token: r.token, Action: t, Payload: payload})
	r.mu.Unlock()
	return a, nil
}

// Replay возвращает копию записанного
func (r *Recorder) Replay(seed int64, levelID uint16, timestamp int64) *Replay {
	r.mu.Lock()
	defer r.mu.Unlock()
	actions := make([]ReplayAction, len(r.actions))
	copy(actions, r.actions)
	return &Replay{Seed: seed, Timestamp: timestamp, LevelID: levelID, Actions: actions}
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.actions)
}
