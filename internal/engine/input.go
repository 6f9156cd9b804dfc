package engine

import (
	"context"
	"errors"

	"github.com/Peritract/meld/internal/domain"
)

var ErrInputExhausted = errors.New("scripted input exhausted")

// ChannelInput - ввод из канала (WebSocket, бот)
type ChannelInput struct {
	ch chan domain.Action
}

func NewChannelInput(buffer int) *ChannelInput {
	return &ChannelInput{ch: make(chan domain.Action, buffer)}
}

// Submit кладет действие в очередь; false, если очередь переполнена
func (c *ChannelInput) Submit(a domain.Action) bool {
	select {
	case c.ch <- a:
		return true
	default:
		return false
	}
}

func (c *ChannelInput) NextAction(ctx context.Context) (domain.Action, error) {
	select {
	case a := <-c.ch:
		return a, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ScriptInput отдает заранее записанные действия по порядку
type ScriptInput struct {
	actions []domain.Action
	next    int
}

func NewScriptInput(actions ...domain.Action) *ScriptInput {
	return &ScriptInput{actions: actions}
}

func (s *ScriptInput) NextAction(ctx context.Context) (domain.Action, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.actions) {
		return nil, ErrInputExhausted
	}
	a := s.actions[s.next]
	s.next++
	return a, nil
}

// Remaining - сколько действий еще не отдано
func (s *ScriptInput) Remaining() int {
	return len(s.actions) - s.next
}
